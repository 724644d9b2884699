package repository

import (
	"context"
	"time"

	"github.com/hr-system-api/internal/domain"
	"gorm.io/gorm"
)

// AttendanceRepository определяет интерфейс для журнала учёта времени.
// Записи не изменяются и не удаляются.
type AttendanceRepository interface {
	Create(ctx context.Context, att *domain.Attendance) error
	List(ctx context.Context) ([]domain.Attendance, error)
	CountSince(ctx context.Context, since time.Time) (int64, error)
}

type attendanceRepository struct {
	db *gorm.DB
}

// NewAttendanceRepository создаёт новый экземпляр репозитория
func NewAttendanceRepository(db *gorm.DB) AttendanceRepository {
	return &attendanceRepository{db: db}
}

func (r *attendanceRepository) Create(ctx context.Context, att *domain.Attendance) error {
	return r.db.WithContext(ctx).Create(att).Error
}

func (r *attendanceRepository) CountSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Attendance{}).
		Where("timestamp >= ?", since).
		Count(&count).Error
	return count, err
}

func (r *attendanceRepository) List(ctx context.Context) ([]domain.Attendance, error) {
	var records []domain.Attendance
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Order("timestamp DESC").
		Find(&records).Error
	return records, err
}
