package repository

import (
	"context"

	"github.com/hr-system-api/internal/domain"
	"gorm.io/gorm"
)

// SalaryRepository определяет интерфейс для журнала выплат.
// Записи не изменяются и не удаляются.
type SalaryRepository interface {
	Create(ctx context.Context, sal *domain.Salary) error
	List(ctx context.Context) ([]domain.Salary, error)
}

type salaryRepository struct {
	db *gorm.DB
}

// NewSalaryRepository создаёт новый экземпляр репозитория
func NewSalaryRepository(db *gorm.DB) SalaryRepository {
	return &salaryRepository{db: db}
}

func (r *salaryRepository) Create(ctx context.Context, sal *domain.Salary) error {
	return r.db.WithContext(ctx).Create(sal).Error
}

func (r *salaryRepository) List(ctx context.Context) ([]domain.Salary, error) {
	var records []domain.Salary
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Order("pay_date DESC").
		Find(&records).Error
	return records, err
}
