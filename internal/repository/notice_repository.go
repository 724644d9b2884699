package repository

import (
	"context"
	"errors"

	"github.com/hr-system-api/internal/domain"
	"gorm.io/gorm"
)

// NoticeRepository определяет интерфейс для работы с объявлениями
type NoticeRepository interface {
	Create(ctx context.Context, notice *domain.Notice) error
	GetByID(ctx context.Context, id int64) (*domain.Notice, error)
	List(ctx context.Context) ([]domain.Notice, error)
	ListByAuthor(ctx context.Context, authorID int64) ([]domain.Notice, error)
	CountActive(ctx context.Context) (int64, error)
	Delete(ctx context.Context, id int64) error
}

type noticeRepository struct {
	db *gorm.DB
}

// NewNoticeRepository создаёт новый экземпляр репозитория
func NewNoticeRepository(db *gorm.DB) NoticeRepository {
	return &noticeRepository{db: db}
}

func (r *noticeRepository) Create(ctx context.Context, notice *domain.Notice) error {
	return r.db.WithContext(ctx).Create(notice).Error
}

func (r *noticeRepository) GetByID(ctx context.Context, id int64) (*domain.Notice, error) {
	var notice domain.Notice
	err := r.db.WithContext(ctx).First(&notice, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNoticeNotFound
		}
		return nil, err
	}
	return &notice, nil
}

func (r *noticeRepository) List(ctx context.Context) ([]domain.Notice, error) {
	var notices []domain.Notice
	err := r.db.WithContext(ctx).
		Preload("Author").
		Order("created_at DESC").
		Find(&notices).Error
	return notices, err
}

func (r *noticeRepository) ListByAuthor(ctx context.Context, authorID int64) ([]domain.Notice, error) {
	var notices []domain.Notice
	err := r.db.WithContext(ctx).
		Preload("Author").
		Where("author_id = ?", authorID).
		Order("created_at DESC").
		Find(&notices).Error
	return notices, err
}

func (r *noticeRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Notice{}).
		Where("is_active = ?", true).
		Count(&count).Error
	return count, err
}

func (r *noticeRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&domain.Notice{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNoticeNotFound
	}
	return nil
}
