package repository

import (
	"context"
	"errors"

	"github.com/hr-system-api/internal/domain"
	"gorm.io/gorm"
)

// PositionRepository определяет интерфейс для работы с должностями
type PositionRepository interface {
	Create(ctx context.Context, pos *domain.Position) error
	GetByID(ctx context.Context, id int64) (*domain.Position, error)
	List(ctx context.Context) ([]domain.Position, error)
	Count(ctx context.Context) (int64, error)
	Delete(ctx context.Context, id int64) error
}

type positionRepository struct {
	db *gorm.DB
}

// NewPositionRepository создаёт новый экземпляр репозитория
func NewPositionRepository(db *gorm.DB) PositionRepository {
	return &positionRepository{db: db}
}

func (r *positionRepository) Create(ctx context.Context, pos *domain.Position) error {
	err := r.db.WithContext(ctx).Create(pos).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrDuplicatePositionTitle
	}
	return err
}

func (r *positionRepository) GetByID(ctx context.Context, id int64) (*domain.Position, error) {
	var pos domain.Position
	err := r.db.WithContext(ctx).First(&pos, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPositionNotFound
		}
		return nil, err
	}
	return &pos, nil
}

func (r *positionRepository) List(ctx context.Context) ([]domain.Position, error) {
	var positions []domain.Position
	err := r.db.WithContext(ctx).Order("title ASC").Find(&positions).Error
	return positions, err
}

func (r *positionRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Position{}).Count(&count).Error
	return count, err
}

func (r *positionRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&domain.Position{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrPositionNotFound
	}
	return nil
}
