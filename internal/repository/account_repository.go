package repository

import (
	"context"
	"errors"

	"github.com/hr-system-api/internal/domain"
	"gorm.io/gorm"
)

// AccountRepository определяет интерфейс для работы с учётными записями
type AccountRepository interface {
	Create(ctx context.Context, acc *domain.Account) error
	GetByID(ctx context.Context, id int64) (*domain.Account, error)
	GetByUsername(ctx context.Context, username string) (*domain.Account, error)
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)
	UpdateRoleByEmail(ctx context.Context, email, role string) error
}

type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository создаёт новый экземпляр репозитория
func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{db: db}
}

func (r *accountRepository) Create(ctx context.Context, acc *domain.Account) error {
	err := r.db.WithContext(ctx).Create(acc).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrDuplicateAccount
	}
	return err
}

func (r *accountRepository) GetByID(ctx context.Context, id int64) (*domain.Account, error) {
	var acc domain.Account
	err := r.db.WithContext(ctx).First(&acc, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, err
	}
	return &acc, nil
}

func (r *accountRepository) GetByUsername(ctx context.Context, username string) (*domain.Account, error) {
	var acc domain.Account
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&acc).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, err
	}
	return &acc, nil
}

func (r *accountRepository) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	var acc domain.Account
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&acc).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, err
	}
	return &acc, nil
}

func (r *accountRepository) UpdateRoleByEmail(ctx context.Context, email, role string) error {
	return r.db.WithContext(ctx).
		Model(&domain.Account{}).
		Where("email = ?", email).
		Update("role", role).Error
}
