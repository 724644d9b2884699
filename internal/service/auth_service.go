package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/hr-system-api/internal/auth"
	"github.com/hr-system-api/internal/domain"
	"github.com/hr-system-api/internal/dto"
	"github.com/hr-system-api/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

// AuthService определяет интерфейс регистрации и входа
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*domain.Account, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
}

type authService struct {
	accRepo repository.AccountRepository
	tx      repository.Transactor
	tokens  *auth.TokenManager
}

// NewAuthService создаёт новый экземпляр сервиса
func NewAuthService(accRepo repository.AccountRepository, tx repository.Transactor, tokens *auth.TokenManager) AuthService {
	return &authService{
		accRepo: accRepo,
		tx:      tx,
		tokens:  tokens,
	}
}

// Register создаёт учётную запись и карточку сотрудника в одной транзакции.
// Обе записи получают роль intern и общий email.
func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*domain.Account, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	acc := &domain.Account{
		Username: strings.TrimSpace(req.Username),
		Password: string(hash),
		Email:    strings.TrimSpace(req.Email),
		Role:     domain.RoleIntern,
	}

	err = s.tx.WithinTx(ctx, func(r repository.Repos) error {
		if err := r.Accounts.Create(ctx, acc); err != nil {
			return err
		}

		joinDate := time.Now().Truncate(24 * time.Hour)
		emp := &domain.Employee{
			Name:     strings.TrimSpace(req.Name),
			Gender:   req.Gender,
			Phone:    req.Phone,
			Email:    acc.Email,
			Role:     domain.RoleIntern,
			JoinDate: &joinDate,
		}
		return r.Employees.Create(ctx, emp)
	})
	if err != nil {
		return nil, err
	}

	return acc, nil
}

// Login проверяет пароль и выпускает токен доступа
func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	acc, err := s.accRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(acc.Password), []byte(req.Password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	token, exp, err := s.tokens.Generate(acc.ID, acc.Username, acc.Role)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Token:     token,
		ExpiresAt: exp,
		Username:  acc.Username,
		Role:      acc.Role,
	}, nil
}
