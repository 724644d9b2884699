package service

import (
	"context"
	"strings"

	"github.com/hr-system-api/internal/domain"
	"github.com/hr-system-api/internal/dto"
	"github.com/hr-system-api/internal/repository"
)

// PositionService определяет интерфейс бизнес-логики для должностей
type PositionService interface {
	List(ctx context.Context) ([]domain.Position, error)
	Create(ctx context.Context, req *dto.CreatePositionRequest) (*domain.Position, error)
	Delete(ctx context.Context, id int64) error
}

type positionService struct {
	posRepo repository.PositionRepository
	tx      repository.Transactor
}

// NewPositionService создаёт новый экземпляр сервиса
func NewPositionService(posRepo repository.PositionRepository, tx repository.Transactor) PositionService {
	return &positionService{
		posRepo: posRepo,
		tx:      tx,
	}
}

func (s *positionService) List(ctx context.Context) ([]domain.Position, error) {
	return s.posRepo.List(ctx)
}

func (s *positionService) Create(ctx context.Context, req *dto.CreatePositionRequest) (*domain.Position, error) {
	pos := &domain.Position{
		Title:       strings.TrimSpace(req.Title),
		Level:       req.Level,
		Description: req.Description,
	}

	if err := s.posRepo.Create(ctx, pos); err != nil {
		return nil, err
	}

	return pos, nil
}

// Delete удаляет должность; должность с сотрудниками удалить нельзя
func (s *positionService) Delete(ctx context.Context, id int64) error {
	return s.tx.WithinTx(ctx, func(r repository.Repos) error {
		if _, err := r.Positions.GetByID(ctx, id); err != nil {
			return err
		}

		guard := NewIntegrityGuard(r.Employees)
		if err := guard.CheckPositionDelete(ctx, id); err != nil {
			return err
		}

		return r.Positions.Delete(ctx, id)
	})
}
