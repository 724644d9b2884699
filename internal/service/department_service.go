package service

import (
	"context"
	"strings"

	"github.com/hr-system-api/internal/domain"
	"github.com/hr-system-api/internal/dto"
	"github.com/hr-system-api/internal/repository"
)

// DepartmentService определяет интерфейс бизнес-логики для отделов
type DepartmentService interface {
	List(ctx context.Context) ([]repository.DepartmentWithCount, error)
	Create(ctx context.Context, req *dto.CreateDepartmentRequest) (*domain.Department, error)
	Delete(ctx context.Context, id int64) error
}

type departmentService struct {
	deptRepo repository.DepartmentRepository
	tx       repository.Transactor
}

// NewDepartmentService создаёт новый экземпляр сервиса
func NewDepartmentService(deptRepo repository.DepartmentRepository, tx repository.Transactor) DepartmentService {
	return &departmentService{
		deptRepo: deptRepo,
		tx:       tx,
	}
}

func (s *departmentService) List(ctx context.Context) ([]repository.DepartmentWithCount, error) {
	return s.deptRepo.ListWithEmployeeCounts(ctx)
}

func (s *departmentService) Create(ctx context.Context, req *dto.CreateDepartmentRequest) (*domain.Department, error) {
	dept := &domain.Department{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
	}

	if err := s.deptRepo.Create(ctx, dept); err != nil {
		return nil, err
	}

	return dept, nil
}

// Delete удаляет отдел; отдел с сотрудниками удалить нельзя.
// Проверка и удаление выполняются в одной транзакции.
func (s *departmentService) Delete(ctx context.Context, id int64) error {
	return s.tx.WithinTx(ctx, func(r repository.Repos) error {
		if _, err := r.Departments.GetByID(ctx, id); err != nil {
			return err
		}

		guard := NewIntegrityGuard(r.Employees)
		if err := guard.CheckDepartmentDelete(ctx, id); err != nil {
			return err
		}

		return r.Departments.Delete(ctx, id)
	})
}
