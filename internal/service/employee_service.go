package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hr-system-api/internal/auth"
	"github.com/hr-system-api/internal/domain"
	"github.com/hr-system-api/internal/dto"
	"github.com/hr-system-api/internal/policy"
	"github.com/hr-system-api/internal/repository"
)

// EmployeeService определяет интерфейс бизнес-логики для сотрудников
type EmployeeService interface {
	List(ctx context.Context, identity *auth.Identity) ([]domain.Employee, error)
	Create(ctx context.Context, req *dto.CreateEmployeeRequest) (*domain.Employee, error)
	UpdateRoleAndManager(ctx context.Context, id int64, req *dto.UpdateEmployeeRequest) (*domain.Employee, error)
	Delete(ctx context.Context, id int64) error
	ListManagerCandidates(ctx context.Context) ([]domain.Employee, error)
	ListSubordinates(ctx context.Context, managerID int64) ([]domain.Employee, error)
}

type employeeService struct {
	empRepo  repository.EmployeeRepository
	deptRepo repository.DepartmentRepository
	posRepo  repository.PositionRepository
	accRepo  repository.AccountRepository
	tx       repository.Transactor
	policy   *policy.Policy
}

// NewEmployeeService создаёт новый экземпляр сервиса
func NewEmployeeService(
	empRepo repository.EmployeeRepository,
	deptRepo repository.DepartmentRepository,
	posRepo repository.PositionRepository,
	accRepo repository.AccountRepository,
	tx repository.Transactor,
	pol *policy.Policy,
) EmployeeService {
	return &employeeService{
		empRepo:  empRepo,
		deptRepo: deptRepo,
		posRepo:  posRepo,
		accRepo:  accRepo,
		tx:       tx,
		policy:   pol,
	}
}

// List возвращает сотрудников в пределах области видимости вызывающего:
// администратор видит всех, остальные - только своих прямых подчинённых
func (s *employeeService) List(ctx context.Context, identity *auth.Identity) ([]domain.Employee, error) {
	if identity == nil {
		return nil, domain.ErrUnauthorized
	}

	callerEmployee, err := s.resolveCallerEmployee(ctx, identity)
	if err != nil {
		return nil, err
	}

	scope := s.policy.EmployeeListScope(identity, callerEmployee)
	switch {
	case scope.All:
		return s.empRepo.List(ctx)
	case scope.ManagerID != nil:
		return s.empRepo.ListByManager(ctx, *scope.ManagerID)
	default:
		return []domain.Employee{}, nil
	}
}

// resolveCallerEmployee находит карточку сотрудника по email учётной записи вызывающего
func (s *employeeService) resolveCallerEmployee(ctx context.Context, identity *auth.Identity) (*domain.Employee, error) {
	acc, err := s.accRepo.GetByID(ctx, identity.AccountID)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, err
	}

	emp, err := s.empRepo.GetByEmail(ctx, acc.Email)
	if err != nil {
		if errors.Is(err, domain.ErrEmployeeNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return emp, nil
}

func (s *employeeService) Create(ctx context.Context, req *dto.CreateEmployeeRequest) (*domain.Employee, error) {
	if req.DepartmentID != nil {
		if _, err := s.deptRepo.GetByID(ctx, *req.DepartmentID); err != nil {
			return nil, err
		}
	}
	if req.PositionID != nil {
		if _, err := s.posRepo.GetByID(ctx, *req.PositionID); err != nil {
			return nil, err
		}
	}

	guard := NewIntegrityGuard(s.empRepo)
	if err := guard.CheckManagerAssignment(ctx, 0, req.ManagerID); err != nil {
		return nil, err
	}

	emp := &domain.Employee{
		Name:         strings.TrimSpace(req.Name),
		Gender:       req.Gender,
		Phone:        req.Phone,
		Email:        strings.TrimSpace(req.Email),
		DepartmentID: req.DepartmentID,
		PositionID:   req.PositionID,
		ManagerID:    req.ManagerID,
		Role:         req.Role,
	}

	if req.JoinDate != nil {
		joinDate, err := time.Parse("2006-01-02", *req.JoinDate)
		if err != nil {
			return nil, err
		}
		emp.JoinDate = &joinDate
	}

	if err := s.empRepo.Create(ctx, emp); err != nil {
		return nil, err
	}

	return emp, nil
}

// UpdateRoleAndManager меняет роль и руководителя сотрудника. Роль учётной
// записи с тем же email обновляется в той же транзакции: либо сохраняются обе
// записи, либо ни одна. Отсутствие учётной записи не ошибка.
func (s *employeeService) UpdateRoleAndManager(ctx context.Context, id int64, req *dto.UpdateEmployeeRequest) (*domain.Employee, error) {
	err := s.tx.WithinTx(ctx, func(r repository.Repos) error {
		emp, err := r.Employees.GetByID(ctx, id)
		if err != nil {
			return err
		}

		guard := NewIntegrityGuard(r.Employees)
		if err := guard.CheckManagerAssignment(ctx, id, req.ManagerID); err != nil {
			return err
		}

		if err := r.Employees.UpdateRoleAndManager(ctx, id, req.Role, req.ManagerID); err != nil {
			return err
		}

		if emp.Email == "" {
			return nil
		}
		if err := r.Accounts.UpdateRoleByEmail(ctx, emp.Email, req.Role); err != nil {
			return fmt.Errorf("%w: %v", domain.ErrRoleSyncFailed, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.empRepo.GetByID(ctx, id)
}

// Delete удаляет сотрудника; при наличии подчинённых операция отклоняется,
// проверка и удаление выполняются в одной транзакции
func (s *employeeService) Delete(ctx context.Context, id int64) error {
	return s.tx.WithinTx(ctx, func(r repository.Repos) error {
		if _, err := r.Employees.GetByID(ctx, id); err != nil {
			return err
		}

		guard := NewIntegrityGuard(r.Employees)
		if err := guard.CheckEmployeeDelete(ctx, id); err != nil {
			return err
		}

		return r.Employees.Delete(ctx, id)
	})
}

func (s *employeeService) ListManagerCandidates(ctx context.Context) ([]domain.Employee, error) {
	return s.empRepo.ListManagerCandidates(ctx)
}

// ListSubordinates возвращает прямых подчинённых; отсутствие подчинённых
// не ошибка, а пустой список
func (s *employeeService) ListSubordinates(ctx context.Context, managerID int64) ([]domain.Employee, error) {
	employees, err := s.empRepo.ListByManager(ctx, managerID)
	if err != nil {
		return nil, err
	}
	if employees == nil {
		employees = []domain.Employee{}
	}
	return employees, nil
}
