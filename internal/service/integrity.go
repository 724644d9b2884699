package service

import (
	"context"
	"errors"

	"github.com/hr-system-api/internal/domain"
	"github.com/hr-system-api/internal/repository"
)

// IntegrityGuard проверяет инварианты дерева сотрудников и ссылочную целостность
// перед мутациями. Внутри транзакции создаётся поверх транзакционных репозиториев.
type IntegrityGuard struct {
	empRepo repository.EmployeeRepository
}

// NewIntegrityGuard создаёт guard поверх репозитория сотрудников
func NewIntegrityGuard(empRepo repository.EmployeeRepository) *IntegrityGuard {
	return &IntegrityGuard{empRepo: empRepo}
}

// CheckEmployeeDelete запрещает удаление сотрудника с подчинёнными
func (g *IntegrityGuard) CheckEmployeeDelete(ctx context.Context, id int64) error {
	count, err := g.empRepo.CountSubordinates(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.ErrHasSubordinates
	}
	return nil
}

// CheckManagerAssignment проверяет назначение руководителя: руководитель должен
// существовать, сотрудник не может подчиняться сам себе, и назначение не должно
// замыкать цепочку руководителей в цикл. employeeID == 0 означает создание новой
// карточки, для которой проверяется только существование руководителя.
func (g *IntegrityGuard) CheckManagerAssignment(ctx context.Context, employeeID int64, managerID *int64) error {
	if managerID == nil {
		return nil
	}

	if employeeID != 0 && *managerID == employeeID {
		return domain.ErrSelfManagement
	}

	manager, err := g.empRepo.GetByID(ctx, *managerID)
	if err != nil {
		if errors.Is(err, domain.ErrEmployeeNotFound) {
			return domain.ErrManagerNotFound
		}
		return err
	}

	if employeeID == 0 {
		return nil
	}

	// Поднимаемся по цепочке руководителей до корня; если встретили самого
	// сотрудника, назначение замкнуло бы цикл
	visited := map[int64]bool{*managerID: true}
	current := manager
	for current.ManagerID != nil {
		next := *current.ManagerID
		if next == employeeID {
			return domain.ErrManagerCycle
		}
		if visited[next] {
			return nil
		}
		visited[next] = true

		current, err = g.empRepo.GetByID(ctx, next)
		if err != nil {
			if errors.Is(err, domain.ErrEmployeeNotFound) {
				return nil
			}
			return err
		}
	}

	return nil
}

// CheckDepartmentDelete запрещает удаление отдела, на который ссылаются сотрудники
func (g *IntegrityGuard) CheckDepartmentDelete(ctx context.Context, departmentID int64) error {
	count, err := g.empRepo.CountByDepartment(ctx, departmentID)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.ErrDepartmentInUse
	}
	return nil
}

// CheckPositionDelete запрещает удаление должности, на которую ссылаются сотрудники
func (g *IntegrityGuard) CheckPositionDelete(ctx context.Context, positionID int64) error {
	count, err := g.empRepo.CountByPosition(ctx, positionID)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.ErrPositionInUse
	}
	return nil
}
