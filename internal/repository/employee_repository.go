package repository

import (
	"context"
	"errors"

	"github.com/hr-system-api/internal/domain"
	"gorm.io/gorm"
)

// EmployeeRepository определяет интерфейс для работы с сотрудниками
type EmployeeRepository interface {
	Create(ctx context.Context, emp *domain.Employee) error
	GetByID(ctx context.Context, id int64) (*domain.Employee, error)
	GetByEmail(ctx context.Context, email string) (*domain.Employee, error)
	List(ctx context.Context) ([]domain.Employee, error)
	ListByManager(ctx context.Context, managerID int64) ([]domain.Employee, error)
	ListManagerCandidates(ctx context.Context) ([]domain.Employee, error)
	ListRecentHires(ctx context.Context, limit int) ([]domain.Employee, error)
	Count(ctx context.Context) (int64, error)
	CountSubordinates(ctx context.Context, managerID int64) (int64, error)
	CountByDepartment(ctx context.Context, departmentID int64) (int64, error)
	CountByPosition(ctx context.Context, positionID int64) (int64, error)
	UpdateRoleAndManager(ctx context.Context, id int64, role string, managerID *int64) error
	Delete(ctx context.Context, id int64) error
}

type employeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository создаёт новый экземпляр репозитория
func NewEmployeeRepository(db *gorm.DB) EmployeeRepository {
	return &employeeRepository{db: db}
}

func (r *employeeRepository) Create(ctx context.Context, emp *domain.Employee) error {
	return r.db.WithContext(ctx).Create(emp).Error
}

func (r *employeeRepository) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	var emp domain.Employee
	err := r.db.WithContext(ctx).First(&emp, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrEmployeeNotFound
		}
		return nil, err
	}
	return &emp, nil
}

func (r *employeeRepository) GetByEmail(ctx context.Context, email string) (*domain.Employee, error) {
	var emp domain.Employee
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&emp).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrEmployeeNotFound
		}
		return nil, err
	}
	return &emp, nil
}

func (r *employeeRepository) List(ctx context.Context) ([]domain.Employee, error) {
	var employees []domain.Employee
	err := r.db.WithContext(ctx).
		Preload("Department").
		Preload("Position").
		Preload("Manager").
		Order("created_at DESC").
		Find(&employees).Error
	return employees, err
}

func (r *employeeRepository) ListByManager(ctx context.Context, managerID int64) ([]domain.Employee, error) {
	var employees []domain.Employee
	err := r.db.WithContext(ctx).
		Preload("Department").
		Preload("Position").
		Preload("Manager").
		Where("manager_id = ?", managerID).
		Order("name ASC").
		Find(&employees).Error
	return employees, err
}

func (r *employeeRepository) ListManagerCandidates(ctx context.Context) ([]domain.Employee, error) {
	var employees []domain.Employee
	err := r.db.WithContext(ctx).
		Preload("Department").
		Preload("Position").
		Where("role IN ?", domain.ManagerRoles()).
		Order("name ASC").
		Find(&employees).Error
	return employees, err
}

func (r *employeeRepository) ListRecentHires(ctx context.Context, limit int) ([]domain.Employee, error) {
	var employees []domain.Employee
	err := r.db.WithContext(ctx).
		Preload("Department").
		Preload("Position").
		Order("join_date DESC, id DESC").
		Limit(limit).
		Find(&employees).Error
	return employees, err
}

func (r *employeeRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Employee{}).Count(&count).Error
	return count, err
}

func (r *employeeRepository) CountSubordinates(ctx context.Context, managerID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Employee{}).
		Where("manager_id = ?", managerID).
		Count(&count).Error
	return count, err
}

func (r *employeeRepository) CountByDepartment(ctx context.Context, departmentID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Employee{}).
		Where("department_id = ?", departmentID).
		Count(&count).Error
	return count, err
}

func (r *employeeRepository) CountByPosition(ctx context.Context, positionID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Employee{}).
		Where("position_id = ?", positionID).
		Count(&count).Error
	return count, err
}

func (r *employeeRepository) UpdateRoleAndManager(ctx context.Context, id int64, role string, managerID *int64) error {
	result := r.db.WithContext(ctx).
		Model(&domain.Employee{}).
		Where("id = ?", id).
		Updates(map[string]any{"role": role, "manager_id": managerID})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrEmployeeNotFound
	}
	return nil
}

func (r *employeeRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&domain.Employee{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrEmployeeNotFound
	}
	return nil
}
