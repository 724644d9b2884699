package repository

import (
	"context"
	"errors"

	"github.com/hr-system-api/internal/domain"
	"gorm.io/gorm"
)

// DepartmentWithCount - отдел вместе с числом сотрудников в нём
type DepartmentWithCount struct {
	domain.Department
	EmployeeCount int64
}

// DepartmentRepository определяет интерфейс для работы с отделами
type DepartmentRepository interface {
	Create(ctx context.Context, dept *domain.Department) error
	GetByID(ctx context.Context, id int64) (*domain.Department, error)
	ListWithEmployeeCounts(ctx context.Context) ([]DepartmentWithCount, error)
	Count(ctx context.Context) (int64, error)
	Delete(ctx context.Context, id int64) error
}

type departmentRepository struct {
	db *gorm.DB
}

// NewDepartmentRepository создаёт новый экземпляр репозитория
func NewDepartmentRepository(db *gorm.DB) DepartmentRepository {
	return &departmentRepository{db: db}
}

func (r *departmentRepository) Create(ctx context.Context, dept *domain.Department) error {
	err := r.db.WithContext(ctx).Create(dept).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrDuplicateDepartmentName
	}
	return err
}

func (r *departmentRepository) GetByID(ctx context.Context, id int64) (*domain.Department, error) {
	var dept domain.Department
	err := r.db.WithContext(ctx).First(&dept, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDepartmentNotFound
		}
		return nil, err
	}
	return &dept, nil
}

func (r *departmentRepository) ListWithEmployeeCounts(ctx context.Context) ([]DepartmentWithCount, error) {
	var departments []domain.Department
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&departments).Error; err != nil {
		return nil, err
	}

	result := make([]DepartmentWithCount, 0, len(departments))
	for _, dept := range departments {
		var count int64
		err := r.db.WithContext(ctx).
			Model(&domain.Employee{}).
			Where("department_id = ?", dept.ID).
			Count(&count).Error
		if err != nil {
			return nil, err
		}
		result = append(result, DepartmentWithCount{Department: dept, EmployeeCount: count})
	}
	return result, nil
}

func (r *departmentRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Department{}).Count(&count).Error
	return count, err
}

func (r *departmentRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&domain.Department{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrDepartmentNotFound
	}
	return nil
}
