package service

import (
	"context"
	"time"

	"github.com/hr-system-api/internal/domain"
	"github.com/hr-system-api/internal/dto"
	"github.com/hr-system-api/internal/repository"
	"github.com/shopspring/decimal"
)

// SalaryService определяет интерфейс журнала выплат
type SalaryService interface {
	List(ctx context.Context) ([]domain.Salary, error)
	Create(ctx context.Context, req *dto.CreateSalaryRequest) (*domain.Salary, error)
}

type salaryService struct {
	salRepo repository.SalaryRepository
	empRepo repository.EmployeeRepository
}

// NewSalaryService создаёт новый экземпляр сервиса
func NewSalaryService(salRepo repository.SalaryRepository, empRepo repository.EmployeeRepository) SalaryService {
	return &salaryService{
		salRepo: salRepo,
		empRepo: empRepo,
	}
}

func (s *salaryService) List(ctx context.Context) ([]domain.Salary, error) {
	return s.salRepo.List(ctx)
}

// Create добавляет запись о выплате; total вычисляется здесь и сохраняется
func (s *salaryService) Create(ctx context.Context, req *dto.CreateSalaryRequest) (*domain.Salary, error) {
	if _, err := s.empRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return nil, err
	}

	base, err := parseAmount(req.BaseSalary)
	if err != nil {
		return nil, err
	}
	bonus, err := parseOptionalAmount(req.Bonus)
	if err != nil {
		return nil, err
	}
	deduction, err := parseOptionalAmount(req.Deduction)
	if err != nil {
		return nil, err
	}

	payDate, err := time.Parse("2006-01-02", req.PayDate)
	if err != nil {
		return nil, err
	}

	sal := &domain.Salary{
		EmployeeID: req.EmployeeID,
		BaseSalary: base,
		Bonus:      bonus,
		Deduction:  deduction,
		Total:      base.Add(bonus).Sub(deduction),
		PayDate:    payDate,
	}

	if err := s.salRepo.Create(ctx, sal); err != nil {
		return nil, err
	}

	return sal, nil
}

func parseAmount(value string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, domain.ErrInvalidAmount
	}
	return amount, nil
}

func parseOptionalAmount(value string) (decimal.Decimal, error) {
	if value == "" {
		return decimal.Zero, nil
	}
	return parseAmount(value)
}
