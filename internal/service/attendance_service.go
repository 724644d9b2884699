package service

import (
	"context"
	"time"

	"github.com/hr-system-api/internal/domain"
	"github.com/hr-system-api/internal/dto"
	"github.com/hr-system-api/internal/repository"
)

// AttendanceService определяет интерфейс журнала учёта времени
type AttendanceService interface {
	List(ctx context.Context) ([]domain.Attendance, error)
	Create(ctx context.Context, req *dto.CreateAttendanceRequest) (*domain.Attendance, error)
}

type attendanceService struct {
	attRepo repository.AttendanceRepository
	empRepo repository.EmployeeRepository
}

// NewAttendanceService создаёт новый экземпляр сервиса
func NewAttendanceService(attRepo repository.AttendanceRepository, empRepo repository.EmployeeRepository) AttendanceService {
	return &attendanceService{
		attRepo: attRepo,
		empRepo: empRepo,
	}
}

func (s *attendanceService) List(ctx context.Context) ([]domain.Attendance, error) {
	return s.attRepo.List(ctx)
}

func (s *attendanceService) Create(ctx context.Context, req *dto.CreateAttendanceRequest) (*domain.Attendance, error) {
	if _, err := s.empRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return nil, err
	}

	timestamp, err := time.Parse("2006-01-02T15:04", req.Timestamp)
	if err != nil {
		return nil, err
	}

	att := &domain.Attendance{
		EmployeeID: req.EmployeeID,
		Type:       req.Type,
		Timestamp:  timestamp,
	}

	if err := s.attRepo.Create(ctx, att); err != nil {
		return nil, err
	}

	return att, nil
}
