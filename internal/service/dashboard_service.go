package service

import (
	"context"
	"time"

	"github.com/hr-system-api/internal/domain"
	"github.com/hr-system-api/internal/repository"
)

// DashboardOverview - сводка по организации для рабочего стола
type DashboardOverview struct {
	EmployeeCount   int64
	DepartmentCount int64
	PositionCount   int64
	AttendanceToday int64
	ActiveNotices   int64
	RecentHires     []domain.Employee
}

// DashboardService определяет интерфейс сводной статистики
type DashboardService interface {
	Overview(ctx context.Context) (*DashboardOverview, error)
}

type dashboardService struct {
	empRepo    repository.EmployeeRepository
	deptRepo   repository.DepartmentRepository
	posRepo    repository.PositionRepository
	attRepo    repository.AttendanceRepository
	noticeRepo repository.NoticeRepository
}

// NewDashboardService создаёт новый экземпляр сервиса
func NewDashboardService(
	empRepo repository.EmployeeRepository,
	deptRepo repository.DepartmentRepository,
	posRepo repository.PositionRepository,
	attRepo repository.AttendanceRepository,
	noticeRepo repository.NoticeRepository,
) DashboardService {
	return &dashboardService{
		empRepo:    empRepo,
		deptRepo:   deptRepo,
		posRepo:    posRepo,
		attRepo:    attRepo,
		noticeRepo: noticeRepo,
	}
}

// Overview собирает счётчики по всем разделам, посещаемость за текущие сутки
// и пять последних нанятых сотрудников
func (s *dashboardService) Overview(ctx context.Context) (*DashboardOverview, error) {
	overview := &DashboardOverview{}
	var err error

	if overview.EmployeeCount, err = s.empRepo.Count(ctx); err != nil {
		return nil, err
	}
	if overview.DepartmentCount, err = s.deptRepo.Count(ctx); err != nil {
		return nil, err
	}
	if overview.PositionCount, err = s.posRepo.Count(ctx); err != nil {
		return nil, err
	}

	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if overview.AttendanceToday, err = s.attRepo.CountSince(ctx, startOfDay); err != nil {
		return nil, err
	}

	if overview.ActiveNotices, err = s.noticeRepo.CountActive(ctx); err != nil {
		return nil, err
	}

	if overview.RecentHires, err = s.empRepo.ListRecentHires(ctx, 5); err != nil {
		return nil, err
	}

	return overview, nil
}
