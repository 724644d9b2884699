package repository

import (
	"context"

	"gorm.io/gorm"
)

// Repos объединяет репозитории, привязанные к одному соединению или транзакции
type Repos struct {
	Accounts    AccountRepository
	Employees   EmployeeRepository
	Departments DepartmentRepository
	Positions   PositionRepository
	Notices     NoticeRepository
	Attendance  AttendanceRepository
	Salaries    SalaryRepository
}

// NewRepos создаёт набор репозиториев над одним *gorm.DB
func NewRepos(db *gorm.DB) Repos {
	return Repos{
		Accounts:    NewAccountRepository(db),
		Employees:   NewEmployeeRepository(db),
		Departments: NewDepartmentRepository(db),
		Positions:   NewPositionRepository(db),
		Notices:     NewNoticeRepository(db),
		Attendance:  NewAttendanceRepository(db),
		Salaries:    NewSalaryRepository(db),
	}
}

// Transactor выполняет функцию внутри одной транзакции.
// Ошибка из fn откатывает все изменения.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(r Repos) error) error
}

type gormTransactor struct {
	db *gorm.DB
}

// NewTransactor создаёт Transactor над *gorm.DB
func NewTransactor(db *gorm.DB) Transactor {
	return &gormTransactor{db: db}
}

func (t *gormTransactor) WithinTx(ctx context.Context, fn func(r Repos) error) error {
	return t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRepos(tx))
	})
}
