package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterRequest - запрос на регистрацию (создаёт учётную запись и карточку сотрудника)
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=6,max=72"`
	Email    string `json:"email" validate:"required,email,max=100"`
	Name     string `json:"name" validate:"required,min=1,max=50"`
	Gender   string `json:"gender" validate:"omitempty,oneof=male female"`
	Phone    string `json:"phone" validate:"omitempty,max=20"`
}

// LoginRequest - запрос на вход
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse - ответ с токеном доступа
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
}

// CreateEmployeeRequest - запрос на добавление сотрудника
type CreateEmployeeRequest struct {
	Name         string  `json:"name" validate:"required,min=1,max=50"`
	Gender       string  `json:"gender" validate:"omitempty,oneof=male female"`
	Phone        string  `json:"phone" validate:"omitempty,max=20"`
	Email        string  `json:"email" validate:"required,email,max=100"`
	DepartmentID *int64  `json:"department_id" validate:"omitempty,min=1"`
	PositionID   *int64  `json:"position_id" validate:"omitempty,min=1"`
	ManagerID    *int64  `json:"manager_id" validate:"omitempty,min=1"`
	Role         string  `json:"role" validate:"required,oneof=admin leader supervisor team-lead staff intern"`
	JoinDate     *string `json:"join_date" validate:"omitempty,datetime=2006-01-02"`
}

// UpdateEmployeeRequest - запрос на изменение роли и руководителя сотрудника.
// Пустой manager_id снимает руководителя.
type UpdateEmployeeRequest struct {
	Role      string `json:"role" validate:"required,oneof=admin leader supervisor team-lead staff intern"`
	ManagerID *int64 `json:"manager_id" validate:"omitempty,min=1"`
}

// EmployeeResponse - ответ с данными сотрудника
type EmployeeResponse struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Gender         string    `json:"gender,omitempty"`
	Phone          string    `json:"phone,omitempty"`
	Email          string    `json:"email"`
	DepartmentID   *int64    `json:"department_id"`
	PositionID     *int64    `json:"position_id"`
	ManagerID      *int64    `json:"manager_id"`
	Role           string    `json:"role"`
	JoinDate       *string   `json:"join_date,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	DepartmentName string    `json:"department_name,omitempty"`
	PositionTitle  string    `json:"position_title,omitempty"`
	ManagerName    string    `json:"manager_name,omitempty"`
}

// SubordinateResponse - элемент списка подчинённых для read API
type SubordinateResponse struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	DepartmentName string `json:"department_name"`
	PositionTitle  string `json:"position_title"`
}

// CreateDepartmentRequest - запрос на создание отдела
type CreateDepartmentRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=50"`
	Description string `json:"description" validate:"omitempty,max=1000"`
}

// DepartmentResponse - ответ с данными отдела
type DepartmentResponse struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description,omitempty"`
	EmployeeCount int64     `json:"employee_count"`
	CreatedAt     time.Time `json:"created_at"`
}

// CreatePositionRequest - запрос на создание должности
type CreatePositionRequest struct {
	Title       string `json:"title" validate:"required,min=1,max=50"`
	Level       string `json:"level" validate:"omitempty,max=20"`
	Description string `json:"description" validate:"omitempty,max=1000"`
}

// PositionResponse - ответ с данными должности
type PositionResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Level       string    `json:"level,omitempty"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateNoticeRequest - запрос на публикацию объявления
type CreateNoticeRequest struct {
	Title    string `json:"title" validate:"required,min=1,max=100"`
	Content  string `json:"content" validate:"required,min=1"`
	Priority string `json:"priority" validate:"omitempty,oneof=low normal high"`
}

// NoticeResponse - ответ с данными объявления
type NoticeResponse struct {
	ID         int64     `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	AuthorID   int64     `json:"author_id"`
	AuthorName string    `json:"author_name,omitempty"`
	Priority   string    `json:"priority"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
}

// CreateAttendanceRequest - запрос на добавление записи учёта времени
type CreateAttendanceRequest struct {
	EmployeeID int64  `json:"employee_id" validate:"required,min=1"`
	Type       string `json:"type" validate:"required,oneof=check-in check-out overtime leave"`
	Timestamp  string `json:"timestamp" validate:"required,datetime=2006-01-02T15:04"`
}

// AttendanceResponse - ответ с записью учёта времени
type AttendanceResponse struct {
	ID           int64     `json:"id"`
	EmployeeID   int64     `json:"employee_id"`
	EmployeeName string    `json:"employee_name,omitempty"`
	Type         string    `json:"type"`
	Timestamp    time.Time `json:"timestamp"`
}

// CreateSalaryRequest - запрос на добавление записи о выплате.
// Денежные поля передаются строками и разбираются в decimal.
type CreateSalaryRequest struct {
	EmployeeID int64  `json:"employee_id" validate:"required,min=1"`
	BaseSalary string `json:"base_salary" validate:"required"`
	Bonus      string `json:"bonus" validate:"omitempty"`
	Deduction  string `json:"deduction" validate:"omitempty"`
	PayDate    string `json:"pay_date" validate:"required,datetime=2006-01-02"`
}

// SalaryResponse - ответ с записью о выплате
type SalaryResponse struct {
	ID           int64           `json:"id"`
	EmployeeID   int64           `json:"employee_id"`
	EmployeeName string          `json:"employee_name,omitempty"`
	BaseSalary   decimal.Decimal `json:"base_salary"`
	Bonus        decimal.Decimal `json:"bonus"`
	Deduction    decimal.Decimal `json:"deduction"`
	Total        decimal.Decimal `json:"total"`
	PayDate      string          `json:"pay_date"`
	CreatedAt    time.Time       `json:"created_at"`
}

// DashboardResponse - сводная статистика рабочего стола
type DashboardResponse struct {
	EmployeeCount   int64              `json:"employee_count"`
	DepartmentCount int64              `json:"department_count"`
	PositionCount   int64              `json:"position_count"`
	AttendanceToday int64              `json:"attendance_today"`
	ActiveNotices   int64              `json:"active_notices"`
	RecentHires     []EmployeeResponse `json:"recent_hires"`
}

// ErrorResponse - стандартный ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
