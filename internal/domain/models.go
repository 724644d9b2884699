package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account представляет учётную запись пользователя системы
type Account struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Username  string    `json:"username" gorm:"type:varchar(50);uniqueIndex;not null"`
	Password  string    `json:"-" gorm:"type:varchar(100);not null"`
	Email     string    `json:"email" gorm:"type:varchar(100);uniqueIndex"`
	Role      string    `json:"role" gorm:"type:varchar(20);not null;default:intern"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName задаёт имя таблицы для GORM
func (Account) TableName() string {
	return "users"
}

// Department представляет отдел компании
type Department struct {
	ID          int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string    `json:"name" gorm:"type:varchar(50);uniqueIndex;not null"`
	Description string    `json:"description" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`

	Employees []Employee `json:"-" gorm:"foreignKey:DepartmentID"`
}

// TableName задаёт имя таблицы для GORM
func (Department) TableName() string {
	return "departments"
}

// Position представляет должность
type Position struct {
	ID          int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Title       string    `json:"title" gorm:"type:varchar(50);uniqueIndex;not null"`
	Level       string    `json:"level" gorm:"type:varchar(20)"`
	Description string    `json:"description" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`

	Employees []Employee `json:"-" gorm:"foreignKey:PositionID"`
}

// TableName задаёт имя таблицы для GORM
func (Position) TableName() string {
	return "positions"
}

// Employee представляет сотрудника; manager_id образует дерево подчинённости
type Employee struct {
	ID           int64      `json:"id" gorm:"primaryKey;autoIncrement"`
	Name         string     `json:"name" gorm:"type:varchar(50);not null"`
	Gender       string     `json:"gender" gorm:"type:varchar(10)"`
	Phone        string     `json:"phone" gorm:"type:varchar(20)"`
	Email        string     `json:"email" gorm:"type:varchar(100);index"`
	DepartmentID *int64     `json:"department_id" gorm:"index"`
	PositionID   *int64     `json:"position_id" gorm:"index"`
	ManagerID    *int64     `json:"manager_id" gorm:"index"`
	Role         string     `json:"role" gorm:"type:varchar(20);not null;default:intern"`
	JoinDate     *time.Time `json:"join_date" gorm:"type:date"`
	CreatedAt    time.Time  `json:"created_at" gorm:"autoCreateTime"`

	Department *Department `json:"-" gorm:"foreignKey:DepartmentID;constraint:OnDelete:SET NULL"`
	Position   *Position   `json:"-" gorm:"foreignKey:PositionID;constraint:OnDelete:SET NULL"`
	Manager    *Employee   `json:"-" gorm:"foreignKey:ManagerID;constraint:OnDelete:SET NULL"`
}

// TableName задаёт имя таблицы для GORM
func (Employee) TableName() string {
	return "employees"
}

// Attendance представляет запись учёта рабочего времени (журнал, только добавление)
type Attendance struct {
	ID         int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	EmployeeID int64     `json:"employee_id" gorm:"not null;index"`
	Type       string    `json:"type" gorm:"type:varchar(20);not null"`
	Timestamp  time.Time `json:"timestamp" gorm:"not null"`

	Employee *Employee `json:"-" gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE"`
}

// TableName задаёт имя таблицы для GORM
func (Attendance) TableName() string {
	return "attendance"
}

// Salary представляет запись о выплате; total вычисляется при записи и не пересчитывается
type Salary struct {
	ID         int64           `json:"id" gorm:"primaryKey;autoIncrement"`
	EmployeeID int64           `json:"employee_id" gorm:"not null;index"`
	BaseSalary decimal.Decimal `json:"base_salary" gorm:"type:decimal(10,2);not null"`
	Bonus      decimal.Decimal `json:"bonus" gorm:"type:decimal(10,2);not null;default:0"`
	Deduction  decimal.Decimal `json:"deduction" gorm:"type:decimal(10,2);not null;default:0"`
	Total      decimal.Decimal `json:"total" gorm:"type:decimal(10,2);not null"`
	PayDate    time.Time       `json:"pay_date" gorm:"type:date;not null"`
	CreatedAt  time.Time       `json:"created_at" gorm:"autoCreateTime"`

	Employee *Employee `json:"-" gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE"`
}

// TableName задаёт имя таблицы для GORM
func (Salary) TableName() string {
	return "salaries"
}

// Notice представляет объявление; удалить может автор или администратор
type Notice struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Title     string    `json:"title" gorm:"type:varchar(100);not null"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	AuthorID  int64     `json:"author_id" gorm:"not null;index"`
	Priority  string    `json:"priority" gorm:"type:varchar(20);not null;default:normal"`
	IsActive  bool      `json:"is_active" gorm:"not null;default:true"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`

	Author *Account `json:"-" gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
}

// TableName задаёт имя таблицы для GORM
func (Notice) TableName() string {
	return "notices"
}
