// Package policy содержит чистые функции авторизации.
// Решения принимаются только по переданным аргументам: таблица рангов
// фиксируется при создании, identity приходит из контекста запроса.
package policy

import (
	"github.com/hr-system-api/internal/auth"
	"github.com/hr-system-api/internal/domain"
)

// Scope ограничивает видимость списка сотрудников для вызывающего
type Scope struct {
	// All - полный список (доступен администратору)
	All bool
	// ManagerID - показывать только прямых подчинённых этого сотрудника;
	// nil при All=false означает пустую выборку
	ManagerID *int64
}

// Policy принимает решения о доступе на основе таблицы рангов
type Policy struct {
	ranks domain.RoleRanks
}

// New создаёт политику доступа с заданной таблицей рангов
func New(ranks domain.RoleRanks) *Policy {
	return &Policy{ranks: ranks}
}

// CanAccessMinRole проверяет, достаточен ли ранг роли identity для required.
// Анонимный вызов всегда отклоняется.
func (p *Policy) CanAccessMinRole(identity *auth.Identity, required string) bool {
	if identity == nil {
		return false
	}
	return p.ranks.MeetsMinimum(identity.Role, required)
}

// EmployeeListScope возвращает область видимости списка сотрудников.
// callerEmployee - карточка сотрудника с email учётной записи вызывающего;
// nil, если карточка не найдена.
func (p *Policy) EmployeeListScope(identity *auth.Identity, callerEmployee *domain.Employee) Scope {
	if identity == nil {
		return Scope{}
	}
	if p.ranks.MeetsMinimum(identity.Role, domain.RoleAdmin) {
		return Scope{All: true}
	}
	if callerEmployee == nil {
		return Scope{}
	}
	id := callerEmployee.ID
	return Scope{ManagerID: &id}
}

// CanDeleteNotice разрешает удаление объявления автору или администратору
func (p *Policy) CanDeleteNotice(identity *auth.Identity, notice *domain.Notice) bool {
	if identity == nil || notice == nil {
		return false
	}
	if p.ranks.MeetsMinimum(identity.Role, domain.RoleAdmin) {
		return true
	}
	return identity.AccountID == notice.AuthorID
}
