package domain

// Роли сотрудников и учётных записей
const (
	RoleAdmin      = "admin"
	RoleLeader     = "leader"
	RoleSupervisor = "supervisor"
	RoleTeamLead   = "team-lead"
	RoleStaff      = "staff"
	RoleIntern     = "intern"
)

// RoleRanks задаёт числовой ранг для каждой роли.
// Таблица передаётся компонентам при старте и не изменяется.
type RoleRanks map[string]int

// DefaultRoleRanks возвращает стандартную таблицу рангов
func DefaultRoleRanks() RoleRanks {
	return RoleRanks{
		RoleAdmin:      100,
		RoleLeader:     80,
		RoleSupervisor: 60,
		RoleTeamLead:   50,
		RoleStaff:      30,
		RoleIntern:     20,
	}
}

// Rank возвращает ранг роли; неизвестная роль получает ранг 0
func (r RoleRanks) Rank(role string) int {
	return r[role]
}

// MeetsMinimum проверяет, что ранг роли caller не ниже ранга required
func (r RoleRanks) MeetsMinimum(caller, required string) bool {
	return r.Rank(caller) >= r.Rank(required)
}

// ManagerRoles перечисляет роли, носители которых могут быть назначены руководителями
func ManagerRoles() []string {
	return []string{RoleLeader, RoleSupervisor, RoleTeamLead}
}
