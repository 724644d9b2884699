package domain

import "errors"

// Определение бизнес-ошибок
var (
	ErrAccountNotFound    = errors.New("account not found")
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrDepartmentNotFound = errors.New("department not found")
	ErrPositionNotFound   = errors.New("position not found")
	ErrNoticeNotFound     = errors.New("notice not found")
	ErrManagerNotFound    = errors.New("manager employee not found")

	ErrDuplicateAccount        = errors.New("username or email already taken")
	ErrDuplicateDepartmentName = errors.New("department with this name already exists")
	ErrDuplicatePositionTitle  = errors.New("position with this title already exists")

	ErrHasSubordinates = errors.New("employee has subordinates and cannot be deleted")
	ErrDepartmentInUse = errors.New("department has employees and cannot be deleted")
	ErrPositionInUse   = errors.New("position has employees and cannot be deleted")
	ErrSelfManagement  = errors.New("employee cannot be their own manager")
	ErrManagerCycle    = errors.New("manager assignment would create a cycle")

	ErrInvalidAmount = errors.New("invalid money amount")

	ErrUnauthorized       = errors.New("caller lacks required rank or ownership")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrRoleSyncFailed     = errors.New("failed to sync role to account")
)
