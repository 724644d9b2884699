package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/hr-system-api/internal/domain"
	"github.com/hr-system-api/internal/dto"
)

func respondJSON(logger *slog.Logger, w http.ResponseWriter, status int, data any) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode response", slog.Any("error", err))
	}
}

func respondError(logger *slog.Logger, w http.ResponseWriter, status int, errMsg, details string) {
	w.WriteHeader(status)
	resp := dto.ErrorResponse{Error: errMsg}
	if details != "" {
		resp.Message = details
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logger.Error("failed to encode error response", slog.Any("error", err))
	}
}

// handleServiceError переводит бизнес-ошибки в HTTP статусы
func handleServiceError(logger *slog.Logger, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrAccountNotFound):
		respondError(logger, w, http.StatusNotFound, "account not found", "")
	case errors.Is(err, domain.ErrEmployeeNotFound):
		respondError(logger, w, http.StatusNotFound, "employee not found", "")
	case errors.Is(err, domain.ErrDepartmentNotFound):
		respondError(logger, w, http.StatusNotFound, "department not found", "")
	case errors.Is(err, domain.ErrPositionNotFound):
		respondError(logger, w, http.StatusNotFound, "position not found", "")
	case errors.Is(err, domain.ErrNoticeNotFound):
		respondError(logger, w, http.StatusNotFound, "notice not found", "")
	case errors.Is(err, domain.ErrManagerNotFound):
		respondError(logger, w, http.StatusNotFound, "manager employee not found", "")
	case errors.Is(err, domain.ErrDuplicateAccount):
		respondError(logger, w, http.StatusConflict, "username or email already taken", "")
	case errors.Is(err, domain.ErrDuplicateDepartmentName):
		respondError(logger, w, http.StatusConflict, "department with this name already exists", "")
	case errors.Is(err, domain.ErrDuplicatePositionTitle):
		respondError(logger, w, http.StatusConflict, "position with this title already exists", "")
	case errors.Is(err, domain.ErrHasSubordinates):
		respondError(logger, w, http.StatusConflict, "employee has subordinates, reassign them first", "")
	case errors.Is(err, domain.ErrDepartmentInUse):
		respondError(logger, w, http.StatusConflict, "department has employees and cannot be deleted", "")
	case errors.Is(err, domain.ErrPositionInUse):
		respondError(logger, w, http.StatusConflict, "position has employees and cannot be deleted", "")
	case errors.Is(err, domain.ErrSelfManagement):
		respondError(logger, w, http.StatusBadRequest, "employee cannot be their own manager", "")
	case errors.Is(err, domain.ErrManagerCycle):
		respondError(logger, w, http.StatusConflict, "manager assignment would create a cycle", "")
	case errors.Is(err, domain.ErrInvalidAmount):
		respondError(logger, w, http.StatusBadRequest, "invalid money amount", "")
	case errors.Is(err, domain.ErrInvalidCredentials):
		respondError(logger, w, http.StatusUnauthorized, "invalid username or password", "")
	case errors.Is(err, domain.ErrUnauthorized):
		respondError(logger, w, http.StatusForbidden, "forbidden", "")
	case errors.Is(err, domain.ErrRoleSyncFailed):
		logger.Error("role sync failed", slog.Any("error", err))
		respondError(logger, w, http.StatusInternalServerError, "failed to sync role to account", "")
	default:
		logger.Error("internal error", slog.Any("error", err))
		respondError(logger, w, http.StatusInternalServerError, "internal server error", "")
	}
}

// extractID достаёт числовой id из последнего сегмента пути
func extractID(r *http.Request, prefix string) (int64, error) {
	path := strings.TrimPrefix(r.URL.Path, prefix)
	path = strings.Trim(path, "/")

	parts := strings.Split(path, "/")
	if len(parts) == 0 || parts[len(parts)-1] == "" {
		return 0, errors.New("id is required")
	}

	return strconv.ParseInt(parts[len(parts)-1], 10, 64)
}
