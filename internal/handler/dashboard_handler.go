package handler

import (
	"log/slog"
	"net/http"

	"github.com/hr-system-api/internal/dto"
	"github.com/hr-system-api/internal/service"
)

// DashboardHandler отдаёт сводную статистику рабочего стола
type DashboardHandler struct {
	dashService service.DashboardService
	logger      *slog.Logger
}

func NewDashboardHandler(dashService service.DashboardService, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{
		dashService: dashService,
		logger:      logger,
	}
}

func (h *DashboardHandler) Overview(w http.ResponseWriter, r *http.Request) {
	overview, err := h.dashService.Overview(r.Context())
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, dto.DashboardResponse{
		EmployeeCount:   overview.EmployeeCount,
		DepartmentCount: overview.DepartmentCount,
		PositionCount:   overview.PositionCount,
		AttendanceToday: overview.AttendanceToday,
		ActiveNotices:   overview.ActiveNotices,
		RecentHires:     toEmployeeResponses(overview.RecentHires),
	})
}
