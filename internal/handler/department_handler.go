package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/hr-system-api/internal/dto"
	"github.com/hr-system-api/internal/service"
)

type DepartmentHandler struct {
	deptService service.DepartmentService
	validator   *validator.Validate
	logger      *slog.Logger
}

func NewDepartmentHandler(deptService service.DepartmentService, logger *slog.Logger) *DepartmentHandler {
	return &DepartmentHandler{
		deptService: deptService,
		validator:   validator.New(),
		logger:      logger,
	}
}

func (h *DepartmentHandler) List(w http.ResponseWriter, r *http.Request) {
	departments, err := h.deptService.List(r.Context())
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}

	result := make([]dto.DepartmentResponse, 0, len(departments))
	for _, dept := range departments {
		result = append(result, dto.DepartmentResponse{
			ID:            dept.ID,
			Name:          dept.Name,
			Description:   dept.Description,
			EmployeeCount: dept.EmployeeCount,
			CreatedAt:     dept.CreatedAt,
		})
	}

	respondJSON(h.logger, w, http.StatusOK, result)
}

func (h *DepartmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateDepartmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "validation error", err.Error())
		return
	}

	dept, err := h.deptService.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusCreated, dto.DepartmentResponse{
		ID:          dept.ID,
		Name:        dept.Name,
		Description: dept.Description,
		CreatedAt:   dept.CreatedAt,
	})
}

func (h *DepartmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := extractID(r, "/departments/")
	if err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "invalid department id", err.Error())
		return
	}

	if err := h.deptService.Delete(r.Context(), id); err != nil {
		handleServiceError(h.logger, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
