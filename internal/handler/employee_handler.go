package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/hr-system-api/internal/auth"
	"github.com/hr-system-api/internal/domain"
	"github.com/hr-system-api/internal/dto"
	"github.com/hr-system-api/internal/service"
)

type EmployeeHandler struct {
	empService service.EmployeeService
	validator  *validator.Validate
	logger     *slog.Logger
}

func NewEmployeeHandler(empService service.EmployeeService, logger *slog.Logger) *EmployeeHandler {
	return &EmployeeHandler{
		empService: empService,
		validator:  validator.New(),
		logger:     logger,
	}
}

func (h *EmployeeHandler) List(w http.ResponseWriter, r *http.Request) {
	identity := auth.FromContext(r.Context())

	employees, err := h.empService.List(r.Context(), identity)
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, toEmployeeResponses(employees))
}

func (h *EmployeeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "validation error", err.Error())
		return
	}

	emp, err := h.empService.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusCreated, toEmployeeResponse(emp))
}

func (h *EmployeeHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := extractID(r, "/employees/")
	if err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "invalid employee id", err.Error())
		return
	}

	var req dto.UpdateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "validation error", err.Error())
		return
	}

	emp, err := h.empService.UpdateRoleAndManager(r.Context(), id, &req)
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, toEmployeeResponse(emp))
}

func (h *EmployeeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := extractID(r, "/employees/")
	if err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "invalid employee id", err.Error())
		return
	}

	if err := h.empService.Delete(r.Context(), id); err != nil {
		handleServiceError(h.logger, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *EmployeeHandler) ListManagerCandidates(w http.ResponseWriter, r *http.Request) {
	employees, err := h.empService.ListManagerCandidates(r.Context())
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, toEmployeeResponses(employees))
}

// ListSubordinates отдаёт прямых подчинённых руководителя; пустой список не ошибка
func (h *EmployeeHandler) ListSubordinates(w http.ResponseWriter, r *http.Request) {
	managerID, err := extractID(r, "/api/subordinates/")
	if err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "invalid manager id", err.Error())
		return
	}

	employees, err := h.empService.ListSubordinates(r.Context(), managerID)
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}

	result := make([]dto.SubordinateResponse, 0, len(employees))
	for _, emp := range employees {
		item := dto.SubordinateResponse{
			ID:   emp.ID,
			Name: emp.Name,
		}
		if emp.Department != nil {
			item.DepartmentName = emp.Department.Name
		}
		if emp.Position != nil {
			item.PositionTitle = emp.Position.Title
		}
		result = append(result, item)
	}

	respondJSON(h.logger, w, http.StatusOK, result)
}

func toEmployeeResponse(emp *domain.Employee) dto.EmployeeResponse {
	resp := dto.EmployeeResponse{
		ID:           emp.ID,
		Name:         emp.Name,
		Gender:       emp.Gender,
		Phone:        emp.Phone,
		Email:        emp.Email,
		DepartmentID: emp.DepartmentID,
		PositionID:   emp.PositionID,
		ManagerID:    emp.ManagerID,
		Role:         emp.Role,
		CreatedAt:    emp.CreatedAt,
	}

	if emp.JoinDate != nil {
		joinDate := emp.JoinDate.Format("2006-01-02")
		resp.JoinDate = &joinDate
	}
	if emp.Department != nil {
		resp.DepartmentName = emp.Department.Name
	}
	if emp.Position != nil {
		resp.PositionTitle = emp.Position.Title
	}
	if emp.Manager != nil {
		resp.ManagerName = emp.Manager.Name
	}

	return resp
}

func toEmployeeResponses(employees []domain.Employee) []dto.EmployeeResponse {
	result := make([]dto.EmployeeResponse, 0, len(employees))
	for i := range employees {
		result = append(result, toEmployeeResponse(&employees[i]))
	}
	return result
}
