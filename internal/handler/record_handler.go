package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/hr-system-api/internal/domain"
	"github.com/hr-system-api/internal/dto"
	"github.com/hr-system-api/internal/service"
)

// RecordHandler обслуживает журналы учёта времени и выплат
type RecordHandler struct {
	attService service.AttendanceService
	salService service.SalaryService
	validator  *validator.Validate
	logger     *slog.Logger
}

func NewRecordHandler(attService service.AttendanceService, salService service.SalaryService, logger *slog.Logger) *RecordHandler {
	return &RecordHandler{
		attService: attService,
		salService: salService,
		validator:  validator.New(),
		logger:     logger,
	}
}

func (h *RecordHandler) ListAttendance(w http.ResponseWriter, r *http.Request) {
	records, err := h.attService.List(r.Context())
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}

	result := make([]dto.AttendanceResponse, 0, len(records))
	for i := range records {
		result = append(result, toAttendanceResponse(&records[i]))
	}

	respondJSON(h.logger, w, http.StatusOK, result)
}

func (h *RecordHandler) CreateAttendance(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAttendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "validation error", err.Error())
		return
	}

	att, err := h.attService.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusCreated, toAttendanceResponse(att))
}

func (h *RecordHandler) ListSalaries(w http.ResponseWriter, r *http.Request) {
	records, err := h.salService.List(r.Context())
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}

	result := make([]dto.SalaryResponse, 0, len(records))
	for i := range records {
		result = append(result, toSalaryResponse(&records[i]))
	}

	respondJSON(h.logger, w, http.StatusOK, result)
}

func (h *RecordHandler) CreateSalary(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateSalaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "validation error", err.Error())
		return
	}

	sal, err := h.salService.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusCreated, toSalaryResponse(sal))
}

func toAttendanceResponse(att *domain.Attendance) dto.AttendanceResponse {
	resp := dto.AttendanceResponse{
		ID:         att.ID,
		EmployeeID: att.EmployeeID,
		Type:       att.Type,
		Timestamp:  att.Timestamp,
	}
	if att.Employee != nil {
		resp.EmployeeName = att.Employee.Name
	}
	return resp
}

func toSalaryResponse(sal *domain.Salary) dto.SalaryResponse {
	resp := dto.SalaryResponse{
		ID:         sal.ID,
		EmployeeID: sal.EmployeeID,
		BaseSalary: sal.BaseSalary,
		Bonus:      sal.Bonus,
		Deduction:  sal.Deduction,
		Total:      sal.Total,
		PayDate:    sal.PayDate.Format("2006-01-02"),
		CreatedAt:  sal.CreatedAt,
	}
	if sal.Employee != nil {
		resp.EmployeeName = sal.Employee.Name
	}
	return resp
}
