package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/hr-system-api/internal/dto"
	"github.com/hr-system-api/internal/service"
)

type PositionHandler struct {
	posService service.PositionService
	validator  *validator.Validate
	logger     *slog.Logger
}

func NewPositionHandler(posService service.PositionService, logger *slog.Logger) *PositionHandler {
	return &PositionHandler{
		posService: posService,
		validator:  validator.New(),
		logger:     logger,
	}
}

func (h *PositionHandler) List(w http.ResponseWriter, r *http.Request) {
	positions, err := h.posService.List(r.Context())
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}

	result := make([]dto.PositionResponse, 0, len(positions))
	for _, pos := range positions {
		result = append(result, dto.PositionResponse{
			ID:          pos.ID,
			Title:       pos.Title,
			Level:       pos.Level,
			Description: pos.Description,
			CreatedAt:   pos.CreatedAt,
		})
	}

	respondJSON(h.logger, w, http.StatusOK, result)
}

func (h *PositionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePositionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "validation error", err.Error())
		return
	}

	pos, err := h.posService.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusCreated, dto.PositionResponse{
		ID:          pos.ID,
		Title:       pos.Title,
		Level:       pos.Level,
		Description: pos.Description,
		CreatedAt:   pos.CreatedAt,
	})
}

func (h *PositionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := extractID(r, "/positions/")
	if err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "invalid position id", err.Error())
		return
	}

	if err := h.posService.Delete(r.Context(), id); err != nil {
		handleServiceError(h.logger, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
