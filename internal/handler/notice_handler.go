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

type NoticeHandler struct {
	noticeService service.NoticeService
	validator     *validator.Validate
	logger        *slog.Logger
}

func NewNoticeHandler(noticeService service.NoticeService, logger *slog.Logger) *NoticeHandler {
	return &NoticeHandler{
		noticeService: noticeService,
		validator:     validator.New(),
		logger:        logger,
	}
}

func (h *NoticeHandler) List(w http.ResponseWriter, r *http.Request) {
	identity := auth.FromContext(r.Context())

	notices, err := h.noticeService.List(r.Context(), identity)
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}

	result := make([]dto.NoticeResponse, 0, len(notices))
	for i := range notices {
		result = append(result, toNoticeResponse(&notices[i]))
	}

	respondJSON(h.logger, w, http.StatusOK, result)
}

func (h *NoticeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateNoticeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "validation error", err.Error())
		return
	}

	identity := auth.FromContext(r.Context())
	notice, err := h.noticeService.Create(r.Context(), identity, &req)
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusCreated, toNoticeResponse(notice))
}

func (h *NoticeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := extractID(r, "/notices/")
	if err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "invalid notice id", err.Error())
		return
	}

	identity := auth.FromContext(r.Context())
	if err := h.noticeService.Delete(r.Context(), identity, id); err != nil {
		handleServiceError(h.logger, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toNoticeResponse(notice *domain.Notice) dto.NoticeResponse {
	resp := dto.NoticeResponse{
		ID:        notice.ID,
		Title:     notice.Title,
		Content:   notice.Content,
		AuthorID:  notice.AuthorID,
		Priority:  notice.Priority,
		IsActive:  notice.IsActive,
		CreatedAt: notice.CreatedAt,
	}
	if notice.Author != nil {
		resp.AuthorName = notice.Author.Username
	}
	return resp
}
