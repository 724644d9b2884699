package service

import (
	"context"
	"strings"

	"github.com/hr-system-api/internal/auth"
	"github.com/hr-system-api/internal/domain"
	"github.com/hr-system-api/internal/dto"
	"github.com/hr-system-api/internal/policy"
	"github.com/hr-system-api/internal/repository"
)

// NoticeService определяет интерфейс бизнес-логики для объявлений
type NoticeService interface {
	List(ctx context.Context, identity *auth.Identity) ([]domain.Notice, error)
	Create(ctx context.Context, identity *auth.Identity, req *dto.CreateNoticeRequest) (*domain.Notice, error)
	Delete(ctx context.Context, identity *auth.Identity, id int64) error
}

type noticeService struct {
	noticeRepo repository.NoticeRepository
	policy     *policy.Policy
}

// NewNoticeService создаёт новый экземпляр сервиса
func NewNoticeService(noticeRepo repository.NoticeRepository, pol *policy.Policy) NoticeService {
	return &noticeService{
		noticeRepo: noticeRepo,
		policy:     pol,
	}
}

// List возвращает объявления: администратору все, остальным только свои
func (s *noticeService) List(ctx context.Context, identity *auth.Identity) ([]domain.Notice, error) {
	if identity == nil {
		return nil, domain.ErrUnauthorized
	}

	if s.policy.CanAccessMinRole(identity, domain.RoleAdmin) {
		return s.noticeRepo.List(ctx)
	}
	return s.noticeRepo.ListByAuthor(ctx, identity.AccountID)
}

func (s *noticeService) Create(ctx context.Context, identity *auth.Identity, req *dto.CreateNoticeRequest) (*domain.Notice, error) {
	if identity == nil {
		return nil, domain.ErrUnauthorized
	}

	priority := req.Priority
	if priority == "" {
		priority = "normal"
	}

	notice := &domain.Notice{
		Title:    strings.TrimSpace(req.Title),
		Content:  req.Content,
		AuthorID: identity.AccountID,
		Priority: priority,
		IsActive: true,
	}

	if err := s.noticeRepo.Create(ctx, notice); err != nil {
		return nil, err
	}

	return notice, nil
}

// Delete удаляет объявление; разрешено автору или администратору
func (s *noticeService) Delete(ctx context.Context, identity *auth.Identity, id int64) error {
	notice, err := s.noticeRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if !s.policy.CanDeleteNotice(identity, notice) {
		return domain.ErrUnauthorized
	}

	return s.noticeRepo.Delete(ctx, id)
}
