package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/hagwon-app/hagwon/internal/app/models"
	"github.com/hagwon-app/hagwon/internal/app/models/dto"
	"github.com/hagwon-app/hagwon/internal/pkg/helpers"
)

// NoticeService defines the interface for notice board operations
type NoticeService interface {
	CreateNotice(ctx context.Context, authorID string, req *dto.CreateNoticeRequest) (*models.Notice, error)
	GetNotice(ctx context.Context, id int64) (*models.Notice, error)
	ListNotices(ctx context.Context, academyID string, lectureID int64, page, size int) (*dto.PaginatedResponse, error)
	UpdateNotice(ctx context.Context, id int64, req *dto.UpdateNoticeRequest) (*models.Notice, error)
	DeleteNotice(ctx context.Context, id int64) error
}

// noticeServiceImpl implements NoticeService
type noticeServiceImpl struct {
	noticeStore  NoticeStore
	academyStore AcademyStore
	logger       zerolog.Logger
}

// NewNoticeService creates a new NoticeService
func NewNoticeService(noticeStore NoticeStore, academyStore AcademyStore, logger zerolog.Logger) NoticeService {
	return &noticeServiceImpl{
		noticeStore:  noticeStore,
		academyStore: academyStore,
		logger:       logger,
	}
}

// CreateNotice posts a notice authored by the authenticated user. A lecture
// ID of 0 targets the whole academy.
func (s *noticeServiceImpl) CreateNotice(ctx context.Context, authorID string, req *dto.CreateNoticeRequest) (*models.Notice, error) {
	if _, err := s.academyStore.GetByID(ctx, req.AcademyID); err != nil {
		return nil, err
	}

	notice := &models.Notice{
		AcademyID: req.AcademyID,
		LectureID: *req.LectureID,
		UserID:    authorID,
		Title:     req.Title,
		Content:   req.Content,
	}

	if err := s.noticeStore.Create(ctx, notice); err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("noticeId", notice.ID).
		Str("academyId", notice.AcademyID).
		Msg("Notice created")

	return notice, nil
}

// GetNotice returns a single notice and counts the view
func (s *noticeServiceImpl) GetNotice(ctx context.Context, id int64) (*models.Notice, error) {
	notice, err := s.noticeStore.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// The read still succeeds if the view counter update fails.
	if err := s.noticeStore.IncrementViews(ctx, id); err != nil {
		s.logger.Warn().Err(err).Int64("noticeId", id).Msg("Failed to increment notice views")
	} else {
		notice.Views++
	}

	return notice, nil
}

// ListNotices returns a page of notices for an academy and lecture, newest
// first
func (s *noticeServiceImpl) ListNotices(ctx context.Context, academyID string, lectureID int64, page, size int) (*dto.PaginatedResponse, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, size)

	notices, err := s.noticeStore.List(ctx, academyID, lectureID, offset, limit)
	if err != nil {
		return nil, err
	}

	total, err := s.noticeStore.Count(ctx, academyID, lectureID)
	if err != nil {
		return nil, err
	}

	if notices == nil {
		notices = []*models.Notice{}
	}

	return &dto.PaginatedResponse{
		Items:      notices,
		Pagination: helpers.NewPaginationInfo(total, page, limit),
	}, nil
}

// UpdateNotice edits a notice's title and content
func (s *noticeServiceImpl) UpdateNotice(ctx context.Context, id int64, req *dto.UpdateNoticeRequest) (*models.Notice, error) {
	return s.noticeStore.Update(ctx, id, req.Title, req.Content)
}

// DeleteNotice removes a notice
func (s *noticeServiceImpl) DeleteNotice(ctx context.Context, id int64) error {
	return s.noticeStore.Delete(ctx, id)
}
