package services

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/hagwon-app/hagwon/internal/app/models"
	"github.com/hagwon-app/hagwon/internal/db"
	"github.com/hagwon-app/hagwon/internal/pkg/apperrors"
)

// StudentService defines the interface for student roster operations
type StudentService interface {
	RemoveStudent(ctx context.Context, userID string) error
	ListStudents(ctx context.Context, academyID string) ([]*models.User, error)
	GetStudentLectures(ctx context.Context, userID string) ([]*models.Lecture, error)
}

// studentServiceImpl implements StudentService
type studentServiceImpl struct {
	userStore    UserStore
	regStore     RegistrationStore
	academyStore AcademyStore
	lectureStore LectureStore
	txManager    db.TxManager
	logger       zerolog.Logger
}

// NewStudentService creates a new StudentService
func NewStudentService(
	userStore UserStore,
	regStore RegistrationStore,
	academyStore AcademyStore,
	lectureStore LectureStore,
	txManager db.TxManager,
	logger zerolog.Logger,
) StudentService {
	return &studentServiceImpl{
		userStore:    userStore,
		regStore:     regStore,
		academyStore: academyStore,
		lectureStore: lectureStore,
		txManager:    txManager,
		logger:       logger,
	}
}

// RemoveStudent detaches a student from their academy: the user's academy
// binding is cleared and the registration row deleted in one transaction.
// Removing the same student twice returns not found on the second call.
func (s *studentServiceImpl) RemoveStudent(ctx context.Context, userID string) error {
	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return apperrors.ErrStudentNotFound
		}
		return err
	}
	if user.Role != models.RoleStudent {
		return apperrors.ErrStudentNotFound
	}

	registration, err := s.regStore.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrRegistrationNotFound) {
			return apperrors.ErrStudentNotFound
		}
		return err
	}
	if registration.Role != models.RoleStudent {
		return apperrors.ErrStudentNotFound
	}

	err = s.txManager.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if err := s.userStore.SetAcademyID(ctx, tx, userID, nil); err != nil {
			return err
		}
		return s.regStore.DeleteByUserID(ctx, tx, userID)
	})
	if err != nil {
		return err
	}

	s.logger.Info().
		Str("userId", userID).
		Str("academyId", registration.AcademyID).
		Msg("Student removed from academy")

	return nil
}

// ListStudents returns the approved students of an academy
func (s *studentServiceImpl) ListStudents(ctx context.Context, academyID string) ([]*models.User, error) {
	if _, err := s.academyStore.GetByID(ctx, academyID); err != nil {
		return nil, err
	}
	return s.userStore.ListApprovedStudents(ctx, academyID)
}

// GetStudentLectures returns the lectures a student attends
func (s *studentServiceImpl) GetStudentLectures(ctx context.Context, userID string) ([]*models.Lecture, error) {
	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, err
	}
	if user.Role != models.RoleStudent {
		return nil, apperrors.ErrStudentNotFound
	}

	return s.lectureStore.ListByStudent(ctx, userID)
}
