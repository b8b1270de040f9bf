package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/hagwon-app/hagwon/internal/app/models"
	"github.com/hagwon-app/hagwon/internal/app/models/dto"
	"github.com/hagwon-app/hagwon/internal/db"
	"github.com/hagwon-app/hagwon/internal/pkg/apperrors"
	"github.com/hagwon-app/hagwon/internal/pkg/auth"
)

// RegistrationService defines the interface for the academy and user
// registration workflow
type RegistrationService interface {
	RegisterAcademy(ctx context.Context, req *dto.RegisterAcademyRequest) (*models.Academy, error)
	RegisterUser(ctx context.Context, req *dto.RegisterUserRequest) (*dto.RegistrationResponse, error)
	DecideRegistration(ctx context.Context, req *dto.DecideRegistrationRequest) (*models.Registration, error)
	ListPendingUsers(ctx context.Context, academyID string, role models.Role) ([]*models.PendingRegistrant, error)
	ListPendingAcademies(ctx context.Context) ([]*models.Academy, error)
}

// registrationServiceImpl implements RegistrationService
type registrationServiceImpl struct {
	academyStore AcademyStore
	userStore    UserStore
	regStore     RegistrationStore
	familyStore  FamilyStore
	txManager    db.TxManager
	logger       zerolog.Logger
}

// NewRegistrationService creates a new RegistrationService
func NewRegistrationService(
	academyStore AcademyStore,
	userStore UserStore,
	regStore RegistrationStore,
	familyStore FamilyStore,
	txManager db.TxManager,
	logger zerolog.Logger,
) RegistrationService {
	return &registrationServiceImpl{
		academyStore: academyStore,
		userStore:    userStore,
		regStore:     regStore,
		familyStore:  familyStore,
		txManager:    txManager,
		logger:       logger,
	}
}

// RegisterAcademy creates a new academy in PENDING status with a freshly
// generated invite key
func (s *registrationServiceImpl) RegisterAcademy(ctx context.Context, req *dto.RegisterAcademyRequest) (*models.Academy, error) {
	key, err := auth.GenerateInviteKey()
	if err != nil {
		return nil, fmt.Errorf("failed to generate invite key: %w", err)
	}

	academy := &models.Academy{
		AcademyID:    req.AcademyID,
		AcademyKey:   key,
		AcademyName:  req.AcademyName,
		AcademyEmail: req.AcademyEmail,
		Address:      req.Address,
		PhoneNumber:  req.PhoneNumber,
		Status:       models.AcademyPending,
	}

	if err := s.academyStore.Create(ctx, academy); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("academyId", academy.AcademyID).
		Msg("Academy registered, awaiting review")

	return academy, nil
}

// RegisterUser files a join request against an academy's invite key. When the
// registrant is a student with a family-linked parent that has no registration
// yet, a mirrored PENDING request for the parent is created in the same
// transaction, so the pair is inserted both-or-neither.
func (s *registrationServiceImpl) RegisterUser(ctx context.Context, req *dto.RegisterUserRequest) (*dto.RegistrationResponse, error) {
	if req.Role != models.RoleTeacher && req.Role != models.RoleStudent {
		return nil, apperrors.NewBadRequestError("role must be TEACHER or STUDENT")
	}

	academy, err := s.academyStore.GetByKey(ctx, req.AcademyKey)
	if err != nil {
		return nil, err
	}

	user, err := s.userStore.GetByID(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	if user.Role != req.Role {
		return nil, apperrors.NewCustomError(apperrors.ErrUserNotFound, "no user with the requested role")
	}

	exists, err := s.regStore.ExistsForUserRole(ctx, req.UserID, req.Role)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrAlreadyRequested
	}

	registration := &models.Registration{
		AcademyID: academy.AcademyID,
		UserID:    req.UserID,
		Role:      req.Role,
		Status:    models.RegistrationPending,
	}

	// Resolve the parent before opening the transaction; INSERTs that fail
	// inside an open transaction abort it, so the skip conditions have to be
	// decided up front. The unique constraints remain the backstop if a
	// concurrent request slips past these checks.
	var mirroredParentID *string
	if req.Role == models.RoleStudent {
		parentID, err := s.familyStore.GetParentID(ctx, req.UserID)
		if err != nil {
			return nil, err
		}
		if parentID != nil {
			parentTaken, err := s.regStore.ExistsForUserRole(ctx, *parentID, models.RoleParent)
			if err != nil {
				return nil, err
			}
			atAcademy, err := s.regStore.ExistsAtAcademy(ctx, academy.AcademyID, *parentID)
			if err != nil {
				return nil, err
			}
			if !parentTaken && !atAcademy {
				mirroredParentID = parentID
			}
		}
	}

	err = s.txManager.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if err := s.regStore.Create(ctx, tx, registration); err != nil {
			return err
		}
		if mirroredParentID != nil {
			parentReg := &models.Registration{
				AcademyID: academy.AcademyID,
				UserID:    *mirroredParentID,
				Role:      models.RoleParent,
				Status:    models.RegistrationPending,
			}
			if err := s.regStore.Create(ctx, tx, parentReg); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("academyId", academy.AcademyID).
		Str("userId", req.UserID).
		Str("role", string(req.Role)).
		Bool("parentMirrored", mirroredParentID != nil).
		Msg("Join request filed")

	return &dto.RegistrationResponse{
		Registration: registration,
		ParentID:     mirroredParentID,
	}, nil
}

// DecideRegistration approves or rejects a pending join request. Approving a
// student whose family-linked parent also has a request at the same academy
// applies the identical transition to the parent's row; both updates run in
// one transaction. Re-deciding overwrites the previous decision.
func (s *registrationServiceImpl) DecideRegistration(ctx context.Context, req *dto.DecideRegistrationRequest) (*models.Registration, error) {
	registration, err := s.regStore.GetByAcademyAndUser(ctx, req.AcademyID, req.UserID)
	if err != nil {
		return nil, err
	}

	newStatus := models.RegistrationRejected
	if *req.Agreed {
		newStatus = models.RegistrationApproved
	}

	// Gather the cascade targets outside the transaction. The parent row is
	// included only when it belongs to the same academy.
	var parentID *string
	if registration.Role == models.RoleStudent {
		pid, err := s.familyStore.GetParentID(ctx, req.UserID)
		if err != nil {
			return nil, err
		}
		if pid != nil {
			if _, err := s.regStore.GetByAcademyAndUser(ctx, req.AcademyID, *pid); err == nil {
				parentID = pid
			} else if !errors.Is(err, apperrors.ErrRegistrationNotFound) {
				return nil, err
			}
		}
	}

	var updated *models.Registration
	err = s.txManager.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		updated, err = s.regStore.UpdateStatus(ctx, tx, req.AcademyID, req.UserID, newStatus)
		if err != nil {
			return err
		}
		if err := s.applyMembership(ctx, tx, req.UserID, req.AcademyID, newStatus); err != nil {
			return err
		}
		if parentID != nil {
			if _, err := s.regStore.UpdateStatus(ctx, tx, req.AcademyID, *parentID, newStatus); err != nil {
				return err
			}
			if err := s.applyMembership(ctx, tx, *parentID, req.AcademyID, newStatus); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("academyId", req.AcademyID).
		Str("userId", req.UserID).
		Str("status", string(newStatus)).
		Bool("parentCascaded", parentID != nil).
		Msg("Join request decided")

	return updated, nil
}

// applyMembership syncs users.academy_id with a decision: approval binds the
// user to the academy, rejection clears the binding only if it points at the
// deciding academy.
func (s *registrationServiceImpl) applyMembership(ctx context.Context, tx pgx.Tx, userID, academyID string, status models.RegistrationStatus) error {
	if status == models.RegistrationApproved {
		return s.userStore.SetAcademyID(ctx, tx, userID, &academyID)
	}

	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user.AcademyID != nil && *user.AcademyID == academyID {
		return s.userStore.SetAcademyID(ctx, tx, userID, nil)
	}
	return nil
}

// ListPendingUsers returns the pending join requests of an academy for one
// role, joined with the registrants' profiles
func (s *registrationServiceImpl) ListPendingUsers(ctx context.Context, academyID string, role models.Role) ([]*models.PendingRegistrant, error) {
	if role != models.RoleTeacher && role != models.RoleStudent {
		return nil, apperrors.NewBadRequestError("role must be TEACHER or STUDENT")
	}

	if _, err := s.academyStore.GetByID(ctx, academyID); err != nil {
		return nil, err
	}

	registrants, err := s.regStore.ListPendingWithUsers(ctx, academyID, role)
	if err != nil {
		return nil, err
	}
	if len(registrants) == 0 {
		return nil, apperrors.ErrNoPendingUsers
	}

	return registrants, nil
}

// ListPendingAcademies returns all academies awaiting review
func (s *registrationServiceImpl) ListPendingAcademies(ctx context.Context) ([]*models.Academy, error) {
	academies, err := s.academyStore.ListByStatus(ctx, models.AcademyPending)
	if err != nil {
		return nil, err
	}
	if len(academies) == 0 {
		return nil, apperrors.ErrNoPendingAcademies
	}

	return academies, nil
}
