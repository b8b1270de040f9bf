package services

import (
	"context"
	"time"

	"github.com/hagwon-app/hagwon/internal/app/models"
	"github.com/hagwon-app/hagwon/internal/app/repositories"
	"github.com/hagwon-app/hagwon/internal/db"
	"github.com/hagwon-app/hagwon/internal/pkg/apperrors"
	"github.com/jackc/pgx/v5"
)

// fakeTxManager runs the transaction function directly so service logic can
// be exercised without a database. Fakes ignore the tx handle.
type fakeTxManager struct {
	calls int
}

func (m *fakeTxManager) WithTransaction(ctx context.Context, fn db.TransactionFn) error {
	m.calls++
	return fn(ctx, pgx.Tx(nil))
}

type fakeAcademyStore struct {
	academies map[string]*models.Academy
}

func newFakeAcademyStore() *fakeAcademyStore {
	return &fakeAcademyStore{academies: make(map[string]*models.Academy)}
}

func (s *fakeAcademyStore) Create(ctx context.Context, academy *models.Academy) error {
	if _, ok := s.academies[academy.AcademyID]; ok {
		return apperrors.ErrAcademyAlreadyExists
	}
	for _, a := range s.academies {
		if a.AcademyEmail == academy.AcademyEmail {
			return apperrors.ErrAcademyAlreadyExists
		}
	}
	academy.CreatedAt = time.Now()
	s.academies[academy.AcademyID] = academy
	return nil
}

func (s *fakeAcademyStore) GetByKey(ctx context.Context, academyKey string) (*models.Academy, error) {
	for _, a := range s.academies {
		if a.AcademyKey == academyKey {
			return a, nil
		}
	}
	return nil, apperrors.ErrAcademyNotFound
}

func (s *fakeAcademyStore) GetByID(ctx context.Context, academyID string) (*models.Academy, error) {
	a, ok := s.academies[academyID]
	if !ok {
		return nil, apperrors.ErrAcademyNotFound
	}
	return a, nil
}

func (s *fakeAcademyStore) ListByStatus(ctx context.Context, status models.AcademyStatus) ([]*models.Academy, error) {
	var out []*models.Academy
	for _, a := range s.academies {
		if a.Status == status {
			out = append(out, a)
		}
	}
	return out, nil
}

type fakeUserStore struct {
	users map[string]*models.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[string]*models.User)}
}

func (s *fakeUserStore) Create(ctx context.Context, user *models.User) error {
	if _, ok := s.users[user.UserID]; ok {
		return apperrors.ErrUserAlreadyExists
	}
	for _, u := range s.users {
		if u.Email == user.Email {
			return apperrors.ErrUserAlreadyExists
		}
	}
	user.CreatedAt = time.Now()
	s.users[user.UserID] = user
	return nil
}

func (s *fakeUserStore) GetByID(ctx context.Context, userID string) (*models.User, error) {
	u, ok := s.users[userID]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return u, nil
}

func (s *fakeUserStore) ExistsByID(ctx context.Context, userID string) (bool, error) {
	_, ok := s.users[userID]
	return ok, nil
}

func (s *fakeUserStore) SetAcademyID(ctx context.Context, q repositories.DBTX, userID string, academyID *string) error {
	u, ok := s.users[userID]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	u.AcademyID = academyID
	return nil
}

func (s *fakeUserStore) ListApprovedStudents(ctx context.Context, academyID string) ([]*models.User, error) {
	var out []*models.User
	for _, u := range s.users {
		if u.Role == models.RoleStudent && u.AcademyID != nil && *u.AcademyID == academyID {
			out = append(out, u)
		}
	}
	return out, nil
}

type fakeRegistrationStore struct {
	regs   []*models.Registration
	nextID int64
}

func newFakeRegistrationStore() *fakeRegistrationStore {
	return &fakeRegistrationStore{nextID: 1}
}

func (s *fakeRegistrationStore) Create(ctx context.Context, q repositories.DBTX, reg *models.Registration) error {
	for _, r := range s.regs {
		if r.UserID == reg.UserID && r.Role == reg.Role {
			return apperrors.ErrAlreadyRequested
		}
		if r.AcademyID == reg.AcademyID && r.UserID == reg.UserID {
			return apperrors.ErrAlreadyRequested
		}
	}
	reg.ID = s.nextID
	s.nextID++
	reg.CreatedAt = time.Now()
	s.regs = append(s.regs, reg)
	return nil
}

func (s *fakeRegistrationStore) GetByAcademyAndUser(ctx context.Context, academyID, userID string) (*models.Registration, error) {
	for _, r := range s.regs {
		if r.AcademyID == academyID && r.UserID == userID {
			return r, nil
		}
	}
	return nil, apperrors.ErrRegistrationNotFound
}

func (s *fakeRegistrationStore) GetByUserID(ctx context.Context, userID string) (*models.Registration, error) {
	for _, r := range s.regs {
		if r.UserID == userID {
			return r, nil
		}
	}
	return nil, apperrors.ErrRegistrationNotFound
}

func (s *fakeRegistrationStore) ExistsForUserRole(ctx context.Context, userID string, role models.Role) (bool, error) {
	for _, r := range s.regs {
		if r.UserID == userID && r.Role == role {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeRegistrationStore) ExistsAtAcademy(ctx context.Context, academyID, userID string) (bool, error) {
	for _, r := range s.regs {
		if r.AcademyID == academyID && r.UserID == userID {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeRegistrationStore) UpdateStatus(ctx context.Context, q repositories.DBTX, academyID, userID string, status models.RegistrationStatus) (*models.Registration, error) {
	for _, r := range s.regs {
		if r.AcademyID == academyID && r.UserID == userID {
			r.Status = status
			return r, nil
		}
	}
	return nil, apperrors.ErrRegistrationNotFound
}

func (s *fakeRegistrationStore) DeleteByUserID(ctx context.Context, q repositories.DBTX, userID string) error {
	for i, r := range s.regs {
		if r.UserID == userID {
			s.regs = append(s.regs[:i], s.regs[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrRegistrationNotFound
}

func (s *fakeRegistrationStore) ListPendingWithUsers(ctx context.Context, academyID string, role models.Role) ([]*models.PendingRegistrant, error) {
	var out []*models.PendingRegistrant
	for _, r := range s.regs {
		if r.AcademyID == academyID && r.Role == role && r.Status == models.RegistrationPending {
			out = append(out, &models.PendingRegistrant{
				AcademyID: r.AcademyID,
				Role:      r.Role,
				Status:    r.Status,
				User:      models.RegistrantProfile{UserID: r.UserID},
			})
		}
	}
	return out, nil
}

type fakeFamilyStore struct {
	parents map[string]string // studentID -> parentID
}

func newFakeFamilyStore() *fakeFamilyStore {
	return &fakeFamilyStore{parents: make(map[string]string)}
}

func (s *fakeFamilyStore) GetParentID(ctx context.Context, studentID string) (*string, error) {
	parentID, ok := s.parents[studentID]
	if !ok {
		return nil, nil
	}
	return &parentID, nil
}

type fakeTokenStore struct {
	tokens map[string]string // token -> userID
}

func newFakeTokenStore() *fakeTokenStore {
	return &fakeTokenStore{tokens: make(map[string]string)}
}

func (s *fakeTokenStore) Save(ctx context.Context, token, userID string, ttl time.Duration) error {
	s.tokens[token] = userID
	return nil
}

func (s *fakeTokenStore) Resolve(ctx context.Context, token string) (string, error) {
	userID, ok := s.tokens[token]
	if !ok {
		return "", apperrors.ErrTokenNotFound
	}
	return userID, nil
}

func (s *fakeTokenStore) Delete(ctx context.Context, token string) error {
	delete(s.tokens, token)
	return nil
}
