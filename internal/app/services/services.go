// Package services contains the business logic between controllers and
// repositories. Each service depends on narrow store interfaces rather than
// concrete repositories so tests can substitute in-memory fakes.
package services

import (
	"context"
	"time"

	"github.com/hagwon-app/hagwon/internal/app/models"
	"github.com/hagwon-app/hagwon/internal/app/repositories"
)

// AcademyStore is the academy persistence surface used by services
type AcademyStore interface {
	Create(ctx context.Context, academy *models.Academy) error
	GetByKey(ctx context.Context, academyKey string) (*models.Academy, error)
	GetByID(ctx context.Context, academyID string) (*models.Academy, error)
	ListByStatus(ctx context.Context, status models.AcademyStatus) ([]*models.Academy, error)
}

// UserStore is the user persistence surface used by services
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, userID string) (*models.User, error)
	ExistsByID(ctx context.Context, userID string) (bool, error)
	SetAcademyID(ctx context.Context, q repositories.DBTX, userID string, academyID *string) error
	ListApprovedStudents(ctx context.Context, academyID string) ([]*models.User, error)
}

// RegistrationStore is the registration persistence surface used by services
type RegistrationStore interface {
	Create(ctx context.Context, q repositories.DBTX, reg *models.Registration) error
	GetByAcademyAndUser(ctx context.Context, academyID, userID string) (*models.Registration, error)
	GetByUserID(ctx context.Context, userID string) (*models.Registration, error)
	ExistsForUserRole(ctx context.Context, userID string, role models.Role) (bool, error)
	ExistsAtAcademy(ctx context.Context, academyID, userID string) (bool, error)
	UpdateStatus(ctx context.Context, q repositories.DBTX, academyID, userID string, status models.RegistrationStatus) (*models.Registration, error)
	DeleteByUserID(ctx context.Context, q repositories.DBTX, userID string) error
	ListPendingWithUsers(ctx context.Context, academyID string, role models.Role) ([]*models.PendingRegistrant, error)
}

// FamilyStore resolves student to parent links
type FamilyStore interface {
	GetParentID(ctx context.Context, studentID string) (*string, error)
}

// TokenStore is the refresh token persistence surface used by the auth service
type TokenStore interface {
	Save(ctx context.Context, token, userID string, ttl time.Duration) error
	Resolve(ctx context.Context, token string) (string, error)
	Delete(ctx context.Context, token string) error
}

// NoticeStore is the notice persistence surface used by the notice service
type NoticeStore interface {
	Create(ctx context.Context, notice *models.Notice) error
	GetByID(ctx context.Context, id int64) (*models.Notice, error)
	List(ctx context.Context, academyID string, lectureID int64, offset uint64, limit int) ([]*models.Notice, error)
	Count(ctx context.Context, academyID string, lectureID int64) (int64, error)
	IncrementViews(ctx context.Context, id int64) error
	Update(ctx context.Context, id int64, title, content string) (*models.Notice, error)
	Delete(ctx context.Context, id int64) error
}

// LectureStore is the lecture persistence surface used by the lecture service
type LectureStore interface {
	Create(ctx context.Context, lecture *models.Lecture) error
	GetByID(ctx context.Context, id int64) (*models.Lecture, error)
	ListByAcademy(ctx context.Context, academyID string) ([]*models.Lecture, error)
	ListByStudent(ctx context.Context, userID string) ([]*models.Lecture, error)
	Update(ctx context.Context, lecture *models.Lecture) error
	Delete(ctx context.Context, id int64) error
	AddStudent(ctx context.Context, lectureID int64, userID string) error
	RemoveStudent(ctx context.Context, lectureID int64, userID string) error
	ListStudents(ctx context.Context, lectureID int64) ([]*models.User, error)
}

// ExamStore is the exam persistence surface used by the lecture service
type ExamStore interface {
	CreateExamType(ctx context.Context, examType *models.ExamType) error
	ListExamTypes(ctx context.Context, lectureID int64) ([]*models.ExamType, error)
	DeleteExamType(ctx context.Context, lectureID, examTypeID int64) error
	CreateExam(ctx context.Context, exam *models.Exam) error
	GetExam(ctx context.Context, lectureID, examID int64) (*models.Exam, error)
	ListExams(ctx context.Context, lectureID int64) ([]*models.Exam, error)
	UpdateExamStats(ctx context.Context, examID int64) error
	DeleteExam(ctx context.Context, lectureID, examID int64) error
}

// ScoreStore is the score persistence surface used by the lecture service
type ScoreStore interface {
	Create(ctx context.Context, score *models.Score) error
	Update(ctx context.Context, score *models.Score) error
	ListByExam(ctx context.Context, examID int64) ([]*models.Score, error)
}

var (
	_ AcademyStore      = (*repositories.AcademyRepository)(nil)
	_ UserStore         = (*repositories.UserRepository)(nil)
	_ RegistrationStore = (*repositories.RegistrationRepository)(nil)
	_ FamilyStore       = (*repositories.FamilyRepository)(nil)
	_ TokenStore        = (*repositories.TokenRepository)(nil)
	_ NoticeStore       = (*repositories.NoticeRepository)(nil)
	_ LectureStore      = (*repositories.LectureRepository)(nil)
	_ ExamStore         = (*repositories.ExamRepository)(nil)
	_ ScoreStore        = (*repositories.ScoreRepository)(nil)
)
