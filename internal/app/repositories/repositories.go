package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// DBTX is the subset of pgx query methods shared by *pgxpool.Pool and pgx.Tx.
// Repository methods that participate in multi-step transactions take a DBTX
// so the same SQL runs against the pool or an open transaction.
type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Repositories holds all repository instances
type Repositories struct {
	AcademyRepository      *AcademyRepository
	UserRepository         *UserRepository
	RegistrationRepository *RegistrationRepository
	FamilyRepository       *FamilyRepository
	NoticeRepository       *NoticeRepository
	LectureRepository      *LectureRepository
	ExamRepository         *ExamRepository
	ScoreRepository        *ScoreRepository
	TokenRepository        *TokenRepository
}

// NewRepositories creates all repositories backed by the given connections
func NewRepositories(db *pgxpool.Pool, rdb *redis.Client) *Repositories {
	return &Repositories{
		AcademyRepository:      NewAcademyRepository(db),
		UserRepository:         NewUserRepository(db),
		RegistrationRepository: NewRegistrationRepository(db),
		FamilyRepository:       NewFamilyRepository(db),
		NoticeRepository:       NewNoticeRepository(db),
		LectureRepository:      NewLectureRepository(db),
		ExamRepository:         NewExamRepository(db),
		ScoreRepository:        NewScoreRepository(db),
		TokenRepository:        NewTokenRepository(rdb),
	}
}
