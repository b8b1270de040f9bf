package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hagwon-app/hagwon/internal/app/models"
	"github.com/hagwon-app/hagwon/internal/pkg/apperrors"
	"github.com/hagwon-app/hagwon/internal/pkg/dberrors"
)

// ScoreRepository handles database operations for exam scores
type ScoreRepository struct {
	db *pgxpool.Pool
}

// NewScoreRepository creates a new ScoreRepository
func NewScoreRepository(db *pgxpool.Pool) *ScoreRepository {
	return &ScoreRepository{db: db}
}

// Create records a student's score for an exam. A unique violation is remapped
// to apperrors.ErrScoreAlreadyExists.
func (r *ScoreRepository) Create(ctx context.Context, score *models.Score) error {
	query := squirrel.Insert("scores").
		Columns("exam_id", "user_id", "score").
		Values(score.ExamID, score.UserID, score.Score).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	_, err = r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrScoreAlreadyExists
		}
		return fmt.Errorf("error executing query: %w", err)
	}

	return nil
}

// Update modifies a student's recorded score
func (r *ScoreRepository) Update(ctx context.Context, score *models.Score) error {
	query := squirrel.Update("scores").
		Set("score", score.Score).
		Where("exam_id = ? AND user_id = ?", score.ExamID, score.UserID).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	result, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrScoreNotFound
	}

	return nil
}

// ListByExam retrieves all scores recorded for an exam
func (r *ScoreRepository) ListByExam(ctx context.Context, examID int64) ([]*models.Score, error) {
	query := squirrel.Select("exam_id", "user_id", "score").
		From("scores").
		Where("exam_id = ?", examID).
		OrderBy("score DESC").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var scores []*models.Score
	for rows.Next() {
		var s models.Score
		if err := rows.Scan(&s.ExamID, &s.UserID, &s.Score); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		scores = append(scores, &s)
	}

	return scores, nil
}
