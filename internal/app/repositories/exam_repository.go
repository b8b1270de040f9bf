package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hagwon-app/hagwon/internal/app/models"
	"github.com/hagwon-app/hagwon/internal/pkg/apperrors"
	"github.com/hagwon-app/hagwon/internal/pkg/dberrors"
)

// ExamRepository handles database operations for exam types and exams
type ExamRepository struct {
	db *pgxpool.Pool
}

// NewExamRepository creates a new ExamRepository
func NewExamRepository(db *pgxpool.Pool) *ExamRepository {
	return &ExamRepository{db: db}
}

// CreateExamType inserts a new exam type for a lecture. A unique violation is
// remapped to apperrors.ErrExamTypeExists.
func (r *ExamRepository) CreateExamType(ctx context.Context, examType *models.ExamType) error {
	query := squirrel.Insert("exam_types").
		Columns("lecture_id", "exam_type_name").
		Values(examType.LectureID, examType.ExamTypeName).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&examType.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrExamTypeExists
		}
		return fmt.Errorf("error executing query: %w", err)
	}

	return nil
}

// ListExamTypes retrieves all exam types of a lecture
func (r *ExamRepository) ListExamTypes(ctx context.Context, lectureID int64) ([]*models.ExamType, error) {
	query := squirrel.Select("id", "lecture_id", "exam_type_name").
		From("exam_types").
		Where("lecture_id = ?", lectureID).
		OrderBy("id ASC").
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

	var examTypes []*models.ExamType
	for rows.Next() {
		var et models.ExamType
		if err := rows.Scan(&et.ID, &et.LectureID, &et.ExamTypeName); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		examTypes = append(examTypes, &et)
	}

	return examTypes, nil
}

// DeleteExamType removes an exam type from a lecture
func (r *ExamRepository) DeleteExamType(ctx context.Context, lectureID, examTypeID int64) error {
	query := squirrel.Delete("exam_types").
		Where("lecture_id = ? AND id = ?", lectureID, examTypeID).
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
		return apperrors.ErrExamTypeNotFound
	}

	return nil
}

const examColumns = "id, lecture_id, exam_name, exam_date, exam_type_id, high_score, low_score, average_score, total_score"

func scanExam(row pgx.Row) (*models.Exam, error) {
	var e models.Exam
	err := row.Scan(
		&e.ID,
		&e.LectureID,
		&e.ExamName,
		&e.ExamDate,
		&e.ExamTypeID,
		&e.HighScore,
		&e.LowScore,
		&e.AverageScore,
		&e.TotalScore,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// CreateExam inserts a new exam
func (r *ExamRepository) CreateExam(ctx context.Context, exam *models.Exam) error {
	query := squirrel.Insert("exams").
		Columns("lecture_id", "exam_name", "exam_date", "exam_type_id", "total_score").
		Values(exam.LectureID, exam.ExamName, exam.ExamDate, exam.ExamTypeID, exam.TotalScore).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&exam.ID)
	if err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}

	return nil
}

// GetExam retrieves an exam that belongs to a lecture
func (r *ExamRepository) GetExam(ctx context.Context, lectureID, examID int64) (*models.Exam, error) {
	query := squirrel.Select(examColumns).
		From("exams").
		Where("lecture_id = ? AND id = ?", lectureID, examID).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	exam, err := scanExam(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrExamNotFound
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	return exam, nil
}

// ListExams retrieves all exams of a lecture
func (r *ExamRepository) ListExams(ctx context.Context, lectureID int64) ([]*models.Exam, error) {
	query := squirrel.Select(examColumns).
		From("exams").
		Where("lecture_id = ?", lectureID).
		OrderBy("exam_date DESC").
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

	var exams []*models.Exam
	for rows.Next() {
		exam, err := scanExam(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		exams = append(exams, exam)
	}

	return exams, nil
}

// UpdateExamStats refreshes the aggregate score fields of an exam from its scores
func (r *ExamRepository) UpdateExamStats(ctx context.Context, examID int64) error {
	sql := `
	UPDATE exams SET
		high_score = COALESCE((SELECT MAX(score) FROM scores WHERE exam_id = $1), 0),
		low_score = COALESCE((SELECT MIN(score) FROM scores WHERE exam_id = $1), 0),
		average_score = COALESCE((SELECT AVG(score) FROM scores WHERE exam_id = $1), 0)
	WHERE id = $1`

	_, err := r.db.Exec(ctx, sql, examID)
	if err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}

	return nil
}

// DeleteExam removes an exam from a lecture
func (r *ExamRepository) DeleteExam(ctx context.Context, lectureID, examID int64) error {
	query := squirrel.Delete("exams").
		Where("lecture_id = ? AND id = ?", lectureID, examID).
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
		return apperrors.ErrExamNotFound
	}

	return nil
}
