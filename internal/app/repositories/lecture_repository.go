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

// LectureRepository handles database operations for lectures and enrolments
type LectureRepository struct {
	db *pgxpool.Pool
}

// NewLectureRepository creates a new LectureRepository
func NewLectureRepository(db *pgxpool.Pool) *LectureRepository {
	return &LectureRepository{db: db}
}

const lectureColumns = "id, academy_id, lecture_name, teacher_id, days, start_time, end_time"

func scanLecture(row pgx.Row) (*models.Lecture, error) {
	var l models.Lecture
	err := row.Scan(
		&l.ID,
		&l.AcademyID,
		&l.LectureName,
		&l.TeacherID,
		&l.Days,
		&l.StartTime,
		&l.EndTime,
	)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// Create inserts a new lecture
func (r *LectureRepository) Create(ctx context.Context, lecture *models.Lecture) error {
	query := squirrel.Insert("lectures").
		Columns("academy_id", "lecture_name", "teacher_id", "days", "start_time", "end_time").
		Values(lecture.AcademyID, lecture.LectureName, lecture.TeacherID, lecture.Days, lecture.StartTime, lecture.EndTime).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&lecture.ID)
	if err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}

	return nil
}

// GetByID retrieves a lecture by ID
func (r *LectureRepository) GetByID(ctx context.Context, id int64) (*models.Lecture, error) {
	query := squirrel.Select(lectureColumns).
		From("lectures").
		Where("id = ?", id).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	lecture, err := scanLecture(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrLectureNotFound
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	return lecture, nil
}

// ListByAcademy retrieves all lectures of an academy
func (r *LectureRepository) ListByAcademy(ctx context.Context, academyID string) ([]*models.Lecture, error) {
	query := squirrel.Select(lectureColumns).
		From("lectures").
		Where("academy_id = ?", academyID).
		OrderBy("lecture_name ASC").
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

	var lectures []*models.Lecture
	for rows.Next() {
		lecture, err := scanLecture(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		lectures = append(lectures, lecture)
	}

	return lectures, nil
}

// ListByStudent retrieves all lectures a student is enrolled in
func (r *LectureRepository) ListByStudent(ctx context.Context, userID string) ([]*models.Lecture, error) {
	query := squirrel.Select(
		"l.id", "l.academy_id", "l.lecture_name", "l.teacher_id", "l.days", "l.start_time", "l.end_time",
	).
		From("lectures l").
		Join("lecture_students ls ON ls.lecture_id = l.id").
		Where("ls.user_id = ?", userID).
		OrderBy("l.lecture_name ASC").
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

	var lectures []*models.Lecture
	for rows.Next() {
		lecture, err := scanLecture(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		lectures = append(lectures, lecture)
	}

	return lectures, nil
}

// Update modifies an existing lecture
func (r *LectureRepository) Update(ctx context.Context, lecture *models.Lecture) error {
	query := squirrel.Update("lectures").
		Set("lecture_name", lecture.LectureName).
		Set("teacher_id", lecture.TeacherID).
		Set("days", lecture.Days).
		Set("start_time", lecture.StartTime).
		Set("end_time", lecture.EndTime).
		Where("id = ?", lecture.ID).
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
		return apperrors.ErrLectureNotFound
	}

	return nil
}

// Delete removes a lecture
func (r *LectureRepository) Delete(ctx context.Context, id int64) error {
	query := squirrel.Delete("lectures").
		Where("id = ?", id).
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
		return apperrors.ErrLectureNotFound
	}

	return nil
}

// AddStudent enrols a student in a lecture. A unique violation is remapped to
// apperrors.ErrAlreadyEnrolled.
func (r *LectureRepository) AddStudent(ctx context.Context, lectureID int64, userID string) error {
	query := squirrel.Insert("lecture_students").
		Columns("lecture_id", "user_id").
		Values(lectureID, userID).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	_, err = r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrAlreadyEnrolled
		}
		return fmt.Errorf("error executing query: %w", err)
	}

	return nil
}

// RemoveStudent removes a student from a lecture
func (r *LectureRepository) RemoveStudent(ctx context.Context, lectureID int64, userID string) error {
	query := squirrel.Delete("lecture_students").
		Where("lecture_id = ? AND user_id = ?", lectureID, userID).
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
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// ListStudents retrieves the profiles of students enrolled in a lecture
func (r *LectureRepository) ListStudents(ctx context.Context, lectureID int64) ([]*models.User, error) {
	query := squirrel.Select(
		"u.user_id", "u.password", "u.user_name", "u.email", "u.phone_number", "u.role", "u.academy_id", "u.created_at",
	).
		From("users u").
		Join("lecture_students ls ON ls.user_id = u.user_id").
		Where("ls.lecture_id = ?", lectureID).
		OrderBy("u.user_name ASC").
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

	var users []*models.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		users = append(users, user)
	}

	return users, nil
}
