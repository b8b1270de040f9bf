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
)

// NoticeRepository handles database operations for notices
type NoticeRepository struct {
	db *pgxpool.Pool
}

// NewNoticeRepository creates a new NoticeRepository
func NewNoticeRepository(db *pgxpool.Pool) *NoticeRepository {
	return &NoticeRepository{db: db}
}

const noticeColumns = "id, academy_id, lecture_id, user_id, title, content, views, created_at"

func scanNotice(row pgx.Row) (*models.Notice, error) {
	var n models.Notice
	err := row.Scan(
		&n.ID,
		&n.AcademyID,
		&n.LectureID,
		&n.UserID,
		&n.Title,
		&n.Content,
		&n.Views,
		&n.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// Create inserts a new notice
func (r *NoticeRepository) Create(ctx context.Context, notice *models.Notice) error {
	query := squirrel.Insert("notices").
		Columns("academy_id", "lecture_id", "user_id", "title", "content").
		Values(notice.AcademyID, notice.LectureID, notice.UserID, notice.Title, notice.Content).
		Suffix("RETURNING id, views, created_at").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&notice.ID, &notice.Views, &notice.CreatedAt)
	if err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}

	return nil
}

// GetByID retrieves a notice by ID
func (r *NoticeRepository) GetByID(ctx context.Context, id int64) (*models.Notice, error) {
	query := squirrel.Select(noticeColumns).
		From("notices").
		Where("id = ?", id).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	notice, err := scanNotice(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNoticeNotFound
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	return notice, nil
}

// List retrieves a page of notices for an academy and lecture, newest first
func (r *NoticeRepository) List(ctx context.Context, academyID string, lectureID int64, offset uint64, limit int) ([]*models.Notice, error) {
	query := squirrel.Select(noticeColumns).
		From("notices").
		Where("academy_id = ? AND lecture_id = ?", academyID, lectureID).
		OrderBy("created_at DESC").
		Offset(offset).
		Limit(uint64(limit)).
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

	var notices []*models.Notice
	for rows.Next() {
		notice, err := scanNotice(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		notices = append(notices, notice)
	}

	return notices, nil
}

// Count returns the total number of notices for an academy and lecture
func (r *NoticeRepository) Count(ctx context.Context, academyID string, lectureID int64) (int64, error) {
	query := squirrel.Select("COUNT(*)").
		From("notices").
		Where("academy_id = ? AND lecture_id = ?", academyID, lectureID).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("error building SQL: %w", err)
	}

	var count int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error executing query: %w", err)
	}

	return count, nil
}

// IncrementViews bumps the view counter for a notice
func (r *NoticeRepository) IncrementViews(ctx context.Context, id int64) error {
	query := squirrel.Update("notices").
		Set("views", squirrel.Expr("views + 1")).
		Where("id = ?", id).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	_, err = r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}

	return nil
}

// Update modifies a notice's title and content
func (r *NoticeRepository) Update(ctx context.Context, id int64, title, content string) (*models.Notice, error) {
	query := squirrel.Update("notices").
		Set("title", title).
		Set("content", content).
		Where("id = ?", id).
		Suffix("RETURNING " + noticeColumns).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	notice, err := scanNotice(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNoticeNotFound
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	return notice, nil
}

// Delete removes a notice
func (r *NoticeRepository) Delete(ctx context.Context, id int64) error {
	query := squirrel.Delete("notices").
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
		return apperrors.ErrNoticeNotFound
	}

	return nil
}
