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

// AcademyRepository handles database operations for academies
type AcademyRepository struct {
	db *pgxpool.Pool
}

// NewAcademyRepository creates a new AcademyRepository
func NewAcademyRepository(db *pgxpool.Pool) *AcademyRepository {
	return &AcademyRepository{db: db}
}

const academyColumns = "academy_id, academy_key, academy_name, academy_email, address, phone_number, status, created_at"

func scanAcademy(row pgx.Row) (*models.Academy, error) {
	var a models.Academy
	err := row.Scan(
		&a.AcademyID,
		&a.AcademyKey,
		&a.AcademyName,
		&a.AcademyEmail,
		&a.Address,
		&a.PhoneNumber,
		&a.Status,
		&a.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Create inserts a new academy. A unique violation on academy_id or
// academy_email is remapped to apperrors.ErrAcademyAlreadyExists.
func (r *AcademyRepository) Create(ctx context.Context, academy *models.Academy) error {
	query := squirrel.Insert("academies").
		Columns("academy_id", "academy_key", "academy_name", "academy_email", "address", "phone_number", "status").
		Values(academy.AcademyID, academy.AcademyKey, academy.AcademyName, academy.AcademyEmail, academy.Address, academy.PhoneNumber, academy.Status).
		Suffix("RETURNING created_at").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&academy.CreatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrAcademyAlreadyExists
		}
		return fmt.Errorf("error executing query: %w", err)
	}

	return nil
}

// GetByKey retrieves an academy by its invite key
func (r *AcademyRepository) GetByKey(ctx context.Context, academyKey string) (*models.Academy, error) {
	query := squirrel.Select(academyColumns).
		From("academies").
		Where("academy_key = ?", academyKey).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	academy, err := scanAcademy(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAcademyNotFound
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	return academy, nil
}

// GetByID retrieves an academy by its ID
func (r *AcademyRepository) GetByID(ctx context.Context, academyID string) (*models.Academy, error) {
	query := squirrel.Select(academyColumns).
		From("academies").
		Where("academy_id = ?", academyID).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	academy, err := scanAcademy(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAcademyNotFound
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	return academy, nil
}

// ListByStatus retrieves all academies with the given status
func (r *AcademyRepository) ListByStatus(ctx context.Context, status models.AcademyStatus) ([]*models.Academy, error) {
	query := squirrel.Select(academyColumns).
		From("academies").
		Where("status = ?", status).
		OrderBy("created_at ASC").
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

	var academies []*models.Academy
	for rows.Next() {
		academy, err := scanAcademy(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		academies = append(academies, academy)
	}

	return academies, nil
}
