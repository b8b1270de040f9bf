package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// FamilyRepository handles database operations for student-parent links.
// Family rows are created out of band; this workflow only reads them.
type FamilyRepository struct {
	db *pgxpool.Pool
}

// NewFamilyRepository creates a new FamilyRepository
func NewFamilyRepository(db *pgxpool.Pool) *FamilyRepository {
	return &FamilyRepository{db: db}
}

// GetParentID resolves the parent linked to a student. Returns nil when the
// student has no family record.
func (r *FamilyRepository) GetParentID(ctx context.Context, studentID string) (*string, error) {
	query := squirrel.Select("parent_id").
		From("families").
		Where("student_id = ?", studentID).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	var parentID string
	err = r.db.QueryRow(ctx, sql, args...).Scan(&parentID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	return &parentID, nil
}
