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

// RegistrationRepository handles database operations for academy join requests
type RegistrationRepository struct {
	db *pgxpool.Pool
}

// NewRegistrationRepository creates a new RegistrationRepository
func NewRegistrationRepository(db *pgxpool.Pool) *RegistrationRepository {
	return &RegistrationRepository{db: db}
}

const registrationColumns = "id, academy_id, user_id, role, status, created_at"

func scanRegistration(row pgx.Row) (*models.Registration, error) {
	var reg models.Registration
	err := row.Scan(
		&reg.ID,
		&reg.AcademyID,
		&reg.UserID,
		&reg.Role,
		&reg.Status,
		&reg.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &reg, nil
}

// Create inserts a new registration row on the given handle. The unique
// constraints on (user_id, role) and (academy_id, user_id) are the backstop
// against concurrent duplicate requests; violations are remapped to
// apperrors.ErrAlreadyRequested.
func (r *RegistrationRepository) Create(ctx context.Context, q DBTX, reg *models.Registration) error {
	query := squirrel.Insert("academy_user_registrations").
		Columns("academy_id", "user_id", "role", "status").
		Values(reg.AcademyID, reg.UserID, reg.Role, reg.Status).
		Suffix("RETURNING id, created_at").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	err = q.QueryRow(ctx, sql, args...).Scan(&reg.ID, &reg.CreatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrAlreadyRequested
		}
		return fmt.Errorf("error executing query: %w", err)
	}

	return nil
}

// GetByAcademyAndUser retrieves the registration row for an (academy, user) pair
func (r *RegistrationRepository) GetByAcademyAndUser(ctx context.Context, academyID, userID string) (*models.Registration, error) {
	query := squirrel.Select(registrationColumns).
		From("academy_user_registrations").
		Where("academy_id = ? AND user_id = ?", academyID, userID).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	reg, err := scanRegistration(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrRegistrationNotFound
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	return reg, nil
}

// GetByUserID retrieves a user's registration row regardless of academy
func (r *RegistrationRepository) GetByUserID(ctx context.Context, userID string) (*models.Registration, error) {
	query := squirrel.Select(registrationColumns).
		From("academy_user_registrations").
		Where("user_id = ?", userID).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	reg, err := scanRegistration(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrRegistrationNotFound
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	return reg, nil
}

// ExistsForUserRole reports whether the user already has a registration under
// the given role at any academy
func (r *RegistrationRepository) ExistsForUserRole(ctx context.Context, userID string, role models.Role) (bool, error) {
	query := squirrel.Select("1").
		From("academy_user_registrations").
		Where("user_id = ? AND role = ?", userID, role).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return false, fmt.Errorf("error building SQL: %w", err)
	}

	var exists int
	err = r.db.QueryRow(ctx, sql, args...).Scan(&exists)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("error executing query: %w", err)
	}

	return true, nil
}

// ExistsAtAcademy reports whether the user has a registration row at the academy
func (r *RegistrationRepository) ExistsAtAcademy(ctx context.Context, academyID, userID string) (bool, error) {
	query := squirrel.Select("1").
		From("academy_user_registrations").
		Where("academy_id = ? AND user_id = ?", academyID, userID).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return false, fmt.Errorf("error building SQL: %w", err)
	}

	var exists int
	err = r.db.QueryRow(ctx, sql, args...).Scan(&exists)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("error executing query: %w", err)
	}

	return true, nil
}

// UpdateStatus transitions the registration for an (academy, user) pair on the
// given handle and returns the updated row
func (r *RegistrationRepository) UpdateStatus(ctx context.Context, q DBTX, academyID, userID string, status models.RegistrationStatus) (*models.Registration, error) {
	query := squirrel.Update("academy_user_registrations").
		Set("status", status).
		Where("academy_id = ? AND user_id = ?", academyID, userID).
		Suffix("RETURNING " + registrationColumns).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	reg, err := scanRegistration(q.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrRegistrationNotFound
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	return reg, nil
}

// DeleteByUserID removes a user's registration row on the given handle
func (r *RegistrationRepository) DeleteByUserID(ctx context.Context, q DBTX, userID string) error {
	query := squirrel.Delete("academy_user_registrations").
		Where("user_id = ?", userID).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	result, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrRegistrationNotFound
	}

	return nil
}

// ListPendingWithUsers retrieves pending registrations for an academy and role,
// joined with the registrant's profile fields
func (r *RegistrationRepository) ListPendingWithUsers(ctx context.Context, academyID string, role models.Role) ([]*models.PendingRegistrant, error) {
	query := squirrel.Select(
		"r.academy_id", "r.role", "r.status",
		"u.user_id", "u.user_name", "u.email", "u.phone_number",
	).
		From("academy_user_registrations r").
		Join("users u ON u.user_id = r.user_id").
		Where("r.academy_id = ? AND r.role = ? AND r.status = ?", academyID, role, models.RegistrationPending).
		OrderBy("r.created_at ASC").
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

	var registrants []*models.PendingRegistrant
	for rows.Next() {
		var reg models.PendingRegistrant
		err := rows.Scan(
			&reg.AcademyID,
			&reg.Role,
			&reg.Status,
			&reg.User.UserID,
			&reg.User.UserName,
			&reg.User.Email,
			&reg.User.PhoneNumber,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		registrants = append(registrants, &reg)
	}

	return registrants, nil
}
