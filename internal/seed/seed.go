package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/hagwon-app/hagwon/internal/app/models"
	"github.com/hagwon-app/hagwon/internal/app/repositories"
	"github.com/hagwon-app/hagwon/internal/pkg/apperrors"
	"github.com/hagwon-app/hagwon/internal/pkg/auth"
)

const (
	defaultChiefID       = "chief"
	defaultChiefPassword = "change-me-on-first-login"
)

// CreateDefaultData creates the default chief account if it does not exist.
// The chief reviews academy registrations and join requests, so one must
// always be present.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	userRepo := repositories.NewUserRepository(dbPool)

	hash, err := auth.HashPassword(defaultChiefPassword)
	if err != nil {
		return err
	}

	chief := &models.User{
		UserID:      defaultChiefID,
		Password:    hash,
		UserName:    "Default Chief",
		Email:       "chief@hagwon.local",
		PhoneNumber: "000-0000-0000",
		Role:        models.RoleChief,
	}

	if err := userRepo.Create(ctx, chief); err != nil {
		if errors.Is(err, apperrors.ErrUserAlreadyExists) {
			lgr.Debug().Str("userId", defaultChiefID).Msg("Default chief account already present")
			return nil
		}
		lgr.Error().Err(err).Msg("Failed to create default chief account")
		return err
	}

	lgr.Info().Str("userId", defaultChiefID).Msg("Default chief account created")
	return nil
}
