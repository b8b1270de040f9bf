package services

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/hagwon-app/hagwon/internal/app/models"
	"github.com/hagwon-app/hagwon/internal/app/models/dto"
	"github.com/hagwon-app/hagwon/internal/pkg/apperrors"
	"github.com/hagwon-app/hagwon/internal/pkg/auth"
)

// AuthService defines the interface for authentication operations
type AuthService interface {
	SignUp(ctx context.Context, req *dto.SignUpRequest) (*models.User, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenResponse, error)
	Logout(ctx context.Context, refreshToken string) error
	CheckIDAvailable(ctx context.Context, userID string) (bool, error)
}

// authServiceImpl implements AuthService
type authServiceImpl struct {
	userStore  UserStore
	tokenStore TokenStore
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userStore UserStore,
	tokenStore TokenStore,
	jwtService *auth.JWTService,
	logger zerolog.Logger,
) AuthService {
	return &authServiceImpl{
		userStore:  userStore,
		tokenStore: tokenStore,
		jwtService: jwtService,
		logger:     logger,
	}
}

// SignUp creates a new user account with a bcrypt-hashed password
func (s *authServiceImpl) SignUp(ctx context.Context, req *dto.SignUpRequest) (*models.User, error) {
	if !req.Role.IsValid() {
		return nil, apperrors.NewBadRequestError("unknown role")
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		UserID:      req.UserID,
		Password:    hash,
		UserName:    req.UserName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Role:        req.Role,
	}

	if err := s.userStore.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("userId", user.UserID).
		Str("role", string(user.Role)).
		Msg("User signed up")

	return user, nil
}

// Login verifies credentials and issues a token pair. The refresh token is
// stored server-side so it can be revoked.
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := s.userStore.GetByID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.issueTokens(ctx, user)
}

// RefreshToken rotates a refresh token: the presented token is resolved and
// deleted, and a fresh pair is issued
func (s *authServiceImpl) RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenResponse, error) {
	userID, err := s.tokenStore.Resolve(ctx, refreshToken)
	if err != nil {
		return nil, err
	}

	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrTokenNotFound
		}
		return nil, err
	}

	if err := s.tokenStore.Delete(ctx, refreshToken); err != nil {
		return nil, err
	}

	return s.issueTokens(ctx, user)
}

// Logout revokes a refresh token
func (s *authServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	return s.tokenStore.Delete(ctx, refreshToken)
}

// CheckIDAvailable reports whether a user ID is still free
func (s *authServiceImpl) CheckIDAvailable(ctx context.Context, userID string) (bool, error) {
	exists, err := s.userStore.ExistsByID(ctx, userID)
	if err != nil {
		return false, err
	}
	return !exists, nil
}

func (s *authServiceImpl) issueTokens(ctx context.Context, user *models.User) (*dto.TokenResponse, error) {
	accessToken, refreshToken, expiresIn, err := s.jwtService.GenerateTokenPair(user)
	if err != nil {
		return nil, err
	}

	if err := s.tokenStore.Save(ctx, refreshToken, user.UserID, s.jwtService.GetRefreshTokenExpiry()); err != nil {
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "Bearer",
		ExpiresIn:    expiresIn,
	}, nil
}
