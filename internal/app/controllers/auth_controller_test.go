package controllers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hagwon-app/hagwon/internal/app/models"
	"github.com/hagwon-app/hagwon/internal/app/models/dto"
	"github.com/hagwon-app/hagwon/internal/pkg/apperrors"
)

func newAuthRouter(service *fakeAuthService) *gin.Engine {
	controller := NewAuthController(service)

	router := gin.New()
	router.POST("/auth/signup", controller.SignUp)
	router.POST("/auth/login", controller.Login)
	router.POST("/auth/refresh", controller.RefreshToken)
	router.POST("/auth/logout", controller.Logout)
	router.GET("/auth/check-id/:user_id", controller.CheckID)
	return router
}

func validSignUpRequest() dto.SignUpRequest {
	return dto.SignUpRequest{
		UserID:      "student_kim",
		Password:    "s3cret-pw!",
		UserName:    "Kim Minjun",
		Email:       "minjun@example.com",
		PhoneNumber: "010-1234-5678",
		Role:        models.RoleStudent,
	}
}

func TestSignUpEndpoint(t *testing.T) {
	service := &fakeAuthService{
		signUpFn: func(req *dto.SignUpRequest) (*models.User, error) {
			return &models.User{
				UserID:   req.UserID,
				UserName: req.UserName,
				Email:    req.Email,
				Role:     req.Role,
				Password: "should-not-leak",
			}, nil
		},
	}
	router := newAuthRouter(service)

	rec := performJSON(t, router, http.MethodPost, "/auth/signup", validSignUpRequest())
	require.Equal(t, http.StatusCreated, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "User created", body["message"])
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "student_kim", data["user_id"])
	assert.NotContains(t, data, "password")
}

func TestSignUpEndpointShortPassword(t *testing.T) {
	service := &fakeAuthService{}
	router := newAuthRouter(service)

	req := validSignUpRequest()
	req.Password = "short"

	rec := performJSON(t, router, http.MethodPost, "/auth/signup", req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSignUpEndpointDuplicate(t *testing.T) {
	service := &fakeAuthService{
		signUpFn: func(*dto.SignUpRequest) (*models.User, error) {
			return nil, apperrors.ErrUserAlreadyExists
		},
	}
	router := newAuthRouter(service)

	rec := performJSON(t, router, http.MethodPost, "/auth/signup", validSignUpRequest())
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestLoginEndpoint(t *testing.T) {
	service := &fakeAuthService{
		loginFn: func(req *dto.LoginRequest) (*dto.TokenResponse, error) {
			assert.Equal(t, "student_kim", req.UserID)
			return &dto.TokenResponse{
				AccessToken:  "header.payload.signature",
				RefreshToken: uuid.New().String(),
				TokenType:    "Bearer",
				ExpiresIn:    3600,
			}, nil
		},
	}
	router := newAuthRouter(service)

	rec := performJSON(t, router, http.MethodPost, "/auth/login", dto.LoginRequest{
		UserID:   "student_kim",
		Password: "s3cret-pw!",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "Bearer", data["token_type"])
	assert.Equal(t, float64(3600), data["expires_in"])
	assert.NotEmpty(t, data["access_token"])
}

func TestLoginEndpointBadCredentials(t *testing.T) {
	service := &fakeAuthService{
		loginFn: func(*dto.LoginRequest) (*dto.TokenResponse, error) {
			return nil, apperrors.ErrInvalidCredentials
		},
	}
	router := newAuthRouter(service)

	rec := performJSON(t, router, http.MethodPost, "/auth/login", dto.LoginRequest{
		UserID:   "student_kim",
		Password: "wrong",
	})
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	body := decodeBody(t, rec)
	errorDetail := body["error"].(map[string]interface{})
	assert.Equal(t, "AUTH_001", errorDetail["code"])
}

func TestRefreshTokenEndpoint(t *testing.T) {
	presented := uuid.New().String()
	service := &fakeAuthService{
		refreshFn: func(token string) (*dto.TokenResponse, error) {
			assert.Equal(t, presented, token)
			return &dto.TokenResponse{
				AccessToken:  "new.access.token",
				RefreshToken: uuid.New().String(),
				TokenType:    "Bearer",
				ExpiresIn:    3600,
			}, nil
		},
	}
	router := newAuthRouter(service)

	rec := performJSON(t, router, http.MethodPost, "/auth/refresh", dto.RefreshTokenRequest{
		RefreshToken: presented,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	data := body["data"].(map[string]interface{})
	assert.NotEqual(t, presented, data["refresh_token"])
}

func TestRefreshTokenEndpointRevoked(t *testing.T) {
	service := &fakeAuthService{
		refreshFn: func(string) (*dto.TokenResponse, error) {
			return nil, apperrors.ErrTokenNotFound
		},
	}
	router := newAuthRouter(service)

	rec := performJSON(t, router, http.MethodPost, "/auth/refresh", dto.RefreshTokenRequest{
		RefreshToken: uuid.New().String(),
	})
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	body := decodeBody(t, rec)
	errorDetail := body["error"].(map[string]interface{})
	assert.Equal(t, "AUTH_004", errorDetail["code"])
}

func TestRefreshTokenEndpointMalformed(t *testing.T) {
	service := &fakeAuthService{}
	router := newAuthRouter(service)

	// Fails the uuid binding rule before the service is reached.
	rec := performJSON(t, router, http.MethodPost, "/auth/refresh", dto.RefreshTokenRequest{
		RefreshToken: "not-a-uuid",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogoutEndpoint(t *testing.T) {
	var revoked string
	service := &fakeAuthService{
		logoutFn: func(token string) error {
			revoked = token
			return nil
		},
	}
	router := newAuthRouter(service)

	presented := uuid.New().String()
	rec := performJSON(t, router, http.MethodPost, "/auth/logout", dto.RefreshTokenRequest{
		RefreshToken: presented,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, presented, revoked)
}

func TestCheckIDEndpoint(t *testing.T) {
	service := &fakeAuthService{
		checkIDFn: func(userID string) (bool, error) {
			return userID == "fresh_id", nil
		},
	}
	router := newAuthRouter(service)

	rec := performJSON(t, router, http.MethodGet, "/auth/check-id/fresh_id", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "User ID available", body["message"])

	rec = performJSON(t, router, http.MethodGet, "/auth/check-id/student_kim", nil)
	require.Equal(t, http.StatusConflict, rec.Code)
	body = decodeBody(t, rec)
	errorDetail := body["error"].(map[string]interface{})
	assert.Equal(t, "RES_002", errorDetail["code"])
	assert.Equal(t, "User ID already taken", errorDetail["message"])
}
