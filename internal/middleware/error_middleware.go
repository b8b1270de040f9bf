package middleware

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hagwon-app/hagwon/internal/app/models/dto"
	"github.com/hagwon-app/hagwon/internal/pkg/apperrors"
	"github.com/hagwon-app/hagwon/internal/pkg/logger"
)

// HandleAPIError maps service errors onto HTTP responses. Controllers call it
// for every non-nil service error so status codes and payload shape stay
// consistent across the API. Unknown errors become a generic 500 and are
// logged; driver or internal error text never reaches the client.
func HandleAPIError(c *gin.Context, err error) {
	message := err.Error()

	switch {
	case apperrors.Is(err, apperrors.ErrBadRequest, apperrors.ErrValidationFailed):
		respondError(c, http.StatusBadRequest, dto.ErrorCodeValidationFailed, message)

	case errors.Is(err, apperrors.ErrInvalidCredentials):
		respondError(c, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials, "Invalid credentials")

	case errors.Is(err, apperrors.ErrTokenExpired):
		respondError(c, http.StatusUnauthorized, dto.ErrorCodeExpiredToken, "Token expired")

	case errors.Is(err, apperrors.ErrTokenInvalid):
		respondError(c, http.StatusUnauthorized, dto.ErrorCodeInvalidToken, "Invalid token")

	case errors.Is(err, apperrors.ErrTokenNotFound):
		respondError(c, http.StatusUnauthorized, dto.ErrorCodeTokenNotFound, "Refresh token not found or expired")

	case errors.Is(err, apperrors.ErrPermissionDenied):
		respondError(c, http.StatusForbidden, dto.ErrorCodeForbidden, "Permission denied")

	case apperrors.Is(err, apperrors.ErrResourceNotFound,
		apperrors.ErrAcademyNotFound,
		apperrors.ErrUserNotFound,
		apperrors.ErrRegistrationNotFound,
		apperrors.ErrNoPendingUsers,
		apperrors.ErrNoPendingAcademies,
		apperrors.ErrStudentNotFound,
		apperrors.ErrNoticeNotFound,
		apperrors.ErrLectureNotFound,
		apperrors.ErrExamNotFound,
		apperrors.ErrExamTypeNotFound,
		apperrors.ErrScoreNotFound):
		respondError(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, message)

	case apperrors.Is(err, apperrors.ErrConflict,
		apperrors.ErrResourceAlreadyExists,
		apperrors.ErrAcademyAlreadyExists,
		apperrors.ErrUserAlreadyExists,
		apperrors.ErrAlreadyRequested,
		apperrors.ErrAlreadyEnrolled,
		apperrors.ErrExamTypeExists,
		apperrors.ErrScoreAlreadyExists):
		respondError(c, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, message)

	default:
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled error")
		respondError(c, http.StatusInternalServerError, dto.ErrorCodeInternalServer, "Internal server error")
	}
}

// HandleValidationError responds 400 with the binding failure details
func HandleValidationError(c *gin.Context, err error) {
	errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request data")
	errorDetail = errorDetail.WithDetails(FormatBindingError(err))
	c.JSON(http.StatusBadRequest, dto.APIResponse{
		Error:     errorDetail,
		Timestamp: time.Now(),
	})
}

func respondError(c *gin.Context, status int, code dto.ErrorCode, message string) {
	c.JSON(status, dto.APIResponse{
		Error:     dto.NewErrorDetail(code, message),
		Timestamp: time.Now(),
	})
}
