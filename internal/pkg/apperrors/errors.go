package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")
	ErrConflict              = errors.New("conflict")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrTokenNotFound      = errors.New("token not found")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// Academy errors
var (
	ErrAcademyNotFound      = errors.New("academy not found")
	ErrAcademyAlreadyExists = errors.New("academy with this ID or email already exists")
)

// User errors
var (
	ErrUserNotFound      = errors.New("user not found or role incorrect")
	ErrUserAlreadyExists = errors.New("user with this ID or email already exists")
)

// Registration errors
var (
	ErrRegistrationNotFound = errors.New("registration not found")
	ErrAlreadyRequested     = errors.New("registration already requested")
	ErrNoPendingUsers       = errors.New("no pending registrants match the given criteria")
	ErrNoPendingAcademies   = errors.New("no pending academies")
)

// Student errors
var (
	ErrStudentNotFound = errors.New("student not found")
)

// Notice errors
var (
	ErrNoticeNotFound = errors.New("notice not found")
)

// Lecture errors
var (
	ErrLectureNotFound    = errors.New("lecture not found")
	ErrExamNotFound       = errors.New("exam not found")
	ErrExamTypeNotFound   = errors.New("exam type not found")
	ErrScoreNotFound      = errors.New("score not found")
	ErrAlreadyEnrolled    = errors.New("student already enrolled in lecture")
	ErrExamTypeExists     = errors.New("exam type already exists for this lecture")
	ErrScoreAlreadyExists = errors.New("score already recorded for this student")
)

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// NewResourceNotFoundError creates a new custom error for resource not found with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewConflictError creates a new custom error for conflict situations with a message
func NewConflictError(message string) error {
	return &CustomError{
		Err:     ErrConflict,
		Message: message,
	}
}

// NewBadRequestError creates a new custom error for bad request with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}

// Is returns whether target matches err or any of the errors in errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}

	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}
