package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCustomErrorMessage(t *testing.T) {
	err := NewCustomError(ErrUserNotFound, "no user with the requested role")
	assert.Equal(t, "no user with the requested role", err.Error())

	bare := &CustomError{Err: ErrUserNotFound}
	assert.Equal(t, ErrUserNotFound.Error(), bare.Error())

	empty := &CustomError{}
	assert.Equal(t, "unknown error", empty.Error())
}

func TestCustomErrorUnwrap(t *testing.T) {
	err := NewBadRequestError("role must be TEACHER or STUDENT")
	assert.True(t, errors.Is(err, ErrBadRequest))
	assert.False(t, errors.Is(err, ErrValidationFailed))

	assert.True(t, errors.Is(NewResourceNotFoundError("gone"), ErrResourceNotFound))
	assert.True(t, errors.Is(NewConflictError("taken"), ErrConflict))
}

func TestIs(t *testing.T) {
	wrapped := fmt.Errorf("lookup: %w", ErrAcademyNotFound)

	assert.True(t, Is(wrapped, ErrAcademyNotFound))
	assert.False(t, Is(wrapped, ErrUserNotFound))
	assert.True(t, Is(wrapped, ErrUserNotFound, ErrStudentNotFound, ErrAcademyNotFound))
	assert.False(t, Is(wrapped, ErrUserNotFound, ErrStudentNotFound))
}
