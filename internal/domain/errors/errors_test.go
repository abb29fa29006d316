package errors

import (
	"net/http"
	"testing"

	"bookmarks/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseError_WrapMessageKeepsIdentity(t *testing.T) {
	err := ErrUserAlreadyExists.WrapMessage("email already exists")

	assert.True(t, errors.Is(err, ErrUserAlreadyExists))
	assert.False(t, errors.Is(err, ErrCredentialsIncorrect))

	var appErr AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusConflict, appErr.HTTPCode())
	assert.Equal(t, "USER_ALREADY_EXISTS", appErr.ErrorCode())
}

func TestBaseError_WithDetailsMatchesTemplate(t *testing.T) {
	err := ErrValidationFailed.WithDetails("email: must be a valid email")

	assert.True(t, errors.Is(err, ErrValidationFailed))
	assert.Equal(t, "email: must be a valid email", err.Details())
	assert.Empty(t, ErrValidationFailed.Details())
}

func TestCredentialsIncorrect_IsForbidden(t *testing.T) {
	assert.Equal(t, http.StatusForbidden, ErrCredentialsIncorrect.HTTPCode())
	assert.Equal(t, "Credentials Incorrect", ErrCredentialsIncorrect.Message())
}

func TestDatabaseExecuteError_Unwraps(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewDatabaseExecuteError(cause, "failed to find user")

	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, http.StatusServiceUnavailable, err.HTTPCode())
	assert.Equal(t, "failed to find user", err.Details())
	assert.Contains(t, err.Error(), "database execution failed")
}
