package utils

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError(t *testing.T) {
	err := NotFound("Reservation ID cannot be found: %d", 99)
	assert.Equal(t, http.StatusNotFound, err.Status)
	assert.Equal(t, "Reservation ID cannot be found: 99", err.Error())

	wrapped := fmt.Errorf("handler: %w", BadRequest("people is required"))
	appErr, ok := AsAppError(wrapped)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, appErr.Status)

	_, ok = AsAppError(errors.New("plain"))
	assert.False(t, ok)
}

func TestInternalKeepsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Internal(cause)
	assert.Equal(t, http.StatusInternalServerError, err.Status)
	assert.Equal(t, "Internal Server Error", err.Message)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, http.StatusConflict, Conflict("x").Status)
	assert.Equal(t, http.StatusMethodNotAllowed, MethodNotAllowed("x").Status)
}
