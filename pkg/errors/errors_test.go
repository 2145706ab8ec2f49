package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_ErrorString(t *testing.T) {
	appErr := &AppError{Code: "NOT_FOUND", Message: "item not found"}
	assert.Equal(t, "NOT_FOUND: item not found", appErr.Error())

	wrapped := &AppError{Code: "INTERNAL_ERROR", Message: "boom", Err: fmt.Errorf("db lost")}
	assert.Contains(t, wrapped.Error(), "db lost")
}

func TestConstructors_WrapSentinels(t *testing.T) {
	assert.True(t, errors.Is(NotFound("item", "7"), ErrNotFound))
	assert.True(t, errors.Is(InvalidInput("bad"), ErrInvalidInput))
	assert.True(t, errors.Is(Conflict("race"), ErrConflict))
	assert.True(t, errors.Is(Unavailable("redis", fmt.Errorf("dial")), ErrServiceUnavail))
}

func TestNotFound_Message(t *testing.T) {
	err := NotFound("item", "42")
	assert.Equal(t, "item 42 not found", err.Message)
	assert.Equal(t, http.StatusNotFound, err.Status)
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"app error", InvalidInput("x"), http.StatusBadRequest},
		{"wrapped app error", fmt.Errorf("ctx: %w", NotFound("cart", "s1")), http.StatusNotFound},
		{"bare sentinel", fmt.Errorf("wrap: %w", ErrConflict), http.StatusConflict},
		{"unavailable sentinel", ErrServiceUnavail, http.StatusServiceUnavailable},
		{"unknown", fmt.Errorf("something"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}

func TestInternal_HidesCause(t *testing.T) {
	cause := fmt.Errorf("pq: relation missing")
	err := Internal(cause)
	require.Equal(t, "an internal error occurred", err.Message)
	assert.True(t, errors.Is(err, cause))
}
