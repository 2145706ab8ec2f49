package httpclient

import (
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/utafrali/storefront/pkg/errors"
)

func makeResponse(statusCode int, body string) *http.Response {
	return &http.Response{
		StatusCode: statusCode,
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func structuredError(code, message string) string {
	return `{"error":{"code":"` + code + `","message":"` + message + `"}}`
}

func TestParseResponseError_Structured(t *testing.T) {
	tests := []struct {
		status   int
		sentinel error
	}{
		{http.StatusNotFound, apperrors.ErrNotFound},
		{http.StatusBadRequest, apperrors.ErrInvalidInput},
		{http.StatusConflict, apperrors.ErrConflict},
		{http.StatusServiceUnavailable, apperrors.ErrServiceUnavail},
	}
	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			err := ParseResponseError(makeResponse(tt.status, structuredError("X", "msg")), "flow")
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.sentinel))
		})
	}
}

func TestParseResponseError_ServerError(t *testing.T) {
	err := ParseResponseError(makeResponse(http.StatusBadGateway, structuredError("UPSTREAM", "gateway")), "flow")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
	assert.Contains(t, err.Error(), "UPSTREAM")
}

func TestParseResponseError_Unstructured(t *testing.T) {
	err := ParseResponseError(makeResponse(http.StatusTeapot, "short and stout"), "flow")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "418")
	assert.Contains(t, err.Error(), "short and stout")
}
