package health

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(t *testing.T, h http.HandlerFunc) (int, Response) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	var resp Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return rec.Code, resp
}

func TestLivenessHandler(t *testing.T) {
	code, resp := serve(t, NewHandler().LivenessHandler())
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, StatusUp, resp.Status)
	assert.False(t, resp.Timestamp.IsZero())
}

func TestReadinessHandler_AllUp(t *testing.T) {
	h := NewHandler()
	h.Register("postgres", func(ctx context.Context) error { return nil })
	h.Register("redis", func(ctx context.Context) error { return nil })

	code, resp := serve(t, h.ReadinessHandler())
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, StatusUp, resp.Checks["postgres"].Status)
	assert.Equal(t, StatusUp, resp.Checks["redis"].Status)
}

func TestReadinessHandler_OneDown(t *testing.T) {
	h := NewHandler()
	h.Register("postgres", func(ctx context.Context) error { return nil })
	h.Register("redis", func(ctx context.Context) error { return fmt.Errorf("connection refused") })

	code, resp := serve(t, h.ReadinessHandler())
	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.Equal(t, StatusDown, resp.Status)
	assert.Equal(t, "connection refused", resp.Checks["redis"].Error)
}

func TestNames_Sorted(t *testing.T) {
	h := NewHandler()
	h.Register("redis", nil)
	h.Register("kafka", nil)
	h.Register("postgres", nil)
	assert.Equal(t, []string{"kafka", "postgres", "redis"}, h.Names())
}
