package httpclient

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/utafrali/storefront/pkg/logger"
)

func testCBConfig(name string) CircuitBreakerConfig {
	return CircuitBreakerConfig{
		Name:         name,
		MaxRequests:  1,
		Interval:     time.Minute,
		Timeout:      time.Second,
		FailureRatio: 0.5,
		MinRequests:  3,
	}
}

func TestCircuitBreaker_ClosedOnSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	cb := NewCircuitBreakerClient(New(SingleShotConfig()), testCBConfig("test-closed"), logger.Discard())
	resp, err := cb.Post(context.Background(), server.URL, "application/json", strings.NewReader("{}"))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusAccepted, resp.StatusCode)
	assert.Equal(t, gobreaker.StateClosed, cb.State())
}

func TestCircuitBreaker_TripsOn5xx(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	cb := NewCircuitBreakerClient(New(SingleShotConfig()), testCBConfig("test-trip"), logger.Discard())
	for i := 0; i < 3; i++ {
		_, err := cb.Post(context.Background(), server.URL, "application/json", strings.NewReader("{}"))
		require.Error(t, err)
	}
	assert.Equal(t, gobreaker.StateOpen, cb.State())

	_, err := cb.Post(context.Background(), server.URL, "application/json", strings.NewReader("{}"))
	assert.True(t, errors.Is(err, ErrCircuitOpen))
}

func TestCircuitBreaker_CountsRejectedRequests(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	cb := NewCircuitBreakerClient(New(SingleShotConfig()), testCBConfig("test-rejected"), logger.Discard())
	for i := 0; i < 3; i++ {
		_, _ = cb.Post(context.Background(), server.URL, "application/json", strings.NewReader("{}"))
	}
	require.Equal(t, gobreaker.StateOpen, cb.State())

	for i := 0; i < 2; i++ {
		_, err := cb.Post(context.Background(), server.URL, "application/json", strings.NewReader("{}"))
		require.ErrorIs(t, err, ErrCircuitOpen)
		assert.Contains(t, err.Error(), "test-rejected")
	}

	assert.Equal(t, int32(3), hits.Load())
	assert.Equal(t, float64(2), testutil.ToFloat64(circuitBreakerRejected.WithLabelValues("test-rejected")))
}
