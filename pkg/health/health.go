package health

import (
	"context"
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/utafrali/storefront/pkg/httputil"
)

// Checker reports whether a dependency is reachable.
type Checker func(ctx context.Context) error

// Status is the health state of a component.
type Status string

const (
	StatusUp   Status = "up"
	StatusDown Status = "down"
)

// Response is the body returned by the health endpoints.
type Response struct {
	Status    Status                 `json:"status"`
	Timestamp time.Time              `json:"timestamp"`
	Checks    map[string]CheckResult `json:"checks,omitempty"`
}

// CheckResult is the outcome of a single named check.
type CheckResult struct {
	Status Status `json:"status"`
	Error  string `json:"error,omitempty"`
}

// Handler serves liveness and readiness endpoints.
type Handler struct {
	mu       sync.RWMutex
	checkers map[string]Checker
	timeout  time.Duration
}

// NewHandler creates a health handler whose readiness checks share a 5s deadline.
func NewHandler() *Handler {
	return &Handler{
		checkers: make(map[string]Checker),
		timeout:  5 * time.Second,
	}
}

// Register adds a named readiness check.
func (h *Handler) Register(name string, checker Checker) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.checkers[name] = checker
}

// Names returns the registered check names in sorted order.
func (h *Handler) Names() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	names := make([]string, 0, len(h.checkers))
	for name := range h.checkers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LivenessHandler always answers 200 while the process runs.
func (h *Handler) LivenessHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httputil.WriteJSON(w, http.StatusOK, Response{
			Status:    StatusUp,
			Timestamp: time.Now().UTC(),
		})
	}
}

// ReadinessHandler runs every registered check concurrently and answers 200
// when all are up, 503 otherwise.
func (h *Handler) ReadinessHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
		defer cancel()

		h.mu.RLock()
		checkers := make(map[string]Checker, len(h.checkers))
		for k, v := range h.checkers {
			checkers[k] = v
		}
		h.mu.RUnlock()

		var (
			mu     sync.Mutex
			wg     sync.WaitGroup
			checks = make(map[string]CheckResult, len(checkers))
			status = StatusUp
		)
		for name, check := range checkers {
			wg.Add(1)
			go func(name string, check Checker) {
				defer wg.Done()
				res := CheckResult{Status: StatusUp}
				if err := check(ctx); err != nil {
					res = CheckResult{Status: StatusDown, Error: err.Error()}
				}
				mu.Lock()
				checks[name] = res
				if res.Status == StatusDown {
					status = StatusDown
				}
				mu.Unlock()
			}(name, check)
		}
		wg.Wait()

		code := http.StatusOK
		if status == StatusDown {
			code = http.StatusServiceUnavailable
		}
		httputil.WriteJSON(w, code, Response{
			Status:    status,
			Timestamp: time.Now().UTC(),
			Checks:    checks,
		})
	}
}
