// Package client submits orders to the storefront backend.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/utafrali/storefront/internal/domain"
	"github.com/utafrali/storefront/pkg/httpclient"
)

// SubmitOrderPath is the order intake endpoint.
const SubmitOrderPath = "/submit_order"

// SubmissionError reports a failed order submission. Status is zero when no
// response was received.
type SubmissionError struct {
	Status int
	Err    error
}

func (e *SubmissionError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("submit order: %v", e.Err)
	}
	return fmt.Sprintf("submit order: status %d: %v", e.Status, e.Err)
}

func (e *SubmissionError) Unwrap() error { return e.Err }

// OrderClient posts orders to a storefront backend.
type OrderClient struct {
	http    *httpclient.Client
	baseURL string
}

// NewOrderClient creates a client for the backend at baseURL. An empty
// baseURL posts to the page's own origin.
func NewOrderClient(baseURL string, cfg httpclient.Config) *OrderClient {
	return &OrderClient{
		http:    httpclient.New(cfg),
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// Submit posts req. Success is a 2xx response carrying a JSON body; anything
// else is a *SubmissionError.
func (c *OrderClient) Submit(ctx context.Context, req domain.OrderRequest) error {
	body, err := json.Marshal(req)
	if err != nil {
		return &SubmissionError{Err: fmt.Errorf("marshal order: %w", err)}
	}

	resp, err := c.http.Post(ctx, c.baseURL+SubmitOrderPath, "application/json", bytes.NewReader(body))
	if err != nil {
		return &SubmissionError{Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &SubmissionError{Status: resp.StatusCode, Err: fmt.Errorf("read response: %w", err)}
	}

	if !httpclient.IsSuccess(resp.StatusCode) {
		return &SubmissionError{Status: resp.StatusCode, Err: fmt.Errorf("unexpected status %s", http.StatusText(resp.StatusCode))}
	}
	if !json.Valid(data) {
		return &SubmissionError{Status: resp.StatusCode, Err: fmt.Errorf("response is not JSON")}
	}
	return nil
}
