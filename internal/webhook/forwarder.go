// Package webhook forwards submitted orders to an external flow endpoint
// that sends the confirmation email.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/utafrali/storefront/internal/domain"
	"github.com/utafrali/storefront/pkg/httpclient"
)

// webhookTarget names the flow endpoint in errors.
const webhookTarget = "order webhook"

// Forwarder posts order payloads to a webhook URL through a circuit breaker.
type Forwarder struct {
	url    string
	client *httpclient.CircuitBreakerClient
	logger *slog.Logger
}

// NewForwarder creates a forwarder for url. An empty url disables forwarding.
func NewForwarder(url string, client *httpclient.CircuitBreakerClient, logger *slog.Logger) *Forwarder {
	return &Forwarder{url: url, client: client, logger: logger}
}

// Enabled reports whether a webhook URL is configured.
func (f *Forwarder) Enabled() bool {
	return f.url != ""
}

// Forward posts req as JSON. Any non-2xx response is an error; structured
// error envelopes from the flow keep their apperrors kind.
func (f *Forwarder) Forward(ctx context.Context, req domain.OrderRequest) error {
	if !f.Enabled() {
		return nil
	}

	body, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("marshal webhook payload: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, f.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create webhook request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "*/*")

	resp, err := f.client.Do(ctx, httpReq)
	if err != nil {
		return fmt.Errorf("post webhook: %w", err)
	}
	if !httpclient.IsSuccess(resp.StatusCode) {
		return fmt.Errorf("post webhook: %w", httpclient.ParseResponseError(resp, webhookTarget))
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	f.logger.InfoContext(ctx, "order confirmation webhook delivered",
		slog.Int("status", resp.StatusCode),
	)
	return nil
}
