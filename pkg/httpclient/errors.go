package httpclient

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	apperrors "github.com/utafrali/storefront/pkg/errors"
)

// maxErrorBody bounds how much of an error response body is read.
const maxErrorBody = 1 << 20

// downstreamError mirrors httputil.ErrorResponse inside the response envelope.
type downstreamError struct {
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// ParseResponseError consumes and closes the body of a non-2xx response and
// translates it into an error. Structured envelopes keep their code and
// message; anything else is reported with the raw body.
func ParseResponseError(resp *http.Response, target string) error {
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil {
		return fmt.Errorf("%s returned status %d (failed to read body: %w)", target, resp.StatusCode, err)
	}

	var de downstreamError
	if json.Unmarshal(body, &de) == nil && de.Error != nil {
		msg := fmt.Sprintf("%s: %s", target, de.Error.Message)
		switch {
		case resp.StatusCode == http.StatusNotFound:
			return apperrors.NotFound(target, de.Error.Message)
		case resp.StatusCode == http.StatusBadRequest:
			return apperrors.InvalidInput(msg)
		case resp.StatusCode == http.StatusConflict:
			return apperrors.Conflict(msg)
		case resp.StatusCode == http.StatusServiceUnavailable:
			return apperrors.Unavailable(target, fmt.Errorf("%s", de.Error.Message))
		case resp.StatusCode >= 500:
			return fmt.Errorf("%s server error (%d/%s): %s", target, resp.StatusCode, de.Error.Code, de.Error.Message)
		default:
			return &apperrors.AppError{Code: de.Error.Code, Message: msg, Status: resp.StatusCode}
		}
	}

	return fmt.Errorf("%s returned status %d: %s", target, resp.StatusCode, string(body))
}

// IsSuccess reports whether status is in the 2xx range.
func IsSuccess(status int) bool {
	return status >= 200 && status < 300
}
