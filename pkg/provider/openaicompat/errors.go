package openaicompat

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"

	"github.com/weiche-dev/weiche/pkg/api"
)

// MapHTTPError converts a backend response with a non-2xx status code into
// a canonical APIError. The body is parsed as an ErrorResponse to recover
// the vendor's message when one is present.
func MapHTTPError(resp *http.Response) *api.APIError {
	message := ExtractErrorMessage(resp.Body)

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		if message == "" {
			message = "backend rejected the credential"
		}
		return api.NewAuthenticationError(resp.StatusCode, message)

	case resp.StatusCode == http.StatusBadRequest ||
		resp.StatusCode == http.StatusNotFound ||
		resp.StatusCode == http.StatusUnprocessableEntity:
		if message == "" {
			message = "invalid request to backend"
		}
		return api.NewInvalidRequestError(resp.StatusCode, message)

	case resp.StatusCode == http.StatusTooManyRequests:
		if message == "" {
			message = "backend rate limit exceeded"
		}
		return api.NewRateLimitError(resp.StatusCode, message)

	case resp.StatusCode >= http.StatusInternalServerError:
		if message == "" {
			message = fmt.Sprintf("backend server error (HTTP %d)", resp.StatusCode)
		}
		return api.NewServerError(resp.StatusCode, message)

	default:
		if message == "" {
			message = fmt.Sprintf("unexpected backend error (HTTP %d)", resp.StatusCode)
		}
		return api.NewUnknownError(resp.StatusCode, message)
	}
}

// MapNetworkError converts a transport-level failure (no HTTP status) into
// a canonical APIError. Deadline and cancellation failures become timeout
// errors, the one kind callers may treat as transient; everything else
// (connection refused, DNS failure) becomes a server error.
func MapNetworkError(err error) *api.APIError {
	if errors.Is(err, context.DeadlineExceeded) {
		return api.NewTimeoutError("backend request deadline exceeded: " + err.Error())
	}
	if errors.Is(err, context.Canceled) {
		return api.NewTimeoutError("backend request cancelled: " + err.Error())
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return api.NewTimeoutError("backend request timed out: " + err.Error())
	}

	return api.NewServerError(0, "backend connection error: "+err.Error())
}

// ExtractErrorMessage tries to parse the response body as an ErrorResponse
// and returns the vendor's message if found.
func ExtractErrorMessage(body io.Reader) string {
	if body == nil {
		return ""
	}

	data, err := io.ReadAll(io.LimitReader(body, 4096))
	if err != nil || len(data) == 0 {
		return ""
	}

	var errResp ErrorResponse
	if err := json.Unmarshal(data, &errResp); err == nil && errResp.Error.Message != "" {
		return errResp.Error.Message
	}

	return ""
}
