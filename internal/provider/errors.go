package provider

import (
	"errors"
	"fmt"
)

// ErrQuotaExceeded is returned by RateLimiter.Acquire once the daily call cap
// has been reached. The failed call is not recorded against the quota.
var ErrQuotaExceeded = errors.New("daily API call quota exceeded")

// Reason classifies why a provider call failed.
type Reason string

const (
	ReasonQuota        Reason = "quota_exceeded"
	ReasonTransport    Reason = "transport"
	ReasonHTTPStatus   Reason = "http_status"
	ReasonErrorPayload Reason = "error_payload"
	ReasonBadPayload   Reason = "bad_payload"
)

// APIError represents a classified failure at the provider boundary.
type APIError struct {
	Op     string // "quote", "series" or "search"
	Reason Reason
	Err    error
}

func (e *APIError) Error() string {
	return fmt.Sprintf("provider %s (%s): %v", e.Op, e.Reason, e.Err)
}

func (e *APIError) Unwrap() error { return e.Err }
