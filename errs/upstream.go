package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Upstream fetch boundary errors. Every call through the gateway classifies
// its failure as exactly one of these before returning to a caller.
var (
	// ErrNetwork covers transport-level failures: DNS, refused connections,
	// resets, timeouts. Recoverable by a user-initiated retry.
	ErrNetwork = errors.New("network error")

	// ErrDecodeFailure marks a malformed id token from a URL. Terminal; maps
	// to a not-found user state and is never retried.
	ErrDecodeFailure = errors.New("id token decode failure")

	// ErrEmptyBody marks a structurally missing response payload where the
	// endpoint contract requires one.
	ErrEmptyBody = errors.New("empty response body")
)

// HttpError is a non-2xx response from the upstream API. The body is kept for
// diagnostics only and is never shown to users.
type HttpError struct {
	Status int
	Body   string
}

func (e *HttpError) Error() string {
	return fmt.Sprintf("upstream returned status %d", e.Status)
}

func NewNetworkError(cause error) error {
	return fmt.Errorf("%w: %v", ErrNetwork, cause)
}

func IsNetworkError(err error) bool {
	return errors.Is(err, ErrNetwork)
}

func IsDecodeFailure(err error) bool {
	return errors.Is(err, ErrDecodeFailure)
}

// IsUpstreamNotFound reports whether err is a 404-class response from the
// upstream API. For detail resolution this is equivalent to "no such record".
func IsUpstreamNotFound(err error) bool {
	var httpErr *HttpError
	if errors.As(err, &httpErr) {
		return httpErr.Status == http.StatusNotFound || httpErr.Status == http.StatusGone
	}
	return false
}
