package llm

import (
	"context"
	"errors"
	"net"

	"github.com/sashabaranov/go-openai"
)

// ErrAllProvidersFailed is returned once the whole fallback chain is
// exhausted or a fatal provider error ends the request early.
var ErrAllProvidersFailed = errors.New("all interpretation providers failed")

// IsTransient reports whether a provider error is worth retrying: timeouts,
// provider-side rate limits and 5xx responses. Credential and request-shape
// errors are fatal for the request and retrying them cannot help.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return retriableStatus(apiErr.HTTPStatusCode)
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return retriableStatus(reqErr.HTTPStatusCode)
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	// Unclassified transport failures (connection reset, DNS) are treated
	// as transient so a healthy fallback still gets its chance.
	var opErr *net.OpError
	return errors.As(err, &opErr)
}

func retriableStatus(code int) bool {
	switch {
	case code == 408 || code == 429:
		return true
	case code >= 500:
		return true
	default:
		return false
	}
}
