package coach

import (
	"errors"
	"fmt"

	"github.com/2beens/fitadapt/internal/completion"
)

// Pipeline failures. Every error returned by a generator wraps exactly one of these.
var (
	ErrUnauthenticated       = errors.New("user not authenticated")
	ErrProfileMissing        = errors.New("profile not found")
	ErrUpstreamMisconfigured = errors.New("completion service not configured")
	ErrUpstreamUnavailable   = errors.New("completion service unavailable")
	ErrMalformedCompletion   = errors.New("invalid AI response format")
	ErrPersistenceFailed     = errors.New("database insert error")
)

// Outcome names a pipeline result for metrics.
func Outcome(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, ErrUnauthenticated):
		return "unauthenticated"
	case errors.Is(err, ErrProfileMissing):
		return "profile_missing"
	case errors.Is(err, ErrUpstreamMisconfigured):
		return "upstream_misconfigured"
	case errors.Is(err, ErrUpstreamUnavailable):
		return "upstream_unavailable"
	case errors.Is(err, ErrMalformedCompletion):
		return "malformed_completion"
	case errors.Is(err, ErrPersistenceFailed):
		return "persistence_failed"
	default:
		return "error"
	}
}

func completionError(err error) error {
	switch {
	case errors.Is(err, completion.ErrMisconfigured):
		return fmt.Errorf("%w: %w", ErrUpstreamMisconfigured, err)
	case errors.Is(err, completion.ErrMalformedResponse):
		return fmt.Errorf("%w: %w", ErrMalformedCompletion, err)
	default:
		return fmt.Errorf("%w: %w", ErrUpstreamUnavailable, err)
	}
}

func unauthenticated(err error) error {
	return fmt.Errorf("%w: %w", ErrUnauthenticated, err)
}
