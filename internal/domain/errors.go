package domain

import "errors"

// Upstream generation error types

var (
	// ErrUpstreamUnavailable indicates the generation service is unavailable
	ErrUpstreamUnavailable = errors.New("generation service unavailable")

	// ErrStreamInterrupted indicates the upstream stream failed after it started
	ErrStreamInterrupted = errors.New("generation stream interrupted")

	// ErrInvalidRequest indicates an invalid request was made (4xx client errors)
	ErrInvalidRequest = errors.New("invalid request")
)
