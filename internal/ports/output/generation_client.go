package output

import (
	"context"

	"astrochat/internal/domain"
)

// GenerationClient interface - Output port
// Defines what the application needs from a text generation source. Both the
// live Gemini adapter and the canned fallback generator implement it, so
// callers cannot tell real generation from simulated streaming.
type GenerationClient interface {
	// StreamGenerate starts generating an answer for the request.
	// It returns a read-only channel that emits StreamChunk values as text
	// becomes available. The channel is closed when the stream completes or
	// an error occurs. If an error occurs during streaming, a chunk with
	// Error set and Done=true is sent before the channel is closed.
	// Returns an error if the request fails before streaming begins; in that
	// case no channel is created and nothing has been emitted.
	StreamGenerate(ctx context.Context, request domain.ChatRequest) (<-chan domain.StreamChunk, error)
}
