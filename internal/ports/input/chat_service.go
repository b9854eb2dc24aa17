package input

import (
	"context"

	"astrochat/internal/domain"
)

// ChatService interface - Input port (use case)
// Defines what the application can do with a chat question
type ChatService interface {
	// StreamChat answers the request as an incremental text stream.
	// The returned channel follows the GenerationClient chunk contract.
	// An error return means no stream could be produced at all; once a
	// channel is returned, failures travel inside it as error chunks.
	StreamChat(ctx context.Context, request domain.ChatRequest) (<-chan domain.StreamChunk, error)

	// LiveMode reports whether answers come from the live generation
	// endpoint (true) or the built-in corpus (false).
	LiveMode() bool
}
