package application

import (
	"context"

	"astrochat/internal/domain"
	"astrochat/internal/ports/output"

	"github.com/sirupsen/logrus"
)

// ChatService struct - Application service implementing the chat use case
type ChatService struct {
	upstream output.GenerationClient
	fallback output.GenerationClient
}

// NewChatService func - Creates new chat service.
// upstream may be nil when no API credential is configured; every request
// then streams from the fallback corpus without touching the network.
func NewChatService(upstream, fallback output.GenerationClient) *ChatService {
	return &ChatService{
		upstream: upstream,
		fallback: fallback,
	}
}

// StreamChat func - Use case: answer a question as an incremental stream.
// The live endpoint is preferred when wired in; a failure to start it
// degrades to the fallback generator with the same parsed request, so the
// caller still gets a stream. Once a stream has started, failures travel
// inside it as error chunks and never restart generation on the other path.
func (s *ChatService) StreamChat(ctx context.Context, request domain.ChatRequest) (<-chan domain.StreamChunk, error) {
	if s.upstream != nil {
		chunkChan, err := s.upstream.StreamGenerate(ctx, request)
		if err == nil {
			return chunkChan, nil
		}
		logrus.Warnf("Upstream generation failed to start, falling back to canned answers: %v", err)
	}

	return s.fallback.StreamGenerate(ctx, request)
}

// LiveMode func - Reports whether a live upstream endpoint is wired in
func (s *ChatService) LiveMode() bool {
	return s.upstream != nil
}
