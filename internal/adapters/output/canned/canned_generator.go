package canned

import (
	"context"
	"strings"
	"time"

	"astrochat/configs"
	"astrochat/internal/domain"
	"astrochat/internal/ports/output"

	"github.com/sirupsen/logrus"
)

// Compile-time check to ensure CannedGeneratorAdapter implements GenerationClient interface
var _ output.GenerationClient = (*CannedGeneratorAdapter)(nil)

// Streaming configuration constants
const (
	streamingChannelBufferSize = 100
	defaultStreamDelay         = 30 * time.Millisecond
)

// CannedGeneratorAdapter struct - Output adapter streaming pre-authored answers.
// Implements the same port and chunk contract as the live Gemini adapter, so a
// consumer cannot tell a paced corpus answer from real generation. Answers are
// split into whitespace tokens and emitted with a fixed delay between tokens.
type CannedGeneratorAdapter struct {
	streamDelay time.Duration
}

// NewCannedGeneratorAdapter func - Creates new canned answer generator
func NewCannedGeneratorAdapter(config configs.Fallback) *CannedGeneratorAdapter {
	streamDelay := time.Duration(config.StreamDelayMS) * time.Millisecond
	if config.StreamDelayMS <= 0 {
		streamDelay = defaultStreamDelay
	}

	logrus.Infof("Canned answer generator initialized with stream delay: %v", streamDelay)

	return &CannedGeneratorAdapter{
		streamDelay: streamDelay,
	}
}

// StreamGenerate selects the answer for the request and streams it as paced
// token chunks. It never fails: the fallback path must always produce a
// stream, so the error return exists only to satisfy the port.
func (a *CannedGeneratorAdapter) StreamGenerate(ctx context.Context, request domain.ChatRequest) (<-chan domain.StreamChunk, error) {
	text := domain.SelectAnswer(request.Message, request.SearchType)

	chunkChan := make(chan domain.StreamChunk, streamingChannelBufferSize)

	go a.streamAnswer(ctx, text, chunkChan)

	logrus.Infof("Started canned answer stream, search type: %s", request.SearchType)

	return chunkChan, nil
}

// streamAnswer emits the answer one token at a time and closes the channel.
// Token boundaries are single spaces; the first token goes out bare and every
// later token carries its leading space, so concatenating all emitted content
// reproduces the answer byte for byte.
func (a *CannedGeneratorAdapter) streamAnswer(ctx context.Context, text string, chunkChan chan<- domain.StreamChunk) {
	defer func() {
		close(chunkChan)
		logrus.Debug("Canned answer stream completed, channel closed")
	}()

	// Splitting "" on spaces would yield one empty token; an empty answer
	// streams as zero content chunks instead.
	if text != "" {
		for i, token := range strings.Split(text, " ") {
			if i > 0 {
				token = " " + token
			}

			select {
			case <-ctx.Done():
				logrus.Debug("Canned answer stream cancelled by context")
				return
			case chunkChan <- domain.StreamChunk{Content: token}:
			}

			time.Sleep(a.streamDelay)
		}
	}

	select {
	case <-ctx.Done():
	case chunkChan <- domain.StreamChunk{Done: true}:
	}
}
