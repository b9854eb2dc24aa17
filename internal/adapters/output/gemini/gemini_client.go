package gemini

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"astrochat/configs"
	"astrochat/internal/domain"

	"github.com/sirupsen/logrus"
)

// GeminiClientAdapter struct - Output adapter for the Gemini generateContent API
type GeminiClientAdapter struct {
	httpClient      *http.Client
	baseURL         string
	apiKey          string
	model           string
	maxOutputTokens int
}

// NewGeminiClientAdapter func - Creates new Gemini client adapter
func NewGeminiClientAdapter(config configs.Gemini) (*GeminiClientAdapter, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}

	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = "https://generativelanguage.googleapis.com"
	}

	// Remove trailing slash if present
	baseURL = strings.TrimSuffix(baseURL, "/")

	model := config.Model
	if model == "" {
		model = "gemini-1.5-flash"
	}

	maxOutputTokens := config.MaxOutputTokens
	if maxOutputTokens <= 0 {
		maxOutputTokens = 1024
	}

	headerTimeout := time.Duration(config.Timeout) * time.Second
	if config.Timeout <= 0 {
		headerTimeout = 60 * time.Second
	}

	// No overall client timeout: a generation stream runs until the upstream
	// closes the body or the request context is cancelled. The header timeout
	// only bounds how long call initiation may hang.
	httpClient := &http.Client{
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout:   30 * time.Second,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			MaxIdleConns:          100,
			MaxIdleConnsPerHost:   100,
			IdleConnTimeout:       90 * time.Second,
			ResponseHeaderTimeout: headerTimeout,
		},
	}

	adapter := &GeminiClientAdapter{
		httpClient:      httpClient,
		baseURL:         baseURL,
		apiKey:          config.APIKey,
		model:           model,
		maxOutputTokens: maxOutputTokens,
	}

	logrus.Infof("Gemini client adapter initialized with base URL: %s, model: %s", baseURL, model)

	return adapter, nil
}

// Streaming configuration constants
const (
	streamingChannelBufferSize = 100
)

// Generation temperature by search mode
const (
	ragTemperature = 0.7
	webTemperature = 0.8
)

// Instruction prefixes applied to the user's question before it is sent
// upstream. Web mode asks the model to synthesize current published research;
// knowledge-base mode keeps it grounded in established findings.
const (
	ragInstruction = "You are a space biology research assistant. Answer using established findings from NASA-sponsored space biology research. Be accurate, keep the answer focused, format it in markdown, and say so plainly when something is outside your knowledge.\n\nQuestion: "
	webInstruction = "You are a space biology research assistant with web search enabled. Answer as a synthesis of current published research and name the kinds of sources you draw on. Be accurate, keep the answer focused, and format it in markdown.\n\nQuestion: "
)

// buildPrompt combines the instruction prefix for the request's search mode
// with the user's question and picks the matching sampling temperature
func buildPrompt(request domain.ChatRequest) (string, float64) {
	if request.SearchType == domain.SearchTypeWeb {
		return webInstruction + request.Message, webTemperature
	}
	return ragInstruction + request.Message, ragTemperature
}

// StreamGenerate sends a streaming generate request to the Gemini API
// Returns a read-only channel that emits StreamChunk as text arrives
func (a *GeminiClientAdapter) StreamGenerate(ctx context.Context, request domain.ChatRequest) (<-chan domain.StreamChunk, error) {
	prompt, temperature := buildPrompt(request)

	reqBody := generateAPIRequest{
		Contents: []contentAPI{
			{Parts: []partAPI{{Text: prompt}}},
		},
		GenerationConfig: generationConfigAPI{
			Temperature:     temperature,
			MaxOutputTokens: a.maxOutputTokens,
		},
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal generate request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:streamGenerateContent?key=%s", a.baseURL, a.model, a.apiKey)

	// Create request (no retry - a failed initiation degrades to the
	// fallback corpus, so immediate feedback beats waiting out a backoff)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to create streaming request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	// Send request
	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, err)
	}

	// Check response status
	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()

		if resp.StatusCode < 500 {
			return nil, fmt.Errorf("%w: status %d - %s", domain.ErrInvalidRequest, resp.StatusCode, string(body))
		}
		return nil, fmt.Errorf("%w: status %d - %s", domain.ErrUpstreamUnavailable, resp.StatusCode, string(body))
	}

	// Create buffered channel for chunks
	chunkChan := make(chan domain.StreamChunk, streamingChannelBufferSize)

	// Launch goroutine to parse the NDJSON body and emit chunks
	go a.relayStreamingResponse(ctx, resp, chunkChan)

	logrus.Infof("Started streaming generation with model: %s", a.model)

	return chunkChan, nil
}

// relayStreamingResponse reads the newline-delimited JSON body and sends the
// extracted text fragments to the channel
// This runs in a goroutine and is responsible for closing the channel when done
func (a *GeminiClientAdapter) relayStreamingResponse(ctx context.Context, resp *http.Response, chunkChan chan<- domain.StreamChunk) {
	// Ensure cleanup happens
	defer func() {
		resp.Body.Close()
		close(chunkChan)
		logrus.Debug("Generation stream processing completed, channel closed")
	}()

	// The reader carries any bytes after the last terminator across reads,
	// so records split across network chunk boundaries reassemble correctly.
	reader := bufio.NewReader(resp.Body)

	for {
		// Check context cancellation before reading
		select {
		case <-ctx.Done():
			logrus.Debug("Generation stream cancelled by context")
			a.sendChunk(ctx, chunkChan, domain.StreamChunk{
				Done:  true,
				Error: fmt.Errorf("streaming cancelled: %w", ctx.Err()),
			})
			return
		default:
		}

		// Read up to the next line terminator
		line, err := reader.ReadString('\n')
		if err != nil {
			if errors.Is(err, io.EOF) {
				// Body ended. Whatever is left in line never got its
				// terminator, so it is dropped rather than parsed.
				logrus.Debug("Generation stream EOF reached")
				a.sendChunk(ctx, chunkChan, domain.StreamChunk{
					Done: true,
				})
			} else {
				logrus.Errorf("Error reading generation stream: %v", err)
				a.sendChunk(ctx, chunkChan, domain.StreamChunk{
					Done:  true,
					Error: fmt.Errorf("%w: %v", domain.ErrStreamInterrupted, err),
				})
			}
			return
		}

		line = strings.TrimSpace(line)

		// Skip empty lines
		if line == "" {
			continue
		}

		// Parse NDJSON record
		text, err := a.parseStreamLine(line)
		if err != nil {
			logrus.Debugf("Skipping malformed stream line: %v", err)
			continue // Skip malformed lines but continue processing
		}

		// Records without a text fragment contribute nothing
		if text == "" {
			continue
		}

		a.sendChunk(ctx, chunkChan, domain.StreamChunk{Content: text})
	}
}

// sendChunk delivers a chunk unless the request context has been cancelled.
// Delivery blocks when the consumer falls behind the channel buffer.
func (a *GeminiClientAdapter) sendChunk(ctx context.Context, chunkChan chan<- domain.StreamChunk, chunk domain.StreamChunk) {
	select {
	case <-ctx.Done():
	case chunkChan <- chunk:
	}
}

// parseStreamLine parses a single NDJSON line and extracts the text fragment
// Returns (text, error) where:
//   - text: the generated fragment ("" if the record carries none)
//   - error: parsing error (non-fatal, caller should skip the line)
func (a *GeminiClientAdapter) parseStreamLine(line string) (string, error) {
	var record generateStreamRecord
	if err := json.Unmarshal([]byte(line), &record); err != nil {
		return "", fmt.Errorf("failed to parse stream record: %w", err)
	}

	// Every level of the record is optional
	if len(record.Candidates) == 0 {
		return "", nil
	}

	parts := record.Candidates[0].Content.Parts
	if len(parts) == 0 {
		return "", nil
	}

	return parts[0].Text, nil
}

// API request/response structures for the Gemini generateContent API

// partAPI represents one text part of a content turn
type partAPI struct {
	Text string `json:"text"`
}

// contentAPI represents a content turn in the API request
type contentAPI struct {
	Parts []partAPI `json:"parts"`
	Role  string    `json:"role,omitempty"`
}

// generationConfigAPI represents sampling parameters for the request
type generationConfigAPI struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

// generateAPIRequest represents the request body for streamGenerateContent
type generateAPIRequest struct {
	Contents         []contentAPI        `json:"contents"`
	GenerationConfig generationConfigAPI `json:"generationConfig"`
}

// generateStreamRecord represents a single newline-delimited JSON record from
// the streaming generate endpoint
type generateStreamRecord struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
		FinishReason string `json:"finishReason,omitempty"`
	} `json:"candidates"`
}
