package http

import (
	"bufio"
	"context"

	"astrochat/internal/domain"
	"astrochat/internal/ports/input"
	"astrochat/pkg/validator"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// plainTextUTF8 is the content type of every streamed answer body
const plainTextUTF8 = "text/plain; charset=utf-8"

// apologyText is the non-streamed last resort when no generator could
// produce a stream at all
const apologyText = "I'm sorry, something went wrong while preparing your answer. Please try again in a moment."

// HTTPHandler struct - Primary/Driving adapter for HTTP
type HTTPHandler struct {
	srv       input.ChatService
	validator validator.Validator
}

// New func - Creates new HTTP handler
func New(srv input.ChatService) *HTTPHandler {
	return &HTTPHandler{
		srv:       srv,
		validator: validator.New(),
	}
}

// HealthCheck func
// HealthCheck godoc
// @Summary Health check
// @Description Reports liveness and whether answers come from the live endpoint or the built-in corpus
// @Tags HEALTH
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
// @Produce json
func (hdl *HTTPHandler) HealthCheck(c *fiber.Ctx) error {
	mode := "fallback"
	if hdl.srv.LiveMode() {
		mode = "live"
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: HealthResponse{Mode: mode}})
}

// Chat func
/* stream chat answer */
// Chat godoc
// @Summary Ask the assistant
// @Description Streams the answer to a space biology question as plain text chunks
// @Tags CHAT
// @Accept application/json
// @Success 200 {string} string "streamed answer text"
// @Failure 400 {object} ErrorResponse
// @Router /v1/api/chat [post]
// @Produce plain
// @param ChatRequest body ChatRequest true "ChatRequest"
func (hdl *HTTPHandler) Chat(c *fiber.Ctx) error {
	var request ChatRequest
	if err := c.BodyParser(&request); err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid request body"})
	}
	if err := hdl.validator.ValidateStruct(request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "message is required"})
	}

	// Parse once into an immutable domain value. Every downstream path,
	// including fallback substitution inside the service, sees this same
	// value; the raw body is never consumed again.
	domainReq := domain.ChatRequest{
		Message:    request.Message,
		SearchType: domain.NormalizeSearchType(request.SearchType),
	}

	requestID := uuid.New().String()
	logrus.Infof("Chat request %s: search type %s, message length %d", requestID, domainReq.SearchType, len(domainReq.Message))

	ctx, cancel := context.WithCancel(c.Context())

	chunkChan, err := hdl.srv.StreamChat(ctx, domainReq)
	if err != nil {
		// No generator could produce a stream. Nothing has been written
		// yet, so a plain non-streamed apology is still possible.
		cancel()
		logrus.Errorf("Chat request %s could not start any stream: %v", requestID, err)
		c.Set(fiber.HeaderContentType, plainTextUTF8)
		return c.Status(fiber.StatusOK).SendString(apologyText)
	}

	// Commitment point: from here the response is a chunked plain-text
	// stream. Failures past this point end the body early; they never
	// switch to a second framing.
	c.Set(fiber.HeaderContentType, plainTextUTF8)
	c.Context().SetBodyStreamWriter(func(w *bufio.Writer) {
		defer func() {
			cancel()
			// Unblock the producer if writing stopped before it finished
			for range chunkChan {
			}
		}()

		for chunk := range chunkChan {
			if chunk.Error != nil {
				logrus.Errorf("Chat request %s stream interrupted: %v", requestID, chunk.Error)
				return
			}
			if chunk.Done {
				logrus.Debugf("Chat request %s stream completed", requestID)
				return
			}
			if _, err := w.WriteString(chunk.Content); err != nil {
				logrus.Debugf("Chat request %s client stopped reading: %v", requestID, err)
				return
			}
			if err := w.Flush(); err != nil {
				logrus.Debugf("Chat request %s client stopped reading: %v", requestID, err)
				return
			}
		}
	})

	return nil
}
