package http

import (
	"errors"
	"strconv"
	"unicode/utf8"

	"github.com/gofiber/fiber/v2"

	"github.com/canarias-tourism/backend/internal/domain"
	"github.com/canarias-tourism/backend/internal/service"
)

// Message length bounds enforced at the boundary, not in the core.
const (
	minMessageLength = 1
	maxMessageLength = 1000
)

// ChatRequest is the body of the chat endpoint.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse carries the assistant's answer.
type ChatResponse struct {
	Response string `json:"response"`
}

// Handler contains all HTTP handlers
type Handler struct {
	assistant *service.Assistant
	retriever *service.Retriever
}

// NewHandler creates a new handler
func NewHandler(assistant *service.Assistant, retriever *service.Retriever) *Handler {
	return &Handler{
		assistant: assistant,
		retriever: retriever,
	}
}

// Root returns the service banner
func (h *Handler) Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "Canarias Tourism AI Assistant API",
		"version": "1.0.0",
		"status":  "online",
		"endpoints": fiber.Map{
			"chat":   "/api/v1/chat",
			"health": "/health",
		},
	})
}

// HealthCheck returns service health status and dataset state
func (h *Handler) HealthCheck(c *fiber.Ctx) error {
	datasetStatus := "loaded"
	if h.retriever.RecordCount() == 0 {
		datasetStatus = "empty"
	}
	return c.JSON(fiber.Map{
		"status":       "ok",
		"service":      "canarias-tourism-backend",
		"version":      "1.0.0",
		"dataset":      datasetStatus,
		"data_records": h.retriever.RecordCount(),
	})
}

// Chat answers one tourism question
func (h *Handler) Chat(c *fiber.Ctx) error {
	var req ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	length := utf8.RuneCountInString(req.Message)
	if length < minMessageLength || length > maxMessageLength {
		return fiber.NewError(fiber.StatusBadRequest, "Message must be between 1 and 1000 characters")
	}

	answer, err := h.assistant.Answer(c.Context(), req.Message)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to generate answer")
	}

	return c.JSON(ChatResponse{Response: answer})
}

// IslandSummary returns aggregate statistics for one island
func (h *Handler) IslandSummary(c *fiber.Ctx) error {
	code, err := strconv.Atoi(c.Params("code"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Island code must be a number")
	}
	if _, ok := domain.IslandName(code); !ok {
		return fiber.NewError(fiber.StatusBadRequest, "Unknown island code")
	}

	summary, err := h.retriever.SummarizeIsland(code)
	if err != nil {
		if errors.Is(err, domain.ErrNoIslandData) {
			return fiber.NewError(fiber.StatusNotFound, "No data available for this island")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to summarize island")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    summary,
	})
}
