package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// AnswerGenerator is the external text-generation call: a system prompt
// and a user message in, generated text out.
type AnswerGenerator interface {
	Complete(ctx context.Context, systemPrompt, userMessage string) (string, error)
}

// Assistant ties the pipeline together: domain gate, retrieval, prompt
// assembly and the generation call.
type Assistant struct {
	gate      *DomainGate
	retriever *Retriever
	generator AnswerGenerator
	logger    zerolog.Logger
}

// NewAssistant creates a new assistant
func NewAssistant(gate *DomainGate, retriever *Retriever, generator AnswerGenerator, logger zerolog.Logger) *Assistant {
	return &Assistant{
		gate:      gate,
		retriever: retriever,
		generator: generator,
		logger:    logger,
	}
}

// Answer handles one user question. Out-of-domain questions get the
// static rejection text without touching the dataset or the network;
// everything else goes through retrieval and the generation API.
func (a *Assistant) Answer(ctx context.Context, message string) (string, error) {
	message = strings.TrimSpace(message)

	if !a.gate.InDomain(message) {
		a.logger.Info().Msg("Question rejected by domain gate")
		return RejectionPrompt, nil
	}

	result := a.retriever.Retrieve(message, DefaultMaxResults)

	contextJSON, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", fmt.Errorf("assistant: failed to serialize retrieval result: %w", err)
	}

	userMessage := fmt.Sprintf("%s\n\nUSER QUESTION: %s", DataContextPrompt(string(contextJSON)), message)

	answer, err := a.generator.Complete(ctx, SystemPrompt, userMessage)
	if err != nil {
		return "", fmt.Errorf("assistant: generation failed: %w", err)
	}

	a.logger.Info().
		Int("context_records", result.TotalRecords).
		Msg("Answered question")

	return answer, nil
}
