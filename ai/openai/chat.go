package openai

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/poiesic/answerit/ai"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// parseAttempts is how often a malformed classifier response is retried.
const parseAttempts = 3

// newChatModel creates an OpenAI-compatible chat client from the config.
// Use "none" as token for local services that don't require authentication.
func newChatModel(config *ai.Config) (llms.Model, error) {
	return openai.New(
		openai.WithBaseURL(config.ChatHost),
		openai.WithToken("none"),
		openai.WithModel(config.ChatModel),
	)
}

// classifyJSON runs a single-shot classification call in JSON mode and
// unmarshals the response into out. Malformed JSON is repaired and
// retried up to parseAttempts times; model call failures are not retried.
func classifyJSON(ctx context.Context, client llms.Model, logger *slog.Logger, systemPrompt, userPrompt string, out any) error {
	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(systemPrompt),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(userPrompt),
			},
		},
	}

	var lastErr error
	for attempt := 0; attempt < parseAttempts; attempt++ {
		response, err := client.GenerateContent(ctx, content, llms.WithTemperature(0.0), llms.WithJSONMode())
		if err != nil {
			logger.Error("failed to generate content", "attempt", attempt+1, "err", err)
			return err
		}

		if len(response.Choices) < 1 {
			logger.Warn("no choices returned from model")
			lastErr = ai.ErrEmptyGeneration
			continue
		}

		responseText := stripCodeFences(response.Choices[0].Content)
		responseText = repairJSON(responseText)

		if err := json.Unmarshal([]byte(responseText), out); err != nil {
			lastErr = err
			logger.Warn("error parsing classifier response",
				"attempt", attempt+1,
				"response", responseText,
				"err", err)
			continue
		}

		return nil
	}

	logger.Error("failed to parse classifier response after retries", "err", lastErr)
	return lastErr
}

// stripCodeFences removes a surrounding markdown code fence, if present.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// binaryScore is the shared response shape of the binary graders.
type binaryScore struct {
	BinaryScore string `json:"binary_score"`
}

// asBool maps a yes/no score onto a boolean.
// Returns ai.ErrUnrecognizedGrade for anything else.
func (s binaryScore) asBool() (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s.BinaryScore)) {
	case "yes", "true":
		return true, nil
	case "no", "false":
		return false, nil
	default:
		return false, ai.ErrUnrecognizedGrade
	}
}
