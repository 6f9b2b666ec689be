package openai

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/poiesic/answerit/ai"
	"github.com/poiesic/answerit/core"
	"github.com/tmc/langchaingo/llms"
)

// RelevanceGrader implements ai.RelevanceGrader using OpenAI-compatible chat APIs.
type RelevanceGrader struct {
	client llms.Model
	logger *slog.Logger
}

func newRelevanceGrader(config *ai.Config) (*RelevanceGrader, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	client, err := newChatModel(config)
	if err != nil {
		return nil, err
	}

	return &RelevanceGrader{
		client: client,
		logger: slog.Default().With("component", "openai-relevance-grader"),
	}, nil
}

// NewRelevanceGrader creates a new document relevance grader.
//
// Returns ai.RelevanceGrader interface to enforce abstraction.
func NewRelevanceGrader(config *ai.Config) (ai.RelevanceGrader, error) {
	return newRelevanceGrader(config)
}

// GradeRelevance performs a binary relevance check of a document against a question.
func (g *RelevanceGrader) GradeRelevance(ctx context.Context, question, content string) (ai.Relevance, error) {
	var score binaryScore
	prompt := buildRelevancePrompt(question, content)
	if err := classifyJSON(ctx, g.client, g.logger, relevanceSystemPrompt, prompt, &score); err != nil {
		return ai.RelevanceUnknown, err
	}

	relevant, err := score.asBool()
	if err != nil {
		return ai.RelevanceUnknown, fmt.Errorf("%w: %q", err, score.BinaryScore)
	}
	if relevant {
		return ai.DocumentRelevant, nil
	}
	return ai.DocumentIrrelevant, nil
}

// GroundednessGrader implements ai.GroundednessGrader using OpenAI-compatible chat APIs.
type GroundednessGrader struct {
	client llms.Model
	logger *slog.Logger
}

func newGroundednessGrader(config *ai.Config) (*GroundednessGrader, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	client, err := newChatModel(config)
	if err != nil {
		return nil, err
	}

	return &GroundednessGrader{
		client: client,
		logger: slog.Default().With("component", "openai-groundedness-grader"),
	}, nil
}

// NewGroundednessGrader creates a new hallucination grader.
//
// Returns ai.GroundednessGrader interface to enforce abstraction.
func NewGroundednessGrader(config *ai.Config) (ai.GroundednessGrader, error) {
	return newGroundednessGrader(config)
}

// GradeGroundedness performs a binary hallucination check of an answer
// against the supplied evidence documents.
func (g *GroundednessGrader) GradeGroundedness(ctx context.Context, documents []*core.Document, answer string) (ai.Groundedness, error) {
	var score binaryScore
	prompt := buildGroundednessPrompt(documents, answer)
	if err := classifyJSON(ctx, g.client, g.logger, groundednessSystemPrompt, prompt, &score); err != nil {
		return ai.GroundednessUnknown, err
	}

	grounded, err := score.asBool()
	if err != nil {
		return ai.GroundednessUnknown, fmt.Errorf("%w: %q", err, score.BinaryScore)
	}
	if grounded {
		return ai.AnswerGrounded, nil
	}
	return ai.AnswerHallucinated, nil
}

// AnswerfulnessGrader implements ai.AnswerfulnessGrader using OpenAI-compatible chat APIs.
type AnswerfulnessGrader struct {
	client llms.Model
	logger *slog.Logger
}

func newAnswerfulnessGrader(config *ai.Config) (*AnswerfulnessGrader, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	client, err := newChatModel(config)
	if err != nil {
		return nil, err
	}

	return &AnswerfulnessGrader{
		client: client,
		logger: slog.Default().With("component", "openai-answerfulness-grader"),
	}, nil
}

// NewAnswerfulnessGrader creates a new answer usefulness grader.
//
// Returns ai.AnswerfulnessGrader interface to enforce abstraction.
func NewAnswerfulnessGrader(config *ai.Config) (ai.AnswerfulnessGrader, error) {
	return newAnswerfulnessGrader(config)
}

// GradeAnswerfulness performs a binary usefulness check of an answer
// against the question.
func (g *AnswerfulnessGrader) GradeAnswerfulness(ctx context.Context, question, answer string) (ai.Answerfulness, error) {
	var score binaryScore
	prompt := buildAnswerfulnessPrompt(question, answer)
	if err := classifyJSON(ctx, g.client, g.logger, answerfulnessSystemPrompt, prompt, &score); err != nil {
		return ai.AnswerfulnessUnknown, err
	}

	addresses, err := score.asBool()
	if err != nil {
		return ai.AnswerfulnessUnknown, fmt.Errorf("%w: %q", err, score.BinaryScore)
	}
	if addresses {
		return ai.AnswerAddresses, nil
	}
	return ai.AnswerDoesNotAddress, nil
}
