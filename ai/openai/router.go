package openai

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/poiesic/answerit/ai"
	"github.com/tmc/langchaingo/llms"
)

// Router implements ai.Router using OpenAI-compatible chat APIs.
type Router struct {
	client llms.Model
	logger *slog.Logger
}

// routeQuery is the router's JSON response shape.
type routeQuery struct {
	Datasource string `json:"datasource"`
}

// newRouter is an internal constructor that returns the concrete type.
// Used by Provider to manage the instance.
func newRouter(config *ai.Config) (*Router, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	client, err := newChatModel(config)
	if err != nil {
		return nil, err
	}

	return &Router{
		client: client,
		logger: slog.Default().With("component", "openai-router"),
	}, nil
}

// NewRouter creates a new question router using the provided configuration.
//
// Returns ai.Router interface to enforce abstraction.
func NewRouter(config *ai.Config) (ai.Router, error) {
	return newRouter(config)
}

// Route classifies the question to the vector store or to web search.
func (r *Router) Route(ctx context.Context, question string) (ai.RouteTarget, error) {
	var result routeQuery
	if err := classifyJSON(ctx, r.client, r.logger, routerSystemPrompt, question, &result); err != nil {
		return ai.RouteUnknown, err
	}

	label := strings.ToLower(strings.TrimSpace(result.Datasource))
	switch label {
	case "vectorstore":
		return ai.RouteVectorStore, nil
	case "websearch", "web_search":
		return ai.RouteWebSearch, nil
	default:
		r.logger.Warn("router returned unexpected datasource", "label", label)
		return ai.RouteUnknown, fmt.Errorf("%w: %q", ai.ErrUnrecognizedRoute, label)
	}
}
