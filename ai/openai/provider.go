// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package openai

import (
	"log/slog"

	"github.com/poiesic/answerit/ai"
)

// Provider implements ai.AIProvider using OpenAI-compatible services.
// It manages the router, graders, generator and embedder instances.
type Provider struct {
	config        *ai.Config
	router        *Router
	relevance     *RelevanceGrader
	generator     *Generator
	groundedness  *GroundednessGrader
	answerfulness *AnswerfulnessGrader
	embedder      *Embedder
	logger        *slog.Logger
}

// NewProvider creates a new AI provider with OpenAI-compatible services.
// The config is validated and normalized before use.
//
// Returns ai.AIProvider interface (not *Provider) to enforce abstraction
// and prevent coupling to OpenAI-specific implementation details.
func NewProvider(config *ai.Config) (ai.AIProvider, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	router, err := newRouter(config)
	if err != nil {
		return nil, err
	}

	relevance, err := newRelevanceGrader(config)
	if err != nil {
		return nil, err
	}

	generator, err := newGenerator(config)
	if err != nil {
		return nil, err
	}

	groundedness, err := newGroundednessGrader(config)
	if err != nil {
		return nil, err
	}

	answerfulness, err := newAnswerfulnessGrader(config)
	if err != nil {
		return nil, err
	}

	embedder, err := newEmbedder(config)
	if err != nil {
		return nil, err
	}

	return &Provider{
		config:        config,
		router:        router,
		relevance:     relevance,
		generator:     generator,
		groundedness:  groundedness,
		answerfulness: answerfulness,
		embedder:      embedder,
		logger:        slog.Default().With("component", "openai-provider"),
	}, nil
}

// Router returns the question routing service.
func (p *Provider) Router() ai.Router {
	return p.router
}

// RelevanceGrader returns the document relevance grading service.
func (p *Provider) RelevanceGrader() ai.RelevanceGrader {
	return p.relevance
}

// Generator returns the answer generation service.
func (p *Provider) Generator() ai.Generator {
	return p.generator
}

// GroundednessGrader returns the hallucination grading service.
func (p *Provider) GroundednessGrader() ai.GroundednessGrader {
	return p.groundedness
}

// AnswerfulnessGrader returns the answer usefulness grading service.
func (p *Provider) AnswerfulnessGrader() ai.AnswerfulnessGrader {
	return p.answerfulness
}

// Embedder returns the text embedding service.
func (p *Provider) Embedder() ai.Embedder {
	return p.embedder
}

// Close releases resources held by the provider.
// Currently a no-op as the underlying clients don't require explicit cleanup.
func (p *Provider) Close() error {
	p.logger.Debug("closing OpenAI provider")
	return nil
}
