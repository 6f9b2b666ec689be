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


package mock

import "github.com/poiesic/answerit/ai"

// MockProvider is a test double for ai.AIProvider.
// It aggregates mock instances of every AI service.
type MockProvider struct {
	router        *MockRouter
	relevance     *MockRelevanceGrader
	generator     *MockGenerator
	groundedness  *MockGroundednessGrader
	answerfulness *MockAnswerfulnessGrader
	embedder      *MockEmbedder
}

// NewMockProvider creates a new mock provider with default mock services.
//
// Returns the concrete type so tests can reach the GetMock* accessors for
// behavior injection and call-count assertions.
func NewMockProvider() *MockProvider {
	return &MockProvider{
		router:        NewMockRouter(),
		relevance:     NewMockRelevanceGrader(),
		generator:     NewMockGenerator(),
		groundedness:  NewMockGroundednessGrader(),
		answerfulness: NewMockAnswerfulnessGrader(),
		embedder:      NewMockEmbedder(),
	}
}

var _ ai.AIProvider = (*MockProvider)(nil)

// Router returns the mock router.
func (p *MockProvider) Router() ai.Router {
	return p.router
}

// RelevanceGrader returns the mock relevance grader.
func (p *MockProvider) RelevanceGrader() ai.RelevanceGrader {
	return p.relevance
}

// Generator returns the mock generator.
func (p *MockProvider) Generator() ai.Generator {
	return p.generator
}

// GroundednessGrader returns the mock hallucination grader.
func (p *MockProvider) GroundednessGrader() ai.GroundednessGrader {
	return p.groundedness
}

// AnswerfulnessGrader returns the mock usefulness grader.
func (p *MockProvider) AnswerfulnessGrader() ai.AnswerfulnessGrader {
	return p.answerfulness
}

// Embedder returns the mock embedder.
func (p *MockProvider) Embedder() ai.Embedder {
	return p.embedder
}

// Close is a no-op for mock provider.
func (p *MockProvider) Close() error {
	return nil
}

// GetMockRouter returns the underlying mock router for test assertions.
func (p *MockProvider) GetMockRouter() *MockRouter {
	return p.router
}

// GetMockRelevanceGrader returns the underlying mock relevance grader.
func (p *MockProvider) GetMockRelevanceGrader() *MockRelevanceGrader {
	return p.relevance
}

// GetMockGenerator returns the underlying mock generator.
func (p *MockProvider) GetMockGenerator() *MockGenerator {
	return p.generator
}

// GetMockGroundednessGrader returns the underlying mock hallucination grader.
func (p *MockProvider) GetMockGroundednessGrader() *MockGroundednessGrader {
	return p.groundedness
}

// GetMockAnswerfulnessGrader returns the underlying mock usefulness grader.
func (p *MockProvider) GetMockAnswerfulnessGrader() *MockAnswerfulnessGrader {
	return p.answerfulness
}

// GetMockEmbedder returns the underlying mock embedder.
func (p *MockProvider) GetMockEmbedder() *MockEmbedder {
	return p.embedder
}
