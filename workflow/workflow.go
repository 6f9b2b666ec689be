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


package workflow

import (
	"context"
	"log/slog"

	"github.com/poiesic/answerit/ai"
	"github.com/poiesic/answerit/core"
	"github.com/poiesic/answerit/retrieval"
	"github.com/poiesic/answerit/websearch"
)

const (
	// defaultMaxRetries bounds regeneration attempts after a
	// hallucination verdict. The first generation is not a retry.
	defaultMaxRetries = 3

	// defaultWebSearchMaxResults caps documents fetched per web search.
	defaultWebSearchMaxResults = 3
)

// Workflow runs the adaptive question-answering pipeline. Safe for
// concurrent use; each Run carries its own state.
type Workflow struct {
	retriever           retrieval.Retriever
	webSearch           websearch.Client
	provider            ai.AIProvider
	maxRetries          int
	webSearchMaxResults int
	logger              *slog.Logger
}

// Option configures a Workflow.
type Option func(*Workflow) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(w *Workflow) error {
		if logger == nil {
			logger = slog.Default()
		}
		w.logger = logger
		return nil
	}
}

// WithMaxRetries sets how many regeneration attempts a run may spend on
// hallucinated answers. Zero disables retries: the first generation is
// final. Default is 3.
func WithMaxRetries(maxRetries int) Option {
	return func(w *Workflow) error {
		if maxRetries < 0 {
			maxRetries = 0
		}
		w.maxRetries = maxRetries
		return nil
	}
}

// WithWebSearchMaxResults sets how many results a web search requests.
// Default is 3.
func WithWebSearchMaxResults(maxResults int) Option {
	return func(w *Workflow) error {
		if maxResults < 1 {
			maxResults = 1
		}
		w.webSearchMaxResults = maxResults
		return nil
	}
}

// NewWorkflow creates a workflow over the given evidence providers and
// model services.
func NewWorkflow(
	retriever retrieval.Retriever,
	webSearch websearch.Client,
	provider ai.AIProvider,
	opts ...Option,
) (*Workflow, error) {
	if retriever == nil {
		return nil, ErrRetrieverRequired
	}
	if webSearch == nil {
		return nil, ErrWebSearchClientRequired
	}
	if provider == nil {
		return nil, ErrAIProviderRequired
	}

	w := &Workflow{
		retriever:           retriever,
		webSearch:           webSearch,
		provider:            provider,
		maxRetries:          defaultMaxRetries,
		webSearchMaxResults: defaultWebSearchMaxResults,
		logger:              slog.Default().With("component", "workflow"),
	}

	for _, opt := range opts {
		if err := opt(w); err != nil {
			return nil, err
		}
	}

	return w, nil
}

// Run answers a question through the full pipeline.
func (w *Workflow) Run(ctx context.Context, question string) (*Result, error) {
	return w.RunWithMonitor(ctx, question, nil)
}

// RunWithMonitor answers a question, reporting stage transitions to the
// monitor. A nil monitor is allowed.
func (w *Workflow) RunWithMonitor(ctx context.Context, question string, monitor RunMonitor) (*Result, error) {
	if err := core.ValidateQuestion(question); err != nil {
		return nil, err
	}
	if monitor == nil {
		monitor = noopRunMonitor{}
	}

	monitor.Start(question)

	documents, source, err := w.gatherEvidence(ctx, question, monitor)
	if err != nil {
		return nil, err
	}

	return w.generateVerified(ctx, question, documents, source, monitor)
}

// gatherEvidence routes the question and assembles the evidence set the
// generator will see. Web results always replace retrieved documents.
func (w *Workflow) gatherEvidence(
	ctx context.Context,
	question string,
	monitor RunMonitor,
) ([]*core.Document, core.Source, error) {
	target, err := w.provider.Router().Route(ctx, question)
	failedOpen := err != nil || target == ai.RouteUnknown
	if failedOpen {
		// Routing failures never fail the run; web search can answer
		// anything the vector store can.
		w.logger.Warn("routing failed, falling back to web search", "err", err)
		target = ai.RouteWebSearch
	}
	monitor.AfterRoute(target, failedOpen)

	if target == ai.RouteVectorStore {
		retrieved, err := w.retriever.Retrieve(ctx, question)
		if err != nil {
			return nil, core.SourceRAG, &ProviderError{Stage: StageRetrieve, Err: err}
		}
		monitor.AfterRetrieve(len(retrieved))

		kept, err := w.gradeDocuments(ctx, question, retrieved)
		if err != nil {
			return nil, core.SourceRAG, &ProviderError{Stage: StageGradeDocuments, Err: err}
		}
		monitor.AfterGradeDocuments(len(kept), len(retrieved))

		if len(kept) > 0 {
			return kept, core.SourceRAG, nil
		}
		w.logger.Info("no relevant documents retained, falling back to web search")
	}

	found, err := w.webSearch.Search(ctx, question, w.webSearchMaxResults)
	if err != nil {
		return nil, core.SourceWeb, &ProviderError{Stage: StageWebSearch, Err: err}
	}
	monitor.AfterWebSearch(len(found))

	return found, core.SourceWeb, nil
}

// gradeDocuments grades each document once, in order, and returns the
// relevant ones in their original order.
func (w *Workflow) gradeDocuments(
	ctx context.Context,
	question string,
	documents []*core.Document,
) ([]*core.Document, error) {
	grader := w.provider.RelevanceGrader()

	kept := make([]*core.Document, 0, len(documents))
	for _, doc := range documents {
		verdict, err := grader.GradeRelevance(ctx, question, doc.Content)
		if err != nil {
			return nil, err
		}
		if verdict == ai.DocumentRelevant {
			kept = append(kept, doc)
		}
	}

	w.logger.Info("graded documents", "total", len(documents), "kept", len(kept))
	return kept, nil
}

// generateVerified runs the generate / verify loop. Hallucinated answers
// are regenerated until the retry budget runs out; the last answer is
// then returned flagged rather than discarded.
func (w *Workflow) generateVerified(
	ctx context.Context,
	question string,
	documents []*core.Document,
	source core.Source,
	monitor RunMonitor,
) (*Result, error) {
	retryCount := 0
	for {
		generation, err := w.provider.Generator().Generate(ctx, question, documents)
		if err != nil {
			return nil, &ProviderError{Stage: StageGenerate, Err: err}
		}
		monitor.AfterGenerate(retryCount)

		grounded, err := w.provider.GroundednessGrader().GradeGroundedness(ctx, documents, generation)
		if err != nil {
			return nil, &ProviderError{Stage: StageGroundedness, Err: err}
		}
		monitor.AfterGroundednessCheck(grounded)

		if grounded != ai.AnswerGrounded {
			if retryCount < w.maxRetries {
				retryCount++
				w.logger.Info("answer not grounded in evidence, regenerating", "retry", retryCount)
				continue
			}

			w.logger.Warn("retry budget exhausted without a grounded answer", "retries", retryCount)
			result := &Result{
				Question:    question,
				Generation:  generation,
				Source:      source,
				Documents:   documents,
				RetriesUsed: retryCount,
			}
			monitor.Finish(result)
			return result, nil
		}

		useful, err := w.provider.AnswerfulnessGrader().GradeAnswerfulness(ctx, question, generation)
		if err != nil {
			return nil, &ProviderError{Stage: StageAnswerfulness, Err: err}
		}
		monitor.AfterAnswerfulnessCheck(useful)

		if useful != ai.AnswerAddresses {
			w.logger.Warn("answer does not address the question")
		}

		result := &Result{
			Question:          question,
			Generation:        generation,
			Source:            source,
			Documents:         documents,
			Grounded:          true,
			AddressesQuestion: useful == ai.AnswerAddresses,
			RetriesUsed:       retryCount,
		}
		monitor.Finish(result)
		return result, nil
	}
}
