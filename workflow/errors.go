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
	"errors"
	"fmt"
)

var (
	// ErrRetrieverRequired is returned when a retriever is not provided.
	ErrRetrieverRequired = errors.New("retriever required")

	// ErrWebSearchClientRequired is returned when a web search client is not provided.
	ErrWebSearchClientRequired = errors.New("web search client required")

	// ErrAIProviderRequired is returned when an AI provider is not provided.
	ErrAIProviderRequired = errors.New("AI provider required")
)

// Stages at which a run can fail with a ProviderError. Routing is absent:
// a failed routing decision falls open to web search instead of failing
// the run.
const (
	StageRetrieve       = "retrieve"
	StageGradeDocuments = "grade_documents"
	StageWebSearch      = "web_search"
	StageGenerate       = "generate"
	StageGroundedness   = "groundedness"
	StageAnswerfulness  = "answerfulness"
)

// ProviderError wraps a failure from an evidence provider or model
// judgment, recording the stage at which the run stopped.
type ProviderError struct {
	Stage string
	Err   error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("workflow stage %s: %v", e.Stage, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
