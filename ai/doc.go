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


// Package ai provides abstractions for the AI services used in Answerit.
//
// The question-answering workflow never talks to a hosted model directly.
// Instead it depends on small capability interfaces, one operation each:
//
//   - Router: classifies a question to the vector store or web search
//   - RelevanceGrader: judges whether a document is pertinent to a question
//   - Generator: produces an answer from a question and evidence documents
//   - GroundednessGrader: judges whether an answer is supported by evidence
//   - AnswerfulnessGrader: judges whether an answer addresses the question
//   - Embedder: turns text into vectors for semantic retrieval
//
// AIProvider aggregates all of them for convenient initialization and
// lifecycle management.
//
// # Implementation Packages
//
//   - ai/openai: production implementation using OpenAI-compatible APIs
//   - ai/mock: test doubles for unit testing without external dependencies
//
// Production constructors (openai.NewProvider and friends) return the
// interface types to enforce abstraction. Mock constructors return
// concrete types so tests can inject behavior via function fields and
// assert on call counts.
package ai
