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


// Package workflow implements the adaptive question-answering pipeline.
//
// A run moves a question through a fixed sequence of stages: route to an
// evidence source, gather documents, grade them for relevance, fall back
// to web search when the local store has nothing useful, generate an
// answer, and verify the answer is grounded in the evidence and actually
// addresses the question. Hallucinated answers are regenerated up to a
// bounded number of retries; when the bound is exhausted the last answer
// is returned flagged as not grounded rather than failing the run.
//
// Each stage consults exactly one model judgment, so a run issues a
// predictable number of model calls. Evidence handed to the generator is
// always from a single source: web results replace retrieved documents,
// never mix with them.
package workflow
