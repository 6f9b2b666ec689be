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


package ai

import "errors"

var (
	// ErrUnrecognizedRoute is returned when the router produced a label
	// outside {vectorstore, websearch}. Callers are expected to fail open
	// to web search.
	ErrUnrecognizedRoute = errors.New("unrecognized route label")

	// ErrUnrecognizedGrade is returned when a grader produced a score
	// outside its binary label set.
	ErrUnrecognizedGrade = errors.New("unrecognized grade label")

	// ErrEmptyGeneration is returned when the generator produced no text.
	ErrEmptyGeneration = errors.New("empty generation")
)
