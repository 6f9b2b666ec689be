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


// Package openai implements the ai package interfaces using
// OpenAI-compatible APIs (OpenAI, Ollama, LocalAI, vLLM, etc).
//
// Classification calls (router and graders) run at temperature 0 in JSON
// mode and are parsed defensively: markdown code fences are stripped,
// common JSON defects are repaired, and malformed responses are retried
// up to three times before the call fails.
//
// Generation runs at the configured temperature and returns plain text.
package openai
