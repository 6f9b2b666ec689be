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


// Package websearch provides the live web-search evidence provider.
//
// The Client interface is the narrow boundary consumed by the
// question-answering workflow; TavilyClient implements it against the
// Tavily Search API. Every result is wrapped in its own core.Document
// carrying "source", "url" and "title" metadata so answers remain
// traceable to their evidence.
package websearch
