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


// Package ingestion loads source texts into the document store.
//
// The pipeline splits each text into chunks, embeds the chunks with a
// bounded worker pool, and stores them as content-addressed documents.
// Ingestion is synchronous: when Ingest returns, every chunk is embedded
// and persisted.
package ingestion
