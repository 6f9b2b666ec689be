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


// Package core contains the domain model shared across Answerit.
//
// The central type is Document, an evidence fragment consumed by the
// question-answering workflow. Documents are content-addressed: their IDs
// are derived from the document text with BLAKE2b, so re-ingesting the
// same text is idempotent.
//
// The package also provides validation rules for domain types and binary
// serializers (mus-go) used by the storage layer.
package core
