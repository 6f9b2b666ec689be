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


// Package storage defines the persistence interfaces for Answerit.
//
// The DocumentRepository interface abstracts the document store that
// backs local retrieval. Documents are content-addressed, so adding the
// same text twice is an idempotent upsert. The concrete BadgerDB
// implementation lives in storage/badger.
//
// Serialization helpers wrap the mus-go serializers defined in core.
package storage
