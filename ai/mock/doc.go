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


// Package mock provides test doubles for the ai package interfaces.
//
// Each mock allows custom behavior injection via function fields and
// tracks how often it was called:
//
//	router := mock.NewMockRouter()
//	router.RouteFunc = func(ctx context.Context, q string) (ai.RouteTarget, error) {
//	    return ai.RouteWebSearch, nil
//	}
//	...
//	count := router.CallCount()
//
// Mock constructors return concrete types so tests can reach the function
// fields and assertions; mock.NewMockProvider returns the ai.AIProvider
// interface with GetMock* accessors for the concrete instances.
package mock
