// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
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
//
// SPDX-License-Identifier: Apache-2.0

// Package behavior implements method summaries.
//
// A [MethodBehavior] compresses the paths explored through a method body into a set of
// [Yield] values. Each yield records the constraints the path implied on the parameters and
// how the path ended: a normal return (possibly aliasing a parameter) or a thrown exception.
// Callers apply the yields of a callee with [Yield.StatesAfterInvocation] instead of
// exploring the callee again.
//
// When a behavior is completed, happy path yields that differ in a single position are
// merged into a more general yield, except where that would drop a guarantee callers rely on:
// a non-nil or zero result.
package behavior
