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

// Package analyzer implements the behave static analysis pass.
//
// # Overview
//
// Behave summarizes Go functions by the constraints their parameters impose on the outcome of a
// call. Every summary is a list of yields: a happy path yield relates parameter constraints to the
// constraints of the result, an exceptional yield names the panic raised under the parameter
// constraints.
//
// # Example
//
//	func Load(p *int) int {
//	    if p == nil {
//	        return 0
//	    }
//	    return *p
//	}
//
// is summarized as
//
//	happy{params=[{object.NULL}] result=-1 {zero.ZERO}}
//	happy{params=[{object.NOT_NULL}] result=-1}
//
// # Facts
//
// Summaries are exported as [Fact] values, so callers in importing packages apply them instead of
// treating the call as unknown. Functions the explorer cannot fully follow, like those containing
// loops, get no summary.
//
// # Reporting
//
// With -report=summary every summarized function gets a diagnostic with its yield counts,
// -report=yields additionally marks the statement ending each path. A //nolint:behave comment
// suppresses the diagnostics of a function, not its fact.
package analyzer
