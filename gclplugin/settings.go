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

package gclplugin

import (
	"fillmore-labs.com/behave/analyzer"
	"fillmore-labs.com/behave/analyzer/level"
)

// Settings represents the configuration options for an instance of the [Plugin].
type Settings struct {
	// Generated enables summarizing functions in generated files.
	Generated *bool `json:"generated,omitzero"`
	// Report selects the diagnostics: off, summary or yields.
	Report *level.Report `json:"report,omitzero"`
	// MaxPaths limits the simultaneously explored paths of one function.
	MaxPaths *int `json:"max-paths,omitzero"`
	// Nodes keeps the statement ending each path in the summaries.
	Nodes *bool `json:"nodes,omitzero"`
	// SummaryDB persists summaries in a badger or sqlite database.
	SummaryDB *string `json:"summary-db,omitzero"`
}

// Options converts [Settings] into a list of [analyzer.Option] for the behave analyzer.
// It processes settings and applies them only when explicitly set (non-nil).
func (s Settings) Options() []analyzer.Option {
	var opts []analyzer.Option

	opts = appendOption(opts, s.Generated, analyzer.WithGenerated)
	opts = appendOption(opts, s.Report, analyzer.WithReport)
	opts = appendOption(opts, s.MaxPaths, analyzer.WithMaxPaths)
	opts = appendOption(opts, s.Nodes, analyzer.WithNodes)
	opts = appendOption(opts, s.SummaryDB, analyzer.WithSummaryDB)

	return opts
}

// appendOption appends a non-nil setting to an [analyzer.Option] list.
func appendOption[T any](opts []analyzer.Option, value *T, constructor func(T) analyzer.Option) []analyzer.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
