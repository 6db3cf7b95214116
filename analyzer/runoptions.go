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

package analyzer

import (
	"log/slog"
	"sync"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"

	"fillmore-labs.com/behave/analyzer/level"
	"fillmore-labs.com/behave/internal/config"
	"fillmore-labs.com/behave/internal/explore"
	"fillmore-labs.com/behave/internal/persist"
)

// runOptions represent configuration runOptions for the behave analyzer.
type runOptions struct {
	// behavior holds behavioral switches.
	behavior config.BitMask[config.Config]

	// report selects the diagnostics emitted for computed summaries.
	report level.Report

	// maxPaths limits the simultaneously explored paths of one function.
	maxPaths int

	// summaryDB is the DSN of the summary database, empty when summaries are not persisted.
	summaryDB string

	logger *slog.Logger

	// persister opens the summary database once for all passes.
	persister func() (persist.Persister, error)
}

// makeRunOptions returns a [runOptions] struct with overriding [Options] applied.
func makeRunOptions(opts Options) *runOptions {
	r := defaultRunOptions()
	opts.apply(r)

	r.persister = sync.OnceValues(func() (persist.Persister, error) {
		return persist.Open(r.summaryDB, r.logger)
	})

	return r
}

// defaultRunOptions initializes and returns a new runOptions instance with default values.
func defaultRunOptions() *runOptions {
	return &runOptions{
		behavior: config.DefaultConfig(),
		report:   level.ReportOff,
		maxPaths: explore.DefaultMaxPaths,
	}
}

// keepNodes reports whether yields need their terminal nodes, either requested or for reporting.
func (r *runOptions) keepNodes() bool {
	return r.behavior.Enabled(config.KeepNodes) || r.report >= level.ReportYields
}

// analyzer returns a behave *[analysis.Analyzer] instance.
func (r *runOptions) analyzer() *analysis.Analyzer {
	a := &analysis.Analyzer{
		Name:       name,
		Doc:        doc,
		URL:        url,
		Run:        r.run,
		Requires:   []*analysis.Analyzer{inspect.Analyzer},
		FactTypes:  []analysis.Fact{new(Fact)},
		ResultType: summariesType,
	}

	return a
}
