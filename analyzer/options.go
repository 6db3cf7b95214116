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

	"fillmore-labs.com/behave/analyzer/level"
	"fillmore-labs.com/behave/internal/config"
)

// Option configures specific behavior of a [New] behave analyzer.
type Option interface {
	apply(r *runOptions)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *runOptions) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithGenerated is an [Option] to configure summarizing functions in generated files.
func WithGenerated(generated bool) Option { return generatedOption{generated: generated} }

type generatedOption struct{ generated bool }

func (o generatedOption) apply(r *runOptions) {
	r.behavior.Set(config.IncludeGenerated, o.generated)
}

func (o generatedOption) LogAttr() slog.Attr {
	return slog.Bool("generated", o.generated)
}

// WithReport is an [Option] to configure which summaries are reported as diagnostics.
func WithReport(report level.Report) Option { return reportOption{report: report} }

type reportOption struct{ report level.Report }

func (o reportOption) apply(r *runOptions) {
	r.report = o.report
}

func (o reportOption) LogAttr() slog.Attr {
	return slog.String("report", o.report.String())
}

// WithMaxPaths is an [Option] to limit the simultaneously explored paths of one function.
func WithMaxPaths(maxPaths int) Option { return maxPathsOption{maxPaths: maxPaths} }

type maxPathsOption struct{ maxPaths int }

func (o maxPathsOption) apply(r *runOptions) {
	r.maxPaths = o.maxPaths
}

func (o maxPathsOption) LogAttr() slog.Attr {
	return slog.Int("max-paths", o.maxPaths)
}

// WithNodes is an [Option] to keep the statement ending each path in the computed yields.
func WithNodes(nodes bool) Option { return nodesOption{nodes: nodes} }

type nodesOption struct{ nodes bool }

func (o nodesOption) apply(r *runOptions) {
	r.behavior.Set(config.KeepNodes, o.nodes)
}

func (o nodesOption) LogAttr() slog.Attr {
	return slog.Bool("nodes", o.nodes)
}

// WithSummaryDB is an [Option] to persist summaries in the database named by dsn,
// "badger:<dir>" or "sqlite:<file>". An empty dsn disables persistence.
func WithSummaryDB(dsn string) Option { return summaryDBOption{dsn: dsn} }

type summaryDBOption struct{ dsn string }

func (o summaryDBOption) apply(r *runOptions) {
	r.summaryDB = o.dsn
}

func (o summaryDBOption) LogAttr() slog.Attr {
	return slog.String("summary-db", o.dsn)
}

// WithLogger is an [Option] to set the logger receiving exploration and persistence messages.
func WithLogger(logger *slog.Logger) Option { return loggerOption{logger: logger} }

type loggerOption struct{ logger *slog.Logger }

func (o loggerOption) apply(r *runOptions) {
	r.logger = o.logger
}

func (o loggerOption) LogAttr() slog.Attr {
	return slog.Bool("logger", o.logger != nil)
}
