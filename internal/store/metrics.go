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

package store

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const instrumentation = "fillmore-labs.com/behave/store"

var (
	tracer = otel.Tracer(instrumentation)
	meter  = otel.Meter(instrumentation)
)

// source labels where a lookup found its behavior.
type source string

const (
	sourceCache     source = "cache"
	sourceExplored  source = "explored"
	sourcePersisted source = "persisted"
	sourceLibrary   source = "library"
	sourceMissing   source = "missing"
)

var (
	lookups      metric.Int64Counter
	explorations metric.Int64Counter

	metricsOnce sync.Once
	metricsErr  error
)

func initMetrics() error {
	metricsOnce.Do(func() {
		var err error

		lookups, err = meter.Int64Counter(
			"behave.store.lookups",
			metric.WithDescription("Number of behavior lookups by source"),
		)
		if err != nil {
			metricsErr = err

			return
		}

		explorations, err = meter.Int64Counter(
			"behave.store.explorations",
			metric.WithDescription("Number of explorations triggered by lookups"),
		)
		if err != nil {
			metricsErr = err

			return
		}
	})

	return metricsErr
}

func recordLookup(ctx context.Context, src source) {
	if err := initMetrics(); err != nil {
		return
	}

	lookups.Add(ctx, 1, metric.WithAttributes(attribute.String("source", string(src))))
}

func recordExploration(ctx context.Context) {
	if err := initMetrics(); err != nil {
		return
	}

	explorations.Add(ctx, 1)
}

func startExploreSpan(ctx context.Context, sig string) (context.Context, trace.Span) {
	return tracer.Start(ctx, "Store.Explore",
		trace.WithAttributes(attribute.String("behave.signature", sig)),
	)
}
