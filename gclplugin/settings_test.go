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

package gclplugin_test

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"fillmore-labs.com/behave/analyzer"
	"fillmore-labs.com/behave/analyzer/level"
	. "fillmore-labs.com/behave/gclplugin"
)

const allSettings = `{
	"generated": true,
	"report": "yields",
	"max-paths": 64,
	"nodes": false,
	"summary-db": "badger:memory"
}`

func TestSettings(t *testing.T) {
	t.Parallel()

	testCases := [...]struct {
		name     string
		settings string
		want     int
	}{
		{"all", allSettings, reflect.TypeFor[Settings]().NumField()},
		{"none", `{}`, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			dec := json.NewDecoder(strings.NewReader(tc.settings))
			dec.DisallowUnknownFields()

			var s Settings
			if err := dec.Decode(&s); err != nil {
				t.Fatalf("Can't decode settings: %v", err)
			}

			if got := s.Options(); len(got) != tc.want {
				t.Errorf("Got %d options: %s, want %d", len(got), analyzer.Options(got).LogValue(), tc.want)
			}
		})
	}
}

func TestSettingsReport(t *testing.T) {
	t.Parallel()

	var s Settings
	if err := json.Unmarshal([]byte(`{"report": "summary"}`), &s); err != nil {
		t.Fatalf("Can't decode settings: %v", err)
	}

	if s.Report == nil || *s.Report != level.ReportSummary {
		t.Errorf("Got report %v, want %v", s.Report, level.ReportSummary)
	}

	if err := json.Unmarshal([]byte(`{"report": "verbose"}`), &s); err == nil {
		t.Error("Expected error for unknown report level")
	}
}

func TestPlugin(t *testing.T) {
	t.Parallel()

	p, err := New(map[string]any{"report": "off", "max-paths": 32})
	if err != nil {
		t.Fatalf("Can't create plugin: %v", err)
	}

	as, err := p.BuildAnalyzers()
	if err != nil {
		t.Fatalf("Can't build analyzers: %v", err)
	}

	if len(as) != 1 || as[0].Name != "behave" {
		t.Errorf("Got analyzers %v, want behave", as)
	}
}
