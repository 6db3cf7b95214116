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

package analyzer_test

import (
	"flag"
	"strings"
	"testing"

	. "fillmore-labs.com/behave/analyzer"
	"fillmore-labs.com/behave/internal/config"
)

func TestFlagValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		initial config.Config
		args    []string
		want    bool
	}{
		{
			name:    "Enable",
			initial: config.KeepNodes,
			args:    []string{"-generated"},
			want:    true,
		},
		{
			name:    "Disable",
			initial: config.IncludeGenerated,
			args:    []string{"-generated=false"},
			want:    false,
		},
		{
			name:    "On",
			args:    []string{"-generated=on"},
			want:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			flags := config.NewBitMask(tt.initial)

			fs := flag.NewFlagSet("test", flag.ContinueOnError)

			const value = config.IncludeGenerated
			fv := NewSwitchValue(&flags, value)
			fs.Var(fv, "generated", "summarize generated files")

			if err := fs.Parse(tt.args); err != nil {
				t.Fatalf("Parse failed: %v", err)
			}

			if fv.Get() != tt.want {
				t.Errorf("Flag get = %v, want %v", fv.Get(), tt.want)
			}

			if flags.Enabled(value) != tt.want {
				t.Errorf("IncludeGenerated enabled = %v, want %v", flags.Enabled(value), tt.want)
			}

			if tt.initial == config.KeepNodes && !flags.Enabled(config.KeepNodes) {
				t.Error("Unrelated flag KeepNodes was cleared")
			}
		})
	}
}

func TestFlagValueInvalid(t *testing.T) {
	t.Parallel()

	var flags config.BitMask[config.Config]

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(&strings.Builder{})
	fs.Var(NewSwitchValue(&flags, config.KeepNodes), "nodes", "keep nodes")

	if err := fs.Parse([]string{"-nodes=maybe"}); err == nil {
		t.Error("Expected parse error")
	}
}

func TestUsage(t *testing.T) {
	t.Parallel()

	flags := config.NewBitMask(config.KeepNodes)

	fs := flag.NewFlagSet("test", flag.ContinueOnError)

	fv := NewSwitchValue(&flags, config.KeepNodes)
	fs.Var(fv, "nodes", "keep nodes")

	const expectedUsage = `
  -nodes
    	keep nodes (default true)
`

	var out strings.Builder
	fs.SetOutput(&out)
	fs.Usage()

	if got, want := out.String(), expectedUsage; !strings.HasSuffix(got, want) {
		t.Errorf("Usage() = %q, want suffix %q", got, want)
	}
}

func TestAnalyzerFlags(t *testing.T) {
	t.Parallel()

	a := New()

	for _, name := range []string{"generated", "nodes", "report", "max-paths", "summary-db"} {
		if a.Flags.Lookup(name) == nil {
			t.Errorf("Flag -%s not registered", name)
		}
	}

	if err := a.Flags.Set("report", "yields"); err != nil {
		t.Errorf("Can't set report level: %v", err)
	}

	if err := a.Flags.Set("report", "verbose"); err == nil {
		t.Error("Expected error for unknown report level")
	}
}
