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

package level_test

import (
	"testing"

	. "fillmore-labs.com/behave/analyzer/level"
)

func TestReportText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text string
		want Report
	}{
		{"off", ReportOff},
		{"", ReportOff},
		{"Summary", ReportSummary},
		{"on", ReportSummary},
		{"yields", ReportYields},
	}

	for _, tt := range tests {
		var r Report
		if err := r.UnmarshalText([]byte(tt.text)); err != nil {
			t.Fatalf("Can't parse %q: %v", tt.text, err)
		}

		if r != tt.want {
			t.Errorf("Parsed %q as %v, want %v", tt.text, r, tt.want)
		}
	}

	var r Report
	if err := r.UnmarshalText([]byte("verbose")); err == nil {
		t.Error("Expected error for unknown level")
	}

	if _, err := Report(42).MarshalText(); err == nil {
		t.Error("Expected error marshaling unknown level")
	}

	if got, want := ReportYields.String(), "yields"; got != want {
		t.Errorf("Got %q, want %q", got, want)
	}
}
