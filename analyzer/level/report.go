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

// Package level defines the textual option levels of the analyzer.
package level

import (
	"fmt"
	"strings"
)

// Report specifies which diagnostics the analyzer emits for computed summaries.
type Report uint8

const (
	// ReportOff only exports summaries as facts.
	ReportOff Report = iota

	// ReportSummary reports the yield counts of every summarized function.
	ReportSummary

	// ReportYields additionally reports the kind of every yield at the statement ending its path.
	ReportYields
)

// MarshalText implements [encoding.TextMarshaler].
func (r Report) MarshalText() ([]byte, error) {
	switch r {
	case ReportOff:
		return []byte("off"), nil

	case ReportSummary:
		return []byte("summary"), nil

	case ReportYields:
		return []byte("yields"), nil

	default:
		return nil, fmt.Errorf("unknown report level %d", r)
	}
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (r *Report) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "", "off", "false":
		*r = ReportOff

	case "summary", "true", "on":
		*r = ReportSummary

	case "yields", "full":
		*r = ReportYields

	default:
		return fmt.Errorf("unknown report level %q", string(text))
	}

	return nil
}

func (r Report) String() string {
	text, err := r.MarshalText()
	if err != nil {
		return fmt.Sprintf("Report(%d)", r)
	}

	return string(text)
}
