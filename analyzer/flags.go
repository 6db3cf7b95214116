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
	"flag"
	"strconv"
	"strings"

	"fillmore-labs.com/behave/internal/config"
)

// registerFlags binds the [runOptions] values to command line flag values.
// A nil flag set value defaults to the program's command line.
func (r *runOptions) registerFlags(flags *flag.FlagSet) {
	if flags == nil {
		flags = flag.CommandLine
	}

	flags.Var(switchValue{&r.behavior, config.IncludeGenerated}, "generated", "summarize functions in generated files")
	flags.Var(switchValue{&r.behavior, config.KeepNodes}, "nodes", "keep the statement ending each path in the summaries")
	flags.TextVar(&r.report, "report", r.report, "report summaries as diagnostics: off, summary or yields")
	flags.IntVar(&r.maxPaths, "max-paths", r.maxPaths, "maximum number of simultaneously explored paths per function")
	flags.StringVar(&r.summaryDB, "summary-db", r.summaryDB, "persist summaries in `dsn` (badger:<dir> or sqlite:<file>)")
}

// switchValue is a boolean [flag.Getter] toggling one behavioral switch.
type switchValue struct {
	switches *config.BitMask[config.Config]
	flag     config.Config
}

// Set implements [flag.Value].
func (v switchValue) Set(s string) error {
	var b bool

	switch strings.ToLower(s) {
	case "on":
		b = true

	case "off":
		b = false

	default:
		var err error
		if b, err = strconv.ParseBool(s); err != nil {
			return err
		}
	}

	v.switches.Set(v.flag, b)

	return nil
}

// String implements [flag.Value]. The zero value, used by the flag package for defaults, is off.
func (v switchValue) String() string {
	return strconv.FormatBool(v.Get().(bool))
}

// Get implements [flag.Getter].
func (v switchValue) Get() any {
	return v.switches != nil && v.switches.Enabled(v.flag)
}

// IsBoolFlag marks the flag as usable without a value.
func (switchValue) IsBoolFlag() bool { return true }
