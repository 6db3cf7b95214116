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

// Summaries inspects and maintains behavior summary files and databases.
//
// Usage:
//
//	summaries check FILE...
//	summaries fmt [-w] FILE...
//	summaries library [--yields]
//	summaries show --db DSN SIGNATURE...
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd assembles the command tree.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "summaries",
		Short: "Inspect and maintain behavior summaries",
		Long: `Inspect and maintain behavior summaries.

Summaries are YAML or JSON lists of method behaviors, as found in the
hardcoded library or stored by the analyzer in a summary database.`,
		SilenceUsage: true,
	}

	root.AddCommand(
		newCheckCmd(),
		newFmtCmd(),
		newLibraryCmd(),
		newShowCmd(),
	)

	return root
}
