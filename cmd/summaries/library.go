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

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"fillmore-labs.com/behave/internal/codec"
	"fillmore-labs.com/behave/internal/library"
)

func newLibraryCmd() *cobra.Command {
	var yields bool

	cmd := &cobra.Command{
		Use:   "library",
		Short: "List the hardcoded behaviors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			lib := library.Default()

			if yields {
				var err error
				for _, mb := range lib.All() {
					if err = codec.Encode(cmd.OutOrStdout(), mb); err != nil {
						break
					}
				}

				return err
			}

			for sig, mb := range lib.All() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\n", sig, len(mb.Yields()))
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&yields, "yields", false, "print the full behaviors instead of yield counts")

	return cmd
}
