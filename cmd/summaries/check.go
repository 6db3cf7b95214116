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
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"fillmore-labs.com/behave/internal/behavior"
	"fillmore-labs.com/behave/internal/codec"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check FILE...",
		Short: "Validate summary files",
		Long: `Validate summary files.

Every file is decoded strictly: unknown fields, malformed signatures,
arity mismatches and out of range result indices are errors.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var errs []error
			for _, name := range args {
				mbs, err := decodeFile(name)
				if err != nil {
					errs = append(errs, err)

					continue
				}

				fmt.Fprintf(cmd.OutOrStdout(), "%s: %d behaviors\n", name, len(mbs))
			}

			return errors.Join(errs...)
		},
	}
}

// decodeFile reads all behaviors from the named file.
func decodeFile(name string) ([]*behavior.MethodBehavior, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	mbs, err := codec.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	return mbs, nil
}
