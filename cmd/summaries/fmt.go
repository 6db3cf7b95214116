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
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"

	"fillmore-labs.com/behave/internal/codec"
)

func newFmtCmd() *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:   "fmt FILE...",
		Short: "Rewrite summary files in canonical form",
		Long: `Rewrite summary files in canonical form.

Behaviors are decoded and encoded again as YAML, which sorts constraints.
Comments are not preserved. Without -w the result is written to standard
output; -w only rewrites YAML files, since JSON input would be replaced
by YAML.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var errs []error
			for _, name := range args {
				if err := formatFile(cmd, name, write); err != nil {
					errs = append(errs, err)
				}
			}

			return errors.Join(errs...)
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, "write result to the source file instead of standard output")

	return cmd
}

// errNotYAML is returned when -w would replace a file's format.
var errNotYAML = errors.New("can only rewrite YAML files")

// yamlPattern matches the names of files fmt -w may rewrite.
const yamlPattern = "*.{yaml,yml}"

func formatFile(cmd *cobra.Command, name string, write bool) error {
	if write {
		if ok, _ := doublestar.Match(yamlPattern, filepath.Base(name)); !ok {
			return fmt.Errorf("%s: %w", name, errNotYAML)
		}
	}

	src, err := os.ReadFile(name)
	if err != nil {
		return err
	}

	mbs, err := codec.Unmarshal(src)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	out, err := codec.Marshal(mbs...)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	if !write {
		_, err := cmd.OutOrStdout().Write(out)

		return err
	}

	if bytes.Equal(src, out) {
		return nil
	}

	fi, err := os.Stat(name)
	if err != nil {
		return err
	}

	return os.WriteFile(name, out, fi.Mode().Perm())
}
