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
	"log/slog"

	"github.com/spf13/cobra"

	"fillmore-labs.com/behave/internal/behavior"
	"fillmore-labs.com/behave/internal/codec"
	"fillmore-labs.com/behave/internal/persist"
)

// errNoDatabase is returned when show is called without --db.
var errNoDatabase = errors.New("missing summary database, use --db")

func newShowCmd() *cobra.Command {
	var dsn string

	cmd := &cobra.Command{
		Use:   "show --db DSN SIGNATURE...",
		Short: "Print persisted behaviors",
		Long: `Print persisted behaviors.

DSN names a summary database written by the analyzer's -summary-db
flag, "badger:<dir>" or "sqlite:<file>".`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			if dsn == "" {
				return errNoDatabase
			}

			db, err := persist.Open(dsn, slog.Default())
			if err != nil {
				return err
			}
			defer func() { err = errors.Join(err, db.Close()) }()

			mbs := make([]*behavior.MethodBehavior, 0, len(args))
			for _, sig := range args {
				mb, err := db.Load(cmd.Context(), sig)
				if err != nil {
					return fmt.Errorf("%s: %w", sig, err)
				}

				mbs = append(mbs, mb)
			}

			return codec.Encode(cmd.OutOrStdout(), mbs...)
		},
	}

	cmd.Flags().StringVar(&dsn, "db", "", "summary database `dsn`")

	return cmd
}
