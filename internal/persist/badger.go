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

package persist

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/dgraph-io/badger/v4"

	"fillmore-labs.com/behave/internal/behavior"
)

// keyPrefix namespaces behavior keys and carries the format version.
const keyPrefix = "behave/v1/"

// BadgerConfig configures a badger backed persister.
type BadgerConfig struct {
	Path     string
	InMemory bool
	Logger   *slog.Logger // nil disables badger's internal logging
}

// Badger persists behaviors in a badger key-value store.
type Badger struct {
	db *badger.DB
}

var _ Persister = (*Badger)(nil)

// OpenBadger opens or creates the database described by cfg.
func OpenBadger(cfg BadgerConfig) (*Badger, error) {
	var opts badger.Options

	switch {
	case cfg.InMemory:
		opts = badger.DefaultOptions("").WithInMemory(true)

	case cfg.Path == "":
		return nil, errors.New("path is required for persistent summary database")

	default:
		if err := os.MkdirAll(cfg.Path, 0o750); err != nil {
			return nil, fmt.Errorf("create summary database directory %s: %w", cfg.Path, err)
		}

		opts = badger.DefaultOptions(cfg.Path)
	}

	opts = opts.WithNumVersionsToKeep(1)

	if cfg.Logger != nil {
		opts = opts.WithLogger(badgerLogger{cfg.Logger})
	} else {
		opts = opts.WithLogger(nil)
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger summary database: %w", err)
	}

	return &Badger{db: db}, nil
}

// Load implements [Persister].
func (b *Badger) Load(_ context.Context, sig string) (*behavior.MethodBehavior, error) {
	var data []byte

	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyPrefix + sig))
		if err != nil {
			return err
		}

		data, err = item.ValueCopy(nil)

		return err
	})

	switch {
	case errors.Is(err, badger.ErrKeyNotFound):
		return nil, fmt.Errorf("%w: %q", ErrNotFound, sig)

	case err != nil:
		return nil, fmt.Errorf("read behavior %q: %w", sig, err)
	}

	return decode(sig, data)
}

// Save implements [Persister].
func (b *Badger) Save(_ context.Context, mb *behavior.MethodBehavior) error {
	data, err := encode(mb)
	if err != nil {
		return err
	}

	if err := b.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyPrefix+mb.Signature()), data)
	}); err != nil {
		return fmt.Errorf("write behavior %q: %w", mb.Signature(), err)
	}

	return nil
}

// Close implements [Persister].
func (b *Badger) Close() error {
	return b.db.Close()
}

// badgerLogger adapts slog to badger's logger interface.
type badgerLogger struct {
	logger *slog.Logger
}

func (l badgerLogger) Errorf(format string, args ...any) {
	l.logger.Error(fmt.Sprintf(format, args...))
}

func (l badgerLogger) Warningf(format string, args ...any) {
	l.logger.Warn(fmt.Sprintf(format, args...))
}

func (l badgerLogger) Infof(format string, args ...any) {
	l.logger.Info(fmt.Sprintf(format, args...))
}

func (l badgerLogger) Debugf(format string, args ...any) {
	l.logger.Debug(fmt.Sprintf(format, args...))
}
