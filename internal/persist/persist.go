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

// Package persist stores completed behaviors across analysis runs.
package persist

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"fillmore-labs.com/behave/internal/behavior"
	"fillmore-labs.com/behave/internal/codec"
)

// Errors returned by persisters.
var (
	ErrNotFound      = errors.New("behavior not found")
	ErrUnknownScheme = errors.New("unknown summary database scheme")
)

// Persister loads and saves completed behaviors by signature.
type Persister interface {
	// Load returns the stored behavior for sig, [ErrNotFound] if there is none.
	Load(ctx context.Context, sig string) (*behavior.MethodBehavior, error)
	// Save stores mb, replacing an earlier version.
	Save(ctx context.Context, mb *behavior.MethodBehavior) error
	// Close releases the underlying database.
	Close() error
}

// memory is the DSN of an in-memory badger database.
const memory = "memory"

// Open selects a backend by DSN: "badger:<dir>", "badger:memory" or "sqlite:<file>".
func Open(dsn string, logger *slog.Logger) (Persister, error) {
	scheme, location, ok := strings.Cut(dsn, ":")
	if !ok || location == "" {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScheme, dsn)
	}

	switch scheme {
	case "badger":
		cfg := BadgerConfig{Path: location, Logger: logger}
		if location == memory {
			cfg = BadgerConfig{InMemory: true, Logger: logger}
		}

		b, err := OpenBadger(cfg)
		if err != nil {
			return nil, err
		}

		return b, nil

	case "sqlite":
		s, err := OpenSQLite(location)
		if err != nil {
			return nil, err
		}

		return s, nil

	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownScheme, scheme)
	}
}

func encode(mb *behavior.MethodBehavior) ([]byte, error) {
	return codec.Marshal(mb)
}

func decode(sig string, data []byte) (*behavior.MethodBehavior, error) {
	mbs, err := codec.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("stored behavior %q: %w", sig, err)
	}

	if len(mbs) != 1 || mbs[0].Signature() != sig {
		return nil, fmt.Errorf("stored behavior %q: unexpected content", sig)
	}

	return mbs[0], nil
}
