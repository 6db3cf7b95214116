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

package constraint_test

import (
	"errors"
	"slices"
	"testing"

	. "fillmore-labs.com/behave/internal/constraint"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		want    Constraint
		wantErr error
	}{
		{"object.NULL", Null, nil},
		{"object.NOT_NULL", NotNull, nil},
		{"boolean.TRUE", True, nil},
		{"boolean.FALSE", False, nil},
		{"zero.ZERO", Zero, nil},
		{"zero.NON_ZERO", NonZero, nil},
		{"typed.KNOWN", Known, nil},
		{"object.TRUE", 0, ErrUnknownConstraint},
		{"colour.RED", 0, ErrUnknownDomain},
		{"NULL", 0, ErrUnknownConstraint},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Parse(tt.name)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Got error %v, want %v", err, tt.wantErr)
			}

			if got != tt.want {
				t.Errorf("Got %v, want %v", got, tt.want)
			}

			if tt.wantErr == nil && got.Name() != tt.name {
				t.Errorf("Got name %q, want %q", got.Name(), tt.name)
			}
		})
	}
}

func TestInverse(t *testing.T) {
	t.Parallel()

	if inv, ok := NotNull.Inverse(); !ok || inv != Null {
		t.Errorf("Got %v, %t, want NULL", inv, ok)
	}

	if inv, ok := Zero.Inverse(); !ok || inv != NonZero {
		t.Errorf("Got %v, %t, want NON_ZERO", inv, ok)
	}

	if _, ok := Known.Inverse(); ok {
		t.Error("Expected KNOWN to have no inverse")
	}
}

func TestConstraints(t *testing.T) {
	t.Parallel()

	var empty Constraints
	if !empty.IsEmpty() {
		t.Error("Expected zero value to be empty")
	}

	s := Of(NotNull, True)
	if s.IsEmpty() || s.Len() != 2 {
		t.Fatalf("Got %v, want two constraints", s)
	}

	if !s.Has(NotNull) || s.Has(Null) {
		t.Errorf("Got %v, want NOT_NULL member", s)
	}

	s2 := s.Put(Null)
	if c, _ := s2.Get(Nullness); c != Null {
		t.Errorf("Got %v, want NULL after put", c)
	}

	if !s.Has(NotNull) {
		t.Error("Put modified the original set")
	}

	if s3 := s.Remove(Truth); s3 != Of(NotNull) {
		t.Errorf("Got %v, want {object.NOT_NULL}", s3)
	}

	if got, want := slices.Collect(s.All()), []Constraint{NotNull, True}; !slices.Equal(got, want) {
		t.Errorf("Got %v, want %v", got, want)
	}

	if got, want := s.String(), "{object.NOT_NULL, boolean.TRUE}"; got != want {
		t.Errorf("Got %q, want %q", got, want)
	}
}
