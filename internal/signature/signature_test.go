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

package signature_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	. "fillmore-labs.com/behave/internal/signature"
	"fillmore-labs.com/behave/internal/testsource"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		sig  string
		want Descriptor
	}{
		{"m(I)I", Descriptor{Name: "m", Params: []Type{"I"}, Return: "I"}},
		{"f()V", Descriptor{Name: "f", Return: "V"}},
		{"(pkg.T).M(Z[JLstring;)Lerror;", Descriptor{Name: "(pkg.T).M", Params: []Type{"Z", "[J", "Lstring;"}, Return: "Lerror;"}},
		{"java.lang.Object#<init>()V", Descriptor{Name: "java.lang.Object#<init>", Return: "V"}},
		{"g([[Lx.Y;C)[B", Descriptor{Name: "g", Params: []Type{"[[Lx.Y;", "C"}, Return: "[B"}},
	}

	for _, tt := range tests {
		t.Run(tt.sig, func(t *testing.T) {
			t.Parallel()

			got, err := Parse(tt.sig)
			if err != nil {
				t.Fatalf("Parse failed: %v", err)
			}

			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
			}

			if got.String() != tt.sig {
				t.Errorf("Got %q, want %q", got.String(), tt.sig)
			}
		})
	}
}

func TestParseMalformed(t *testing.T) {
	t.Parallel()

	for _, sig := range []string{"m", "m(I", "m(V)V", "m(X)V", "m(Lfoo)V", "m()", "m()II", "m()[V"} {
		t.Run(sig, func(t *testing.T) {
			t.Parallel()

			if _, err := Parse(sig); !errors.Is(err, ErrMalformed) {
				t.Errorf("Got error %v, want %v", err, ErrMalformed)
			}
		})
	}
}

func TestDescriptor(t *testing.T) {
	t.Parallel()

	d, err := Parse("x.T#<init>(Z)V")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if !d.Constructor() || d.Arity() != 1 || !d.Params[0].Boolean() || !d.Return.Void() {
		t.Errorf("Got %+v, want boolean constructor", d)
	}

	if !Type("[I").Array() || Type("I").Array() {
		t.Error("Array classification failed")
	}
}

func TestOf(t *testing.T) {
	t.Parallel()

	src := testsource.Load(t, `
type T struct{}

type Flag bool

func (*T) M(a int, b []string, f Flag) error { return nil }

func Plain(x int32, p *T, m map[string]int) (int, error) { return 0, nil }

func Variadic(format string, args ...any) {}

func Bytes(b byte, r rune, u uint16, f float64) float32 { return 0 }
`)

	tests := []struct {
		name    string
		want    string
		varArgs bool
	}{
		{"T.M", "(test.T).M(J[Lstring;Z)Lerror;", false},
		{"Plain", "test.Plain(IL*test.T;Lmap;)Ltuple;", false},
		{"Variadic", "test.Variadic(Lstring;[Linterface;)V", true},
		{"Bytes", "test.Bytes(BISD)F", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fn, _ := src.Func(t, tt.name)

			if got := Of(fn); got != tt.want {
				t.Errorf("Got %q, want %q", got, tt.want)
			}

			if got := VarArgs(fn); got != tt.varArgs {
				t.Errorf("Got varArgs %t, want %t", got, tt.varArgs)
			}
		})
	}
}
