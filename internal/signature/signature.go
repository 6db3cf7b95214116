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

// Package signature parses and builds method signature strings.
//
// A signature has the form name(params)result, where params and result use single-letter
// descriptors:
//
//	Z bool  B 8-bit  S 16-bit  C char  I 32-bit  J 64-bit  F float32  D float64  V void
//	L<name>; reference  [<type> array or slice
//
// The name is everything before the last '(', so it may itself contain parentheses.
package signature

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformed is returned for signatures that do not follow the descriptor grammar.
var ErrMalformed = errors.New("malformed signature")

// constructorSuffix marks constructor signatures.
const constructorSuffix = "<init>"

// Type is a single type descriptor.
type Type string

// Boolean reports whether t describes a boolean.
func (t Type) Boolean() bool { return t == "Z" }

// Void reports whether t describes the absence of a result.
func (t Type) Void() bool { return t == "V" }

// Array reports whether t describes an array or slice.
func (t Type) Array() bool { return strings.HasPrefix(string(t), "[") }

// Descriptor is a parsed signature.
type Descriptor struct {
	Name   string
	Params []Type
	Return Type
}

// Arity returns the number of formal parameters.
func (d Descriptor) Arity() int { return len(d.Params) }

// Constructor reports whether the signature names a constructor.
func (d Descriptor) Constructor() bool { return strings.HasSuffix(d.Name, constructorSuffix) }

func (d Descriptor) String() string {
	var b strings.Builder

	b.WriteString(d.Name)
	b.WriteByte('(')
	for _, p := range d.Params {
		b.WriteString(string(p))
	}
	b.WriteByte(')')
	b.WriteString(string(d.Return))

	return b.String()
}

// Parse splits sig into name, parameter descriptors and result descriptor.
func Parse(sig string) (Descriptor, error) {
	open := strings.LastIndexByte(sig, '(')
	if open < 0 {
		return Descriptor{}, fmt.Errorf("%w %q: missing parameter list", ErrMalformed, sig)
	}

	d := Descriptor{Name: sig[:open]}
	rest := sig[open+1:]

	for {
		if rest == "" {
			return Descriptor{}, fmt.Errorf("%w %q: unterminated parameter list", ErrMalformed, sig)
		}

		if rest[0] == ')' {
			rest = rest[1:]

			break
		}

		t, r, err := parseType(rest)
		if err != nil {
			return Descriptor{}, fmt.Errorf("%w %q: %w", ErrMalformed, sig, err)
		}

		if t.Void() {
			return Descriptor{}, fmt.Errorf("%w %q: void parameter", ErrMalformed, sig)
		}

		d.Params = append(d.Params, t)
		rest = r
	}

	t, r, err := parseType(rest)
	if err != nil {
		return Descriptor{}, fmt.Errorf("%w %q: %w", ErrMalformed, sig, err)
	}

	if r != "" {
		return Descriptor{}, fmt.Errorf("%w %q: trailing %q", ErrMalformed, sig, r)
	}

	d.Return = t

	return d, nil
}

var (
	errEmpty        = errors.New("missing type")
	errUnterminated = errors.New("unterminated reference")
	errVoidArray    = errors.New("array of void")
)

func parseType(s string) (Type, string, error) {
	i := 0
	for i < len(s) && s[i] == '[' {
		i++
	}

	if i == len(s) {
		return "", "", errEmpty
	}

	switch c := s[i]; c {
	case 'Z', 'B', 'S', 'C', 'I', 'J', 'F', 'D':
		return Type(s[:i+1]), s[i+1:], nil

	case 'V':
		if i > 0 {
			return "", "", errVoidArray
		}

		return Type(s[:1]), s[1:], nil

	case 'L':
		end := strings.IndexByte(s[i:], ';')
		if end < 0 {
			return "", "", errUnterminated
		}

		end += i + 1

		return Type(s[:end]), s[end:], nil

	default:
		return "", "", fmt.Errorf("unknown descriptor %q", c)
	}
}
