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

// Package codec converts completed method behaviors to and from their textual form.
//
// A document is a YAML sequence of behavior records:
//
//	- signature: errors.New(Lstring;)Lerror;
//	  arity: 1
//	  varArgs: false
//	  declaredExceptions: []
//	  yields:
//	    - parametersConstraints: [null]
//	      exceptional: false
//	      resultIndex: -1
//	      resultConstraint: [object.NOT_NULL]
//
// JSON documents are valid YAML and decode the same way. Decoding is strict.
package codec

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"fillmore-labs.com/behave/internal/behavior"
	"fillmore-labs.com/behave/internal/constraint"
)

// Errors returned for malformed records.
var (
	ErrArityMismatch = errors.New("arity mismatch")
	ErrResultIndex   = errors.New("result index out of range")
	ErrMalformed     = errors.New("malformed yield")
)

type record struct {
	Signature          string        `yaml:"signature"`
	Arity              int           `yaml:"arity"`
	VarArgs            bool          `yaml:"varArgs"`
	DeclaredExceptions []string      `yaml:"declaredExceptions"`
	Yields             []yieldRecord `yaml:"yields"`
}

type yieldRecord struct {
	ParametersConstraints []constraintList `yaml:"parametersConstraints"`
	Exceptional           bool             `yaml:"exceptional"`
	ExceptionType         string           `yaml:"exceptionType,omitempty"`
	Check                 string           `yaml:"check,omitempty"`
	ResultIndex           *int             `yaml:"resultIndex,omitempty"`
	ResultConstraint      constraintList   `yaml:"resultConstraint,omitempty"`
}

// constraintList is a set of qualified constraint names, encoded as null when empty.
type constraintList []string

// MarshalYAML implements [yaml.Marshaler].
func (l constraintList) MarshalYAML() (any, error) {
	if len(l) == 0 {
		return nil, nil
	}

	return []string(l), nil
}

// Marshal encodes behaviors into a single document.
func Marshal(mbs ...*behavior.MethodBehavior) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, mbs...); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Encode writes behaviors as a single document to w.
//
// Encoding an incomplete behavior panics.
func Encode(w io.Writer, mbs ...*behavior.MethodBehavior) error {
	records := make([]record, 0, len(mbs))
	for _, mb := range mbs {
		records = append(records, toRecord(mb))
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("can't encode behaviors: %w", err)
	}

	return enc.Close()
}

// Unmarshal decodes all behaviors from data.
func Unmarshal(data []byte) ([]*behavior.MethodBehavior, error) {
	return Decode(bytes.NewReader(data))
}

// Decode reads every document from r and returns the completed behaviors.
func Decode(r io.Reader) ([]*behavior.MethodBehavior, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var mbs []*behavior.MethodBehavior
	for {
		var records []record
		if err := dec.Decode(&records); err != nil {
			if errors.Is(err, io.EOF) {
				return mbs, nil
			}

			return nil, fmt.Errorf("can't decode behaviors: %w", err)
		}

		for _, rec := range records {
			mb, err := fromRecord(rec)
			if err != nil {
				return nil, fmt.Errorf("behavior %q: %w", rec.Signature, err)
			}

			mbs = append(mbs, mb)
		}
	}
}

func toRecord(mb *behavior.MethodBehavior) record {
	if !mb.Complete() {
		panic(fmt.Sprintf("encoding incomplete behavior %s", mb.Signature()))
	}

	rec := record{
		Signature:          mb.Signature(),
		Arity:              mb.Arity(),
		VarArgs:            mb.VarArgs(),
		DeclaredExceptions: mb.DeclaredExceptions(),
		Yields:             make([]yieldRecord, 0, len(mb.Yields())),
	}

	if rec.DeclaredExceptions == nil {
		rec.DeclaredExceptions = []string{}
	}

	for _, y := range mb.Yields() {
		yr := yieldRecord{
			ParametersConstraints: make([]constraintList, y.Arity()),
			Exceptional:           y.IsExceptional(),
		}

		for i := range y.Arity() {
			yr.ParametersConstraints[i] = encodeConstraints(y.Param(i))
		}

		switch y.Kind() {
		case behavior.HappyPath:
			idx := y.ResultIndex()
			yr.ResultIndex = &idx
			yr.ResultConstraint = encodeConstraints(y.Result())

		case behavior.CheckException:
			yr.Check = y.Check()

			fallthrough

		case behavior.Exceptional:
			yr.ExceptionType = y.ExceptionType()
		}

		rec.Yields = append(rec.Yields, yr)
	}

	return rec
}

func fromRecord(rec record) (*behavior.MethodBehavior, error) {
	mb, err := behavior.New(rec.Signature, rec.VarArgs)
	if err != nil {
		return nil, err
	}

	arity := mb.Arity()
	if rec.Arity != arity {
		return nil, fmt.Errorf("%w: declared %d, signature has %d", ErrArityMismatch, rec.Arity, arity)
	}

	mb.SetDeclaredExceptions(rec.DeclaredExceptions)

	for i, yr := range rec.Yields {
		if err := addYield(mb, yr); err != nil {
			return nil, fmt.Errorf("yield %d: %w", i, err)
		}
	}

	mb.Completed()

	return mb, nil
}

func addYield(mb *behavior.MethodBehavior, yr yieldRecord) error {
	arity := mb.Arity()
	if len(yr.ParametersConstraints) != arity {
		return fmt.Errorf("%w: %d parameter constraints, want %d", ErrArityMismatch, len(yr.ParametersConstraints), arity)
	}

	params := make([]constraint.Constraints, arity)
	for i, l := range yr.ParametersConstraints {
		cs, err := decodeConstraints(l)
		if err != nil {
			return fmt.Errorf("parameter %d: %w", i, err)
		}

		params[i] = cs
	}

	if yr.Exceptional {
		if yr.ResultIndex != nil || yr.ResultConstraint != nil {
			return fmt.Errorf("%w: exceptional yield with result", ErrMalformed)
		}

		if yr.Check != "" {
			mb.AddCheckYield(params, yr.ExceptionType, yr.Check)
		} else {
			mb.AddExceptionalYield(params, yr.ExceptionType)
		}

		return nil
	}

	if yr.ExceptionType != "" || yr.Check != "" {
		return fmt.Errorf("%w: happy path yield with exception", ErrMalformed)
	}

	if yr.ResultIndex == nil {
		return fmt.Errorf("%w: happy path yield without result index", ErrMalformed)
	}

	idx := *yr.ResultIndex
	if idx < behavior.FreshResult || idx > arity || idx == arity && !mb.VarArgs() {
		return fmt.Errorf("%w: %d", ErrResultIndex, idx)
	}

	result, err := decodeConstraints(yr.ResultConstraint)
	if err != nil {
		return fmt.Errorf("result: %w", err)
	}

	mb.AddHappyPathYield(params, idx, result)

	return nil
}

func encodeConstraints(cs constraint.Constraints) constraintList {
	var l constraintList
	for c := range cs.All() {
		l = append(l, c.Name())
	}

	return l
}

func decodeConstraints(l constraintList) (constraint.Constraints, error) {
	var cs constraint.Constraints
	for _, name := range l {
		c, err := constraint.Parse(name)
		if err != nil {
			return constraint.Constraints{}, err
		}

		d := c.Domain()
		if d == constraint.Bookkeeping {
			return constraint.Constraints{}, fmt.Errorf("%w %q", constraint.ErrUnknownDomain, name)
		}

		if _, ok := cs.Get(d); ok {
			return constraint.Constraints{}, fmt.Errorf("%w: two constraints in domain %s", ErrMalformed, d)
		}

		cs = cs.Put(c)
	}

	return cs, nil
}
