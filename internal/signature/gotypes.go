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

package signature

import (
	"go/types"
	"strings"

	"fillmore-labs.com/behave/internal/explore/tracker"
)

// Of returns the signature string of a Go function or method.
//
// The receiver is not a parameter. Variadic parameters are slices, multiple results are a tuple.
func Of(fn *types.Func) string {
	var b strings.Builder

	b.WriteString(tracker.FuncNameOf(fn).String())
	b.WriteByte('(')

	sig := fn.Signature()
	for p := range sig.Params().Variables() {
		writeDescriptor(&b, p.Type())
	}

	b.WriteByte(')')

	switch res := sig.Results(); res.Len() {
	case 0:
		b.WriteByte('V')

	case 1:
		writeDescriptor(&b, res.At(0).Type())

	default:
		b.WriteString("Ltuple;")
	}

	return b.String()
}

// VarArgs reports whether fn takes a variadic last parameter.
func VarArgs(fn *types.Func) bool {
	return fn.Signature().Variadic()
}

// DescriptorOf returns the descriptor of a single Go type.
func DescriptorOf(t types.Type) Type {
	var b strings.Builder
	writeDescriptor(&b, t)

	return Type(b.String())
}

func writeDescriptor(b *strings.Builder, t types.Type) {
	t = types.Unalias(t)

	switch u := t.Underlying().(type) {
	case *types.Basic:
		if c := basicDescriptor(u); c != 0 {
			b.WriteByte(c)

			return
		}

	case *types.Slice:
		b.WriteByte('[')
		writeDescriptor(b, u.Elem())

		return

	case *types.Array:
		b.WriteByte('[')
		writeDescriptor(b, u.Elem())

		return
	}

	b.WriteByte('L')
	writeReference(b, t)
	b.WriteByte(';')
}

func basicDescriptor(t *types.Basic) byte {
	switch t.Kind() {
	case types.Bool, types.UntypedBool:
		return 'Z'

	case types.Int8, types.Uint8:
		return 'B'

	case types.Int16, types.Uint16:
		return 'S'

	case types.Int32, types.Uint32, types.UntypedRune:
		return 'I'

	case types.Int, types.Int64, types.Uint, types.Uint64, types.Uintptr, types.UntypedInt:
		return 'J'

	case types.Float32:
		return 'F'

	case types.Float64, types.UntypedFloat:
		return 'D'

	default:
		return 0
	}
}

func writeReference(b *strings.Builder, t types.Type) {
	switch t := t.(type) {
	case *types.Named:
		obj := t.Obj()
		if pkg := obj.Pkg(); pkg != nil {
			b.WriteString(pkg.Path())
			b.WriteByte('.')
		}
		b.WriteString(obj.Name())

	case *types.Pointer:
		b.WriteByte('*')
		writeReference(b, types.Unalias(t.Elem()))

	case *types.Basic:
		b.WriteString(t.Name())

	case *types.Interface:
		b.WriteString("interface")

	case *types.Map:
		b.WriteString("map")

	case *types.Chan:
		b.WriteString("chan")

	case *types.Signature:
		b.WriteString("func")

	case *types.Struct:
		b.WriteString("struct")

	case *types.TypeParam:
		b.WriteString(t.Obj().Name())

	case *types.Slice, *types.Array:
		b.WriteString("array")

	default:
		b.WriteString("invalid")
	}
}
