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

package explore

import (
	"go/ast"
	"go/types"

	"fillmore-labs.com/behave/internal/state"
	"fillmore-labs.com/behave/internal/store"
)

// Method is a function or method with its declaration, if available.
type Method struct {
	Func *types.Func
	Decl *ast.FuncDecl
}

var _ store.Owner = Method{}

// Overridable reports whether fn is an interface method.
func (m Method) Overridable() bool {
	recv := m.Func.Signature().Recv()

	return recv != nil && types.IsInterface(recv.Type())
}

// HasBody reports whether the declaration is in the current package and has a body.
func (m Method) HasBody() bool {
	return m.Decl != nil && m.Decl.Body != nil
}

// panicType is the static type of a panic value.
type panicType struct{ t types.Type }

// exceptionType returns the exception type of a panic with a value of type t.
func exceptionType(t types.Type) state.ExceptionType {
	if t == nil {
		return nil
	}

	return panicType{types.Unalias(t)}
}

func (p panicType) QualifiedName() string {
	return types.TypeString(p.t, nil)
}

// Local reports whether the type is declared inside a function.
func (p panicType) Local() bool {
	if ptr, ok := p.t.(*types.Pointer); ok {
		return panicType{types.Unalias(ptr.Elem())}.Local()
	}

	n, ok := p.t.(*types.Named)
	if !ok {
		return false
	}

	obj := n.Obj()

	return obj.Pkg() != nil && obj.Parent() != obj.Pkg().Scope()
}

// Super returns nil, Go types have no supertypes.
func (panicType) Super() state.ExceptionType { return nil }

// runtimeError is the type of panics raised by failed runtime checks.
var runtimeError = state.Named("runtime.Error")

// supplier creates yield results from the explorer's value factory.
type supplier struct{ f *state.Factory }

func (s supplier) NewValue() *state.SymbolicValue { return s.f.NewValue() }

func (s supplier) NewException(name string) *state.SymbolicValue {
	if name == "" {
		return s.f.NewException(nil)
	}

	return s.f.NewException(state.Named(name))
}
