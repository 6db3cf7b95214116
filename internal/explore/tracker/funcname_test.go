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

package tracker_test

import (
	"go/token"
	"go/types"
	"testing"

	. "fillmore-labs.com/behave/internal/explore/tracker"
)

func TestFuncNameOf(t *testing.T) {
	t.Parallel()

	pkg := types.NewPackage("example.com/testpkg", "testpkg")

	named := types.NewNamed(types.NewTypeName(token.NoPos, pkg, "MyType", nil), types.NewStruct(nil, nil), nil)
	alias := types.NewAlias(types.NewTypeName(token.NoPos, pkg, "MyAlias", nil), types.NewPointer(named))
	unnamed := types.NewStruct(nil, nil)

	// Complete sets the receiver of interface methods, so every function needs its own signature.
	noArgs := func() *types.Signature { return types.NewSignatureType(nil, nil, nil, nil, nil, false) }
	method := func(recv types.Type) *types.Func {
		sig := types.NewSignatureType(types.NewParam(token.NoPos, pkg, "", recv), nil, nil, nil, nil, false)

		return types.NewFunc(token.NoPos, pkg, "myFunc", sig)
	}

	tests := [...]struct {
		name string
		fun  *types.Func
		want string
	}{
		{"function", types.NewFunc(token.NoPos, pkg, "myFunc", noArgs()), "example.com/testpkg.myFunc"},
		{"value receiver", method(named), "(example.com/testpkg.MyType).myFunc"},
		{"pointer receiver", method(types.NewPointer(named)), "(example.com/testpkg.MyType).myFunc"},
		{"alias receiver", method(alias), "(example.com/testpkg.MyType).myFunc"},
		{"interface literal", types.NewInterfaceType([]*types.Func{
			types.NewFunc(token.NoPos, pkg, "myFunc", noArgs()),
		}, nil).Complete().Method(0), "(interface).myFunc"},
		{"no package", types.NewFunc(token.NoPos, nil, "myFunc", noArgs()), "myFunc"},
		{"universe method", types.Universe.Lookup("error").Type().Underlying().(*types.Interface).Method(0), "(error).Error"},
		{"unnamed receiver", method(unnamed), "(<invalid>).myFunc"},
		{"unnamed pointer receiver", method(types.NewPointer(unnamed)), "(<invalid>).myFunc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FuncNameOf(tt.fun).String(); got != tt.want {
				t.Errorf("Got %q, want %q", got, tt.want)
			}
		})
	}
}
