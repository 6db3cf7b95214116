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

// Package testsource provides utilities for parsing and type-checking Go source code in tests.
//
// It handles the boilerplate of wrapping declaration fragments in a package and collecting
// the type information the explorer consumes.
package testsource

import (
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"testing"
)

const testpkg = "test"

// Source is a parsed and type-checked single-file package.
type Source struct {
	Fset *token.FileSet
	File *ast.File
	Pkg  *types.Package
	Info *types.Info
}

// Load parses and type-checks a Go source fragment.
// The provided source `src` holds package-level declarations and is prefixed with `package test`.
func Load(tb testing.TB, src string) Source {
	tb.Helper()

	const filename = "test.go"

	fset := token.NewFileSet()

	f, err := parser.ParseFile(fset, filename, "package "+testpkg+"\n\n"+src, parser.ParseComments|parser.SkipObjectResolution)
	if err != nil {
		tb.Fatalf("Failed to parse source %q: %v", src, err)
	}

	info := &types.Info{
		Types:      make(map[ast.Expr]types.TypeAndValue),
		Defs:       make(map[*ast.Ident]types.Object),
		Uses:       make(map[*ast.Ident]types.Object),
		Scopes:     make(map[ast.Node]*types.Scope),
		Selections: make(map[*ast.SelectorExpr]*types.Selection),
	}

	conf := types.Config{Importer: importer.Default()}

	pkg, err := conf.Check(testpkg, fset, []*ast.File{f}, info)
	if err != nil {
		tb.Fatalf("failed to type Check source: %v", err)
	}

	return Source{Fset: fset, File: f, Pkg: pkg, Info: info}
}

// Func returns the package-level function or method named name.
// Methods are written as "Type.Method".
func (s Source) Func(tb testing.TB, name string) (*types.Func, *ast.FuncDecl) {
	tb.Helper()

	for _, decl := range s.File.Decls {
		fdecl, ok := decl.(*ast.FuncDecl)
		if !ok || declName(fdecl) != name {
			continue
		}

		fn, ok := s.Info.Defs[fdecl.Name].(*types.Func)
		if !ok {
			tb.Fatalf("No type information for %s", name)
		}

		return fn, fdecl
	}

	tb.Fatalf("Can't find function %s", name)

	return nil, nil
}

func declName(fdecl *ast.FuncDecl) string {
	if fdecl.Recv == nil || len(fdecl.Recv.List) == 0 {
		return fdecl.Name.Name
	}

	t := fdecl.Recv.List[0].Type
	if star, ok := t.(*ast.StarExpr); ok {
		t = star.X
	}

	if id, ok := t.(*ast.Ident); ok {
		return id.Name + "." + fdecl.Name.Name
	}

	return fdecl.Name.Name
}
