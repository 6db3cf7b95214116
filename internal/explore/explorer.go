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

// Package explore summarizes Go function bodies by walking their feasible paths.
//
// The walk covers straight-line code with if/else branching. Functions using loops, switches,
// defer or other unsupported statements are left with an incomplete behavior, which callers
// never apply.
package explore

import (
	"context"
	"errors"
	"go/ast"
	"go/types"
	"log/slog"
	"runtime/trace"

	"fillmore-labs.com/behave/internal/behavior"
	"fillmore-labs.com/behave/internal/signature"
	"fillmore-labs.com/behave/internal/state"
	"fillmore-labs.com/behave/internal/store"
)

// DefaultMaxPaths is the default limit of simultaneously live paths per function.
const DefaultMaxPaths = 256

// Options configure an [Explorer].
type Options struct {
	// MaxPaths limits the live paths of one function; zero means [DefaultMaxPaths].
	MaxPaths int

	// KeepNodes records the terminal node of each path in the created yields.
	KeepNodes bool

	// Logger receives exploration failures; nil means [slog.Default].
	Logger *slog.Logger
}

// Explorer implements [store.Explorer] for the functions of one type-checked package.
type Explorer struct {
	info    *types.Info
	decls   map[*types.Func]*ast.FuncDecl
	values  *state.Factory
	nodes   Arena
	opts    Options
	failure map[string]error
}

var _ store.Explorer = (*Explorer)(nil)

// Errors leaving a behavior incomplete.
var (
	ErrUnsupported = errors.New("unsupported construct")
	ErrPathLimit   = errors.New("path limit exceeded")
)

// New indexes the function declarations of files.
func New(info *types.Info, files []*ast.File, opts Options) *Explorer {
	if opts.MaxPaths <= 0 {
		opts.MaxPaths = DefaultMaxPaths
	}

	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	decls := make(map[*types.Func]*ast.FuncDecl)

	for _, file := range files {
		for _, decl := range file.Decls {
			fdecl, ok := decl.(*ast.FuncDecl)
			if !ok {
				continue
			}

			if fn, ok := info.Defs[fdecl.Name].(*types.Func); ok {
				decls[fn] = fdecl
			}
		}
	}

	return &Explorer{
		info:    info,
		decls:   decls,
		values:  new(state.Factory),
		opts:    opts,
		failure: make(map[string]error),
	}
}

// Method returns the owner of fn, with its declaration when fn belongs to the explored package.
func (e *Explorer) Method(fn *types.Func) Method {
	return Method{Func: fn, Decl: e.decls[fn.Origin()]}
}

// Node returns the terminal node recorded under id.
func (e *Explorer) Node(id behavior.NodeID) *Node {
	return e.nodes.At(id)
}

// Failure returns the reason exploring sig left its behavior incomplete.
func (e *Explorer) Failure(sig string) error {
	return e.failure[sig]
}

// Explore implements [store.Explorer].
func (e *Explorer) Explore(ctx context.Context, s *store.Store, owner store.Owner) {
	m, ok := owner.(Method)
	if !ok || !m.HasBody() {
		return
	}

	sig := signature.Of(m.Func)

	mb, err := s.CreateOrGet(sig, signature.VarArgs(m.Func))
	if err != nil {
		e.fail(ctx, sig, err)

		return
	}

	if mb.Visited() {
		return
	}

	mb.Visit()

	defer trace.StartRegion(ctx, "Explore").End()

	w := e.newWalker(ctx, s, mb, m)

	if err := w.run(); err != nil {
		e.fail(ctx, sig, err)

		return
	}

	for _, x := range w.exits {
		if x.check != "" {
			mb.CreateCheckYield(x.node, x.check, x.culprit, e.opts.KeepNodes)
		} else {
			mb.CreateYield(x.node, e.opts.KeepNodes)
		}
	}

	s.Complete(ctx, mb)
}

func (e *Explorer) fail(ctx context.Context, sig string, err error) {
	e.failure[sig] = err
	e.opts.Logger.LogAttrs(ctx, slog.LevelDebug, "Can't summarize function",
		slog.String("signature", sig), slog.Any("error", err))
}
