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
	"context"
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"maps"

	"fillmore-labs.com/behave/internal/behavior"
	"fillmore-labs.com/behave/internal/constraint"
	"fillmore-labs.com/behave/internal/state"
	"fillmore-labs.com/behave/internal/store"
)

// env binds local variables to their current values. It is copied on write.
type env map[types.Object]*state.SymbolicValue

func (e env) bind(obj types.Object, sv *state.SymbolicValue) env {
	c := make(env, len(e)+1)
	maps.Copy(c, e)
	c[obj] = sv

	return c
}

// path is one execution path through the function.
type path struct {
	st  *state.State
	env env
}

// constrain imposes c on sv, returning the feasible successors. The zero constraint imposes nothing.
func (p path) constrain(sv *state.SymbolicValue, c constraint.Constraint) []path {
	if c == 0 {
		return []path{p}
	}

	sts := p.st.SetConstraint(sv, c)

	ps := make([]path, len(sts))
	for i, st := range sts {
		ps[i] = path{st: st, env: p.env}
	}

	return ps
}

// exit is the terminal node of a path leaving the function.
type exit struct {
	node    *Node
	check   string
	culprit *state.SymbolicValue
}

// walker explores the body of one function.
type walker struct {
	ctx   context.Context //nolint:containedctx
	e     *Explorer
	s     *store.Store
	mb    *behavior.MethodBehavior
	m     Method
	exits []exit
}

func (e *Explorer) newWalker(ctx context.Context, s *store.Store, mb *behavior.MethodBehavior, m Method) *walker {
	return &walker{ctx: ctx, e: e, s: s, mb: mb, m: m}
}

func (w *walker) run() error {
	p := path{st: state.Empty(), env: make(env)}

	sig := w.m.Func.Signature()
	if recv := sig.Recv(); recv != nil {
		p.env[recv] = w.e.values.NewValue()
	}

	for v := range sig.Params().Variables() {
		sv := w.e.values.NewValue()
		w.mb.AddParameter(sv)
		p.env[v] = sv
	}

	for v := range sig.Results().Variables() {
		if v.Name() != "" {
			p = w.zero(p, v)
		}
	}

	body := w.m.Decl.Body

	ps, err := w.block(body.List, []path{p})
	if err != nil {
		return err
	}

	if len(ps) > 0 && sig.Results().Len() > 0 {
		return fmt.Errorf("%w: path without return", ErrUnsupported)
	}

	for _, q := range ps {
		w.exit(body.Rbrace, q, nil)
	}

	return nil
}

// block executes list on every path, returning the paths that complete normally.
func (w *walker) block(list []ast.Stmt, ps []path) ([]path, error) {
	for _, s := range list {
		if len(ps) == 0 {
			return nil, nil
		}

		var next []path
		for _, p := range ps {
			qs, err := w.stmt(s, p)
			if err != nil {
				return nil, err
			}

			next = append(next, qs...)
		}

		if len(next) > w.e.opts.MaxPaths || len(w.exits) > w.e.opts.MaxPaths {
			return nil, ErrPathLimit
		}

		ps = next
	}

	return ps, nil
}

func (w *walker) stmt(s ast.Stmt, p path) ([]path, error) {
	switch s := s.(type) {
	case *ast.BlockStmt:
		return w.block(s.List, []path{p})

	case *ast.EmptyStmt:
		return []path{p}, nil

	case *ast.ExprStmt:
		rs, err := w.expr(s.X, p)

		return paths(rs), err

	case *ast.ReturnStmt:
		return nil, w.ret(s, p)

	case *ast.IfStmt:
		return w.ifStmt(s, p)

	case *ast.AssignStmt:
		return w.assign(s, p)

	case *ast.IncDecStmt:
		rs, err := w.expr(s.X, p)
		if err != nil {
			return nil, err
		}

		return w.storeEach(s.X, rs, func(result) *state.SymbolicValue { return w.e.values.NewValue() })

	case *ast.DeclStmt:
		return w.decl(s, p)

	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupported, s)
	}
}

func (w *walker) ret(s *ast.ReturnStmt, p path) error {
	results := w.m.Func.Signature().Results()

	switch {
	case len(s.Results) == 0:
		var sv *state.SymbolicValue
		if results.Len() == 1 {
			sv = p.env[results.At(0)]
		}

		w.exit(s.Pos(), p, sv)

	case len(s.Results) == 1 && results.Len() == 1:
		rs, err := w.expr(s.Results[0], p)
		if err != nil {
			return err
		}

		for _, r := range rs {
			w.exit(s.Pos(), r.p, r.sv)
		}

	default:
		rs, err := w.exprs(s.Results, p)
		if err != nil {
			return err
		}

		for _, r := range rs {
			w.exit(s.Pos(), r.p, nil)
		}
	}

	return nil
}

func (w *walker) ifStmt(s *ast.IfStmt, p path) ([]path, error) {
	ps := []path{p}
	if s.Init != nil {
		var err error
		if ps, err = w.stmt(s.Init, p); err != nil {
			return nil, err
		}
	}

	var out []path
	for _, q := range ps {
		thens, elses, err := w.cond(s.Cond, q)
		if err != nil {
			return nil, err
		}

		t, err := w.block(s.Body.List, thens)
		if err != nil {
			return nil, err
		}

		out = append(out, t...)

		if s.Else == nil {
			out = append(out, elses...)

			continue
		}

		e, err := w.block([]ast.Stmt{s.Else}, elses)
		if err != nil {
			return nil, err
		}

		out = append(out, e...)
	}

	return out, nil
}

func (w *walker) assign(s *ast.AssignStmt, p path) ([]path, error) {
	switch s.Tok {
	case token.ASSIGN, token.DEFINE:
		if len(s.Lhs) == len(s.Rhs) {
			rs, err := w.exprs(s.Rhs, p)
			if err != nil {
				return nil, err
			}

			var out []path
			for _, r := range rs {
				qs, err := w.storeAll(s.Lhs, r.p, r.svs)
				if err != nil {
					return nil, err
				}

				out = append(out, qs...)
			}

			return out, nil
		}

		// a, b := f()
		rs, err := w.expr(s.Rhs[0], p)
		if err != nil {
			return nil, err
		}

		var out []path
		for _, r := range rs {
			svs := make([]*state.SymbolicValue, len(s.Lhs))
			for i := range svs {
				svs[i] = w.e.values.NewValue()
			}

			qs, err := w.storeAll(s.Lhs, r.p, svs)
			if err != nil {
				return nil, err
			}

			out = append(out, qs...)
		}

		return out, nil

	default:
		op := s.Tok + (token.ADD - token.ADD_ASSIGN)

		rs, err := w.arith(op, s.Lhs[0], s.Rhs[0], w.e.info.TypeOf(s.Lhs[0]), p)
		if err != nil {
			return nil, err
		}

		return w.storeEach(s.Lhs[0], rs, func(r result) *state.SymbolicValue { return r.sv })
	}
}

func (w *walker) decl(s *ast.DeclStmt, p path) ([]path, error) {
	gd, ok := s.Decl.(*ast.GenDecl)
	if !ok || gd.Tok != token.VAR {
		return []path{p}, nil
	}

	ps := []path{p}
	for _, spec := range gd.Specs {
		vs, ok := spec.(*ast.ValueSpec)
		if !ok {
			continue
		}

		lhs := make([]ast.Expr, len(vs.Names))
		for i, name := range vs.Names {
			lhs[i] = name
		}

		var next []path
		for _, q := range ps {
			if len(vs.Values) == 0 {
				for _, name := range vs.Names {
					if obj := w.e.info.Defs[name]; obj != nil {
						q = w.zero(q, obj)
					}
				}

				next = append(next, q)

				continue
			}

			qs, err := w.assign(&ast.AssignStmt{Lhs: lhs, Tok: token.DEFINE, Rhs: vs.Values}, q)
			if err != nil {
				return nil, err
			}

			next = append(next, qs...)
		}

		ps = next
	}

	return ps, nil
}

// storeEach stores the value selected by value from every result into lhs.
func (w *walker) storeEach(lhs ast.Expr, rs []result, value func(result) *state.SymbolicValue) ([]path, error) {
	var out []path
	for _, r := range rs {
		qs, err := w.store(lhs, r.p, value(r))
		if err != nil {
			return nil, err
		}

		out = append(out, qs...)
	}

	return out, nil
}

func (w *walker) storeAll(lhs []ast.Expr, p path, svs []*state.SymbolicValue) ([]path, error) {
	ps := []path{p}
	for i, x := range lhs {
		var next []path
		for _, q := range ps {
			qs, err := w.store(x, q, svs[i])
			if err != nil {
				return nil, err
			}

			next = append(next, qs...)
		}

		ps = next
	}

	return ps, nil
}

// store assigns sv to the location denoted by lhs.
//
// Only local variables are tracked, other locations are evaluated for their checks.
func (w *walker) store(lhs ast.Expr, p path, sv *state.SymbolicValue) ([]path, error) {
	switch x := ast.Unparen(lhs).(type) {
	case *ast.Ident:
		if x.Name == "_" {
			return []path{p}, nil
		}

		obj := w.e.info.ObjectOf(x)
		if !local(obj) {
			return []path{p}, nil
		}

		return []path{{st: p.st, env: p.env.bind(obj, sv)}}, nil

	case *ast.StarExpr:
		rs, err := w.expr(x.X, p)
		if err != nil {
			return nil, err
		}

		var out []path
		for _, r := range rs {
			out = append(out, w.check(x.Pos(), r.p, r.sv, constraint.Null, constraint.NotNull, checkNilDeref)...)
		}

		return out, nil

	default:
		rs, err := w.expr(x, p)

		return paths(rs), err
	}
}

// zero binds obj to a fresh value constrained like the zero value of its type.
func (w *walker) zero(p path, obj types.Object) path {
	r := w.fresh(p, zeroConstraint(obj.Type()))

	return path{st: r.p.st, env: r.p.env.bind(obj, r.sv)}
}

func (w *walker) exit(pos token.Pos, p path, sv *state.SymbolicValue) {
	w.exits = append(w.exits, exit{node: w.e.nodes.New(pos, p.st.WithExit(sv))})
}

func (w *walker) throw(pos token.Pos, p path, ex *state.SymbolicValue, check string, culprit *state.SymbolicValue) {
	w.exits = append(w.exits, exit{node: w.e.nodes.New(pos, p.st.WithExit(ex)), check: check, culprit: culprit})
}

// local reports whether obj is a variable declared inside a function.
func local(obj types.Object) bool {
	v, ok := obj.(*types.Var)
	if !ok || v.IsField() || v.Pkg() == nil {
		return false
	}

	return v.Parent() != v.Pkg().Scope()
}

func zeroConstraint(t types.Type) constraint.Constraint {
	if _, ok := types.Unalias(t).(*types.TypeParam); ok {
		return 0
	}

	switch u := t.Underlying().(type) {
	case *types.Basic:
		switch info := u.Info(); {
		case info&types.IsBoolean != 0:
			return constraint.False

		case info&types.IsNumeric != 0:
			return constraint.Zero

		case u.Kind() == types.UnsafePointer:
			return constraint.Null
		}

	case *types.Pointer, *types.Interface, *types.Map, *types.Slice, *types.Chan, *types.Signature:
		return constraint.Null
	}

	return 0
}
