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
	"fmt"
	"go/ast"
	"go/constant"
	"go/token"
	"go/types"

	"fillmore-labs.com/behave/internal/constraint"
	"fillmore-labs.com/behave/internal/state"
)

// Names of the runtime checks raising exceptional yields.
const (
	checkNilDeref = "nilderef"
	checkDivZero  = "divzero"
)

// result is the value of an expression on one path.
type result struct {
	p  path
	sv *state.SymbolicValue
}

// results are the values of an expression list on one path.
type results struct {
	p   path
	svs []*state.SymbolicValue
}

func paths(rs []result) []path {
	ps := make([]path, len(rs))
	for i, r := range rs {
		ps[i] = r.p
	}

	return ps
}

// fresh creates a new value on p, constrained by c unless c is zero.
func (w *walker) fresh(p path, c constraint.Constraint) result {
	sv := w.e.values.NewValue()
	if c == 0 {
		return result{p: p, sv: sv}
	}

	return result{p: p.constrain(sv, c)[0], sv: sv}
}

// freshEach replaces the value of every result with a fresh one.
func (w *walker) freshEach(rs []result, c constraint.Constraint) []result {
	out := make([]result, len(rs))
	for i, r := range rs {
		out[i] = w.fresh(r.p, c)
	}

	return out
}

// exprs evaluates xs from left to right.
func (w *walker) exprs(xs []ast.Expr, p path) ([]results, error) {
	rs := []results{{p: p}}
	for _, x := range xs {
		var next []results
		for _, r := range rs {
			vs, err := w.expr(x, r.p)
			if err != nil {
				return nil, err
			}

			for _, v := range vs {
				svs := append(r.svs[:len(r.svs):len(r.svs)], v.sv)
				next = append(next, results{p: v.p, svs: svs})
			}
		}

		rs = next
	}

	return rs, nil
}

// expr evaluates x on p, returning one result per feasible outcome.
//
// Outcomes leaving the function, like failed checks or panics, are recorded as exits.
func (w *walker) expr(x ast.Expr, p path) ([]result, error) {
	if tv, ok := w.e.info.Types[x]; ok {
		switch {
		case tv.IsType():
			return []result{w.fresh(p, 0)}, nil

		case tv.Value != nil:
			return []result{w.fresh(p, constantConstraint(tv.Value))}, nil

		case tv.IsNil():
			return []result{w.fresh(p, constraint.Null)}, nil
		}
	}

	switch x := x.(type) {
	case *ast.ParenExpr:
		return w.expr(x.X, p)

	case *ast.Ident:
		return []result{w.ident(p, x)}, nil

	case *ast.BasicLit:
		return []result{w.fresh(p, 0)}, nil

	case *ast.FuncLit:
		return []result{w.fresh(p, constraint.NotNull)}, nil

	case *ast.CompositeLit:
		return w.composite(x, p)

	case *ast.UnaryExpr:
		return w.unary(x, p)

	case *ast.StarExpr:
		rs, err := w.expr(x.X, p)
		if err != nil {
			return nil, err
		}

		var out []result
		for _, r := range rs {
			for _, q := range w.check(x.Pos(), r.p, r.sv, constraint.Null, constraint.NotNull, checkNilDeref) {
				out = append(out, w.fresh(q, 0))
			}
		}

		return out, nil

	case *ast.SelectorExpr:
		return w.selector(x, p)

	case *ast.BinaryExpr:
		switch x.Op {
		case token.LAND, token.LOR, token.EQL, token.NEQ, token.LSS, token.GTR, token.LEQ, token.GEQ:
			return w.boolean(x, p)

		default:
			return w.arith(x.Op, x.X, x.Y, w.e.info.TypeOf(x), p)
		}

	case *ast.CallExpr:
		return w.call(x, p)

	case *ast.IndexExpr:
		rs, err := w.exprs([]ast.Expr{x.X, x.Index}, p)

		return w.freshResults(rs, 0), err

	case *ast.IndexListExpr:
		return []result{w.fresh(p, constraint.NotNull)}, nil

	case *ast.SliceExpr:
		parts := []ast.Expr{x.X}
		for _, e := range []ast.Expr{x.Low, x.High, x.Max} {
			if e != nil {
				parts = append(parts, e)
			}
		}

		rs, err := w.exprs(parts, p)

		return w.freshResults(rs, 0), err

	case *ast.TypeAssertExpr:
		rs, err := w.expr(x.X, p)

		return w.freshEach(rs, 0), err

	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupported, x)
	}
}

func (w *walker) freshResults(rs []results, c constraint.Constraint) []result {
	out := make([]result, len(rs))
	for i, r := range rs {
		out[i] = w.fresh(r.p, c)
	}

	return out
}

func (w *walker) ident(p path, id *ast.Ident) result {
	obj := w.e.info.ObjectOf(id)
	if sv, ok := p.env[obj]; ok && obj != nil {
		return result{p: p, sv: sv}
	}

	switch obj.(type) {
	case *types.Func:
		return w.fresh(p, constraint.NotNull)

	case *types.Var:
		if !local(obj) {
			return w.fresh(p, 0)
		}

		// first read of a local not bound by the walk
		r := w.fresh(p, 0)

		return result{p: path{st: r.p.st, env: r.p.env.bind(obj, r.sv)}, sv: r.sv}

	default:
		return w.fresh(p, 0)
	}
}

func (w *walker) composite(x *ast.CompositeLit, p path) ([]result, error) {
	elts := make([]ast.Expr, len(x.Elts))
	for i, e := range x.Elts {
		if kv, ok := e.(*ast.KeyValueExpr); ok {
			e = kv.Value
		}

		elts[i] = e
	}

	rs, err := w.exprs(elts, p)
	if err != nil {
		return nil, err
	}

	var c constraint.Constraint
	switch w.e.info.TypeOf(x).Underlying().(type) {
	case *types.Map, *types.Slice:
		c = constraint.NotNull
	}

	return w.freshResults(rs, c), nil
}

func (w *walker) unary(x *ast.UnaryExpr, p path) ([]result, error) {
	if x.Op == token.NOT {
		return w.boolean(x, p)
	}

	rs, err := w.expr(x.X, p)
	if err != nil {
		return nil, err
	}

	switch x.Op {
	case token.AND:
		return w.freshEach(rs, constraint.NotNull), nil

	case token.SUB:
		out := make([]result, len(rs))
		for i, r := range rs {
			cs, _ := r.p.st.Constraints(r.sv)
			c, _ := cs.Get(constraint.Zeroness)
			out[i] = w.fresh(r.p, c)
		}

		return out, nil

	default:
		return w.freshEach(rs, 0), nil
	}
}

func (w *walker) selector(x *ast.SelectorExpr, p path) ([]result, error) {
	sel, ok := w.e.info.Selections[x]
	if !ok {
		// qualified identifier
		return []result{w.ident(p, x.Sel)}, nil
	}

	rs, err := w.expr(x.X, p)
	if err != nil {
		return nil, err
	}

	if sel.Kind() != types.FieldVal {
		return w.freshEach(rs, constraint.NotNull), nil
	}

	if _, ptr := w.e.info.TypeOf(x.X).Underlying().(*types.Pointer); !ptr {
		return w.freshEach(rs, 0), nil
	}

	var out []result
	for _, r := range rs {
		for _, q := range w.check(x.Pos(), r.p, r.sv, constraint.Null, constraint.NotNull, checkNilDeref) {
			out = append(out, w.fresh(q, 0))
		}
	}

	return out, nil
}

// arith evaluates a binary operation with non-boolean result of type t.
func (w *walker) arith(op token.Token, x, y ast.Expr, t types.Type, p path) ([]result, error) {
	rs, err := w.exprs([]ast.Expr{x, y}, p)
	if err != nil {
		return nil, err
	}

	if (op != token.QUO && op != token.REM) || !integer(t) {
		return w.freshResults(rs, 0), nil
	}

	var out []result
	for _, r := range rs {
		for _, q := range w.check(y.Pos(), r.p, r.svs[1], constraint.Zero, constraint.NonZero, checkDivZero) {
			out = append(out, w.fresh(q, 0))
		}
	}

	return out, nil
}

// check raises a runtime error on p when sv is known to satisfy fail. Otherwise the surviving path
// learns ok for sv.
func (w *walker) check(pos token.Pos, p path, sv *state.SymbolicValue, fail, ok constraint.Constraint, name string) []path {
	if cs, _ := p.st.Constraints(sv); cs.Has(fail) {
		w.throw(pos, p, w.e.values.NewException(runtimeError), name, sv)

		return nil
	}

	return p.constrain(sv, ok)
}

// boolean evaluates a condition as a value.
func (w *walker) boolean(x ast.Expr, p path) ([]result, error) {
	thens, elses, err := w.cond(x, p)
	if err != nil {
		return nil, err
	}

	sv := w.e.values.NewValue()

	out := make([]result, 0, len(thens)+len(elses))
	for _, q := range thens {
		out = append(out, result{p: q.constrain(sv, constraint.True)[0], sv: sv})
	}

	for _, q := range elses {
		out = append(out, result{p: q.constrain(sv, constraint.False)[0], sv: sv})
	}

	return out, nil
}

// cond splits p into the paths where x holds and where it does not.
func (w *walker) cond(x ast.Expr, p path) (thens, elses []path, err error) {
	if tv, ok := w.e.info.Types[x]; ok && tv.Value != nil && tv.Value.Kind() == constant.Bool {
		if constant.BoolVal(tv.Value) {
			return []path{p}, nil, nil
		}

		return nil, []path{p}, nil
	}

	switch x := x.(type) {
	case *ast.ParenExpr:
		return w.cond(x.X, p)

	case *ast.UnaryExpr:
		if x.Op == token.NOT {
			thens, elses, err := w.cond(x.X, p)

			return elses, thens, err
		}

	case *ast.BinaryExpr:
		switch x.Op {
		case token.LAND:
			return w.and(x.X, x.Y, p)

		case token.LOR:
			elses, thens, err := w.nor(x.X, x.Y, p)

			return thens, elses, err

		case token.EQL:
			return w.equal(x.X, x.Y, p)

		case token.NEQ:
			thens, elses, err := w.equal(x.X, x.Y, p)

			return elses, thens, err

		case token.LSS, token.GTR, token.LEQ, token.GEQ:
			rs, err := w.exprs([]ast.Expr{x.X, x.Y}, p)
			if err != nil {
				return nil, nil, err
			}

			for _, r := range rs {
				thens = append(thens, r.p)
				elses = append(elses, r.p)
			}

			return thens, elses, nil
		}
	}

	rs, err := w.expr(x, p)
	if err != nil {
		return nil, nil, err
	}

	for _, r := range rs {
		thens = append(thens, r.p.constrain(r.sv, constraint.True)...)
		elses = append(elses, r.p.constrain(r.sv, constraint.False)...)
	}

	return thens, elses, nil
}

// and evaluates x && y with short-circuit.
func (w *walker) and(x, y ast.Expr, p path) (thens, elses []path, err error) {
	xt, xf, err := w.cond(x, p)
	if err != nil {
		return nil, nil, err
	}

	elses = xf
	for _, q := range xt {
		yt, yf, err := w.cond(y, q)
		if err != nil {
			return nil, nil, err
		}

		thens = append(thens, yt...)
		elses = append(elses, yf...)
	}

	return thens, elses, nil
}

// nor evaluates !(x || y) with short-circuit.
func (w *walker) nor(x, y ast.Expr, p path) (thens, elses []path, err error) {
	xt, xf, err := w.cond(x, p)
	if err != nil {
		return nil, nil, err
	}

	elses = xt
	for _, q := range xf {
		yt, yf, err := w.cond(y, q)
		if err != nil {
			return nil, nil, err
		}

		elses = append(elses, yt...)
		thens = append(thens, yf...)
	}

	return thens, elses, nil
}

// equal splits p on x == y.
func (w *walker) equal(x, y ast.Expr, p path) (thens, elses []path, err error) {
	if yes, no, ok := w.known(y); ok {
		return w.split(x, yes, no, p)
	}

	if yes, no, ok := w.known(x); ok {
		return w.split(y, yes, no, p)
	}

	rs, err := w.exprs([]ast.Expr{x, y}, p)
	if err != nil {
		return nil, nil, err
	}

	for _, r := range rs {
		thens = append(thens, r.p)
		if r.svs[0] != r.svs[1] {
			elses = append(elses, r.p)
		}
	}

	return thens, elses, nil
}

// split evaluates x and imposes yes on the paths where the comparison holds, no on the others.
func (w *walker) split(x ast.Expr, yes, no constraint.Constraint, p path) (thens, elses []path, err error) {
	rs, err := w.expr(x, p)
	if err != nil {
		return nil, nil, err
	}

	for _, r := range rs {
		thens = append(thens, r.p.constrain(r.sv, yes)...)
		elses = append(elses, r.p.constrain(r.sv, no)...)
	}

	return thens, elses, nil
}

// known returns the constraints implied by comparing with x for equality and inequality.
func (w *walker) known(x ast.Expr) (yes, no constraint.Constraint, ok bool) {
	tv, found := w.e.info.Types[x]
	switch {
	case !found:
		return 0, 0, false

	case tv.IsNil():
		return constraint.Null, constraint.NotNull, true

	case tv.Value == nil:
		return 0, 0, false
	}

	switch c := constantConstraint(tv.Value); c {
	case constraint.Zero, constraint.True, constraint.False:
		inv, _ := c.Inverse()

		return c, inv, true

	case constraint.NonZero:
		return c, 0, true

	default:
		return 0, 0, false
	}
}

func constantConstraint(v constant.Value) constraint.Constraint {
	switch v.Kind() {
	case constant.Bool:
		if constant.BoolVal(v) {
			return constraint.True
		}

		return constraint.False

	case constant.Int, constant.Float, constant.Complex:
		if constant.Sign(v) == 0 {
			return constraint.Zero
		}

		return constraint.NonZero

	default:
		return 0
	}
}

func integer(t types.Type) bool {
	b, ok := t.Underlying().(*types.Basic)

	return ok && b.Info()&types.IsInteger != 0
}
