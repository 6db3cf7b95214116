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

	"golang.org/x/tools/go/types/typeutil"

	"fillmore-labs.com/behave/internal/behavior"
	"fillmore-labs.com/behave/internal/constraint"
	"fillmore-labs.com/behave/internal/explore/tracker"
	"fillmore-labs.com/behave/internal/signature"
)

func (w *walker) call(x *ast.CallExpr, p path) ([]result, error) {
	info := w.e.info

	if tv, ok := info.Types[x.Fun]; ok && tv.IsType() {
		if len(x.Args) != 1 {
			return []result{w.fresh(p, 0)}, nil
		}

		return w.expr(x.Args[0], p)
	}

	if id, ok := ast.Unparen(x.Fun).(*ast.Ident); ok {
		if b, ok := info.Uses[id].(*types.Builtin); ok {
			return w.builtin(x, b.Name(), p)
		}
	}

	rs, err := w.callArgs(x, p)
	if err != nil {
		return nil, err
	}

	switch tracker.Classify(info, x) {
	case tracker.Exits:
		return nil, nil

	case tracker.Panics:
		for _, r := range rs {
			w.throw(x.Pos(), r.p, w.e.values.NewException(nil), "", nil)
		}

		return nil, nil
	}

	fn, ok := typeutil.Callee(info, x).(*types.Func)
	if !ok || tuple(info, x.Args) {
		return w.freshResults(rs, 0), nil
	}

	fn = fn.Origin()

	mb := w.s.BehaviorFor(w.ctx, signature.Of(fn), w.e.Method(fn))
	if mb == nil || !mb.Complete() {
		return w.freshResults(rs, 0), nil
	}

	kinds := w.argKinds(x)

	var out []result
	for _, r := range rs {
		out = append(out, w.apply(x, mb, r, kinds)...)
	}

	return out, nil
}

// apply continues r with every yield of mb.
func (w *walker) apply(x *ast.CallExpr, mb *behavior.MethodBehavior, r results, kinds []behavior.ArgKind) []result {
	sup := supplier{w.e.values}

	var out []result
	for _, y := range mb.Yields() {
		for st := range y.StatesAfterInvocation(r.svs, kinds, r.p.st, sup) {
			st, top := st.Pop()
			q := path{st: st, env: r.p.env}

			if top.IsException() {
				w.throw(x.Pos(), q, top, "", nil)

				continue
			}

			out = append(out, result{p: q, sv: top})
		}
	}

	return out
}

// callArgs evaluates the receiver and arguments of x. The results hold the argument values only.
func (w *walker) callArgs(x *ast.CallExpr, p path) ([]results, error) {
	ps := []path{p}

	if sel, ok := ast.Unparen(x.Fun).(*ast.SelectorExpr); ok {
		if _, method := w.e.info.Selections[sel]; method {
			rs, err := w.expr(sel.X, p)
			if err != nil {
				return nil, err
			}

			ps = paths(rs)
		}
	}

	var out []results
	for _, q := range ps {
		rs, err := w.exprs(x.Args, q)
		if err != nil {
			return nil, err
		}

		out = append(out, rs...)
	}

	return out, nil
}

// argKinds classifies the arguments of x. Only an argument spread with "..." stands for the
// variadic slice itself; f(nil) passes a slice holding one nil element.
func (w *walker) argKinds(x *ast.CallExpr) []behavior.ArgKind {
	kinds := make([]behavior.ArgKind, len(x.Args))
	for i, arg := range x.Args {
		spread := x.Ellipsis.IsValid() && i == len(x.Args)-1

		switch isNil := w.e.info.Types[arg].IsNil(); {
		case spread && isNil:
			kinds[i] = behavior.ArgNull

		case spread:
			kinds[i] = behavior.ArgArray

		case isNil && !w.variadicSlot(x, i):
			kinds[i] = behavior.ArgNull
		}
	}

	return kinds
}

// variadicSlot reports whether argument i of x falls into the variadic parameter of the callee.
func (w *walker) variadicSlot(x *ast.CallExpr, i int) bool {
	sig, ok := w.e.info.TypeOf(x.Fun).Underlying().(*types.Signature)

	return ok && sig.Variadic() && i >= sig.Params().Len()-1
}

func (w *walker) builtin(x *ast.CallExpr, name string, p path) ([]result, error) {
	rs, err := w.exprs(x.Args, p)
	if err != nil {
		return nil, err
	}

	switch name {
	case "panic":
		var t types.Type
		if len(x.Args) == 1 {
			t = w.e.info.TypeOf(x.Args[0])
		}

		for _, r := range rs {
			w.throw(x.Pos(), r.p, w.e.values.NewException(exceptionType(t)), "", nil)
		}

		return nil, nil

	case "new", "make":
		return w.freshResults(rs, constraint.NotNull), nil

	case "len", "cap":
		// the length of a nil slice or map is zero
		var out []result
		for _, r := range rs {
			if len(r.svs) == 1 {
				if cs, _ := r.p.st.Constraints(r.svs[0]); cs.Has(constraint.Null) {
					out = append(out, w.fresh(r.p, constraint.Zero))

					continue
				}
			}

			out = append(out, w.fresh(r.p, 0))
		}

		return out, nil

	default:
		return w.freshResults(rs, 0), nil
	}
}

// tuple reports whether args is a single call returning multiple values.
func tuple(info *types.Info, args []ast.Expr) bool {
	if len(args) != 1 {
		return false
	}

	_, ok := info.TypeOf(args[0]).(*types.Tuple)

	return ok
}
