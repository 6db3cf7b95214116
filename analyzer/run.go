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

package analyzer

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"go/types"
	"iter"
	"log/slog"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/behave/analyzer/level"
	"fillmore-labs.com/behave/internal/astutil"
	"fillmore-labs.com/behave/internal/behavior"
	"fillmore-labs.com/behave/internal/codec"
	"fillmore-labs.com/behave/internal/config"
	"fillmore-labs.com/behave/internal/explore"
	"fillmore-labs.com/behave/internal/signature"
	"fillmore-labs.com/behave/internal/store"
)

// ErrResultMissing is returned when a required analyzer result is missing.
// This typically indicates a configuration error where the analyzer's
// Requires field is not properly set.
var ErrResultMissing = errors.New("analyzer result missing")

// run executes the behave analyzer's pipeline.
func (r *runOptions) run(p *analysis.Pass) (any, error) {
	// Retrieves the [inspector.Inspector] from the pass results.
	in, ok := p.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, fmt.Errorf("behave: %s %w", inspect.Analyzer.Name, ErrResultMissing)
	}

	ctx := context.Background()

	ctx, task := trace.NewTask(ctx, "Behave")
	defer task.End()

	logger := r.logger
	if logger == nil {
		logger = slog.Default()
	}

	opts := []store.Option{store.WithLogger(logger)}

	if r.summaryDB != "" {
		db, err := r.persister()
		if err != nil {
			return nil, fmt.Errorf("behave: can't open summary database: %w", err)
		}

		opts = append(opts, store.WithPersister(db))
	}

	ex := explore.New(p.TypesInfo, p.Files, explore.Options{
		MaxPaths:  r.maxPaths,
		KeepNodes: r.keepNodes(),
		Logger:    logger,
	})

	st := store.New(ex, opts...)

	// Stage 1: Make the summaries of imported packages known
	importFacts(ctx, p, st, logger)

	// Remember the current file over all functions declared in it
	var currentFile astutil.CurrentFile

	root, nodes := in.Root(), []ast.Node{
		(*ast.File)(nil),
		(*ast.FuncDecl)(nil),
	}

	// Stage 2: Summarize all function and method declarations
	root.Inspect(nodes, func(i inspector.Cursor) bool {
		switch node := i.Node().(type) {
		case *ast.File:
			currentFile = astutil.NewCurrentFile(p.Fset, node)
			descend := r.behavior.Enabled(config.IncludeGenerated) || !currentFile.Generated()

			return descend

		case *ast.FuncDecl:
			if !currentFile.Valid() {
				astutil.InternalError(p, node, "Function declaration %s without file info", node.Name.Name)

				return false
			}

			r.summarize(ctx, p, st, ex, currentFile, node)

			return false

		default:
			astutil.InternalError(p, node, "Unexpected node type: %T", node)

			return false
		}
	})

	return &Summaries{store: st}, nil
}

// importFacts registers the behaviors exported by dependencies.
func importFacts(ctx context.Context, p *analysis.Pass, st *store.Store, logger *slog.Logger) {
	defer trace.StartRegion(ctx, "ImportFacts").End()

	for _, of := range p.AllObjectFacts() {
		fact, ok := of.Fact.(*Fact)
		if !ok {
			continue
		}

		mbs, err := codec.Unmarshal(fact.Summary)
		if err != nil {
			logger.LogAttrs(ctx, slog.LevelWarn, "Can't decode imported summary",
				slog.String("object", of.Object.String()), slog.Any("error", err))

			continue
		}

		for _, mb := range mbs {
			st.Register(mb)
		}
	}
}

// summarize computes the behavior of decl, exports it and reports it when requested.
func (r *runOptions) summarize(ctx context.Context, p *analysis.Pass, st *store.Store, ex *explore.Explorer, file astutil.CurrentFile, decl *ast.FuncDecl) {
	if decl.Body == nil {
		return
	}

	fn, ok := p.TypesInfo.Defs[decl.Name].(*types.Func)
	if !ok {
		if decl.Name.Name != "_" {
			astutil.InternalError(p, decl.Name, "Function %s without type information", decl.Name.Name)
		}

		return
	}

	if fn.Name() == "init" && fn.Signature().Recv() == nil {
		return
	}

	mb := st.BehaviorFor(ctx, signature.Of(fn), ex.Method(fn))
	if mb == nil || !mb.Complete() {
		return
	}

	summary, err := codec.Marshal(mb)
	if err != nil {
		astutil.InternalError(p, decl.Name, "Can't encode summary of %s: %v", decl.Name.Name, err)

		return
	}

	yields := mb.Yields()
	p.ExportObjectFact(fn, &Fact{Summary: summary, Yields: len(yields)})

	if r.report == level.ReportOff || file.Suppressed(decl) {
		return
	}

	name := displayName(fn)

	p.Reportf(decl.Name.Pos(), "%s: happy=%d exceptional=%d",
		name, count(mb.HappyPathYields()), count(mb.ExceptionalPathYields()))

	if r.report < level.ReportYields {
		return
	}

	for _, y := range yields {
		if n := ex.Node(y.Node()); n != nil {
			p.Reportf(n.Pos(), "%s: %s path", name, y.Kind())
		}
	}
}

// displayName returns "Name" for functions and "Receiver.Name" for methods.
func displayName(fn *types.Func) string {
	recv := fn.Signature().Recv()
	if recv == nil {
		return fn.Name()
	}

	t := types.Unalias(recv.Type())
	if ptr, ok := t.(*types.Pointer); ok {
		t = types.Unalias(ptr.Elem())
	}

	if named, ok := t.(*types.Named); ok {
		return named.Obj().Name() + "." + fn.Name()
	}

	return fn.Name()
}

func count(ys iter.Seq[*behavior.Yield]) int {
	n := 0
	for range ys {
		n++
	}

	return n
}
