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

// Package tracker classifies calls to functions that never return normally.
package tracker

import (
	"go/ast"
	"go/types"
)

// Outcome describes how a call ends the current path.
type Outcome uint8

const (
	// Returns is an ordinary call.
	Returns Outcome = iota
	// Exits terminates the goroutine or process without a recoverable panic.
	Exits
	// Panics unwinds the stack with a panic.
	Panics
)

// _knownFuncs are functions that do not return.
var _knownFuncs = map[FuncName]Outcome{
	{Path: "log", Name: "Fatal"}:   Exits,
	{Path: "log", Name: "Fatalf"}:  Exits,
	{Path: "log", Name: "Fatalln"}: Exits,
	{Path: "log", Name: "Panic"}:   Panics,
	{Path: "log", Name: "Panicf"}:  Panics,
	{Path: "log", Name: "Panicln"}: Panics,

	{Path: "log", Receiver: "Logger", Name: "Fatal"}:   Exits,
	{Path: "log", Receiver: "Logger", Name: "Fatalf"}:  Exits,
	{Path: "log", Receiver: "Logger", Name: "Fatalln"}: Exits,
	{Path: "log", Receiver: "Logger", Name: "Panic"}:   Panics,
	{Path: "log", Receiver: "Logger", Name: "Panicf"}:  Panics,
	{Path: "log", Receiver: "Logger", Name: "Panicln"}: Panics,

	{Path: "os", Name: "Exit"}:        Exits,
	{Path: "syscall", Name: "Exit"}:   Exits,
	{Path: "runtime", Name: "Goexit"}: Exits,

	{Path: "testing", Receiver: "common", Name: "Fatal"}:   Exits,
	{Path: "testing", Receiver: "common", Name: "Fatalf"}:  Exits,
	{Path: "testing", Receiver: "common", Name: "FailNow"}: Exits,
	{Path: "testing", Receiver: "common", Name: "Skip"}:    Exits,
	{Path: "testing", Receiver: "common", Name: "Skipf"}:   Exits,
	{Path: "testing", Receiver: "common", Name: "SkipNow"}: Exits,

	{Path: "testing", Receiver: "TB", Name: "Fatal"}:   Exits,
	{Path: "testing", Receiver: "TB", Name: "Fatalf"}:  Exits,
	{Path: "testing", Receiver: "TB", Name: "FailNow"}: Exits,
	{Path: "testing", Receiver: "TB", Name: "Skip"}:    Exits,
	{Path: "testing", Receiver: "TB", Name: "Skipf"}:   Exits,
	{Path: "testing", Receiver: "TB", Name: "SkipNow"}: Exits,

	{Path: "github.com/sirupsen/logrus", Receiver: "Entry", Name: "Panic"}:    Panics,
	{Path: "github.com/sirupsen/logrus", Receiver: "Entry", Name: "Panicf"}:   Panics,
	{Path: "github.com/sirupsen/logrus", Receiver: "Entry", Name: "Panicln"}:  Panics,
	{Path: "github.com/sirupsen/logrus", Receiver: "Logger", Name: "Exit"}:    Exits,
	{Path: "github.com/sirupsen/logrus", Receiver: "Logger", Name: "Panic"}:   Panics,
	{Path: "github.com/sirupsen/logrus", Receiver: "Logger", Name: "Panicf"}:  Panics,
	{Path: "github.com/sirupsen/logrus", Receiver: "Logger", Name: "Panicln"}: Panics,

	{Path: "go.uber.org/zap", Receiver: "Logger", Name: "Fatal"}:          Exits,
	{Path: "go.uber.org/zap", Receiver: "Logger", Name: "Panic"}:          Panics,
	{Path: "go.uber.org/zap", Receiver: "SugaredLogger", Name: "Fatal"}:   Exits,
	{Path: "go.uber.org/zap", Receiver: "SugaredLogger", Name: "Fatalf"}:  Exits,
	{Path: "go.uber.org/zap", Receiver: "SugaredLogger", Name: "Fatalln"}: Exits,
	{Path: "go.uber.org/zap", Receiver: "SugaredLogger", Name: "Fatalw"}:  Exits,
	{Path: "go.uber.org/zap", Receiver: "SugaredLogger", Name: "Panic"}:   Panics,
	{Path: "go.uber.org/zap", Receiver: "SugaredLogger", Name: "Panicf"}:  Panics,
	{Path: "go.uber.org/zap", Receiver: "SugaredLogger", Name: "Panicln"}: Panics,
	{Path: "go.uber.org/zap", Receiver: "SugaredLogger", Name: "Panicw"}:  Panics,

	{Path: "k8s.io/klog", Name: "Exit"}:          Exits,
	{Path: "k8s.io/klog", Name: "ExitDepth"}:     Exits,
	{Path: "k8s.io/klog", Name: "Exitf"}:         Exits,
	{Path: "k8s.io/klog", Name: "Exitln"}:        Exits,
	{Path: "k8s.io/klog", Name: "Fatal"}:         Exits,
	{Path: "k8s.io/klog", Name: "FatalDepth"}:    Exits,
	{Path: "k8s.io/klog", Name: "Fatalf"}:        Exits,
	{Path: "k8s.io/klog", Name: "Fatalln"}:       Exits,
	{Path: "k8s.io/klog/v2", Name: "Exit"}:       Exits,
	{Path: "k8s.io/klog/v2", Name: "ExitDepth"}:  Exits,
	{Path: "k8s.io/klog/v2", Name: "Exitf"}:      Exits,
	{Path: "k8s.io/klog/v2", Name: "Exitln"}:     Exits,
	{Path: "k8s.io/klog/v2", Name: "Fatal"}:      Exits,
	{Path: "k8s.io/klog/v2", Name: "FatalDepth"}: Exits,
	{Path: "k8s.io/klog/v2", Name: "Fatalf"}:     Exits,
	{Path: "k8s.io/klog/v2", Name: "Fatalln"}:    Exits,
}

// Classify unwraps the callee of n and looks it up in the table of functions that do not return.
func Classify(info *types.Info, n *ast.CallExpr) Outcome {
	ex := n.Fun

unwrap:
	switch e := ex.(type) {
	case *ast.Ident:
		return classifyFunc(info, e)

	case *ast.SelectorExpr:
		return classifyFunc(info, e.Sel)

	case *ast.IndexExpr: // Generic function instantiation with a type parameter ("myFunc[T]").
		ex = e.X
		goto unwrap

	case *ast.IndexListExpr: // Generic function instantiation with multiple type parameters ("myFunc[T, U]").
		ex = e.X
		goto unwrap

	case *ast.ParenExpr:
		ex = e.X
		goto unwrap

	default: // Pointer dereference or another function reference.
		return Returns
	}
}

func classifyFunc(info *types.Info, id *ast.Ident) Outcome {
	switch use := info.Uses[id].(type) {
	case *types.Func:
		return _knownFuncs[FuncNameOf(use)]

	case *types.Builtin:
		if use == builtinPanic {
			return Panics
		}
	}

	return Returns
}

var builtinPanic = types.Universe.Lookup("panic").(*types.Builtin)
