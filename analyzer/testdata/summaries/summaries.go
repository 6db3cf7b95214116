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

package summaries

import "os"

// IsNil reports whether p is nil.
func IsNil(p *int) bool { // want "IsNil: happy=2 exceptional=0" IsNil:"yields=2"
	return p == nil
}

func Load(p *int) int { // want "Load: happy=2 exceptional=0" Load:"yields=2"
	if p == nil {
		return 0
	}

	return *p
}

func Ratio(a, b int) int { // want "Ratio: happy=1 exceptional=1" Ratio:"yields=2"
	if b == 0 {
		println("division by zero")
	}

	return a / b
}

func Must(err error) { // want "Must: happy=1 exceptional=1" Must:"yields=2"
	if err != nil {
		panic(err)
	}
}

func Fatal(err error) { // want "Fatal: happy=1 exceptional=0" Fatal:"yields=1"
	if err != nil {
		os.Exit(1)
	}
}

func Sum(xs []int) int {
	total := 0
	for _, x := range xs {
		total += x
	}

	return total
}

//nolint:behave
func Quiet(p *int) bool { // want Quiet:"yields=2"
	return p != nil
}

type List struct{ next *List }

func (l *List) Next() *List { // want "List.Next: happy=1 exceptional=0" Next:"yields=1"
	return l.next
}
