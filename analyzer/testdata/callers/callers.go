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

package callers

import (
	"fmt"

	"test/summaries"
)

func Half(a int) int { // want "Half: happy=0 exceptional=1" Half:"yields=1"
	return summaries.Ratio(a, 0)
}

func Deref(p *int) int { // want "Deref: happy=2 exceptional=0" Deref:"yields=2"
	if summaries.IsNil(p) {
		return -1
	}

	return *p
}

func Wrap(err error) error { // want "Wrap: happy=2 exceptional=0" Wrap:"yields=2"
	if err == nil {
		return nil
	}

	return fmt.Errorf("wrap: %w", err)
}

func Count(xs []int) int { // want "Count: happy=1 exceptional=0" Count:"yields=1"
	return summaries.Sum(xs)
}
