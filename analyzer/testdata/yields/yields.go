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

package yields

func Load(p *int) int { // want "Load: happy=2 exceptional=0" Load:"yields=2"
	if p == nil {
		return 0 // want "Load: happy path"
	}

	return *p // want "Load: happy path"
}

func Must(err error) { // want "Must: happy=1 exceptional=1" Must:"yields=2"
	if err != nil {
		panic(err) // want "Must: exceptional path"
	}
} // want "Must: happy path"

func Ratio(a, b int) int { // want "Ratio: happy=2 exceptional=0" Ratio:"yields=2"
	if b == 0 {
		return 0 // want "Ratio: happy path"
	}

	return a / b // want "Ratio: happy path"
}
