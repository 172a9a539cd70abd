// Copyright 2025 Florian Zenker (flo@znkr.io)
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

// Package cost contains the penalty model shared by all alignment algorithms in this module.
//
// The model is fixed: aligning two identical symbols is free, aligning two different symbols
// costs 1 and aligning a symbol against a gap costs 2.
package cost

// Gap is the cost of aligning a symbol against a gap, i.e. of a single insertion or deletion.
const Gap = 2

// Penalty returns the cost of aligning a against b.
func Penalty[T comparable](a, b T) int {
	return Of(a == b)
}

// Of returns the cost of aligning two symbols given whether they are equal.
func Of(equal bool) int {
	if equal {
		return 0
	}
	return 1
}

// Min3 returns the minimum of a, b, and c.
//
// All callers pass the candidates in the same order (from right, from below, from the diagonal).
// When a and b tie, the comparison falls through to b; the minimum value is the same either way.
func Min3(a, b, c int) int {
	if a > b {
		return min(b, c)
	}
	return min(a, c)
}
