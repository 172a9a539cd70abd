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

// Package profile computes alignment cost profiles in linear space.
//
// A cost profile is a row of the cost matrix described in package nw. Computing it only requires
// a single column of the matrix that's updated in place while moving from right to left, reducing
// the space complexity from O(NM) to O(N) (plus O(M) for the profile itself). The cost is that
// no path can be traced back from a profile.
//
// Profiles are the building block for the divide-and-conquer algorithm in package hirschberg,
// which needs the cost of aligning a fixed x against every prefix and every suffix of y.
package profile

import (
	"znkr.io/align/internal/cost"
)

// Suffix computes the cost of aligning x with every suffix of y. out[t] is the optimal cost to
// align x with y[t:], consequently out[0] is the optimal distance between x and y.
//
// col and out are used as scratch space and result respectively if they have sufficient capacity.
// The returned slice has length len(y)+1.
func Suffix[T any](x, y []T, eq func(a, b T) bool, col, out []int) []int {
	n, m := len(x), len(y)
	col = grow(col, n+1)
	out = grow(out, m+1)

	// Initialize the column to the last column of the matrix.
	for s := 0; s <= n; s++ {
		col[s] = cost.Gap * (n - s)
	}
	out[m] = col[0]

	// Update the column as if populating the matrix column by column. The diagonal neighbor is
	// overwritten before it's needed, so it's carried along in diag.
	for t := m - 1; t >= 0; t-- {
		yt := y[t]
		diag := col[n]
		col[n] += cost.Gap
		for s := n - 1; s >= 0; s-- {
			fromRight := col[s] + cost.Gap
			fromDown := col[s+1] + cost.Gap
			fromDiagonal := diag + cost.Of(eq(x[s], yt))
			diag = col[s]
			col[s] = cost.Min3(fromRight, fromDown, fromDiagonal)
		}
		out[t] = col[0]
	}
	return out
}

// Prefix computes the cost of aligning x with every prefix of y. out[t] is the optimal cost to
// align x with y[:t], consequently out[len(y)] is the optimal distance between x and y.
//
// The result is identical to running [Suffix] on reversed copies of x and y and reversing the
// result, but it walks the inputs from the front instead of copying them.
//
// col and out are used as scratch space and result respectively if they have sufficient capacity.
// The returned slice has length len(y)+1.
func Prefix[T any](x, y []T, eq func(a, b T) bool, col, out []int) []int {
	n, m := len(x), len(y)
	col = grow(col, n+1)
	out = grow(out, m+1)

	// col[s] holds the cost to align x[:s] with y[:t] for the current t.
	for s := 0; s <= n; s++ {
		col[s] = cost.Gap * s
	}
	out[0] = col[n]

	for t := 1; t <= m; t++ {
		yt := y[t-1]
		diag := col[0]
		col[0] += cost.Gap
		for s := 1; s <= n; s++ {
			fromLeft := col[s] + cost.Gap
			fromUp := col[s-1] + cost.Gap
			fromDiagonal := diag + cost.Of(eq(x[s-1], yt))
			diag = col[s]
			col[s] = cost.Min3(fromLeft, fromUp, fromDiagonal)
		}
		out[t] = col[n]
	}
	return out
}

// Distance returns the optimal distance between x and y using O(len(x)) space.
func Distance[T any](x, y []T, eq func(a, b T) bool) int {
	n, m := len(x), len(y)
	col := make([]int, n+1)
	for s := 0; s <= n; s++ {
		col[s] = cost.Gap * (n - s)
	}
	for t := m - 1; t >= 0; t-- {
		yt := y[t]
		diag := col[n]
		col[n] += cost.Gap
		for s := n - 1; s >= 0; s-- {
			fromRight := col[s] + cost.Gap
			fromDown := col[s+1] + cost.Gap
			fromDiagonal := diag + cost.Of(eq(x[s], yt))
			diag = col[s]
			col[s] = cost.Min3(fromRight, fromDown, fromDiagonal)
		}
	}
	return col[0]
}

func grow(buf []int, n int) []int {
	if cap(buf) < n {
		return make([]int, n)
	}
	return buf[:n]
}
