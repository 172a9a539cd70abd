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

// Package nw contains the quadratic space alignment algorithm by Needleman and Wunsch.
//
// The algorithm fills a cost matrix with (n+1) rows and (m+1) columns for x of length n and y of
// length m. Cell (s, t) holds the minimal cost to align the suffix x[s:] with the suffix y[t:]:
//
//	cell(n, t) = Gap * (m-t)
//	cell(s, m) = Gap * (n-s)
//	cell(s, t) = min(cell(s, t+1) + Gap, cell(s+1, t) + Gap, cell(s+1, t+1) + Penalty(x[s], y[t]))
//
// The matrix is filled column by column, from the bottom right to the top left, so that every cell
// only depends on cells that were already computed. The optimal distance is cell(0, 0) and an
// optimal alignment is found by walking the matrix from (0, 0) to (n, m).
//
// Time and space complexity are O(NM).
//
// ## References:
//
// Needleman, S.B., Wunsch, C.D. A general method applicable to the search for similarities in the
// amino acid sequence of two proteins. Journal of Molecular Biology 48, 443-453 (1970).
// https://doi.org/10.1016/0022-2836(70)90057-4
package nw

import (
	"iter"

	"znkr.io/align/internal/cost"
	"znkr.io/align/internal/path"
)

// Matrix is a fully populated cost matrix.
type Matrix struct {
	n, m  int
	cells []int // row-major, cell(s, t) = cells[s*(m+1)+t]
}

// Fill computes the cost matrix for x and y.
//
// If buf has sufficient capacity, it's used as the backing store for the matrix. This allows
// callers that compute many small matrices to avoid an allocation per matrix.
func Fill[T any](x, y []T, eq func(a, b T) bool, buf []int) Matrix {
	n, m := len(x), len(y)
	w := m + 1
	size := (n + 1) * w
	if cap(buf) < size {
		buf = make([]int, size)
	}
	cells := buf[:size]

	// Boundaries: the last row and the last column only contain gaps.
	for t := 0; t <= m; t++ {
		cells[n*w+t] = cost.Gap * (m - t)
	}
	for s := 0; s <= n; s++ {
		cells[s*w+m] = cost.Gap * (n - s)
	}

	// Populate the matrix column by column.
	for t := m - 1; t >= 0; t-- {
		yt := y[t]
		for s := n - 1; s >= 0; s-- {
			fromRight := cells[s*w+t+1] + cost.Gap
			fromDown := cells[(s+1)*w+t] + cost.Gap
			fromDiagonal := cells[(s+1)*w+t+1] + cost.Of(eq(x[s], yt))
			cells[s*w+t] = cost.Min3(fromRight, fromDown, fromDiagonal)
		}
	}

	return Matrix{n: n, m: m, cells: cells}
}

// Dims returns the length of x and y the matrix was computed for.
func (mat Matrix) Dims() (n, m int) { return mat.n, mat.m }

// At returns the value of cell (s, t).
func (mat Matrix) At(s, t int) int { return mat.cells[s*(mat.m+1)+t] }

// Cells returns the backing store of the matrix. It can be passed to [Fill] once the matrix is no
// longer needed.
func (mat Matrix) Cells() []int { return mat.cells }

// Distance returns the optimal alignment cost.
func (mat Matrix) Distance() int { return mat.cells[0] }

// Trace iterates over all points of an optimal path from (0, 0) to (n, m).
//
// Where more than one optimal step exists, a deletion is preferred over an insertion and an
// insertion is preferred over a diagonal step.
func (mat Matrix) Trace() iter.Seq[path.Point] {
	return func(yield func(path.Point) bool) {
		n, m := mat.n, mat.m
		s, t := 0, 0
		for {
			if !yield(path.Point{S: s, T: t}) {
				return
			}
			if s == n && t == m {
				return
			}
			v := mat.At(s, t)
			switch {
			case s < n && mat.At(s+1, t) == v-cost.Gap:
				s++
			case t < m && mat.At(s, t+1) == v-cost.Gap:
				t++
			default:
				s++
				t++
			}
		}
	}
}

// Path returns all points of the path produced by [Matrix.Trace].
func (mat Matrix) Path() []path.Point {
	out := make([]path.Point, 0, mat.n+mat.m+1)
	for p := range mat.Trace() {
		out = append(out, p)
	}
	return out
}
