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

// Package hirschberg contains an implementation of Hirschberg's divide-and-conquer algorithm.
//
// The algorithm finds an optimal alignment path in linear space. Instead of keeping the full cost
// matrix in memory (see package nw), it splits x in half at s = smid and uses two linear space
// cost profiles (see package profile) to find the point (smid, q) an optimal path passes through:
//
//	prefix[t] = cost of x[smin:smid] against y[tmin:tmin+t]
//	suffix[t] = cost of x[smid:smax] against y[tmin+t:tmax]
//	q         = argmin prefix[t] + suffix[t]
//
// The optimal path from (smin, tmin) to (smax, tmax) must pass through (smid, tmin+q), so the
// problem can be split into the two rectangles left and right of that point, which are solved
// recursively. Small rectangles are solved with the quadratic algorithm directly.
//
// Every point found along the way is recorded in a path arena indexed by diagonal s + t. The two
// rectangles of a split cover disjoint ranges of diagonals, so the arena can be shared by the
// whole recursion.
//
// Time complexity is O(NM), space complexity is O(N + M). The recursion depth is O(log N).
//
// ## References:
//
// Hirschberg, D.S. A linear space algorithm for computing maximal common subsequences.
// Communications of the ACM 18, 341-343 (1975). https://doi.org/10.1145/360825.360861
package hirschberg

import (
	"math"

	"znkr.io/align/internal/nw"
	"znkr.io/align/internal/path"
	"znkr.io/align/internal/profile"
)

// DefaultBaseCase is the size below which subproblems are solved with the quadratic algorithm.
const DefaultBaseCase = 2

type hirschberg[T any] struct {
	// Inputs to compare.
	x, y []T
	eq   func(a, b T) bool

	// Subproblems where x or y is at most this long are solved using the quadratic algorithm.
	base int

	// Scratch space for cost profiles and base case matrices. It's reused across all levels of
	// the recursion because a profile is no longer needed once the split point is known.
	col, prefix, suffix []int
	mat                 []int

	// Result.
	arena *path.Arena
}

// Align finds an optimal alignment path for x and y and returns it as a path arena.
//
// Subproblems where x or y have a length <= base are solved using the quadratic algorithm. base
// must be at least 1.
func Align[T any](x, y []T, eq func(a, b T) bool, base int) *path.Arena {
	if base < 1 {
		panic("base case must be at least 1")
	}
	n, m := len(x), len(y)

	// Allocate all scratch space with a single allocation.
	buf := make([]int, (n+1)+2*(m+1))
	h := hirschberg[T]{
		x:     x,
		y:     y,
		eq:    eq,
		base:  base,
		arena: path.NewArena(n, m),
	}
	h.col, buf = buf[:n+1:n+1], buf[n+1:]
	h.prefix, buf = buf[:m+1:m+1], buf[m+1:]
	h.suffix, buf = buf[:m+1:m+1], buf[m+1:]
	if len(buf) != 0 && cap(buf) != 0 {
		panic("something went wrong during buffer assignments")
	}

	h.align(0, n, 0, m)
	return h.arena
}

// align records an optimal path from (smin, tmin) to (smax, tmax) in the arena. Both endpoints
// must already be recorded.
func (h *hirschberg[T]) align(smin, smax, tmin, tmax int) {
	n, m := smax-smin, tmax-tmin
	if n <= h.base || m <= h.base {
		mat := nw.Fill(h.x[smin:smax], h.y[tmin:tmax], h.eq, h.mat)
		for p := range mat.Trace() {
			h.arena.Set(smin+p.S, tmin+p.T)
		}
		h.mat = mat.Cells()
		return
	}

	// Split x in half and find the best matching split point in y.
	smid := smin + n/2
	q := h.split(smin, smid, smax, tmin, tmax)
	tmid := tmin + q
	h.arena.Set(smid, tmid)

	// Recurse into the rectangles before and after the split point.
	h.align(smin, smid, tmin, tmid)
	h.align(smid, smax, tmid, tmax)
}

// split returns the offset q from tmin at which an optimal path from (smin, tmin) to (smax, tmax)
// crosses row smid. If there is more than one, the smallest q is returned.
func (h *hirschberg[T]) split(smin, smid, smax, tmin, tmax int) int {
	x, y := h.x, h.y
	prefix := profile.Prefix(x[smin:smid], y[tmin:tmax], h.eq, h.col, h.prefix)
	suffix := profile.Suffix(x[smid:smax], y[tmin:tmax], h.eq, h.col, h.suffix)

	q, best := 0, math.MaxInt
	for t := range prefix {
		if c := prefix[t] + suffix[t]; c < best {
			q, best = t, c
		}
	}
	return q
}
