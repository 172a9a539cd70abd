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

package path

import "fmt"

// Arena records a path by diagonal index d = s + t. Every path visits each diagonal at most once,
// so a single s-coordinate per diagonal is enough to describe it (t = d - s). Diagonals skipped by
// a diagonal step stay unset.
//
// The arena is sized once for the whole problem and filled piecewise; independent subproblems
// write disjoint ranges of diagonals.
type Arena struct {
	n, m int
	s    []int // s[d] is the s-coordinate on diagonal d or -1 if unset.
}

// NewArena returns an arena for paths from (0, 0) to (n, m) with both endpoints already set.
func NewArena(n, m int) *Arena {
	a := &Arena{n: n, m: m, s: make([]int, n+m+1)}
	for d := range a.s {
		a.s[d] = -1
	}
	a.Set(0, 0)
	a.Set(n, m)
	return a
}

// Len returns the number of diagonals.
func (a *Arena) Len() int { return len(a.s) }

// Set records that the path passes through (s, t).
//
// Setting the same point twice is allowed (subproblems share their endpoints), setting a different
// point on an already occupied diagonal panics.
func (a *Arena) Set(s, t int) {
	if s < 0 || s > a.n || t < 0 || t > a.m {
		panic(fmt.Sprintf("point (%d, %d) outside of grid (%d, %d)", s, t, a.n, a.m))
	}
	d := s + t
	if prev := a.s[d]; prev >= 0 && prev != s {
		panic(fmt.Sprintf("diagonal %d already holds (%d, %d), can't set (%d, %d)", d, prev, d-prev, s, t))
	}
	a.s[d] = s
}

// At returns the point on diagonal d and whether it is set.
func (a *Arena) At(d int) (Point, bool) {
	s := a.s[d]
	if s < 0 {
		return Point{}, false
	}
	return Point{s, d - s}, true
}

// Points returns all points on the path in order.
func (a *Arena) Points() []Point {
	n := 0
	for _, s := range a.s {
		if s >= 0 {
			n++
		}
	}
	out := make([]Point, 0, n)
	for d := range a.s {
		if p, ok := a.At(d); ok {
			out = append(out, p)
		}
	}
	return out
}
