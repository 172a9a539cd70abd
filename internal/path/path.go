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

// Package path contains the representation of alignment paths through the (n+1)x(m+1) alignment
// grid, the internal representation that's used by the alignment algorithms and is then
// translated to a user facing API.
//
// A path starts at (0, 0) and ends at (n, m). Every step either moves down (s+1, a deletion of
// x[s]), right (t+1, an insertion of y[t]), or diagonally (s+1, t+1, a match or mismatch of x[s]
// and y[t]).
package path

import (
	"fmt"
	"iter"

	"znkr.io/align/internal/cost"
)

// Point is a vertex of the alignment grid, S indexes x and T indexes y.
type Point struct{ S, T int }

// Kind describes a single step along a path.
type Kind uint8

const (
	Diagonal Kind = iota // Consumes x[s] and y[t]
	Delete               // Consumes x[s]
	Insert               // Consumes y[t]
)

func (k Kind) String() string {
	switch k {
	case Diagonal:
		return "diagonal"
	case Delete:
		return "delete"
	case Insert:
		return "insert"
	default:
		return fmt.Sprint(uint8(k))
	}
}

// Move is a step that starts at (S, T).
type Move struct {
	Kind Kind
	S, T int
}

// Moves iterates over all steps between consecutive points.
//
// Consecutive points must be exactly one step apart, anything else is a bug and causes a panic.
func Moves(points []Point) iter.Seq[Move] {
	return func(yield func(Move) bool) {
		for i := 1; i < len(points); i++ {
			p, q := points[i-1], points[i]
			var k Kind
			switch ds, dt := q.S-p.S, q.T-p.T; {
			case ds == 1 && dt == 1:
				k = Diagonal
			case ds == 1 && dt == 0:
				k = Delete
			case ds == 0 && dt == 1:
				k = Insert
			default:
				panic(fmt.Sprintf("invalid step from %v to %v", p, q))
			}
			if !yield(Move{k, p.S, p.T}) {
				return
			}
		}
	}
}

// Cost returns the total cost of the path. eq reports whether x[s] and y[t] are equal.
func Cost(points []Point, eq func(s, t int) bool) int {
	total := 0
	for mv := range Moves(points) {
		if mv.Kind == Diagonal {
			total += cost.Of(eq(mv.S, mv.T))
		} else {
			total += cost.Gap
		}
	}
	return total
}
