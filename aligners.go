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

package align

import (
	"fmt"

	"znkr.io/align/internal/config"
	"znkr.io/align/internal/hirschberg"
	"znkr.io/align/internal/nw"
	"znkr.io/align/internal/path"
	"znkr.io/align/internal/profile"
)

// Quadratic aligns two sequences using the algorithm by Needleman and Wunsch.
//
// The full cost matrix is kept in memory, which requires O(NM) space. The matrix is computed once
// and shared by [Quadratic.Distance] and [Quadratic.Alignment].
//
// A Quadratic is not safe for concurrent use.
type Quadratic[T any] struct {
	x, y   []T
	eq     func(a, b T) bool
	mat    nw.Matrix
	filled bool
}

// NewQuadratic returns a quadratic space aligner for x and y.
func NewQuadratic[T comparable](x, y []T) *Quadratic[T] {
	return NewQuadraticFunc(x, y, equal[T])
}

// NewQuadraticFunc returns a quadratic space aligner for x and y using the provided equality
// comparison.
func NewQuadraticFunc[T any](x, y []T, eq func(a, b T) bool) *Quadratic[T] {
	return &Quadratic[T]{x: x, y: y, eq: eq}
}

func (q *Quadratic[T]) fill() {
	if !q.filled {
		q.mat = nw.Fill(q.x, q.y, q.eq, nil)
		q.filled = true
	}
}

// Distance returns the cost of an optimal alignment.
func (q *Quadratic[T]) Distance() int {
	q.fill()
	return q.mat.Distance()
}

// Alignment returns an optimal alignment.
//
// If there are several optimal alignments, deletions are preferred over insertions and insertions
// are preferred over matches and mismatches when walking from the start to the end of the inputs.
// The returned error is always nil.
func (q *Quadratic[T]) Alignment() ([]Step[T], error) {
	q.fill()
	return steps(q.x, q.y, q.eq, q.mat.Path()), nil
}

// Linear computes alignment costs using only a single column of the cost matrix.
//
// Only O(N) space is required to compute the distance, but no alignment can be reconstructed.
type Linear[T any] struct {
	x, y []T
	eq   func(a, b T) bool
}

// NewLinear returns a linear space aligner for x and y.
func NewLinear[T comparable](x, y []T) *Linear[T] {
	return NewLinearFunc(x, y, equal[T])
}

// NewLinearFunc returns a linear space aligner for x and y using the provided equality
// comparison.
func NewLinearFunc[T any](x, y []T, eq func(a, b T) bool) *Linear[T] {
	return &Linear[T]{x: x, y: y, eq: eq}
}

// Distance returns the cost of an optimal alignment.
func (l *Linear[T]) Distance() int {
	return profile.Distance(l.x, l.y, l.eq)
}

// Profile returns the cost of aligning all of x against every suffix of y. The result has length
// len(y)+1 and element t is the cost of aligning x with y[t:]. Element 0 is the optimal distance.
func (l *Linear[T]) Profile() []int {
	return profile.Suffix(l.x, l.y, l.eq, nil, nil)
}

// Alignment always returns an error wrapping [ErrUnsupported], because the linear space
// algorithm doesn't retain the information necessary to reconstruct an alignment. Use
// [Hirschberg] to compute alignments in linear space.
func (l *Linear[T]) Alignment() ([]Step[T], error) {
	return nil, fmt.Errorf("linear space aligner can't reconstruct alignments: %w", ErrUnsupported)
}

// Hirschberg aligns two sequences using Hirschberg's divide-and-conquer algorithm.
//
// It computes the same optimal distance as [Quadratic] using only O(N+M) space. The alignment path
// is computed once and shared by [Hirschberg.Distance] and [Hirschberg.Alignment].
//
// A Hirschberg is not safe for concurrent use.
type Hirschberg[T any] struct {
	x, y   []T
	eq     func(a, b T) bool
	base   int
	points []path.Point
}

// NewHirschberg returns a linear space aligner for x and y.
//
// The following option is supported: [BaseCase]
func NewHirschberg[T comparable](x, y []T, opts ...Option) *Hirschberg[T] {
	return NewHirschbergFunc(x, y, equal[T], opts...)
}

// NewHirschbergFunc returns a linear space aligner for x and y using the provided equality
// comparison.
//
// The following option is supported: [BaseCase]
func NewHirschbergFunc[T any](x, y []T, eq func(a, b T) bool, opts ...Option) *Hirschberg[T] {
	return newHirschberg(x, y, eq, config.FromOptions(opts, config.BaseCase))
}

func newHirschberg[T any](x, y []T, eq func(a, b T) bool, cfg config.Config) *Hirschberg[T] {
	return &Hirschberg[T]{x: x, y: y, eq: eq, base: cfg.BaseCase}
}

func (h *Hirschberg[T]) run() []path.Point {
	if h.points == nil {
		h.points = hirschberg.Align(h.x, h.y, h.eq, h.base).Points()
	}
	return h.points
}

// Distance returns the cost of an optimal alignment.
func (h *Hirschberg[T]) Distance() int {
	x, y, eq := h.x, h.y, h.eq
	return path.Cost(h.run(), func(s, t int) bool { return eq(x[s], y[t]) })
}

// Alignment returns an optimal alignment. The returned error is always nil.
func (h *Hirschberg[T]) Alignment() ([]Step[T], error) {
	return h.steps(), nil
}

func (h *Hirschberg[T]) steps() []Step[T] {
	return steps(h.x, h.y, h.eq, h.run())
}
