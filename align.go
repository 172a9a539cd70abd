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
	"errors"
	"fmt"

	"znkr.io/align/internal/config"
	"znkr.io/align/internal/cost"
	"znkr.io/align/internal/path"
)

// GapCost is the cost of aligning an element against a gap.
const GapCost = cost.Gap

// Penalty returns the cost of aligning a against b: 0 if they are equal and 1 otherwise.
func Penalty[T comparable](a, b T) int { return cost.Penalty(a, b) }

// Min3 returns the minimum of a, b, and c.
func Min3(a, b, c int) int { return cost.Min3(a, b, c) }

// ErrUnsupported is returned by aligners that can't provide an operation, e.g. [Linear] can't
// reconstruct an alignment.
var ErrUnsupported = errors.New("operation not supported")

// Op describes the kind of an alignment step.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=Op
type Op int

const (
	Match    Op = iota // Two equal elements are aligned
	Mismatch           // Two different elements are aligned
	Delete             // An element of x is aligned against a gap
	Insert             // An element of y is aligned against a gap
)

// Step describes a single column of an alignment.
//
//   - For Match and Mismatch, both X and Y contain the aligned elements.
//   - For Delete, X contains the deleted element and Y is unset (zero value).
//   - For Insert, Y contains the inserted element and X is unset (zero value).
type Step[T any] struct {
	Op   Op
	X, Y T
	Cost int
}

// Aligner is implemented by all alignment algorithms in this package.
type Aligner[T any] interface {
	// Distance returns the cost of an optimal alignment.
	Distance() int

	// Alignment returns an optimal alignment. The sum of the cost of all steps is equal to
	// Distance(). It returns an error wrapping [ErrUnsupported] if the algorithm can't compute
	// alignments.
	Alignment() ([]Step[T], error)
}

// Distance returns the edit distance between x and y.
//
// The following option is supported: [BaseCase]
func Distance[T comparable](x, y []T, opts ...Option) int {
	return NewHirschberg(x, y, opts...).Distance()
}

// DistanceFunc returns the edit distance between x and y using the provided equality comparison.
//
// The following option is supported: [BaseCase]
func DistanceFunc[T any](x, y []T, eq func(a, b T) bool, opts ...Option) int {
	return NewHirschbergFunc(x, y, eq, opts...).Distance()
}

// Alignment returns an optimal alignment of x and y.
//
// If x and y are both empty, the output has length zero.
//
// The following option is supported: [BaseCase]
//
// Important: If there are several optimal alignments, the one returned is not guaranteed to be
// stable and may change with minor version upgrades.
func Alignment[T comparable](x, y []T, opts ...Option) []Step[T] {
	return NewHirschberg(x, y, opts...).steps()
}

// AlignmentFunc returns an optimal alignment of x and y using the provided equality comparison.
//
// If x and y are both empty, the output has length zero.
//
// The following option is supported: [BaseCase]
//
// Important: If there are several optimal alignments, the one returned is not guaranteed to be
// stable and may change with minor version upgrades.
func AlignmentFunc[T any](x, y []T, eq func(a, b T) bool, opts ...Option) []Step[T] {
	return NewHirschbergFunc(x, y, eq, opts...).steps()
}

// New returns an aligner for x and y. The algorithm is selected with [WithAlgorithm].
//
// The following options are supported: [WithAlgorithm], [BaseCase]
func New[T comparable](x, y []T, opts ...Option) Aligner[T] {
	return NewFunc(x, y, equal[T], opts...)
}

// NewFunc returns an aligner for x and y using the provided equality comparison. The algorithm
// is selected with [WithAlgorithm].
//
// The following options are supported: [WithAlgorithm], [BaseCase]
func NewFunc[T any](x, y []T, eq func(a, b T) bool, opts ...Option) Aligner[T] {
	cfg := config.FromOptions(opts, config.WithAlgorithm|config.BaseCase)
	switch cfg.Algorithm {
	case config.Hirschberg:
		return newHirschberg(x, y, eq, cfg)
	case config.NeedlemanWunsch:
		return NewQuadraticFunc(x, y, eq)
	case config.Linear:
		return NewLinearFunc(x, y, eq)
	default:
		panic(fmt.Sprintf("unknown algorithm: %v", cfg.Algorithm))
	}
}

func equal[T comparable](a, b T) bool { return a == b }

// steps translates an alignment path into the user facing representation.
func steps[T any](x, y []T, eq func(a, b T) bool, points []path.Point) []Step[T] {
	if len(points) < 2 {
		return nil
	}
	out := make([]Step[T], 0, len(points)-1)
	for mv := range path.Moves(points) {
		switch mv.Kind {
		case path.Diagonal:
			xs, yt := x[mv.S], y[mv.T]
			op := Mismatch
			if eq(xs, yt) {
				op = Match
			}
			out = append(out, Step[T]{
				Op:   op,
				X:    xs,
				Y:    yt,
				Cost: cost.Of(op == Match),
			})
		case path.Delete:
			out = append(out, Step[T]{
				Op:   Delete,
				X:    x[mv.S],
				Cost: cost.Gap,
			})
		case path.Insert:
			out = append(out, Step[T]{
				Op:   Insert,
				Y:    y[mv.T],
				Cost: cost.Gap,
			})
		default:
			panic("never reached")
		}
	}
	return out
}
