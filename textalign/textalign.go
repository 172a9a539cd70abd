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

// Package textalign provides functions to align text rune by rune and to render alignments in a
// line based text format.
//
// Every step of an alignment is rendered as one line "<x> <y> <cost>", where <x> and <y> are the
// aligned runes or "-" for a gap, e.g.
//
//	A T 1
//	A A 0
//	C - 2
package textalign

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"znkr.io/align"
	"znkr.io/align/internal/config"
)

// Gap is the placeholder that's rendered for the missing side of a deletion or insertion.
const Gap = '-'

// ErrSyntax is returned (wrapped) by [Parse] for malformed input.
var ErrSyntax = errors.New("invalid alignment syntax")

// Alignment aligns x and y rune by rune and returns the distance and the rendered alignment.
//
// The following options are supported: [align.WithAlgorithm], [align.BaseCase]. Only algorithms
// that can reconstruct alignments are allowed, passing [align.AlgorithmLinear] panics.
//
// Important: If there are several optimal alignments, the one returned is not guaranteed to be
// stable and may change with minor version upgrades.
func Alignment(x, y string, opts ...align.Option) (int, string) {
	cfg := config.FromOptions(opts, config.WithAlgorithm|config.BaseCase)
	if cfg.Algorithm == config.Linear {
		panic("Option align.WithAlgorithm(align.AlgorithmLinear) not allowed here")
	}
	steps, err := align.New([]rune(x), []rune(y), opts...).Alignment()
	if err != nil {
		panic(err) // never reached, all remaining algorithms support alignments
	}
	return Distance(steps), Format(steps)
}

// Distance returns the sum of the cost of all steps.
func Distance(steps []align.Step[rune]) int {
	total := 0
	for _, s := range steps {
		total += s.Cost
	}
	return total
}

// Format renders steps, one line per step.
func Format(steps []align.Step[rune]) string {
	var sb strings.Builder
	sb.Grow(8 * len(steps))
	for _, s := range steps {
		x, y := s.X, s.Y
		switch s.Op {
		case align.Match, align.Mismatch:
			// Both sides present.
		case align.Delete:
			y = Gap
		case align.Insert:
			x = Gap
		default:
			panic("never reached")
		}
		sb.WriteRune(x)
		sb.WriteByte(' ')
		sb.WriteRune(y)
		sb.WriteByte(' ')
		sb.WriteString(strconv.Itoa(s.Cost))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Parse is the inverse of [Format].
//
// The kind of each step is derived from its cost and from the position of the gap. A line where
// both sides are "-" with cost 2 is ambiguous and rejected. Runes are read positionally, which
// means that aligned spaces and newlines are parsed correctly. A missing final newline is
// accepted.
func Parse(s string) ([]align.Step[rune], error) {
	var steps []align.Step[rune]
	for lineNo := 1; len(s) > 0; lineNo++ {
		var (
			st  align.Step[rune]
			err error
		)
		st, s, err = parseStep(s)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		steps = append(steps, st)
	}
	return steps, nil
}

func parseStep(s string) (align.Step[rune], string, error) {
	x, s, err := readRune(s)
	if err != nil {
		return align.Step[rune]{}, "", err
	}
	if s, err = expect(s, ' '); err != nil {
		return align.Step[rune]{}, "", err
	}
	y, s, err := readRune(s)
	if err != nil {
		return align.Step[rune]{}, "", err
	}
	if s, err = expect(s, ' '); err != nil {
		return align.Step[rune]{}, "", err
	}
	eol := strings.IndexByte(s, '\n')
	field, rest := s, ""
	if eol >= 0 {
		field, rest = s[:eol], s[eol+1:]
	}
	cost, err := strconv.Atoi(field)
	if err != nil {
		return align.Step[rune]{}, "", fmt.Errorf("%w: invalid cost %q", ErrSyntax, field)
	}

	st := align.Step[rune]{X: x, Y: y, Cost: cost}
	switch {
	case cost == 0 && x == y:
		st.Op = align.Match
	case cost == 1 && x != y:
		st.Op = align.Mismatch
	case cost == align.GapCost && x == Gap && y == Gap:
		return align.Step[rune]{}, "", fmt.Errorf("%w: ambiguous gap in %q", ErrSyntax, string([]rune{x, ' ', y}))
	case cost == align.GapCost && y == Gap:
		st.Op, st.Y = align.Delete, 0
	case cost == align.GapCost && x == Gap:
		st.Op, st.X = align.Insert, 0
	default:
		return align.Step[rune]{}, "", fmt.Errorf("%w: cost %d is inconsistent with %q", ErrSyntax, cost, string([]rune{x, ' ', y}))
	}
	return st, rest, nil
}

func readRune(s string) (rune, string, error) {
	r, size := utf8.DecodeRuneInString(s)
	switch {
	case size == 0:
		return 0, "", fmt.Errorf("%w: unexpected end of input", ErrSyntax)
	case r == utf8.RuneError && size == 1:
		return 0, "", fmt.Errorf("%w: invalid UTF-8", ErrSyntax)
	}
	return r, s[size:], nil
}

func expect(s string, want byte) (string, error) {
	if len(s) == 0 || s[0] != want {
		return "", fmt.Errorf("%w: expected %q", ErrSyntax, want)
	}
	return s[1:], nil
}

// CIGAR returns a run-length summary of steps, e.g. "1X1=1D2=1X". The operations are "=" for
// matches, "X" for mismatches, "D" for deletions, and "I" for insertions.
func CIGAR[T any](steps []align.Step[T]) string {
	var sb strings.Builder
	n := 0
	var last byte
	flush := func() {
		if n > 0 {
			sb.WriteString(strconv.Itoa(n))
			sb.WriteByte(last)
		}
	}
	for _, s := range steps {
		var op byte
		switch s.Op {
		case align.Match:
			op = '='
		case align.Mismatch:
			op = 'X'
		case align.Delete:
			op = 'D'
		case align.Insert:
			op = 'I'
		default:
			panic("never reached")
		}
		if op == last {
			n++
			continue
		}
		flush()
		last, n = op, 1
	}
	flush()
	return sb.String()
}
