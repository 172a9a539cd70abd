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

// Package align computes optimal global alignments of two sequences.
//
// The cost of an alignment is the sum of the cost of its steps: aligning two equal elements is
// free, aligning two different elements costs 1 and aligning an element against a gap (an
// insertion or a deletion) costs 2. The minimal cost over all alignments is the edit distance
// between the two sequences.
//
// The main functions are [Distance], which returns the edit distance, and [Alignment], which
// returns one optimal alignment. Both use Hirschberg's algorithm and run in O(NM) time and
// O(N+M) space where N = len(x) and M = len(y).
//
// Three algorithms implement the [Aligner] interface and can be used directly:
//
//   - [Hirschberg]: O(NM) time, O(N+M) space, computes distance and alignment.
//   - [Quadratic]: O(NM) time and space (Needleman-Wunsch), computes distance and alignment.
//   - [Linear]: O(NM) time, O(N) space, computes the distance and cost profiles only.
//
// Note: For rendering alignments of text, please see [znkr.io/align/textalign].
//
// [znkr.io/align/textalign]: https://pkg.go.dev/znkr.io/align/textalign
package align
