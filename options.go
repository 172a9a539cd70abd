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
	"znkr.io/align/internal/config"
)

// Option configures the behavior of alignment functions.
type Option = config.Option

// Algorithm selects an alignment algorithm for [New] and [NewFunc].
type Algorithm = config.Algorithm

const (
	AlgorithmHirschberg      = config.Hirschberg      // See [Hirschberg], the default
	AlgorithmNeedlemanWunsch = config.NeedlemanWunsch // See [Quadratic]
	AlgorithmLinear          = config.Linear          // See [Linear]
)

// WithAlgorithm selects the algorithm used by [New] and [NewFunc]. The default is
// [AlgorithmHirschberg].
func WithAlgorithm(a Algorithm) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Algorithm = a
		return config.WithAlgorithm
	}
}

// BaseCase sets the size of subproblems that Hirschberg's algorithm solves with the quadratic
// algorithm instead of splitting them further. A subproblem is considered small if either of its
// inputs has at most n elements. The default is 2, values below 1 are treated as 1.
//
// Larger values trade memory for fewer recursive calls.
func BaseCase(n int) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.BaseCase = max(1, n)
		return config.BaseCase
	}
}
