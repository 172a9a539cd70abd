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

// Package config provides shared configuration mechanisms for packages in this module.
//
// This package is an implementation detail, the configuration surface for users is provided via
// align.Option.
package config

// Algorithm selects the alignment algorithm.
type Algorithm int

const (
	// Divide-and-conquer in linear space with full reconstruction of the alignment.
	Hirschberg Algorithm = iota

	// Quadratic space with full reconstruction of the alignment.
	NeedlemanWunsch

	// Linear space, computes the optimal distance only.
	Linear
)

func (a Algorithm) String() string {
	switch a {
	case Hirschberg:
		return "hirschberg"
	case NeedlemanWunsch:
		return "needleman-wunsch"
	case Linear:
		return "linear"
	default:
		return "unknown"
	}
}

// Config collects all configurable parameters for alignment functions in this module.
type Config struct {
	// Algorithm used by align.New.
	Algorithm Algorithm

	// Subproblems where one of the inputs has at most this many elements are solved by the
	// quadratic algorithm inside of Hirschberg's algorithm.
	BaseCase int
}

// Default is the default configuration.
var Default = Config{
	Algorithm: Hirschberg,
	BaseCase:  2,
}

// Flag describes a single config entry. This is used to detect if configurations are being set
// that are not supported by a function.
type Flag int

const (
	WithAlgorithm Flag = 1 << iota
	BaseCase
)

// Option is the mechanism used to expose the configuration to users.
type Option func(*Config) Flag

// FromOptions creates a configuration from a set of options.
func FromOptions(opts []Option, allowed Flag) Config {
	cfg := Default
	for _, opt := range opts {
		flag := opt(&cfg)
		if flag & ^allowed != 0 {
			panic("Option " + printFlag(flag) + " not allowed here")
		}
	}
	if cfg.BaseCase < 1 {
		cfg.BaseCase = 1
	}
	return cfg
}

func printFlag(flag Flag) string {
	switch flag {
	case WithAlgorithm:
		return "align.WithAlgorithm"
	case BaseCase:
		return "align.BaseCase"
	default:
		panic("never reached")
	}
}
