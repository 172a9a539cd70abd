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

package config_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"znkr.io/align"
	"znkr.io/align/internal/config"
)

func TestFromOptions(t *testing.T) {
	tests := []struct {
		name string
		opts []config.Option
		want config.Config
	}{
		{
			name: "default",
			opts: nil,
			want: config.Default,
		},
		{
			name: "algorithm",
			opts: []config.Option{
				align.WithAlgorithm(align.AlgorithmNeedlemanWunsch),
			},
			want: config.Config{
				Algorithm: config.NeedlemanWunsch,
				BaseCase:  config.Default.BaseCase,
			},
		},
		{
			name: "base-case",
			opts: []config.Option{
				align.BaseCase(16),
			},
			want: config.Config{
				Algorithm: config.Default.Algorithm,
				BaseCase:  16,
			},
		},
		{
			name: "base-case-clamped",
			opts: []config.Option{
				align.BaseCase(-4),
			},
			want: config.Config{
				Algorithm: config.Default.Algorithm,
				BaseCase:  1,
			},
		},
		{
			name: "override",
			opts: []config.Option{
				align.BaseCase(5),
				align.WithAlgorithm(align.AlgorithmLinear),
				align.BaseCase(3),
			},
			want: config.Config{
				Algorithm: config.Linear,
				BaseCase:  3,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := config.FromOptions(tt.opts, config.WithAlgorithm|config.BaseCase)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("FromOptions(...) result are different [-want,+got]:\n%s", diff)
			}
		})
	}
}

func TestFromOptionsNotAllowed(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("FromOptions(...) didn't panic")
		}
		if got, want := r, "Option align.WithAlgorithm not allowed here"; got != want {
			t.Errorf("FromOptions(...) panicked with %q, want %q", got, want)
		}
	}()
	config.FromOptions([]config.Option{align.WithAlgorithm(align.AlgorithmLinear)}, config.BaseCase)
}

func TestAlgorithmString(t *testing.T) {
	for a, want := range map[config.Algorithm]string{
		config.Hirschberg:      "hirschberg",
		config.NeedlemanWunsch: "needleman-wunsch",
		config.Linear:          "linear",
		config.Algorithm(42):   "unknown",
	} {
		if got := a.String(); got != want {
			t.Errorf("Algorithm(%d).String() = %q, want %q", int(a), got, want)
		}
	}
}
