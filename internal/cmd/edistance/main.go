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

// edistance computes the edit distance and an optimal alignment of two sequences.
//
// The two sequences are read from stdin, separated by whitespace:
//
//	$ echo "AACAGTTACC TAAGGTCA" | edistance
//	Edit distance: 7
//	A T 1
//	A A 0
//	...
//	Execution time is: 0.000123 seconds
//
// The batch subcommand aligns all pairs listed in a YAML file and prints the results as YAML.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
	"znkr.io/align"
	"znkr.io/align/textalign"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type options struct {
	algorithm string
	baseCase  int
	cigar     bool
	verbose   bool
}

func newRootCmd() *cobra.Command {
	var o options
	root := &cobra.Command{
		Use:   "edistance",
		Short: "Compute the edit distance and an optimal alignment of two sequences read from stdin",
		Long: `edistance reads two whitespace separated sequences from stdin and prints the edit
distance, an optimal alignment, and the execution time.

Matches cost 0, mismatches cost 1, and gaps cost 2.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         o.runSingle,
	}
	root.PersistentFlags().StringVar(&o.algorithm, "algorithm", "hirschberg", "alignment algorithm: hirschberg, nw, or linear")
	root.PersistentFlags().IntVar(&o.baseCase, "base-case", 2, "size of subproblems solved directly by hirschberg")
	root.PersistentFlags().BoolVarP(&o.verbose, "verbose", "v", false, "enable debug logging")
	root.Flags().BoolVar(&o.cigar, "cigar", false, "also print a CIGAR summary of the alignment")

	root.AddCommand(&cobra.Command{
		Use:   "batch FILE",
		Short: "Align all pairs in a YAML file",
		Long: `batch reads a YAML list of pairs and prints a YAML list of results:

  - name: example
    x: AACAGTTACC
    y: TAAGGTCA`,
		Args: cobra.ExactArgs(1),
		RunE: o.runBatch,
	})
	return root
}

func (o *options) logger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelInfo
	if o.verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}

func (o *options) alignOptions() ([]align.Option, error) {
	alg, err := parseAlgorithm(o.algorithm)
	if err != nil {
		return nil, err
	}
	return []align.Option{align.WithAlgorithm(alg), align.BaseCase(o.baseCase)}, nil
}

func parseAlgorithm(s string) (align.Algorithm, error) {
	switch strings.ToLower(s) {
	case "hirschberg":
		return align.AlgorithmHirschberg, nil
	case "nw", "needleman-wunsch":
		return align.AlgorithmNeedlemanWunsch, nil
	case "linear":
		return align.AlgorithmLinear, nil
	default:
		return 0, fmt.Errorf("unknown algorithm %q, want one of hirschberg, nw, linear", s)
	}
}

func (o *options) runSingle(cmd *cobra.Command, _ []string) error {
	start := time.Now()
	logger := o.logger(cmd)
	opts, err := o.alignOptions()
	if err != nil {
		return err
	}

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return fmt.Errorf("reading stdin: %v", err)
	}
	fields := strings.Fields(string(data))
	if len(fields) < 2 {
		return fmt.Errorf("expected two sequences on stdin, got %d", len(fields))
	}
	if len(fields) > 2 {
		logger.Warn("ignoring extra input", "sequences", len(fields)-2)
	}
	x, y := []rune(fields[0]), []rune(fields[1])
	logger.Debug("aligning", "algorithm", o.algorithm, "base-case", o.baseCase, "len(x)", len(x), "len(y)", len(y))

	a := align.New(x, y, opts...)
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Edit distance: %d\n", a.Distance())
	steps, err := a.Alignment()
	switch {
	case errors.Is(err, align.ErrUnsupported):
		logger.Warn("alignment not available", "algorithm", o.algorithm, "error", err)
	case err != nil:
		return err
	default:
		fmt.Fprint(out, textalign.Format(steps))
		if o.cigar {
			fmt.Fprintf(out, "CIGAR: %s\n", textalign.CIGAR(steps))
		}
	}
	fmt.Fprintf(out, "Execution time is: %g seconds\n", time.Since(start).Seconds())
	return nil
}

type pair struct {
	Name string `yaml:"name"`
	X    string `yaml:"x"`
	Y    string `yaml:"y"`
}

type result struct {
	Name     string `yaml:"name"`
	Distance int    `yaml:"distance"`
	CIGAR    string `yaml:"cigar,omitempty"`
}

func (o *options) runBatch(cmd *cobra.Command, args []string) error {
	logger := o.logger(cmd)
	opts, err := o.alignOptions()
	if err != nil {
		return err
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading batch file: %v", err)
	}
	var pairs []pair
	if err := yaml.Unmarshal(data, &pairs); err != nil {
		return fmt.Errorf("parsing batch file %s: %v", args[0], err)
	}

	results := make([]result, 0, len(pairs))
	unsupported := false
	for i, p := range pairs {
		if p.Name == "" {
			p.Name = fmt.Sprintf("pair-%d", i+1)
		}
		start := time.Now()
		a := align.New([]rune(p.X), []rune(p.Y), opts...)
		r := result{Name: p.Name, Distance: a.Distance()}
		if steps, err := a.Alignment(); err == nil {
			r.CIGAR = textalign.CIGAR(steps)
		} else if errors.Is(err, align.ErrUnsupported) {
			unsupported = true
		} else {
			return fmt.Errorf("aligning %s: %v", p.Name, err)
		}
		logger.Debug("aligned pair", "name", p.Name, "distance", r.Distance, "elapsed", time.Since(start))
		results = append(results, r)
	}
	if unsupported {
		logger.Warn("alignments not available, reporting distances only", "algorithm", o.algorithm)
	}

	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	if err := enc.Encode(results); err != nil {
		return fmt.Errorf("writing results: %v", err)
	}
	return enc.Close()
}
