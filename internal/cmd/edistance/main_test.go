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

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"
)

var executionTime = regexp.MustCompile(`(?m)^Execution time is: \S+ seconds\n\z`)

// execute runs the command with args and stdin and returns stdout and stderr.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestSingle(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		stdin   string
		want    string
		wantLog string
	}{
		{
			name:  "default",
			stdin: "AACAGTTACC TAAGGTCA\n",
			want: "Edit distance: 7\n" +
				"A T 1\nA A 0\nC - 2\nA A 0\nG G 0\nT G 1\nT T 0\nA - 2\nC C 0\nC A 1\n",
		},
		{
			name:  "needleman-wunsch",
			args:  []string{"--algorithm", "nw"},
			stdin: "atattat\ntattata\n",
			want:  "Edit distance: 4\n" + "a - 2\nt t 0\na a 0\nt t 0\nt t 0\na a 0\nt t 0\n- a 2\n",
		},
		{
			name:  "cigar",
			args:  []string{"--cigar", "--base-case", "1"},
			stdin: "kitten sitting",
			want:  "Edit distance: 4\n" + "k s 1\ni i 0\nt t 0\nt t 0\ne i 1\nn n 0\n- g 2\n" + "CIGAR: 1X3=1X1=1I\n",
		},
		{
			name:    "linear",
			args:    []string{"--algorithm", "linear"},
			stdin:   "AACAGTTACC TAAGGTCA",
			want:    "Edit distance: 7\n",
			wantLog: "alignment not available",
		},
		{
			name:    "extra-input",
			stdin:   "A T G",
			want:    "Edit distance: 1\nA T 1\n",
			wantLog: "ignoring extra input",
		},
		{
			name:    "verbose",
			args:    []string{"-v"},
			stdin:   "A A",
			want:    "Edit distance: 0\nA A 0\n",
			wantLog: "level=DEBUG msg=aligning",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, stderr, err := execute(t, tt.stdin, tt.args...)
			if err != nil {
				t.Fatalf("execute(...) failed: %v\nstderr:\n%s", err, stderr)
			}
			loc := executionTime.FindStringIndex(stdout)
			if loc == nil {
				t.Fatalf("output doesn't end with the execution time:\n%s", stdout)
			}
			if diff := cmp.Diff(tt.want, stdout[:loc[0]]); diff != "" {
				t.Errorf("output is different [-want,+got]:\n%s", diff)
			}
			if tt.wantLog != "" && !strings.Contains(stderr, tt.wantLog) {
				t.Errorf("log output doesn't contain %q:\n%s", tt.wantLog, stderr)
			}
			if tt.wantLog == "" && stderr != "" {
				t.Errorf("unexpected log output:\n%s", stderr)
			}
		})
	}
}

func TestSingleErrors(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		stdin string
		want  string
	}{
		{
			name:  "missing-input",
			stdin: "ACGT\n",
			want:  "expected two sequences on stdin, got 1",
		},
		{
			name:  "unknown-algorithm",
			args:  []string{"--algorithm", "smith-waterman"},
			stdin: "A T",
			want:  `unknown algorithm "smith-waterman"`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, tt.stdin, tt.args...)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("execute(...) returned error %v, want error containing %q", err, tt.want)
			}
		})
	}
}

func TestBatch(t *testing.T) {
	input := `- name: dna
  x: AACAGTTACC
  y: TAAGGTCA
- name: words
  x: kitten
  y: sitting
- x: ""
  y: AC
`
	file := filepath.Join(t.TempDir(), "pairs.yaml")
	if err := os.WriteFile(file, []byte(input), 0o644); err != nil {
		t.Fatalf("failed to write batch file: %v", err)
	}

	tests := []struct {
		name    string
		args    []string
		want    []result
		wantLog string
	}{
		{
			name: "default",
			want: []result{
				{Name: "dna", Distance: 7, CIGAR: "1X1=1D2=1X1=1D1=1X"},
				{Name: "words", Distance: 4, CIGAR: "1X3=1X1=1I"},
				{Name: "pair-3", Distance: 4, CIGAR: "2I"},
			},
		},
		{
			name: "linear",
			args: []string{"--algorithm", "linear"},
			want: []result{
				{Name: "dna", Distance: 7},
				{Name: "words", Distance: 4},
				{Name: "pair-3", Distance: 4},
			},
			wantLog: "reporting distances only",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, stderr, err := execute(t, "", append([]string{"batch", file}, tt.args...)...)
			if err != nil {
				t.Fatalf("execute(...) failed: %v\nstderr:\n%s", err, stderr)
			}
			var got []result
			if err := yaml.Unmarshal([]byte(stdout), &got); err != nil {
				t.Fatalf("failed to parse output: %v\n%s", err, stdout)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("batch results are different [-want,+got]:\n%s", diff)
			}
			if tt.wantLog != "" && !strings.Contains(stderr, tt.wantLog) {
				t.Errorf("log output doesn't contain %q:\n%s", tt.wantLog, stderr)
			}
		})
	}
}

func TestBatchErrors(t *testing.T) {
	dir := t.TempDir()
	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("name: not-a-list\n"), 0o644); err != nil {
		t.Fatalf("failed to write batch file: %v", err)
	}

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"missing-file", []string{"batch", filepath.Join(dir, "missing.yaml")}, "reading batch file"},
		{"invalid-yaml", []string{"batch", invalid}, "parsing batch file"},
		{"no-file", []string{"batch"}, "accepts 1 arg(s), received 0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, "", tt.args...)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("execute(%v) returned error %v, want error containing %q", tt.args, err, tt.want)
			}
		})
	}
}
