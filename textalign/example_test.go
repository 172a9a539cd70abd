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

package textalign_test

import (
	"fmt"

	"znkr.io/align"
	"znkr.io/align/textalign"
)

func ExampleAlignment() {
	dist, out := textalign.Alignment("AACAGTTACC", "TAAGGTCA")
	fmt.Println("Edit distance:", dist)
	fmt.Print(out)
	// Output:
	// Edit distance: 7
	// A T 1
	// A A 0
	// C - 2
	// A A 0
	// G G 0
	// T G 1
	// T T 0
	// A - 2
	// C C 0
	// C A 1
}

func ExampleCIGAR() {
	steps := align.Alignment([]rune("kitten"), []rune("sitting"))
	fmt.Println(textalign.CIGAR(steps))
	// Output:
	// 1X3=1X1=1I
}

func ExampleParse() {
	steps, err := textalign.Parse("A T 1\nA A 0\nC - 2\n- G 2\n")
	if err != nil {
		panic(err)
	}
	for _, s := range steps {
		fmt.Println(s.Op, s.Cost)
	}
	fmt.Println("distance:", textalign.Distance(steps))
	// Output:
	// Mismatch 1
	// Match 0
	// Delete 2
	// Insert 2
	// distance: 5
}
