// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Command numonoid prints the number of numerical monoids of each genus
// below a fixed bound, computed by the parallel fork-join tree walk in
// package walk.
package main

import (
	"fmt"
	"os"

	"github.com/go-numonoid/numonoid/hwy"
	"github.com/go-numonoid/numonoid/monoid"
	"github.com/go-numonoid/numonoid/walk"
)

// genus is the reported bound G: results cover genus values [0, genus).
// stackBound is the spawn-depth threshold of the traversal engine. Both are
// injected here rather than read from flags or the environment, per this
// program's role as the engine's sole external collaborator; the sequential
// walker's stack capacity is not a constant here but is computed by package
// walk as genus + 10.
const (
	genus      = 40
	stackBound = walk.DefaultStackBound
)

func main() {
	fmt.Fprintf(os.Stderr, "dispatch target: %s\n", hwy.CurrentName())

	fmt.Printf("Computing number of numeric monoids for genus <= %d\n", genus)
	fmt.Println()
	fmt.Println("============================")
	fmt.Println()

	cfg := monoid.NewConfig(genus)
	results := walk.Run(cfg, 0, stackBound)

	for i, v := range results {
		if i > 0 {
			fmt.Print(" ")
		}
		fmt.Print(v)
	}
	fmt.Println()
}
