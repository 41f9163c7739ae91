// Copyright 2025 Naren Yellavula
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
	"fmt"
	"io"
	"log"
	"math/rand"

	"github.com/cybrota/arbor/avl"
	"github.com/schollz/progressbar/v3"
)

// StressOptions controls a randomized workload run by `arbor stress`.
type StressOptions struct {
	Count        int   // number of operations
	KeySpace     int   // keys are drawn from [0, KeySpace)
	DeletePct    int   // share of operations that are deletes
	Seed         int64 // 0 keeps the run reproducible with seed 1
	ShowProgress bool
	Out          io.Writer
}

type StressResult struct {
	Inserts    int
	Duplicates int
	Deletes    int
	Misses     int
	MaxHeight  int
	FinalSize  int
}

// RunStress applies random inserts and deletes to a fresh tree and checks
// every invariant after each operation. It stops at the first violation.
func RunStress(opts StressOptions) (StressResult, error) {
	var res StressResult
	if opts.Count <= 0 {
		return res, fmt.Errorf("count must be positive, got %d", opts.Count)
	}
	if opts.KeySpace <= 0 {
		opts.KeySpace = opts.Count
	}
	if opts.DeletePct < 0 || opts.DeletePct > 100 {
		return res, fmt.Errorf("delete percentage must be within 0-100, got %d", opts.DeletePct)
	}
	if opts.Seed == 0 {
		opts.Seed = 1
	}
	if opts.Out == nil {
		opts.Out = io.Discard
	}

	var bar *progressbar.ProgressBar
	if opts.ShowProgress {
		bar = progressbar.NewOptions(opts.Count,
			progressbar.OptionSetWriter(opts.Out),
			progressbar.OptionSetDescription("🌳 Balancing..."),
			progressbar.OptionSetWidth(50),
			progressbar.OptionShowCount(),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "█",
				SaucerHead:    "█",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}),
		)
	}

	log.Printf("Starting stress run: %d operations, key space %d, seed %d", opts.Count, opts.KeySpace, opts.Seed)

	rng := rand.New(rand.NewSource(opts.Seed))
	tree := avl.NewOrdered[int]()
	for i := 0; i < opts.Count; i++ {
		key := rng.Intn(opts.KeySpace)
		if rng.Intn(100) < opts.DeletePct {
			if tree.Delete(key) {
				res.Deletes++
			} else {
				res.Misses++
			}
		} else {
			if _, inserted := tree.Insert(key); inserted {
				res.Inserts++
			} else {
				res.Duplicates++
			}
		}

		if err := tree.Check(); err != nil {
			if bar != nil {
				bar.Describe("❌ Invariant violated")
				bar.Finish()
			}
			return res, fmt.Errorf("operation %d on key %d: %w", i, key, err)
		}
		res.MaxHeight = max(res.MaxHeight, tree.Height())

		if bar != nil {
			bar.Add(1)
		}
	}
	if bar != nil {
		bar.Finish()
	}

	res.FinalSize = tree.Len()
	log.Printf("Stress run completed. %d keys left, max height %d", res.FinalSize, res.MaxHeight)
	return res, nil
}
