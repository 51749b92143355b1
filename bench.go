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
	"math/rand"
	"slices"
	"text/tabwriter"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/sirupsen/logrus"

	"github.com/cybrota/avlsort/sorting"
)

type BenchResult struct {
	Algorithm string
	Trials    int
	Total     time.Duration
	Failures  int // outputs that were not a sorted permutation of the input
}

func (r BenchResult) Mean() time.Duration {
	if r.Trials == 0 {
		return 0
	}
	return r.Total / time.Duration(r.Trials)
}

// runBench times every algorithm in algorithms (all registered ones when
// empty) over config.Trials random inputs of config.Size values. Each trial
// feeds every algorithm the same input.
func runBench(reg *sorting.Registry, config BenchConfig, algorithms []string, w io.Writer, logger *logrus.Logger) ([]BenchResult, error) {
	if config.Size < 0 || config.Trials <= 0 {
		return nil, fmt.Errorf("bench needs a non-negative size and a positive trial count, got size=%d trials=%d", config.Size, config.Trials)
	}
	if len(algorithms) == 0 {
		algorithms = reg.Names()
	}

	sorters := make([]sorting.Sorter, 0, len(algorithms))
	for _, name := range algorithms {
		s, err := reg.Get(name)
		if err != nil {
			return nil, err
		}
		sorters = append(sorters, s)
	}

	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.WithFields(logrus.Fields{
		"seed":   seed,
		"size":   config.Size,
		"trials": config.Trials,
	}).Debug("bench starting")
	rng := rand.New(rand.NewSource(seed))

	var bar *progressbar.ProgressBar
	if config.Progress {
		bar = progressbar.NewOptions(config.Trials*len(sorters),
			progressbar.OptionSetWriter(w),
			progressbar.OptionSetDescription("Sorting..."),
			progressbar.OptionSetWidth(50),
			progressbar.OptionShowCount(),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "=",
				SaucerHead:    ">",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}),
			progressbar.OptionOnCompletion(func() {
				fmt.Fprintln(w)
			}),
		)
	}

	results := make([]BenchResult, len(sorters))
	for i, s := range sorters {
		results[i].Algorithm = s.Name()
	}

	input := make([]int, config.Size)
	want := make([]int, config.Size)
	buf := make([]int, config.Size)
	for trial := 0; trial < config.Trials; trial++ {
		for i := range input {
			input[i] = rng.Intn(config.Size*4+1) - config.Size*2
		}
		copy(want, input)
		slices.Sort(want)

		for i, s := range sorters {
			copy(buf, input)
			start := time.Now()
			got := s.Sort(buf)
			results[i].Total += time.Since(start)
			results[i].Trials++

			if !slices.Equal(got, want) {
				results[i].Failures++
				logger.WithFields(logrus.Fields{"algorithm": s.Name(), "trial": trial}).Error("output is not the sorted input")
			}
			if bar != nil {
				_ = bar.Add(1)
			}
		}
	}
	if bar != nil {
		_ = bar.Finish()
	}

	return results, nil
}

func printBenchResults(w io.Writer, results []BenchResult) {
	styles := GetStyles()
	fmt.Fprintln(w, styles.Title.Render("Benchmark results"))

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ALGORITHM\tTRIALS\tMEAN\tTOTAL\tSTATUS")
	for _, r := range results {
		status := styles.Success.Render("ok")
		if r.Failures > 0 {
			status = styles.Error.Render(fmt.Sprintf("%d failed", r.Failures))
		}
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%s\n", r.Algorithm, r.Trials, r.Mean(), r.Total.Round(time.Microsecond), status)
	}
	tw.Flush()
}
