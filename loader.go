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
	"os"
	"strings"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/cybrota/avlkit/avl"
	"github.com/cybrota/avlkit/workload"
)

// LoadReport summarises a bulk load
type LoadReport struct {
	Workload string
	Keys     int
	Added    int
	Height   int
	Size     int
	Elapsed  time.Duration
	Err      error // result of validating the tree after the load
}

// loadWorkload bulk inserts a generated workload into tree, drawing a
// progress bar on stderr when showProgress is set.
func loadWorkload(tree *GuardedTree, g workload.Generator, count int, seed int64, showProgress bool) LoadReport {
	keys := g.Keys(count, seed)

	var bar *progressbar.ProgressBar
	var progress func()
	if showProgress && len(keys) > 0 {
		bar = progressbar.NewOptions(len(keys),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionSetDescription(fmt.Sprintf("🌳 Inserting %s keys...", g.Name())),
			progressbar.OptionSetWidth(50),
			progressbar.OptionShowCount(),
			progressbar.OptionThrottle(65*time.Millisecond),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "=",
				SaucerHead:    ">",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}),
			progressbar.OptionOnCompletion(func() {
				fmt.Fprint(os.Stderr, "\n")
			}),
		)
		progress = func() { _ = bar.Add(1) }
	}

	start := time.Now()
	added := tree.InsertAll(keys, progress)
	elapsed := time.Since(start)
	if bar != nil {
		_ = bar.Finish()
	}

	report := LoadReport{
		Workload: g.Name(),
		Keys:     len(keys),
		Added:    added,
		Elapsed:  elapsed,
	}
	tree.View(func(t *avl.Tree) {
		report.Height = t.Height()
		report.Size = t.Size()
		report.Err = t.Validate()
	})
	return report
}

func printLoadReport(w io.Writer, report LoadReport) {
	fmt.Fprintf(w, "workload: %s%s%s\n", Green, report.Workload, Reset)
	fmt.Fprintf(w, "keys:     %d (%d new)\n", report.Keys, report.Added)
	if dup := report.Keys - report.Added; dup > 0 {
		fmt.Fprintf(w, "%sskipped:  %d duplicate keys%s\n", Warning, dup, Reset)
	}
	fmt.Fprintf(w, "size:     %d\n", report.Size)
	fmt.Fprintf(w, "height:   %d\n", report.Height)
	fmt.Fprintf(w, "elapsed:  %s\n", report.Elapsed.Round(time.Microsecond))
	if report.Err != nil {
		fmt.Fprintf(w, "check:    %s%v%s\n", Error, report.Err, Reset)
	} else {
		fmt.Fprintf(w, "check:    %sok%s\n", Green, Reset)
	}
}

// workloadUsage lists the registered workloads as "name: description"
func workloadUsage(m *workload.Manager) []string {
	var lines []string
	for _, g := range m.Generators() {
		lines = append(lines, fmt.Sprintf("%s: %s", g.Name(), g.Description()))
	}
	return lines
}

func workloadFlagUsage(m *workload.Manager) string {
	return "key pattern, one of " + strings.Join(workloadUsage(m), "; ")
}
