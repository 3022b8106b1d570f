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
	"math/rand/v2"
	"strconv"
	"time"

	"github.com/cybrota/ranktree/avl"
	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"
)

// BenchResult summarises one bench round of n keys.
type BenchResult struct {
	Size         int
	Rank         int // root rank after all inserts
	InsertOps    int
	MaxInsertOps int
	DeleteOps    int
	MaxDeleteOps int
	SplitKey     int
	LowSize      int
	HighSize     int
	JoinCost     int // cost of joining the split halves back together
	Elapsed      time.Duration
}

func (r BenchResult) AvgInsertOps() float64 {
	return float64(r.InsertOps) / float64(r.Size)
}

func (r BenchResult) AvgDeleteOps() float64 {
	return float64(r.DeleteOps) / float64(r.Size)
}

// runBench inserts and deletes each size's keys in seeded random orders, then
// rebuilds the tree, splits it at a random key and joins the halves again.
// Every phase ends with a full invariant check.
func runBench(sizes []int, seed uint64, progress io.Writer, log *zap.Logger) ([]BenchResult, error) {
	total := 0
	for _, n := range sizes {
		total += 3 * n
	}

	var bar *progressbar.ProgressBar
	if progress != nil {
		bar = progressbar.NewOptions(total,
			progressbar.OptionSetDescription("benchmarking"),
			progressbar.OptionSetWriter(progress),
			progressbar.OptionSetWidth(40),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		)
	} else {
		bar = progressbar.DefaultSilent(int64(total))
	}
	defer bar.Finish()

	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	results := make([]BenchResult, 0, len(sizes))
	for _, n := range sizes {
		res, err := benchRound(n, rng, bar)
		if err != nil {
			return results, fmt.Errorf("bench with %d keys: %w", n, err)
		}
		log.Debug("bench round",
			zap.Int("size", n),
			zap.Float64("avg_insert_ops", res.AvgInsertOps()),
			zap.Float64("avg_delete_ops", res.AvgDeleteOps()),
			zap.Int("join_cost", res.JoinCost),
			zap.Duration("elapsed", res.Elapsed))
		results = append(results, res)
	}
	return results, nil
}

func benchRound(n int, rng *rand.Rand, bar *progressbar.ProgressBar) (BenchResult, error) {
	start := time.Now()
	res := BenchResult{Size: n}
	if n <= 0 {
		return res, nil
	}

	tree := avl.New()
	fill := func() error {
		for _, k := range rng.Perm(n) {
			ops, err := tree.Insert(k, strconv.Itoa(k))
			if err != nil {
				return err
			}
			res.InsertOps += ops
			res.MaxInsertOps = max(res.MaxInsertOps, ops)
			_ = bar.Add(1)
		}
		return tree.Validate()
	}

	if err := fill(); err != nil {
		return res, err
	}
	res.Rank = tree.Root().Rank()

	for _, k := range rng.Perm(n) {
		ops, err := tree.Delete(k)
		if err != nil {
			return res, err
		}
		res.DeleteOps += ops
		res.MaxDeleteOps = max(res.MaxDeleteOps, ops)
		_ = bar.Add(1)
	}
	if !tree.Empty() {
		return res, fmt.Errorf("%d entries left after deleting every key", tree.Size())
	}

	// the second fill only feeds the split, its counts are not reported
	insertOps, maxInsertOps := res.InsertOps, res.MaxInsertOps
	if err := fill(); err != nil {
		return res, err
	}
	res.InsertOps, res.MaxInsertOps = insertOps, maxInsertOps

	res.SplitKey = rng.IntN(n)
	low, high, err := tree.Split(res.SplitKey)
	if err != nil {
		return res, err
	}
	res.LowSize, res.HighSize = low.Size(), high.Size()
	for _, half := range []*avl.Tree{low, high} {
		if err := half.Validate(); err != nil {
			return res, err
		}
	}

	res.JoinCost, err = low.Join(avl.NewNode(res.SplitKey, strconv.Itoa(res.SplitKey)), high)
	if err != nil {
		return res, err
	}
	if low.Size() != n {
		return res, fmt.Errorf("joined tree holds %d entries, want %d", low.Size(), n)
	}
	if err := low.Validate(); err != nil {
		return res, err
	}

	res.Elapsed = time.Since(start)
	return res, nil
}

func printBenchResults(w io.Writer, results []BenchResult) {
	tbl := table.NewWriter()
	tbl.SetOutputMirror(w)
	tbl.SetStyle(table.StyleRounded)
	tbl.AppendHeader(table.Row{"Keys", "Rank", "Avg insert ops", "Max", "Avg delete ops", "Max", "Split", "Join cost", "Time"})
	for _, r := range results {
		tbl.AppendRow(table.Row{
			humanize.Comma(int64(r.Size)),
			r.Rank,
			fmt.Sprintf("%.3f", r.AvgInsertOps()),
			r.MaxInsertOps,
			fmt.Sprintf("%.3f", r.AvgDeleteOps()),
			r.MaxDeleteOps,
			fmt.Sprintf("%s | %s", humanize.Comma(int64(r.LowSize)), humanize.Comma(int64(r.HighSize))),
			r.JoinCost,
			r.Elapsed.Round(time.Microsecond),
		})
	}
	tbl.Render()
}
