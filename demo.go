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
	"strconv"

	"github.com/cybrota/ranktree/avl"
)

var (
	demoInsertKeys = []int{16, 24, 36, 19, 44, 28, 61, 74, 83, 64, 52, 65, 86, 93, 88}
	demoDeleteKeys = []int{88, 19, 16, 28, 24, 36, 52, 93, 86, 83}
)

const (
	demoSplitSize = 1000
	demoSplitKey  = 786
)

// runDemo replays the removal and split walkthroughs, checking the tree
// after every step.
func runDemo(w io.Writer, maxNodes int) error {
	if err := demoRemoval(w, maxNodes); err != nil {
		return fmt.Errorf("removal demo: %w", err)
	}
	fmt.Fprintln(w)
	if err := demoSplit(w); err != nil {
		return fmt.Errorf("split demo: %w", err)
	}
	return nil
}

func demoRemoval(w io.Writer, maxNodes int) error {
	fmt.Fprintf(w, "%s== removal ==%s\n", Info, Reset)
	tree := avl.New()
	for _, k := range demoInsertKeys {
		ops, err := tree.Insert(k, strconv.Itoa(k))
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "insert %-3d ops=%d\n", k, ops)
	}
	lo, _ := tree.Min()
	hi, _ := tree.Max()
	if lo != "16" || hi != "93" {
		return fmt.Errorf("extremes are %q and %q, want \"16\" and \"93\"", lo, hi)
	}
	fmt.Fprintf(w, "min=%s max=%s\n", lo, hi)
	fmt.Fprint(w, renderTree("demo", tree, maxNodes))

	for _, k := range demoDeleteKeys {
		ops, err := tree.Delete(k)
		if err != nil {
			return err
		}
		if err := tree.Validate(); err != nil {
			return fmt.Errorf("after deleting %d: %w", k, err)
		}
		if _, ok := tree.Search(k); ok {
			return fmt.Errorf("%d still present after delete", k)
		}
		fmt.Fprintf(w, "delete %-3d ops=%d %sok%s\n", k, ops, Green, Reset)
	}
	fmt.Fprintf(w, "keys left: %v\n", tree.KeysToArray())
	fmt.Fprint(w, renderTree("demo", tree, maxNodes))
	return nil
}

func demoSplit(w io.Writer) error {
	fmt.Fprintf(w, "%s== split ==%s\n", Info, Reset)
	tree := avl.New()
	for k := range demoSplitSize {
		if _, err := tree.Insert(k, strconv.Itoa(k)); err != nil {
			return err
		}
	}
	fmt.Fprintf(w, "inserted 0..%d, root rank %d\n", demoSplitSize-1, tree.Root().Rank())

	low, high, err := tree.Split(demoSplitKey)
	if err != nil {
		return err
	}
	for _, half := range []*avl.Tree{low, high} {
		if err := half.Validate(); err != nil {
			return err
		}
	}

	lowMin, _ := low.Min()
	lowMax, _ := low.Max()
	highMin, _ := high.Min()
	highMax, _ := high.Max()
	fmt.Fprintf(w, "split %d: low size=%d [%s..%s], high size=%d [%s..%s]\n",
		demoSplitKey, low.Size(), lowMin, lowMax, high.Size(), highMin, highMax)

	if low.Size() != demoSplitKey || high.Size() != demoSplitSize-demoSplitKey-1 {
		return fmt.Errorf("halves hold %d and %d entries", low.Size(), high.Size())
	}
	if highMin != strconv.Itoa(demoSplitKey+1) || highMax != strconv.Itoa(demoSplitSize-1) {
		return fmt.Errorf("high half spans %s..%s", highMin, highMax)
	}
	fmt.Fprintf(w, "%sok%s\n", Green, Reset)
	return nil
}
