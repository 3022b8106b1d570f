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

package avl

import (
	"errors"
	"math/rand/v2"
	"slices"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTree(t *testing.T, keys ...int) *Tree {
	t.Helper()
	tree := New()
	for _, k := range keys {
		_, err := tree.Insert(k, strconv.Itoa(k))
		require.NoError(t, err)
	}
	require.NoError(t, tree.Validate())
	return tree
}

func rangeKeys(from, to int) []int {
	keys := make([]int, 0, to-from)
	for k := from; k < to; k++ {
		keys = append(keys, k)
	}
	return keys
}

func TestEmptyTree(t *testing.T) {
	tree := New()

	assert.True(t, tree.Empty())
	assert.Equal(t, 0, tree.Size())
	assert.False(t, tree.Root().IsReal())
	assert.Empty(t, tree.KeysToArray())
	assert.Empty(t, tree.ValuesToArray())

	_, ok := tree.Search(1)
	assert.False(t, ok)
	_, ok = tree.Min()
	assert.False(t, ok)
	_, ok = tree.Max()
	assert.False(t, ok)

	require.NoError(t, tree.Validate())
}

func TestInsertOperationCounts(t *testing.T) {
	testCases := []struct {
		Name      string
		Keys      []int
		Ops       []int
		RootKey   int
		RootRank  int
		KeysOrder []int
	}{
		{
			Name:      "Single node",
			Keys:      []int{7},
			Ops:       []int{0},
			RootKey:   7,
			RootRank:  0,
			KeysOrder: []int{7},
		},
		{
			Name:      "Promotion of a leaf parent",
			Keys:      []int{1, 2},
			Ops:       []int{0, 1},
			RootKey:   1,
			RootRank:  1,
			KeysOrder: []int{1, 2},
		},
		{
			Name:      "Single rotation (right-heavy)",
			Keys:      []int{1, 2, 3},
			Ops:       []int{0, 1, 3},
			RootKey:   2,
			RootRank:  1,
			KeysOrder: []int{1, 2, 3},
		},
		{
			Name:      "Double rotation (zig-zag)",
			Keys:      []int{3, 1, 2},
			Ops:       []int{0, 1, 6},
			RootKey:   2,
			RootRank:  1,
			KeysOrder: []int{1, 2, 3},
		},
		{
			Name:      "Parent with a sibling needs nothing",
			Keys:      []int{2, 1, 3},
			Ops:       []int{0, 1, 0},
			RootKey:   2,
			RootRank:  1,
			KeysOrder: []int{1, 2, 3},
		},
		{
			Name:      "Promotion climbs to the root",
			Keys:      []int{2, 1, 3, 4},
			Ops:       []int{0, 1, 0, 2},
			RootKey:   2,
			RootRank:  2,
			KeysOrder: []int{1, 2, 3, 4},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tree := New()
			for i, k := range tc.Keys {
				ops, err := tree.Insert(k, strconv.Itoa(k))
				require.NoError(t, err)
				assert.Equal(t, tc.Ops[i], ops, "inserting %d", k)
				require.NoError(t, tree.Validate())
			}
			assert.Equal(t, tc.RootKey, tree.Root().Key())
			assert.Equal(t, tc.RootRank, tree.Root().Rank())
			assert.Equal(t, tc.KeysOrder, tree.KeysToArray())
		})
	}
}

func TestInsertExistingKey(t *testing.T) {
	tree := buildTree(t, 5, 3, 8)

	_, err := tree.Insert(3, "other")
	require.ErrorIs(t, err, ErrKeyExists)

	v, ok := tree.Search(3)
	require.True(t, ok)
	assert.Equal(t, "3", v)
	assert.Equal(t, 3, tree.Size())
	require.NoError(t, tree.Validate())
}

func TestSearchAfterInsert(t *testing.T) {
	tree := New()
	for i := range 1000 {
		_, err := tree.Insert(i, "num"+strconv.Itoa(i))
		require.NoError(t, err)
	}

	assert.Equal(t, 1000, tree.Size())
	v, ok := tree.Search(500)
	require.True(t, ok)
	assert.Equal(t, "num500", v)

	_, ok = tree.Search(1000)
	assert.False(t, ok)
	require.NoError(t, tree.Validate())
}

func TestMinMax(t *testing.T) {
	tree := New()
	_, err := tree.Insert(1, "1")
	require.NoError(t, err)

	lo, _ := tree.Min()
	hi, _ := tree.Max()
	assert.Equal(t, lo, hi)

	for i := range 100 {
		tree.Insert(i, "num"+strconv.Itoa(i))
	}
	lo, ok := tree.Min()
	require.True(t, ok)
	assert.Equal(t, "num0", lo)
	hi, ok = tree.Max()
	require.True(t, ok)
	assert.Equal(t, "num99", hi)
}

func TestArraysAreOrdered(t *testing.T) {
	tree := New()
	for i := range 100 {
		tree.Insert(i, "num"+strconv.Itoa(i))
	}

	keys := tree.KeysToArray()
	values := tree.ValuesToArray()
	require.Len(t, keys, 100)
	require.Len(t, values, 100)
	for i := range 100 {
		assert.Equal(t, i, keys[i])
		assert.Equal(t, "num"+strconv.Itoa(i), values[i])
	}
}

func TestAllStopsEarly(t *testing.T) {
	tree := buildTree(t, 4, 2, 6, 1, 3, 5, 7)

	var seen []int
	for k, v := range tree.All() {
		assert.Equal(t, strconv.Itoa(k), v)
		seen = append(seen, k)
		if k == 4 {
			break
		}
	}
	assert.Equal(t, []int{1, 2, 3, 4}, seen)
}

func TestSelect(t *testing.T) {
	keys := []int{50, 20, 80, 10, 30, 70, 90, 60}
	tree := buildTree(t, keys...)
	sorted := slices.Sorted(slices.Values(keys))

	for i, want := range sorted {
		k, v, ok := tree.Select(i)
		require.True(t, ok)
		assert.Equal(t, want, k)
		assert.Equal(t, strconv.Itoa(want), v)
	}

	_, _, ok := tree.Select(-1)
	assert.False(t, ok)
	_, _, ok = tree.Select(len(keys))
	assert.False(t, ok)
}

func TestRootAccessor(t *testing.T) {
	tree := buildTree(t, 2, 1, 3)

	root := tree.Root()
	require.True(t, root.IsReal())
	assert.Nil(t, root.Parent())
	assert.Equal(t, 2, root.Key())
	assert.Equal(t, "2", root.Value())
	assert.Equal(t, 3, root.Size())
	assert.Equal(t, root, root.Left().Parent())
	assert.Equal(t, 1, root.Left().Key())
	assert.Equal(t, 3, root.Right().Key())
	assert.False(t, root.Left().Left().IsReal())
	assert.Equal(t, -1, root.Left().Left().Rank())
	assert.Equal(t, 0, root.Left().Left().Size())
}

// TestRandomOperations drives the tree with a seeded mix of inserts and
// deletes and compares it with a plain map after every step.
func TestRandomOperations(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	tree := New()
	model := map[int]string{}

	for step := range 5000 {
		k := rng.IntN(500)
		if rng.IntN(3) == 0 {
			_, err := tree.Delete(k)
			if _, ok := model[k]; ok {
				require.NoError(t, err, "step %d delete %d", step, k)
				delete(model, k)
			} else {
				require.ErrorIs(t, err, ErrKeyNotFound)
			}
		} else {
			v := strconv.Itoa(step)
			_, err := tree.Insert(k, v)
			if _, ok := model[k]; ok {
				require.ErrorIs(t, err, ErrKeyExists)
			} else {
				require.NoError(t, err, "step %d insert %d", step, k)
				model[k] = v
			}
		}
		require.NoError(t, tree.Validate(), "step %d", step)
		require.Equal(t, len(model), tree.Size())
	}

	keys := tree.KeysToArray()
	values := tree.ValuesToArray()
	assert.True(t, slices.IsSorted(keys))
	for i, k := range keys {
		assert.Equal(t, model[k], values[i])
		got, ok := tree.Search(k)
		require.True(t, ok)
		assert.Equal(t, model[k], got)
	}
	if len(keys) > 0 {
		lo, _ := tree.Min()
		hi, _ := tree.Max()
		assert.Equal(t, model[keys[0]], lo)
		assert.Equal(t, model[keys[len(keys)-1]], hi)
	}
}

func TestErrorsAreDistinct(t *testing.T) {
	assert.False(t, errors.Is(ErrKeyExists, ErrKeyNotFound))
	assert.False(t, errors.Is(ErrKeyNotFound, ErrKeyExists))
}
