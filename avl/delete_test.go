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
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteRebalanceCases(t *testing.T) {
	testCases := []struct {
		Name     string
		Keys     []int
		Delete   int
		Ops      int
		RootKey  int
		RootRank int
		Order    []int
	}{
		{
			Name:     "Leaf without rebalancing",
			Keys:     []int{2, 1, 3},
			Delete:   1,
			Ops:      0,
			RootKey:  2,
			RootRank: 1,
			Order:    []int{2, 3},
		},
		{
			Name:     "Demotions climb to the root",
			Keys:     []int{2, 1, 3, 4},
			Delete:   4,
			Ops:      2,
			RootKey:  2,
			RootRank: 1,
			Order:    []int{1, 2, 3},
		},
		{
			Name:     "Single rotation with balanced son",
			Keys:     []int{2, 1, 4, 3, 5},
			Delete:   1,
			Ops:      3,
			RootKey:  4,
			RootRank: 2,
			Order:    []int{2, 3, 4, 5},
		},
		{
			Name:     "Single rotation with double demote",
			Keys:     []int{2, 1, 3, 4},
			Delete:   1,
			Ops:      2,
			RootKey:  3,
			RootRank: 1,
			Order:    []int{2, 3, 4},
		},
		{
			Name:     "Double rotation",
			Keys:     []int{2, 1, 4, 3},
			Delete:   1,
			Ops:      5,
			RootKey:  3,
			RootRank: 1,
			Order:    []int{2, 3, 4},
		},
		{
			Name:     "Mirrored single rotation with balanced son",
			Keys:     []int{4, 5, 2, 1, 3},
			Delete:   5,
			Ops:      3,
			RootKey:  2,
			RootRank: 2,
			Order:    []int{1, 2, 3, 4},
		},
		{
			Name:     "Mirrored single rotation with double demote",
			Keys:     []int{3, 4, 2, 1},
			Delete:   4,
			Ops:      2,
			RootKey:  2,
			RootRank: 1,
			Order:    []int{1, 2, 3},
		},
		{
			Name:     "Mirrored double rotation",
			Keys:     []int{3, 4, 1, 2},
			Delete:   4,
			Ops:      5,
			RootKey:  2,
			RootRank: 1,
			Order:    []int{1, 2, 3},
		},
		{
			Name:     "Unary root",
			Keys:     []int{1, 2},
			Delete:   1,
			Ops:      0,
			RootKey:  2,
			RootRank: 0,
			Order:    []int{2},
		},
		{
			Name:     "Binary root replaced by its successor",
			Keys:     []int{2, 1, 3},
			Delete:   2,
			Ops:      0,
			RootKey:  3,
			RootRank: 1,
			Order:    []int{1, 3},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tree := buildTree(t, tc.Keys...)

			ops, err := tree.Delete(tc.Delete)
			require.NoError(t, err)
			assert.Equal(t, tc.Ops, ops)
			require.NoError(t, tree.Validate())

			_, ok := tree.Search(tc.Delete)
			assert.False(t, ok)
			assert.Equal(t, tc.RootKey, tree.Root().Key())
			assert.Equal(t, tc.RootRank, tree.Root().Rank())
			assert.Equal(t, tc.Order, tree.KeysToArray())
		})
	}
}

func TestDeleteMissingKey(t *testing.T) {
	tree := New()
	_, err := tree.Delete(1)
	require.ErrorIs(t, err, ErrKeyNotFound)

	for i := range 100 {
		tree.Insert(i, "num"+strconv.Itoa(i))
	}
	_, err = tree.Delete(100)
	require.ErrorIs(t, err, ErrKeyNotFound)
	assert.Equal(t, 100, tree.Size())
	require.NoError(t, tree.Validate())
}

func TestDeleteLastNodeEmptiesTree(t *testing.T) {
	tree := buildTree(t, 42)

	ops, err := tree.Delete(42)
	require.NoError(t, err)
	assert.Equal(t, 0, ops)
	assert.True(t, tree.Empty())
	_, ok := tree.Min()
	assert.False(t, ok)
	require.NoError(t, tree.Validate())
}

func TestDeleteKeepsSizes(t *testing.T) {
	tree := New()
	for i := range 100 {
		tree.Insert(i, "num"+strconv.Itoa(i))
	}
	for i := range 50 {
		_, err := tree.Delete(i)
		require.NoError(t, err)
	}
	for i := range 25 {
		_, err := tree.Insert(i, "num"+strconv.Itoa(i))
		require.NoError(t, err)
	}

	assert.Equal(t, 75, tree.Size())
	require.NoError(t, tree.Validate())
}

func TestDeleteRefreshesExtremes(t *testing.T) {
	tree := buildTree(t, 10, 5, 15, 3, 7, 20)

	_, err := tree.Delete(3)
	require.NoError(t, err)
	lo, _ := tree.Min()
	assert.Equal(t, "5", lo)

	_, err = tree.Delete(20)
	require.NoError(t, err)
	hi, _ := tree.Max()
	assert.Equal(t, "15", hi)
	require.NoError(t, tree.Validate())
}

// TestRemoveScenario replays the fifteen-key removal sequence and checks the
// tree after every deletion.
func TestRemoveScenario(t *testing.T) {
	tree := New()
	require.True(t, tree.Empty())

	for _, k := range []int{16, 24, 36, 19, 44, 28, 61, 74, 83, 64, 52, 65, 86, 93, 88} {
		_, err := tree.Insert(k, strconv.Itoa(k))
		require.NoError(t, err)
	}
	lo, _ := tree.Min()
	hi, _ := tree.Max()
	assert.Equal(t, "16", lo)
	assert.Equal(t, "93", hi)
	require.NoError(t, tree.Validate())

	for _, k := range []int{88, 19, 16, 28, 24, 36, 52, 93, 86, 83} {
		_, err := tree.Delete(k)
		require.NoError(t, err, "delete %d", k)
		require.NoError(t, tree.Validate(), "after deleting %d", k)
		_, ok := tree.Search(k)
		assert.False(t, ok, "key %d still found", k)
	}

	assert.Equal(t, []int{44, 61, 64, 65, 74}, tree.KeysToArray())
}

func TestDeletedNodeIsDetached(t *testing.T) {
	tree := buildTree(t, 4, 2, 6, 1, 3, 5, 7)
	root := tree.Root()

	_, err := tree.Delete(root.Key())
	require.NoError(t, err)
	assert.Nil(t, root.Parent())
	assert.False(t, root.Left().IsReal())
	assert.False(t, root.Right().IsReal())
	assert.Equal(t, 1, root.Size())
	require.NoError(t, tree.Validate())
}
