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
	"strconv"
	"strings"
	"testing"

	"github.com/cybrota/ranktree/avl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderTree(t *testing.T) {
	tree := avl.New()
	assert.Equal(t, "t (empty)\n", renderTree("t", tree, 10))

	for _, k := range []int{2, 1, 3, 4} {
		_, err := tree.Insert(k, strconv.Itoa(k))
		require.NoError(t, err)
	}

	out := renderTree("t", tree, 10)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "t", lines[0])
	assert.Contains(t, lines[1], "[root]")
	assert.Contains(t, lines[1], "2=2 r2 s4")
	assert.Contains(t, lines[2], "[L]")
	assert.Contains(t, lines[2], "1=1 r0 s1")
	assert.Contains(t, lines[3], "[R]")
	assert.Contains(t, lines[3], "3=3 r1 s2")
	assert.Contains(t, lines[4], "[R]")
	assert.Contains(t, lines[4], "4=4 r0 s1")
}

func TestRenderTreeTooLarge(t *testing.T) {
	tree := avl.New()
	for k := range 20 {
		_, err := tree.Insert(k, strconv.Itoa(k))
		require.NoError(t, err)
	}

	out := renderTree("big", tree, 10)
	assert.Equal(t, 1, strings.Count(out, "\n"))
	assert.Contains(t, out, "big: 20 entries")
	assert.Contains(t, out, "not drawn")
}
