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
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cybrota/ranktree/avl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunScript(t *testing.T) {
	script := `# build two trees and merge them
seq 0 5

insert 10 ten
split 3 low high
use low
join 3 three high
keys
verify
`
	ws := newTestWorkspace(t)
	var out bytes.Buffer
	require.NoError(t, runScript(ws, strings.NewReader(script), &out))

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 7)
	assert.Equal(t, "[0 1 2 3 4 10]", lines[5])
	assert.Equal(t, "low ok (6 entries)", lines[6])
}

func TestRunScriptStopsAtFirstError(t *testing.T) {
	script := "insert 1 one\ndelete 2\ninsert 3 three\n"
	ws := newTestWorkspace(t)
	var out bytes.Buffer

	err := runScript(ws, strings.NewReader(script), &out)
	require.Error(t, err)
	assert.ErrorIs(t, err, avl.ErrKeyNotFound)
	assert.Contains(t, err.Error(), "line 2")
	assert.Equal(t, "[1]", mustExec(t, ws, "keys"))
}

func TestRunScriptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ops.rt")
	require.NoError(t, os.WriteFile(path, []byte("insert 4 four\nsearch 4\n"), 0644))

	var out bytes.Buffer
	require.NoError(t, runScriptFile(newTestWorkspace(t), path, &out))
	assert.Equal(t, "inserted 4 (0 rebalancing ops)\nfour\n", out.String())

	err := runScriptFile(newTestWorkspace(t), filepath.Join(t.TempDir(), "missing.rt"), &out)
	assert.ErrorContains(t, err, "not found")
}

func TestRunLineLoopContinuesAfterErrors(t *testing.T) {
	ws := newTestWorkspace(t)
	var out bytes.Buffer
	input := "insert 1 one\nbogus\ninsert 2 two\nkeys\n"

	require.NoError(t, runLineLoop(ws, strings.NewReader(input), &out))
	assert.Contains(t, out.String(), "unknown command")
	assert.Contains(t, out.String(), "[1 2]")
}
