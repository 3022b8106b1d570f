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
	"runtime"

	markdown "github.com/MichaelMure/go-term-markdown"
)

func getHelpMessage() string {
	message := fmt.Sprintf(`

 **ranktree %s**

An ordered map from integer keys to string values, kept balanced as an AVL tree with rank and size counters on every node.
Every insert and delete reports how many rebalancing operations it needed.

Built with Go %s

# 1. Commands
* **shell** (default) opens an interactive shell on a workspace of named trees
* **run FILE** executes a command script and stops at the first failing line
* **demo** replays the removal and split walkthroughs
* **bench** measures rebalancing work on random key orders
* **settings** shows the configuration in ~/.ranktree.yaml

# 2. Shell commands
* insert K V, delete K, search K, select I
* min, max, size, keys, values
* print, verify
* split K LOW HIGH, join K V OTHER
* use NAME, trees, seq FROM TO

# 3. Scripts
One command per line. Blank lines and lines starting with # are skipped.

# Please be aware
* Copy to clipboard in the shell on Linux or Unix requires 'xclip' or 'xsel' command to be installed

# License
Licensed under the Apache License, Version 2.0
Copyright © 2025 Naren Yellavula

`, version, runtime.Version())
	result := markdown.Render(message, 80, 3)
	return string(result)
}
