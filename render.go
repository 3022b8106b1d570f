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

	"github.com/cybrota/ranktree/avl"
	"github.com/xlab/treeprint"
)

func nodeLabel(n *avl.Node) string {
	return fmt.Sprintf("%d=%s r%d s%d", n.Key(), n.Value(), n.Rank(), n.Size())
}

// renderTree draws the tree sideways, one branch per real child. Trees
// larger than maxNodes get a one-line summary instead.
func renderTree(name string, tree *avl.Tree, maxNodes int) string {
	if tree.Empty() {
		return fmt.Sprintf("%s (empty)\n", name)
	}
	if tree.Size() > maxNodes {
		root := tree.Root()
		return fmt.Sprintf("%s: %d entries, root %s (larger than %d nodes, not drawn)\n",
			name, tree.Size(), nodeLabel(root), maxNodes)
	}

	out := treeprint.NewWithRoot(name)
	addNode(out, "root", tree.Root())
	return out.String()
}

func addNode(branch treeprint.Tree, side string, n *avl.Node) {
	if !n.Left().IsReal() && !n.Right().IsReal() {
		branch.AddMetaNode(side, nodeLabel(n))
		return
	}
	sub := branch.AddMetaBranch(side, nodeLabel(n))
	if n.Left().IsReal() {
		addNode(sub, "L", n.Left())
	}
	if n.Right().IsReal() {
		addNode(sub, "R", n.Right())
	}
}
