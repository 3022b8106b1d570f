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

const sentinelRank = -1

// Node is a single entry of the tree. Empty child slots hold the shared
// sentinel node, so a real node never has nil children.
type Node struct {
	key    int
	value  string
	rank   int // AVL height, -1 on the sentinel
	size   int // real nodes in this subtree, including this one
	left   *Node
	right  *Node
	parent *Node // nil for a root
	linked bool  // set while the node belongs to a tree
}

// sentinel marks every empty subtree. It is never written to.
var sentinel = &Node{rank: sentinelRank}

// NewNode returns a detached node holding key and value. Only detached
// nodes are accepted as pivots by Tree.Join.
func NewNode(key int, value string) *Node {
	return &Node{
		key:   key,
		value: value,
		size:  1,
		left:  sentinel,
		right: sentinel,
	}
}

func (n *Node) Key() int { return n.key }
func (n *Node) Value() string { return n.value }
func (n *Node) Rank() int { return n.rank }
func (n *Node) Size() int { return n.size }
func (n *Node) Left() *Node { return n.left }
func (n *Node) Right() *Node { return n.right }

// Parent returns nil for a root and for the sentinel.
func (n *Node) Parent() *Node { return n.parent }

// IsReal reports whether n holds an entry, i.e. is not the empty marker.
func (n *Node) IsReal() bool {
	return n != nil && n.rank != sentinelRank
}

func (n *Node) setParent(p *Node) {
	if n.IsReal() {
		n.parent = p
	}
}

func (n *Node) setLeft(c *Node) {
	n.left = c
	c.setParent(n)
}

func (n *Node) setRight(c *Node) {
	n.right = c
	c.setParent(n)
}

func (n *Node) promote() { n.rank++ }
func (n *Node) demote() { n.rank-- }
func (n *Node) doubleDemote() { n.rank -= 2 }

func (n *Node) updateSize() {
	n.size = 1 + n.left.size + n.right.size
}

// reset turns n back into a detached leaf.
func (n *Node) reset() {
	n.left = sentinel
	n.right = sentinel
	n.parent = nil
	n.rank = 0
	n.size = 1
}

func leftDiff(n *Node) int { return n.rank - n.left.rank }
func rightDiff(n *Node) int { return n.rank - n.right.rank }

// balanced reports whether the rank differences of a node are legal.
func balanced(dl, dr int) bool {
	return (dl == 1 && dr == 1) || (dl == 1 && dr == 2) || (dl == 2 && dr == 1)
}

func minNode(n *Node) *Node {
	for n.left.IsReal() {
		n = n.left
	}
	return n
}

func maxNode(n *Node) *Node {
	for n.right.IsReal() {
		n = n.right
	}
	return n
}

// successor returns the node holding the next larger key, or nil when n is
// the maximum.
func successor(n *Node) *Node {
	if n.right.IsReal() {
		return minNode(n.right)
	}
	p := n.parent
	for p != nil && n == p.right {
		n = p
		p = n.parent
	}
	return p
}

// addSize adds delta to the size of n and every ancestor.
func addSize(n *Node, delta int) {
	for ; n != nil; n = n.parent {
		n.size += delta
	}
}

// resize recomputes sizes from children for n and every ancestor.
func resize(n *Node) {
	for ; n != nil; n = n.parent {
		n.updateSize()
	}
}
