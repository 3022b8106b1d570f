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

// rotateRight lifts pivot, the left child of node, above node.
func (t *Tree) rotateRight(pivot, node *Node) {
	// Perform the rotation
	node.setLeft(pivot.right)
	pivot.right = node
	t.relink(pivot, node)
}

// rotateLeft lifts pivot, the right child of node, above node.
func (t *Tree) rotateLeft(pivot, node *Node) {
	// Perform the rotation
	node.setRight(pivot.left)
	pivot.left = node
	t.relink(pivot, node)
}

// relink finishes a rotation: pivot takes node's place below the old
// grandparent and node hangs below pivot.
func (t *Tree) relink(pivot, node *Node) {
	grand := node.parent
	node.parent = pivot
	t.replaceChild(grand, node, pivot)

	// Update sizes, bottom first
	node.updateSize()
	pivot.updateSize()
}

// rotateLeftRight fixes a zig-zag where the heavy side is the right child
// of node's left child.
func (t *Tree) rotateLeftRight(child, node *Node) {
	t.rotateLeft(child.right, child)
	t.rotateRight(node.left, node)
}

// rotateRightLeft is the mirror of rotateLeftRight.
func (t *Tree) rotateRightLeft(child, node *Node) {
	t.rotateRight(child.left, child)
	t.rotateLeft(node.right, node)
}
