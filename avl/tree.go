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

// Tree is an ordered map of int keys to string values. Use New to create one.
type Tree struct {
	root *Node
	min  *Node
	max  *Node
}

func New() *Tree {
	return &Tree{root: sentinel}
}

// Empty reports whether the tree holds no entries.
func (t *Tree) Empty() bool {
	return !t.root.IsReal()
}

// Size returns the number of entries in O(1).
func (t *Tree) Size() int {
	return t.root.size
}

// Root exposes the node structure for callers that want to walk it. An
// empty tree returns the empty marker, whose IsReal is false.
func (t *Tree) Root() *Node {
	return t.root
}

// Search returns the value stored under key.
func (t *Tree) Search(key int) (string, bool) {
	n := t.root
	for n.IsReal() {
		switch {
		case key == n.key:
			return n.value, true
		case key < n.key:
			n = n.left
		default:
			n = n.right
		}
	}
	return "", false
}

// Min returns the value of the smallest key in O(1).
func (t *Tree) Min() (string, bool) {
	if t.min == nil {
		return "", false
	}
	return t.min.value, true
}

// Max returns the value of the largest key in O(1).
func (t *Tree) Max() (string, bool) {
	if t.max == nil {
		return "", false
	}
	return t.max.value, true
}

// position returns the node holding key or, when key is absent, the node
// that would become its parent. The tree must not be empty.
func (t *Tree) position(key int) *Node {
	n := t.root
	var last *Node
	for n.IsReal() {
		last = n
		switch {
		case key == n.key:
			return n
		case key < n.key:
			n = n.left
		default:
			n = n.right
		}
	}
	return last
}

// lookup returns the node holding key, or nil.
func (t *Tree) lookup(key int) *Node {
	if t.Empty() {
		return nil
	}
	if n := t.position(key); n.key == key {
		return n
	}
	return nil
}

// replaceChild puts repl where old hangs below p. A nil p means old is the
// root.
func (t *Tree) replaceChild(p, old, repl *Node) {
	switch {
	case p == nil:
		t.root = repl
	case p.left == old:
		p.left = repl
	default:
		p.right = repl
	}
	repl.setParent(p)
}

func (t *Tree) refreshExtremes() {
	if t.Empty() {
		t.min, t.max = nil, nil
		return
	}
	t.min = minNode(t.root)
	t.max = maxNode(t.root)
}

// clear drops every node without touching them. It is used on trees whose
// nodes were handed over to another tree.
func (t *Tree) clear() {
	t.root = sentinel
	t.min, t.max = nil, nil
}
