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

import "iter"

// KeysToArray returns every key in ascending order.
func (t *Tree) KeysToArray() []int {
	keys := make([]int, 0, t.Size())
	t.inOrder(func(n *Node) bool {
		keys = append(keys, n.key)
		return true
	})
	return keys
}

// ValuesToArray returns every value, ordered by ascending key.
func (t *Tree) ValuesToArray() []string {
	values := make([]string, 0, t.Size())
	t.inOrder(func(n *Node) bool {
		values = append(values, n.value)
		return true
	})
	return values
}

// All yields every entry in ascending key order.
func (t *Tree) All() iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		t.inOrder(func(n *Node) bool {
			return yield(n.key, n.value)
		})
	}
}

// inOrder visits real nodes in key order until visit returns false. It
// keeps its own stack so deep trees cannot overflow the goroutine stack.
func (t *Tree) inOrder(visit func(*Node) bool) {
	stack := make([]*Node, 0, t.root.rank+1)
	n := t.root
	for n.IsReal() || len(stack) > 0 {
		for n.IsReal() {
			stack = append(stack, n)
			n = n.left
		}
		n = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !visit(n) {
			return
		}
		n = n.right
	}
}

// Select returns the entry of rank i, counting from 0 at the smallest key.
func (t *Tree) Select(i int) (int, string, bool) {
	if i < 0 || i >= t.Size() {
		return 0, "", false
	}
	n := t.root
	for {
		switch left := n.left.size; {
		case i < left:
			n = n.left
		case i == left:
			return n.key, n.value, true
		default:
			i -= left + 1
			n = n.right
		}
	}
}
