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

// Split cuts t around key and returns two trees: one holding every key
// smaller than key and one holding every key larger. The entry for key
// itself is dropped and t is left empty. ErrKeyNotFound is returned, and
// nothing changes, when key is absent.
func (t *Tree) Split(key int) (*Tree, *Tree, error) {
	x := t.lookup(key)
	if x == nil {
		return nil, nil, ErrKeyNotFound
	}

	low, high := New(), New()
	low.root = x.left
	low.root.setParent(nil)
	high.root = x.right
	high.root.setParent(nil)

	// Climb from x to the root. Every ancestor becomes the pivot that
	// joins its off-path subtree onto the half on the same side.
	off := New()
	child := x
	for p := x.parent; p != nil; {
		next := p.parent
		dst := high
		off.root = p.right
		if p.right == child {
			dst = low
			off.root = p.left
		}
		off.root.setParent(nil)
		dst.join(p, off)
		child, p = p, next
	}

	// joined subtrees carry no usable extremes
	low.refreshExtremes()
	high.refreshExtremes()

	t.clear()
	x.reset()
	x.linked = false
	return low, high, nil
}
