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

// Insert stores value under key and returns the number of rebalancing
// operations it took. A promotion or a single rotation counts as one
// operation per node touched; a double rotation counts as five.
// ErrKeyExists is returned, and nothing changes, when key is present.
func (t *Tree) Insert(key int, value string) (int, error) {
	if t.Empty() {
		n := NewNode(key, value)
		n.linked = true
		t.root = n
		t.min, t.max = n, n
		return 0, nil
	}

	parent := t.position(key)
	if parent.key == key {
		return 0, ErrKeyExists
	}

	n := NewNode(key, value)
	n.linked = true
	if key < parent.key {
		parent.setLeft(n)
	} else {
		parent.setRight(n)
	}
	addSize(parent, 1)
	t.trackExtremes(n)

	if parent.rank != 0 {
		// parent already had a child, its rank does not change
		return 0, nil
	}
	parent.promote()
	return 1 + t.rebalanceAfterInsert(parent.parent), nil
}

func (t *Tree) trackExtremes(n *Node) {
	if t.min == nil || n.key < t.min.key {
		t.min = n
	}
	if t.max == nil || n.key > t.max.key {
		t.max = n
	}
}

// rebalanceAfterInsert walks up from n, whose child just grew by one rank,
// and restores the rank rule. It returns the number of operations done.
func (t *Tree) rebalanceAfterInsert(n *Node) int {
	ops := 0
	for n != nil {
		dl, dr := leftDiff(n), rightDiff(n)
		if balanced(dl, dr) {
			return ops
		}

		// the child on the grown side caught up with n
		if dl+dr == 1 {
			n.promote()
			ops++
			n = n.parent
			continue
		}

		if dl == 0 {
			child := n.left
			switch {
			case leftDiff(child) == 1 && rightDiff(child) == 1:
				// only a join pivot with equal-rank children gets here
				t.rotateRight(child, n)
				child.promote()
				ops += 2
				n = child.parent
				continue
			case leftDiff(child) == 1:
				t.rotateRight(child, n)
				n.demote()
				return ops + 2
			default:
				t.rotateLeftRight(child, n)
				n.demote()
				child.demote()
				n.parent.promote()
				return ops + 5
			}
		}

		child := n.right
		switch {
		case leftDiff(child) == 1 && rightDiff(child) == 1:
			t.rotateLeft(child, n)
			child.promote()
			ops += 2
			n = child.parent
		case rightDiff(child) == 1:
			t.rotateLeft(child, n)
			n.demote()
			return ops + 2
		default:
			t.rotateRightLeft(child, n)
			n.demote()
			child.demote()
			n.parent.promote()
			return ops + 5
		}
	}
	return ops
}
