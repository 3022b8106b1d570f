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

// Delete removes key and returns the number of rebalancing operations it
// took. ErrKeyNotFound is returned, and nothing changes, when key is absent.
func (t *Tree) Delete(key int) (int, error) {
	x := t.lookup(key)
	if x == nil {
		return 0, ErrKeyNotFound
	}

	var from *Node // lowest node whose ranks may now be off
	switch {
	case x.rank == 0:
		if x.parent == nil {
			t.clear()
			x.reset()
			x.linked = false
			return 0, nil
		}
		from = x.parent
		t.replaceChild(x.parent, x, sentinel)
		addSize(from, -1)
	case x.left.IsReal() && x.right.IsReal():
		succ := successor(x)
		from = succ.parent
		if from == x {
			from = succ
		}
		t.spliceOut(succ)
		t.replaceWith(x, succ)
	default:
		from = x.parent
		t.spliceOut(x)
	}

	ops := t.rebalanceAfterDelete(from)

	if x == t.min {
		t.min = minNode(t.root)
	}
	if x == t.max {
		t.max = maxNode(t.root)
	}
	x.reset()
	x.linked = false
	return ops, nil
}

// spliceOut unlinks n, which has at most one real child, by hanging that
// child (or the empty marker) in its place.
func (t *Tree) spliceOut(n *Node) {
	child := n.right
	if n.left.IsReal() {
		child = n.left
	}
	p := n.parent
	t.replaceChild(p, n, child)
	addSize(p, -1)
}

// replaceWith puts repl into the structural position of x: same parent,
// same children, same rank and size. repl must already be unlinked.
func (t *Tree) replaceWith(x, repl *Node) {
	repl.setLeft(x.left)
	repl.setRight(x.right)
	repl.rank = x.rank
	repl.size = x.size
	t.replaceChild(x.parent, x, repl)
}

// rebalanceAfterDelete walks up from n, one of whose subtrees just lost a
// rank, and restores the rank rule. It returns the number of operations.
func (t *Tree) rebalanceAfterDelete(n *Node) int {
	ops := 0
	for n != nil {
		dl, dr := leftDiff(n), rightDiff(n)
		if balanced(dl, dr) {
			return ops
		}

		if dl == 2 && dr == 2 {
			n.demote()
			ops++
			n = n.parent
			continue
		}

		if dl == 3 {
			son := n.right
			sdl, sdr := leftDiff(son), rightDiff(son)
			switch {
			case sdl == 1 && sdr == 1:
				t.rotateLeft(son, n)
				n.demote()
				son.promote()
				return ops + 3
			case sdl == 2:
				t.rotateLeft(son, n)
				n.doubleDemote()
				ops += 2
				n = son.parent
			default:
				t.rotateRightLeft(son, n)
				n.doubleDemote()
				n.parent.promote()
				son.demote()
				ops += 5
				n = n.parent.parent
			}
			continue
		}

		son := n.left
		sdl, sdr := leftDiff(son), rightDiff(son)
		switch {
		case sdl == 1 && sdr == 1:
			t.rotateRight(son, n)
			n.demote()
			son.promote()
			return ops + 3
		case sdr == 2:
			t.rotateRight(son, n)
			n.doubleDemote()
			ops += 2
			n = son.parent
		default:
			t.rotateLeftRight(son, n)
			n.doubleDemote()
			n.parent.promote()
			son.demote()
			ops += 5
			n = n.parent.parent
		}
	}
	return ops
}
