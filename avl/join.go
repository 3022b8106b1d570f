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

// Join merges the pivot x and every entry of other into t. All keys of one
// tree must be smaller than x.Key() and all keys of the other larger; either
// tree may be empty. Afterwards t holds the result and other is empty.
//
// The returned cost is the number of steps taken, which is bounded by the
// rank difference of the two trees plus one.
func (t *Tree) Join(x *Node, other *Tree) (int, error) {
	if !x.IsReal() || x.linked {
		return 0, ErrInvalidPivot
	}
	if other == nil || other == t {
		return 0, ErrSameTree
	}

	low, high := other, t
	if (t.max != nil && t.max.key < x.key) || (other.min != nil && other.min.key > x.key) {
		low, high = t, other
	}
	if (low.max != nil && low.max.key >= x.key) || (high.min != nil && high.min.key <= x.key) {
		return 0, ErrKeyOrder
	}

	lowest, highest := x, x
	if low.min != nil {
		lowest = low.min
	}
	if high.max != nil {
		highest = high.max
	}

	cost := t.join(x, other)
	x.linked = true
	t.min, t.max = lowest, highest
	return cost, nil
}

// join links x and other into t without checking the key ranges and
// without maintaining the cached extremes.
func (t *Tree) join(x *Node, other *Tree) int {
	x.reset()
	defer other.clear()

	switch {
	case t.root.IsReal() && other.root.IsReal():
		if x.key < t.root.key {
			return t.joinAround(other.root, x, t.root)
		}
		return t.joinAround(t.root, x, other.root)
	case t.root.IsReal():
		return t.attachExtreme(x)
	case other.root.IsReal():
		t.root = other.root
		return t.attachExtreme(x)
	default:
		t.root = x
		return 1
	}
}

// attachExtreme hangs x below the minimum or the maximum of t, depending on
// which side of the root its key falls.
func (t *Tree) attachExtreme(x *Node) int {
	var parent *Node
	if x.key < t.root.key {
		parent = minNode(t.root)
		parent.setLeft(x)
	} else {
		parent = maxNode(t.root)
		parent.setRight(x)
	}
	// parent has no child on x's side, so it is a leaf or holds one leaf
	parent.rank = 1
	addSize(parent, 1)
	return 1 + t.rebalanceAfterInsert(parent.parent)
}

// joinAround builds the tree low < x < high from two non-empty roots.
func (t *Tree) joinAround(low, x, high *Node) int {
	if abs(low.rank-high.rank) < 2 {
		x.rank = max(low.rank, high.rank) + 1
		x.setLeft(low)
		x.setRight(high)
		x.updateSize()
		t.root = x
		return 1
	}

	steps := 0
	if low.rank < high.rank {
		// descend the left spine of the taller tree to low's rank
		c := high
		b := c.left
		for b.rank > low.rank {
			c = b
			b = b.left
			steps++
		}
		x.setLeft(low)
		x.setRight(b)
		c.setLeft(x)
		x.rank = max(low.rank, b.rank) + 1
		t.root = high
		resize(x)
		return steps + t.rebalanceAfterInsert(c)
	}

	c := low
	b := c.right
	for b.rank > high.rank {
		c = b
		b = b.right
		steps++
	}
	x.setRight(high)
	x.setLeft(b)
	c.setRight(x)
	x.rank = max(high.rank, b.rank) + 1
	t.root = low
	resize(x)
	return steps + t.rebalanceAfterInsert(c)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
