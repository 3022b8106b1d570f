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

import "fmt"

// bounded is a node queued for checking with the exclusive key bounds its
// ancestors impose.
type bounded struct {
	n            *Node
	lo, hi       int
	hasLo, hasHi bool
}

// Validate checks the structural rules of the tree: key order, rank
// balance, subtree sizes, parent links, the empty marker and the cached
// extremes. It returns nil for a valid tree and an error wrapping
// ErrInvariant otherwise.
func (t *Tree) Validate() error {
	if sentinel.rank != sentinelRank || sentinel.size != 0 || sentinel.parent != nil ||
		sentinel.left != nil || sentinel.right != nil {
		return fmt.Errorf("empty marker was modified: %w", ErrInvariant)
	}
	if t.root == nil {
		return fmt.Errorf("tree has no root, use New: %w", ErrInvariant)
	}

	if t.Empty() {
		if t.min != nil || t.max != nil {
			return fmt.Errorf("empty tree caches extremes: %w", ErrInvariant)
		}
		return nil
	}
	if t.root.parent != nil {
		return fmt.Errorf("root %d has a parent: %w", t.root.key, ErrInvariant)
	}

	stack := []bounded{{n: t.root}}
	for len(stack) > 0 {
		b := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := b.n

		if n.left == nil || n.right == nil {
			return fmt.Errorf("node %d has a nil child: %w", n.key, ErrInvariant)
		}
		if !n.linked {
			return fmt.Errorf("node %d is not marked as linked: %w", n.key, ErrInvariant)
		}
		if n.rank < 0 {
			return fmt.Errorf("node %d has rank %d: %w", n.key, n.rank, ErrInvariant)
		}
		if (b.hasLo && n.key <= b.lo) || (b.hasHi && n.key >= b.hi) {
			return fmt.Errorf("node %d is out of order: %w", n.key, ErrInvariant)
		}
		if dl, dr := leftDiff(n), rightDiff(n); !balanced(dl, dr) {
			return fmt.Errorf("node %d has rank differences (%d, %d): %w", n.key, dl, dr, ErrInvariant)
		}
		if n.size != 1+n.left.size+n.right.size {
			return fmt.Errorf("node %d has size %d, children sum to %d: %w",
				n.key, n.size, n.left.size+n.right.size, ErrInvariant)
		}

		if n.left.IsReal() {
			if n.left.parent != n {
				return fmt.Errorf("left child of %d has a stale parent: %w", n.key, ErrInvariant)
			}
			stack = append(stack, bounded{n: n.left, lo: b.lo, hasLo: b.hasLo, hi: n.key, hasHi: true})
		} else if n.left != sentinel {
			return fmt.Errorf("node %d has a foreign empty left child: %w", n.key, ErrInvariant)
		}
		if n.right.IsReal() {
			if n.right.parent != n {
				return fmt.Errorf("right child of %d has a stale parent: %w", n.key, ErrInvariant)
			}
			stack = append(stack, bounded{n: n.right, lo: n.key, hasLo: true, hi: b.hi, hasHi: b.hasHi})
		} else if n.right != sentinel {
			return fmt.Errorf("node %d has a foreign empty right child: %w", n.key, ErrInvariant)
		}
	}

	if t.min != minNode(t.root) {
		return fmt.Errorf("cached minimum is stale: %w", ErrInvariant)
	}
	if t.max != maxNode(t.root) {
		return fmt.Errorf("cached maximum is stale: %w", ErrInvariant)
	}
	return nil
}
