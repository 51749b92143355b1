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

import (
	"fmt"
)

// Check walks the whole tree and verifies that values are in order, that
// every cached height is 1 + max(height(left), height(right)) and that no
// node is out of balance. The first violation found is returned.
//
// Rotations may leave a value equal to its parent in the left subtree, so
// ordering is checked as non-decreasing in-order rather than strictly.
func (tree *Tree[T]) Check() error {
	_, err := tree.check(tree.root, nil, nil)
	return err
}

// check returns the computed height of the subtree rooted at n. lo and hi,
// when set, bound every value in the subtree.
func (tree *Tree[T]) check(n *node[T], lo, hi *T) (int, error) {
	if n == nil {
		return -1, nil
	}
	if lo != nil && tree.compare(n.value, *lo) < 0 {
		return 0, fmt.Errorf("%w: %v below lower bound %v", ErrOrder, n.value, *lo)
	}
	if hi != nil && tree.compare(n.value, *hi) > 0 {
		return 0, fmt.Errorf("%w: %v above upper bound %v", ErrOrder, n.value, *hi)
	}

	lh, err := tree.check(n.left, lo, &n.value)
	if err != nil {
		return 0, err
	}
	rh, err := tree.check(n.right, &n.value, hi)
	if err != nil {
		return 0, err
	}

	h := max(lh, rh) + 1
	if n.height != h {
		return 0, fmt.Errorf("%w: node %v caches %d, computed %d", ErrBadHeight, n.value, n.height, h)
	}
	if d := lh - rh; d > 1 || d < -1 {
		return 0, fmt.Errorf("%w: node %v has balance %+d", ErrUnbalanced, n.value, d)
	}
	return h, nil
}
