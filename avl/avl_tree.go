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
	"cmp"
)

// Tree is a height-balanced binary search tree. Values equal to an existing
// value are kept and routed to the right subtree.
//
// A Tree is not safe for concurrent use.
type Tree[T any] struct {
	root    *node[T]
	compare func(a, b T) int
	size    int
}

// New returns an empty tree ordered by cmp.Compare.
func New[T cmp.Ordered]() *Tree[T] {
	return NewFunc[T](cmp.Compare[T])
}

// NewFunc returns an empty tree ordered by compare, which must return a
// negative number, zero or a positive number when a is less than, equal to
// or greater than b.
func NewFunc[T any](compare func(a, b T) int) *Tree[T] {
	return &Tree[T]{compare: compare}
}

func (tree *Tree[T]) rotateLeft(n *node[T]) *node[T] {
	if n == nil || n.right == nil {
		return n
	}

	pivot := n.right
	n.right = pivot.left
	pivot.left = n

	// n is now below pivot, so its height must be settled first
	n.updateHeight()
	pivot.updateHeight()

	return pivot
}

func (tree *Tree[T]) rotateRight(n *node[T]) *node[T] {
	if n == nil || n.left == nil {
		return n
	}

	pivot := n.left
	n.left = pivot.right
	pivot.right = n

	n.updateHeight()
	pivot.updateHeight()

	return pivot
}

// Insert adds value to the tree. Duplicates are accepted.
func (tree *Tree[T]) Insert(value T) {
	tree.root = tree.insertRecursive(tree.root, value)
	tree.size++
}

func (tree *Tree[T]) insertRecursive(n *node[T], value T) *node[T] {
	if n == nil {
		return newNode(value)
	}

	if tree.compare(value, n.value) < 0 {
		n.left = tree.insertRecursive(n.left, value)
	} else {
		n.right = tree.insertRecursive(n.right, value)
	}

	n.updateHeight()
	return tree.settleInsert(n, value)
}

// settleInsert restores balance at n after value was inserted below it.
// The inserted value tells which grandchild grew, so the rotation case
// follows from comparing it with the heavy child. A value equal to the
// child was routed to the child's right, like any other insert.
func (tree *Tree[T]) settleInsert(n *node[T], value T) *node[T] {
	bf := balance(n)

	switch {
	case bf > 1 && tree.compare(value, n.left.value) < 0:
		// left-left
		return tree.rotateRight(n)
	case bf < -1 && tree.compare(value, n.right.value) >= 0:
		// right-right
		return tree.rotateLeft(n)
	case bf > 1:
		// left-right
		n.left = tree.rotateLeft(n.left)
		return tree.rotateRight(n)
	case bf < -1:
		// right-left
		n.right = tree.rotateRight(n.right)
		return tree.rotateLeft(n)
	}

	return n
}

// Delete removes one occurrence of value. It reports whether a value was
// removed; deleting a value that is not present leaves the tree untouched.
// Deleting from an empty tree returns ErrEmptyTree.
func (tree *Tree[T]) Delete(value T) (bool, error) {
	if tree.IsEmpty() {
		return false, ErrEmptyTree
	}

	removed := false
	tree.root = tree.deleteRecursive(tree.root, value, &removed)
	if removed {
		tree.size--
	}
	return removed, nil
}

func (tree *Tree[T]) deleteRecursive(n *node[T], value T, removed *bool) *node[T] {
	if n == nil {
		return nil // not found
	}

	c := tree.compare(value, n.value)
	switch {
	case c < 0:
		n.left = tree.deleteRecursive(n.left, value, removed)
	case c > 0:
		n.right = tree.deleteRecursive(n.right, value, removed)
	default:
		if n.left == nil && n.right == nil {
			*removed = true
			return nil
		}
		if n.right == nil {
			*removed = true
			return n.left
		}
		if n.left == nil {
			*removed = true
			return n.right
		}

		// Two children: take over the predecessor's value and remove the
		// predecessor, which has at most a left child.
		pred := predecessor(n.left)
		n.value = pred.value
		n.left = tree.deleteRecursive(n.left, pred.value, removed)
	}

	n.updateHeight()
	return tree.settleDelete(n)
}

// predecessor returns the rightmost node of the subtree rooted at n.
func predecessor[T any](n *node[T]) *node[T] {
	for n.right != nil {
		n = n.right
	}
	return n
}

// settleDelete restores balance at n after a removal below it. The heavy
// child's own balance decides between a single and a double rotation.
func (tree *Tree[T]) settleDelete(n *node[T]) *node[T] {
	bf := balance(n)

	if bf > 1 {
		if balance(n.left) < 0 {
			n.left = tree.rotateLeft(n.left)
		}
		return tree.rotateRight(n)
	}

	if bf < -1 {
		if balance(n.right) > 0 {
			n.right = tree.rotateRight(n.right)
		}
		return tree.rotateLeft(n)
	}

	return n
}

// Traverse calls visit for every value in ascending order. It returns
// ErrEmptyTree without calling visit when the tree is empty.
func (tree *Tree[T]) Traverse(visit func(T)) error {
	if tree.IsEmpty() {
		return ErrEmptyTree
	}
	inOrder(tree.root, visit)
	return nil
}

func inOrder[T any](n *node[T], visit func(T)) {
	if n == nil {
		return
	}
	inOrder(n.left, visit)
	visit(n.value)
	inOrder(n.right, visit)
}

// Values returns the contents of the tree in ascending order.
func (tree *Tree[T]) Values() []T {
	values := make([]T, 0, tree.size)
	inOrder(tree.root, func(v T) {
		values = append(values, v)
	})
	return values
}

// Contains reports whether a value comparing equal to value is stored.
func (tree *Tree[T]) Contains(value T) bool {
	n := tree.root
	for n != nil {
		c := tree.compare(value, n.value)
		switch {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			return true
		}
	}
	return false
}

// Min returns the smallest value in the tree.
func (tree *Tree[T]) Min() (T, error) {
	var zero T
	if tree.IsEmpty() {
		return zero, ErrEmptyTree
	}
	n := tree.root
	for n.left != nil {
		n = n.left
	}
	return n.value, nil
}

// Max returns the largest value in the tree.
func (tree *Tree[T]) Max() (T, error) {
	var zero T
	if tree.IsEmpty() {
		return zero, ErrEmptyTree
	}
	return predecessor(tree.root).value, nil
}

// Len returns the number of stored values, duplicates included.
func (tree *Tree[T]) Len() int {
	return tree.size
}

// Height returns the height of the root, -1 for an empty tree.
func (tree *Tree[T]) Height() int {
	return height(tree.root)
}

func (tree *Tree[T]) IsEmpty() bool {
	return tree.root == nil
}
