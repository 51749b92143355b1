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

// node is a single element of the tree. Each node is owned by its parent;
// the root is owned by the Tree.
type node[T any] struct {
	value  T
	height int // 0 for a leaf, see height()
	left   *node[T]
	right  *node[T]
}

func newNode[T any](value T) *node[T] {
	return &node[T]{value: value}
}

// height returns the cached height of n, or -1 for an absent subtree.
func height[T any](n *node[T]) int {
	if n == nil {
		return -1
	}
	return n.height
}

func (n *node[T]) updateHeight() {
	n.height = max(height(n.left), height(n.right)) + 1
}

// balance is height(left) - height(right). An absent node is balanced.
func balance[T any](n *node[T]) int {
	if n == nil {
		return 0
	}
	return height(n.left) - height(n.right)
}
