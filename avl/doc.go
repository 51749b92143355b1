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

// Package avl provides a height-balanced (AVL) binary search tree.
//
// Every node caches its height (0 for a leaf, -1 stands for an absent
// subtree) and the tree keeps |height(left) - height(right)| <= 1 at every
// node by rotating on the way back up from each insert and delete.
//
//	tree := avl.New[int]()
//	for _, v := range []int{30, 10, 20} {
//		tree.Insert(v)
//	}
//	_ = tree.Traverse(func(v int) { fmt.Println(v) }) // 10 20 30
//
// Values comparing equal are all kept. Deleting a node with two children
// replaces its value with the in-order predecessor (the largest value of
// its left subtree) and removes the predecessor instead.
//
// Delete, Traverse, Min, Max and Print return ErrEmptyTree on an empty tree.
// A Tree must not be used from several goroutines without external locking.
package avl
