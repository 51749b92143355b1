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

import "errors"

var (
	// ErrEmptyTree is returned by operations that need at least one value.
	ErrEmptyTree = errors.New("avl: tree is empty")
	// ErrUnbalanced indicates a node whose subtree heights differ by more than one.
	ErrUnbalanced = errors.New("avl: node out of balance")
	// ErrBadHeight indicates a cached height that does not match the children.
	ErrBadHeight = errors.New("avl: cached height mismatch")
	// ErrOrder indicates values out of search-tree order.
	ErrOrder = errors.New("avl: values out of order")
)
