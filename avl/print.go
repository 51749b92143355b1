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
	"io"
)

type branch int

const (
	rootBranch branch = iota
	leftBranch
	rightBranch
)

// Print writes an ASCII drawing of the tree to w, rotated a quarter turn:
// the right subtree is drawn above a node and the left subtree below it.
// Each node is shown with its cached height.
func (tree *Tree[T]) Print(w io.Writer) error {
	if tree.IsEmpty() {
		return ErrEmptyTree
	}
	return printNode(w, tree.root, "", rootBranch)
}

func printNode[T any](w io.Writer, n *node[T], prefix string, br branch) error {
	if n.right != nil {
		pad := "       "
		if br == leftBranch {
			pad = "|      "
		}
		if err := printNode(w, n.right, prefix+pad, rightBranch); err != nil {
			return err
		}
	}

	var edge string
	switch br {
	case rootBranch:
		edge = "|------+ "
	case leftBranch:
		edge = "\\------+ "
	case rightBranch:
		edge = "/------+ "
	}
	if _, err := fmt.Fprintf(w, "%s%s%v (h=%d)\n", prefix, edge, n.value, n.height); err != nil {
		return err
	}

	if n.left != nil {
		pad := "       "
		if br == rightBranch {
			pad = "|      "
		}
		if err := printNode(w, n.left, prefix+pad, leftBranch); err != nil {
			return err
		}
	}
	return nil
}
