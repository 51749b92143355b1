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
	"errors"
	"math/rand"
	"slices"
	"strings"
	"testing"
)

type AVLTestCase struct {
	Name          string
	InitialKeys   []int
	KeysToInsert  []int
	KeysToDelete  []int
	ExpectedOrder []int // In-order traversal expectation after operations
	ExpectedRoot  int
}

func TestAVLTreeOperations(t *testing.T) {
	testCases := []AVLTestCase{
		{
			Name:          "Right-Right Rotation",
			KeysToInsert:  []int{10, 20, 30},
			ExpectedOrder: []int{10, 20, 30},
			ExpectedRoot:  20,
		},
		{
			Name:          "Left-Left Rotation",
			KeysToInsert:  []int{30, 20, 10},
			ExpectedOrder: []int{10, 20, 30},
			ExpectedRoot:  20,
		},
		{
			Name:          "Left-Right Rotation",
			KeysToInsert:  []int{30, 10, 20},
			ExpectedOrder: []int{10, 20, 30},
			ExpectedRoot:  20,
		},
		{
			Name:          "Right-Left Rotation",
			KeysToInsert:  []int{10, 30, 20},
			ExpectedOrder: []int{10, 20, 30},
			ExpectedRoot:  20,
		},
		{
			Name:          "Delete Root With Two Children",
			InitialKeys:   []int{20, 10, 30, 5, 15, 25, 35},
			KeysToDelete:  []int{20},
			ExpectedOrder: []int{5, 10, 15, 25, 30, 35},
			ExpectedRoot:  15,
		},
		{
			Name:          "Delete Leaf Triggers Rotation",
			InitialKeys:   []int{20, 10, 30, 40},
			KeysToDelete:  []int{10},
			ExpectedOrder: []int{20, 30, 40},
			ExpectedRoot:  30,
		},
		{
			Name:          "Delete Leaf Triggers Double Rotation",
			InitialKeys:   []int{20, 10, 30, 25},
			KeysToDelete:  []int{10},
			ExpectedOrder: []int{20, 25, 30},
			ExpectedRoot:  25,
		},
		{
			Name:          "Delete Splices Single Child",
			InitialKeys:   []int{20, 10, 30, 5},
			KeysToDelete:  []int{10},
			ExpectedOrder: []int{5, 20, 30},
			ExpectedRoot:  20,
		},
		{
			Name:          "Delete Missing Value",
			InitialKeys:   []int{2, 1, 3},
			KeysToDelete:  []int{42},
			ExpectedOrder: []int{1, 2, 3},
			ExpectedRoot:  2,
		},
		{
			Name:          "Duplicates Are Kept",
			InitialKeys:   []int{5, 5, 5, 5},
			KeysToDelete:  []int{5},
			ExpectedOrder: []int{5, 5, 5},
			ExpectedRoot:  5,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tree := New[int]()
			for _, key := range tc.InitialKeys {
				tree.Insert(key)
			}
			for _, key := range tc.KeysToInsert {
				tree.Insert(key)
			}
			for _, key := range tc.KeysToDelete {
				if _, err := tree.Delete(key); err != nil {
					t.Fatalf("Delete(%d) returned %v", key, err)
				}
			}

			if got := traverse(t, tree); !slices.Equal(got, tc.ExpectedOrder) {
				t.Errorf("in-order traversal = %v; want %v", got, tc.ExpectedOrder)
			}
			if tree.root.value != tc.ExpectedRoot {
				t.Errorf("root = %d; want %d", tree.root.value, tc.ExpectedRoot)
			}
			if tree.Len() != len(tc.ExpectedOrder) {
				t.Errorf("Len() = %d; want %d", tree.Len(), len(tc.ExpectedOrder))
			}
			if err := tree.Check(); err != nil {
				t.Errorf("Check() = %v", err)
			}
		})
	}
}

func traverse(t *testing.T, tree *Tree[int]) []int {
	t.Helper()
	var actual []int
	if err := tree.Traverse(func(v int) { actual = append(actual, v) }); err != nil {
		t.Fatalf("Traverse returned %v", err)
	}
	return actual
}

func TestEmptyTree(t *testing.T) {
	tree := New[int]()

	if _, err := tree.Delete(1); !errors.Is(err, ErrEmptyTree) {
		t.Errorf("Delete on empty tree = %v; want ErrEmptyTree", err)
	}

	called := false
	if err := tree.Traverse(func(int) { called = true }); !errors.Is(err, ErrEmptyTree) {
		t.Errorf("Traverse on empty tree = %v; want ErrEmptyTree", err)
	}
	if called {
		t.Errorf("Traverse called visit on an empty tree")
	}

	if _, err := tree.Min(); !errors.Is(err, ErrEmptyTree) {
		t.Errorf("Min on empty tree = %v; want ErrEmptyTree", err)
	}
	if _, err := tree.Max(); !errors.Is(err, ErrEmptyTree) {
		t.Errorf("Max on empty tree = %v; want ErrEmptyTree", err)
	}
	if err := tree.Print(&strings.Builder{}); !errors.Is(err, ErrEmptyTree) {
		t.Errorf("Print on empty tree = %v; want ErrEmptyTree", err)
	}
	if tree.Height() != -1 {
		t.Errorf("Height() = %d; want -1", tree.Height())
	}
	if len(tree.Values()) != 0 {
		t.Errorf("Values() = %v; want empty", tree.Values())
	}
	if err := tree.Check(); err != nil {
		t.Errorf("Check() = %v", err)
	}
}

func TestDeleteLastValueEmptiesTree(t *testing.T) {
	tree := New[int]()
	tree.Insert(7)

	removed, err := tree.Delete(7)
	if err != nil || !removed {
		t.Fatalf("Delete(7) = %v, %v; want true, nil", removed, err)
	}
	if !tree.IsEmpty() {
		t.Fatalf("tree should be empty after deleting its only value")
	}
	if _, err := tree.Delete(7); !errors.Is(err, ErrEmptyTree) {
		t.Errorf("second Delete = %v; want ErrEmptyTree", err)
	}
}

func TestRotationHeights(t *testing.T) {
	tree := New[int]()
	for _, v := range []int{1, 2, 3, 4, 5, 6, 7} {
		tree.Insert(v)
	}

	// Sequential inserts settle into a perfect tree of height 2.
	if tree.Height() != 2 {
		t.Errorf("Height() = %d; want 2", tree.Height())
	}
	if tree.root.value != 4 {
		t.Errorf("root = %d; want 4", tree.root.value)
	}
	if tree.root.left.value != 2 || tree.root.right.value != 6 {
		t.Errorf("children = %d, %d; want 2, 6", tree.root.left.value, tree.root.right.value)
	}
}

func TestMinMaxContains(t *testing.T) {
	tree := New[int]()
	for _, v := range []int{50, 20, 80, 10, 30, 70, 90} {
		tree.Insert(v)
	}

	if v, err := tree.Min(); err != nil || v != 10 {
		t.Errorf("Min() = %d, %v; want 10", v, err)
	}
	if v, err := tree.Max(); err != nil || v != 90 {
		t.Errorf("Max() = %d, %v; want 90", v, err)
	}
	if !tree.Contains(30) {
		t.Errorf("Contains(30) = false")
	}
	if tree.Contains(31) {
		t.Errorf("Contains(31) = true")
	}
}

func TestNewFunc(t *testing.T) {
	// Reverse order on strings.
	tree := NewFunc(func(a, b string) int { return strings.Compare(b, a) })
	for _, s := range []string{"banana", "apple", "cherry"} {
		tree.Insert(s)
	}

	want := []string{"cherry", "banana", "apple"}
	if got := tree.Values(); !slices.Equal(got, want) {
		t.Errorf("Values() = %v; want %v", got, want)
	}
}

func TestPrint(t *testing.T) {
	tree := New[int]()
	for _, v := range []int{10, 20, 30} {
		tree.Insert(v)
	}

	var sb strings.Builder
	if err := tree.Print(&sb); err != nil {
		t.Fatalf("Print returned %v", err)
	}

	want := "       /------+ 30 (h=0)\n" +
		"|------+ 20 (h=1)\n" +
		"       \\------+ 10 (h=0)\n"
	if sb.String() != want {
		t.Errorf("Print output:\n%s\nwant:\n%s", sb.String(), want)
	}
}

func TestCheckDetectsCorruption(t *testing.T) {
	tree := New[int]()
	for _, v := range []int{2, 1, 3} {
		tree.Insert(v)
	}

	tree.root.height = 5
	if err := tree.Check(); !errors.Is(err, ErrBadHeight) {
		t.Errorf("Check() = %v; want ErrBadHeight", err)
	}
	tree.root.height = 1

	tree.root.left.value = 4
	if err := tree.Check(); !errors.Is(err, ErrOrder) {
		t.Errorf("Check() = %v; want ErrOrder", err)
	}
	tree.root.left.value = 1

	// Hang a chain off the right without rebalancing.
	tree.root.right.right = &node[int]{value: 4, height: 1, right: &node[int]{value: 5}}
	tree.root.right.height = 2
	tree.root.height = 3
	if err := tree.Check(); !errors.Is(err, ErrUnbalanced) {
		t.Errorf("Check() = %v; want ErrUnbalanced", err)
	}
}

func TestRandomOperationsKeepInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	tree := New[int]()
	var shadow []int

	for i := 0; i < 2000; i++ {
		v := rng.Intn(200)
		if rng.Intn(3) == 0 && !tree.IsEmpty() {
			removed, err := tree.Delete(v)
			if err != nil {
				t.Fatalf("Delete(%d) returned %v", v, err)
			}
			idx := slices.Index(shadow, v)
			if removed != (idx >= 0) {
				t.Fatalf("Delete(%d) removed = %v, shadow has it = %v", v, removed, idx >= 0)
			}
			if idx >= 0 {
				shadow = slices.Delete(shadow, idx, idx+1)
			}
		} else {
			tree.Insert(v)
			shadow = append(shadow, v)
		}

		if err := tree.Check(); err != nil {
			t.Fatalf("after step %d: %v", i, err)
		}
	}

	slices.Sort(shadow)
	if got := tree.Values(); !slices.Equal(got, shadow) {
		t.Errorf("Values() diverged from shadow multiset")
	}
	if tree.Len() != len(shadow) {
		t.Errorf("Len() = %d; want %d", tree.Len(), len(shadow))
	}
}

func TestInsertThenDeleteRestoresContents(t *testing.T) {
	tree := New[int]()
	for _, v := range []int{8, 3, 10, 1, 6, 14, 4, 7, 13} {
		tree.Insert(v)
	}
	before := tree.Values()

	for _, v := range []int{5, 8, 0, 14, 6} {
		tree.Insert(v)
		if _, err := tree.Delete(v); err != nil {
			t.Fatalf("Delete(%d) returned %v", v, err)
		}
		if got := tree.Values(); !slices.Equal(got, before) {
			t.Errorf("after insert+delete of %d: %v; want %v", v, got, before)
		}
		if err := tree.Check(); err != nil {
			t.Errorf("Check() = %v", err)
		}
	}
}

func TestDeleteAbsentIsNoOp(t *testing.T) {
	tree := New[int]()
	for _, v := range []int{4, 2, 6, 1, 3, 5, 7} {
		tree.Insert(v)
	}
	before := tree.Values()

	for _, v := range []int{0, 8, -3, 100} {
		removed, err := tree.Delete(v)
		if err != nil || removed {
			t.Errorf("Delete(%d) = %v, %v; want false, nil", v, removed, err)
		}
	}
	if got := tree.Values(); !slices.Equal(got, before) {
		t.Errorf("Values() = %v; want %v", got, before)
	}
}
