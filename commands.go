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

package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/cybrota/avlsort/avl"
	"github.com/cybrota/avlsort/sorting"
)

type treeOptions struct {
	Insert []int
	Delete []int
	Print  bool
	Check  bool
}

// runTree builds a tree from opts.Insert, applies opts.Delete in order and
// emits the in-order traversal to w, one value per line. The traversal is
// returned as well.
func runTree(opts treeOptions, w io.Writer, logger *logrus.Logger) ([]int, error) {
	tree := avl.New[int]()
	for _, v := range opts.Insert {
		tree.Insert(v)
	}
	logger.WithFields(logrus.Fields{
		"values": tree.Len(),
		"height": tree.Height(),
	}).Debug("tree built")

	for _, v := range opts.Delete {
		removed, err := tree.Delete(v)
		if err != nil {
			return nil, fmt.Errorf("delete %d: %w", v, err)
		}
		logger.WithFields(logrus.Fields{"value": v, "removed": removed}).Debug("delete")
	}

	if opts.Check {
		if err := tree.Check(); err != nil {
			return nil, err
		}
		logger.Debug("tree invariants hold")
	}

	styles := GetStyles()
	if opts.Print {
		if err := tree.Print(w); err != nil {
			return nil, fmt.Errorf("print: %w", err)
		}
		fmt.Fprintln(w)
	}

	var emitted []int
	err := tree.Traverse(func(v int) {
		emitted = append(emitted, v)
		fmt.Fprintln(w, styles.Value.Render(strconv.Itoa(v)))
	})
	if err != nil {
		return nil, fmt.Errorf("traverse: %w", err)
	}
	return emitted, nil
}

// runSort sorts values with the named algorithm and writes them to w on a
// single line.
func runSort(reg *sorting.Registry, algorithm string, values []int, w io.Writer, logger *logrus.Logger) ([]int, error) {
	s, err := reg.Get(algorithm)
	if err != nil {
		return nil, err
	}
	logger.WithFields(logrus.Fields{"algorithm": s.Name(), "values": len(values)}).Debug("sorting")

	sorted := s.Sort(values)
	fmt.Fprintln(w, GetStyles().Value.Render(joinValues(sorted)))
	return sorted, nil
}
