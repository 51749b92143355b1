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

package sorting

import (
	"fmt"
	"strings"
)

// Registry holds the known sorting algorithms by name.
type Registry struct {
	sorters []Sorter
}

// NewRegistry creates a registry with every algorithm in this package.
func NewRegistry() *Registry {
	reg := &Registry{}

	reg.Register(funcSorter{name: "bubble", fn: BubbleSort})
	reg.Register(funcSorter{name: "selection", fn: SelectionSort})
	reg.Register(funcSorter{name: "selection-min", fn: SelectionSortMin})
	reg.Register(funcSorter{name: "insertion", fn: InsertionSort})
	reg.Register(funcSorter{name: "insertion-while", fn: InsertionSortWhile})
	reg.Register(MergeSorter{})
	reg.Register(QuickSorter{})

	return reg
}

// Register adds s, replacing any sorter already registered under its name.
func (r *Registry) Register(s Sorter) {
	for i, existing := range r.sorters {
		if existing.Name() == s.Name() {
			r.sorters[i] = s
			return
		}
	}
	r.sorters = append(r.sorters, s)
}

// Get looks a sorter up by name, ignoring case.
func (r *Registry) Get(name string) (Sorter, error) {
	for _, s := range r.sorters {
		if strings.EqualFold(s.Name(), name) {
			return s, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// Names lists registered algorithms in registration order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.sorters))
	for _, s := range r.sorters {
		names = append(names, s.Name())
	}
	return names
}
