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

package sorting_test

import (
	"fmt"

	"github.com/cybrota/avlsort/sorting"
)

func ExampleQuickSort() {
	fmt.Println(sorting.QuickSort([]int{5, 3, 8, 1, 9, 2}, 0, 5))
	// Output: [1 2 3 5 8 9]
}

func ExampleMergeSort() {
	fmt.Println(sorting.MergeSort([]int{4, 2, 1, 3}, 0, 4))
	// Output: [1 2 3 4]
}

func ExampleRegistry_Get() {
	reg := sorting.NewRegistry()
	s, err := reg.Get("insertion")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(s.Sort([]int{3, 1, 2}))
	// Output: [1 2 3]
}
