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

import "fmt"

// Sorter is a named sorting algorithm working on a whole slice.
type Sorter interface {
	Name() string
	Sort(nums []int) []int
}

// funcSorter adapts a whole-slice sort function.
type funcSorter struct {
	name string
	fn   func([]int) []int
}

func (s funcSorter) Name() string          { return s.name }
func (s funcSorter) Sort(nums []int) []int { return s.fn(nums) }

// MergeSorter sorts with MergeSort over the whole slice.
type MergeSorter struct{}

func (MergeSorter) Name() string { return "merge" }

func (MergeSorter) Sort(nums []int) []int {
	return MergeSort(nums, 0, len(nums))
}

// SortRange sorts nums[start:end] (end exclusive), checking the bounds first.
func (MergeSorter) SortRange(nums []int, start, end int) ([]int, error) {
	if start < 0 || end > len(nums) || start > end {
		return nums, fmt.Errorf("%w: [%d, %d) of %d", ErrBadRange, start, end, len(nums))
	}
	return MergeSort(nums, start, end), nil
}

// QuickSorter sorts with QuickSort over the whole slice.
type QuickSorter struct{}

func (QuickSorter) Name() string { return "quick" }

func (QuickSorter) Sort(nums []int) []int {
	return QuickSort(nums, 0, len(nums)-1)
}

// SortRange sorts nums[start:end+1] (end inclusive), checking the bounds first.
func (QuickSorter) SortRange(nums []int, start, end int) ([]int, error) {
	if start < 0 || end >= len(nums) || start > end+1 {
		return nums, fmt.Errorf("%w: [%d, %d] of %d", ErrBadRange, start, end, len(nums))
	}
	return QuickSort(nums, start, end), nil
}
