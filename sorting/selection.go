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

// SelectionSort moves the largest value of the unsorted prefix to its end
// on every pass.
func SelectionSort(nums []int) []int {
	for lastUnsorted := len(nums) - 1; lastUnsorted > 0; lastUnsorted-- {
		largest := 0
		for i := 1; i <= lastUnsorted; i++ {
			if nums[i] > nums[largest] {
				largest = i
			}
		}
		swap(nums, largest, lastUnsorted)
	}
	return nums
}

// SelectionSortMin moves the smallest value of the unsorted suffix to its
// front on every pass.
func SelectionSortMin(nums []int) []int {
	for i := 0; i < len(nums)-1; i++ {
		minimum := i
		for j := i + 1; j < len(nums); j++ {
			if nums[j] < nums[minimum] {
				minimum = j
			}
		}
		swap(nums, i, minimum)
	}
	return nums
}
