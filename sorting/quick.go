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

// QuickSort sorts nums[start:end+1] (end inclusive) using a Lomuto
// partition around the last value of each range.
func QuickSort(nums []int, start, end int) []int {
	if start < end {
		p := partition(nums, start, end)
		QuickSort(nums, start, p-1)
		QuickSort(nums, p+1, end)
	}
	return nums
}

func partition(nums []int, start, end int) int {
	pivot := nums[end]
	i := start - 1

	for j := start; j < end; j++ {
		if nums[j] <= pivot {
			i++
			swap(nums, i, j)
		}
	}

	nums[end] = nums[i+1]
	nums[i+1] = pivot
	return i + 1
}
