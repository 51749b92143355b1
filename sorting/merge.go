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

// MergeSort sorts nums[start:end] (end exclusive) by recursive halving.
// Halves already in order across their boundary are not merged.
func MergeSort(nums []int, start, end int) []int {
	if end-start < 2 {
		return nums
	}

	mid := (start + end) / 2
	MergeSort(nums, start, mid)
	MergeSort(nums, mid, end)
	merge(nums, start, mid, end)
	return nums
}

func merge(nums []int, start, mid, end int) {
	if nums[mid-1] <= nums[mid] {
		return
	}

	i, j := start, mid
	temp := make([]int, 0, end-start)
	for i < mid && j < end {
		if nums[i] <= nums[j] {
			temp = append(temp, nums[i])
			i++
		} else {
			temp = append(temp, nums[j])
			j++
		}
	}

	// Whatever is left of the right half is already in place. The rest of
	// the left half moves to the end of the range, then temp fills the front.
	copy(nums[start+len(temp):], nums[i:mid])
	copy(nums[start:], temp)
}
