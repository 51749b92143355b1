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

// InsertionSort grows a sorted prefix, shifting larger values one slot
// right to open the insertion slot for the next value.
func InsertionSort(nums []int) []int {
	for firstUnsorted := 1; firstUnsorted < len(nums); firstUnsorted++ {
		elem := nums[firstUnsorted]

		i := firstUnsorted
		for ; i > 0 && nums[i-1] > elem; i-- {
			nums[i] = nums[i-1]
		}
		nums[i] = elem
	}
	return nums
}

// InsertionSortWhile is InsertionSort scanning down from the slot before
// the new value.
func InsertionSortWhile(nums []int) []int {
	for i := 1; i < len(nums); i++ {
		number := nums[i]
		j := i - 1
		for j >= 0 && nums[j] > number {
			nums[j+1] = nums[j]
			j--
		}
		nums[j+1] = number
	}
	return nums
}
