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

// BubbleSort swaps adjacent out-of-order pairs, one pass per position, and
// shrinks the unsorted suffix by one after every pass.
func BubbleSort(nums []int) []int {
	for lastUnsorted := len(nums) - 1; lastUnsorted > 0; lastUnsorted-- {
		for i := 0; i < lastUnsorted; i++ {
			if nums[i] > nums[i+1] {
				swap(nums, i, i+1)
			}
		}
	}
	return nums
}
