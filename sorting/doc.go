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

// Package sorting implements classic comparison sorts over integer slices.
//
// Every function sorts in place and returns the same slice so calls can be
// chained. MergeSort and QuickSort work on a sub-range, the others always
// sort the whole slice.
//
// A Registry maps algorithm names to Sorter values for callers that pick an
// algorithm at run time:
//
//	reg := sorting.NewRegistry()
//	s, err := reg.Get("merge")
//	if err != nil {
//		return err
//	}
//	s.Sort(nums)
package sorting
