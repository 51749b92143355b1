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

import "errors"

var (
	// ErrUnknownAlgorithm indicates a name no Sorter is registered under.
	ErrUnknownAlgorithm = errors.New("sorting: unknown algorithm")
	// ErrBadRange indicates sub-range bounds outside the slice.
	ErrBadRange = errors.New("sorting: range out of bounds")
)
