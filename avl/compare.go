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

package avl

import "cmp"

// Comparator orders two keys: negative when a < b, zero when equal,
// positive when a > b. It must be a total order.
type Comparator[K any] func(a, b K) int

// Ordered compares numbers by value and strings lexicographically.
//
// Go compares strings byte by byte over their UTF-8 encoding, which gives
// the same order as comparing code points, and a strict prefix sorts first.
func Ordered[K cmp.Ordered](a, b K) int {
	return cmp.Compare(a, b)
}
