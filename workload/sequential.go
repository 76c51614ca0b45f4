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

package workload

// AscendingGenerator yields 1..n, the worst case for an unbalanced tree
type AscendingGenerator struct{}

func (AscendingGenerator) Name() string        { return "ascending" }
func (AscendingGenerator) Description() string { return "1, 2, ..., n (left rotations on every level)" }
func (AscendingGenerator) Priority() int       { return 1 }

func (AscendingGenerator) Keys(n int, _ int64) []int {
	n = clampCount(n)
	if n == 0 {
		return []int{}
	}
	keys := make([]int, n)
	for i := range keys {
		keys[i] = i + 1
	}
	return keys
}

// DescendingGenerator yields n..1
type DescendingGenerator struct{}

func (DescendingGenerator) Name() string        { return "descending" }
func (DescendingGenerator) Description() string { return "n, n-1, ..., 1 (right rotations on every level)" }
func (DescendingGenerator) Priority() int       { return 2 }

func (DescendingGenerator) Keys(n int, _ int64) []int {
	n = clampCount(n)
	if n == 0 {
		return []int{}
	}
	keys := make([]int, n)
	for i := range keys {
		keys[i] = n - i
	}
	return keys
}

// ZigzagGenerator alternates between the low and high ends: 1, n, 2, n-1, ...
type ZigzagGenerator struct{}

func (ZigzagGenerator) Name() string        { return "zigzag" }
func (ZigzagGenerator) Description() string { return "1, n, 2, n-1, ... (double rotations)" }
func (ZigzagGenerator) Priority() int       { return 3 }

func (ZigzagGenerator) Keys(n int, _ int64) []int {
	n = clampCount(n)
	if n == 0 {
		return []int{}
	}
	keys := make([]int, 0, n)
	lo, hi := 1, n
	for lo <= hi {
		keys = append(keys, lo)
		if lo != hi {
			keys = append(keys, hi)
		}
		lo++
		hi--
	}
	return keys
}
