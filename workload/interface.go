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

import (
	"fmt"
)

// MaxCount is the largest number of keys a generator produces
const MaxCount = 1 << 24

// CheckCount rejects counts above MaxCount
func CheckCount(n int) error {
	if n > MaxCount {
		return fmt.Errorf("count %d exceeds %d", n, MaxCount)
	}
	return nil
}

func clampCount(n int) int {
	return max(0, min(n, MaxCount))
}

// Generator produces a reproducible sequence of keys to load into a tree
type Generator interface {
	Name() string
	Description() string
	Priority() int // Lower number = listed first
	Keys(n int, seed int64) []int
}
