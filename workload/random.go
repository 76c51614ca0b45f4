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
	"math/rand/v2"
)

func newRand(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15))
}

// RandomGenerator draws n keys uniformly from [0, 4n). Duplicates are
// possible and exercise the no-op insert path.
type RandomGenerator struct{}

func (RandomGenerator) Name() string        { return "random" }
func (RandomGenerator) Description() string { return "n uniform keys in [0, 4n), duplicates allowed" }
func (RandomGenerator) Priority() int       { return 4 }

func (RandomGenerator) Keys(n int, seed int64) []int {
	n = clampCount(n)
	if n == 0 {
		return []int{}
	}
	rng := newRand(seed)
	keys := make([]int, n)
	for i := range keys {
		keys[i] = rng.IntN(4 * n)
	}
	return keys
}

// ShuffledGenerator yields a permutation of 1..n
type ShuffledGenerator struct{}

func (ShuffledGenerator) Name() string        { return "shuffled" }
func (ShuffledGenerator) Description() string { return "a permutation of 1..n" }
func (ShuffledGenerator) Priority() int       { return 5 }

func (ShuffledGenerator) Keys(n int, seed int64) []int {
	keys := AscendingGenerator{}.Keys(n, seed)
	rng := newRand(seed)
	rng.Shuffle(len(keys), func(i, j int) {
		keys[i], keys[j] = keys[j], keys[i]
	})
	return keys
}
