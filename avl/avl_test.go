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

package avl_test

import (
	"math/rand/v2"
	"slices"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cybrota/avlkit/avl"
)

type shapeCase struct {
	Name     string
	Insert   []int
	Remove   []int
	InOrder  []int
	PreOrder []int
	Root     int
	Height   int
}

func TestTreeShapes(t *testing.T) {
	testCases := []shapeCase{
		{
			Name:     "Ascending triggers left rotation",
			Insert:   []int{1, 2, 3},
			InOrder:  []int{1, 2, 3},
			PreOrder: []int{2, 1, 3},
			Root:     2,
			Height:   2,
		},
		{
			Name:     "Descending triggers right rotation",
			Insert:   []int{3, 2, 1},
			InOrder:  []int{1, 2, 3},
			PreOrder: []int{2, 1, 3},
			Root:     2,
			Height:   2,
		},
		{
			Name:     "Left-Right double rotation",
			Insert:   []int{3, 1, 2},
			InOrder:  []int{1, 2, 3},
			PreOrder: []int{2, 1, 3},
			Root:     2,
			Height:   2,
		},
		{
			Name:     "Right-Left double rotation",
			Insert:   []int{1, 3, 2},
			InOrder:  []int{1, 2, 3},
			PreOrder: []int{2, 1, 3},
			Root:     2,
			Height:   2,
		},
		{
			Name:     "Round trip",
			Insert:   []int{5, 3, 8, 1, 4, 7, 9, 2, 6},
			InOrder:  []int{1, 2, 3, 4, 5, 6, 7, 8, 9},
			PreOrder: []int{5, 3, 1, 2, 4, 8, 7, 6, 9},
			Root:     5,
			Height:   4,
		},
		{
			Name:     "Two child delete takes successor",
			Insert:   []int{5, 3, 8, 1, 4, 7, 9},
			Remove:   []int{5},
			InOrder:  []int{1, 3, 4, 7, 8, 9},
			PreOrder: []int{7, 3, 1, 4, 8, 9},
			Root:     7,
			Height:   3,
		},
		{
			Name:     "Delete leaf then rebalance",
			Insert:   []int{2, 1, 3, 4},
			Remove:   []int{1},
			InOrder:  []int{2, 3, 4},
			PreOrder: []int{3, 2, 4},
			Root:     3,
			Height:   2,
		},
		{
			Name:     "Delete one child node splices",
			Insert:   []int{2, 1, 3, 4},
			Remove:   []int{3},
			InOrder:  []int{1, 2, 4},
			PreOrder: []int{2, 1, 4},
			Root:     2,
			Height:   2,
		},
		{
			Name:     "Duplicates ignored",
			Insert:   []int{4, 4, 2, 2, 6, 6, 4},
			InOrder:  []int{2, 4, 6},
			PreOrder: []int{4, 2, 6},
			Root:     4,
			Height:   2,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tree := avl.New(tc.Insert...)
			for _, v := range tc.Remove {
				require.True(t, tree.Remove(v), "remove %d", v)
			}

			assert.Equal(t, tc.InOrder, tree.InOrder())
			assert.Equal(t, tc.PreOrder, tree.PreOrder())
			require.NotNil(t, tree.Root())
			assert.Equal(t, tc.Root, tree.Root().Value())
			assert.Equal(t, tc.Height, tree.Height())
			assert.Equal(t, len(tc.InOrder), tree.Size())
			assert.True(t, tree.IsAVL())
			assert.NoError(t, tree.Validate())
		})
	}
}

func TestTraversals(t *testing.T) {
	tree := avl.New(5, 3, 8, 1, 4, 7, 9, 2, 6)

	assert.Equal(t, []int{2, 1, 4, 3, 6, 7, 9, 8, 5}, tree.PostOrder())
	assert.Equal(t, []int{5, 3, 8, 1, 4, 7, 9, 2, 6}, tree.BFS())
	assert.Equal(t, [][]int{{5}, {3, 8}, {1, 4, 7, 9}, {2, 6}}, tree.BFSLevels())
	assert.Equal(t, "[1 2 3 4 5 6 7 8 9]", tree.String())

	// iterators are restartable
	for range 2 {
		assert.Equal(t, tree.InOrder(), slices.Collect(tree.All()))
	}

	var firstThree []int
	for v := range tree.All() {
		if len(firstThree) == 3 {
			break
		}
		firstThree = append(firstThree, v)
	}
	assert.Equal(t, []int{1, 2, 3}, firstThree)

	depths := []int{}
	for depth := range tree.Levels() {
		depths = append(depths, depth)
	}
	assert.Equal(t, []int{0, 1, 2, 3}, depths)
}

func TestEmptyTree(t *testing.T) {
	tree := avl.New()

	assert.True(t, tree.IsEmpty())
	assert.Equal(t, 0, tree.Size())
	assert.Equal(t, 0, tree.Height())
	assert.True(t, tree.IsAVL())
	assert.NoError(t, tree.Validate())
	assert.Nil(t, tree.Root())
	assert.False(t, tree.Find(1))
	assert.False(t, tree.Remove(1))
	assert.Empty(t, tree.InOrder())
	assert.Empty(t, tree.BFS())
	assert.Nil(t, tree.BFSLevels())
	assert.Empty(t, slices.Collect(tree.All()))
	assert.Equal(t, "", tree.Sprint())

	_, err := tree.Min()
	assert.ErrorIs(t, err, avl.ErrEmptyTree)
	_, err = tree.Max()
	assert.ErrorIs(t, err, avl.ErrEmptyTree)
}

func TestFindMinMax(t *testing.T) {
	tree := avl.New(50, -20, 70, 0, 65, 99, -3)

	for _, v := range []int{50, -20, 70, 0, 65, 99, -3} {
		assert.True(t, tree.Find(v), "find %d", v)
	}
	for _, v := range []int{-21, 1, 66, 100} {
		assert.False(t, tree.Find(v), "find %d", v)
	}

	lo, err := tree.Min()
	require.NoError(t, err)
	assert.Equal(t, -20, lo)

	hi, err := tree.Max()
	require.NoError(t, err)
	assert.Equal(t, 99, hi)
}

func TestInsertReportsAdded(t *testing.T) {
	tree := avl.New()

	assert.True(t, tree.Insert(7))
	assert.False(t, tree.Insert(7))
	assert.Equal(t, 1, tree.Size())
}

func TestRemoveMissingLeavesTreeUnchanged(t *testing.T) {
	tree := avl.New(5, 3, 8, 1, 4, 7, 9)
	before := tree.PreOrder()

	assert.False(t, tree.Remove(6))
	assert.Equal(t, before, tree.PreOrder())
	assert.Equal(t, 7, tree.Size())
}

func TestRemovePresentDropsExactlyThatKey(t *testing.T) {
	keys := []int{41, 20, 65, 11, 29, 50, 91, 32, 72, 99}
	for _, target := range keys {
		tree := avl.New(keys...)
		expected := slices.DeleteFunc(tree.InOrder(), func(v int) bool { return v == target })

		require.True(t, tree.Remove(target))
		assert.Equal(t, expected, tree.InOrder())
		assert.NoError(t, tree.Validate())
	}
}

func TestCloneIsIndependent(t *testing.T) {
	original := avl.New(5, 3, 8, 1, 4, 7, 9)
	clone := original.Clone()

	require.Equal(t, original.PreOrder(), clone.PreOrder())
	require.NoError(t, clone.Validate())

	clone.Insert(10)
	clone.Remove(3)
	assert.Equal(t, []int{1, 3, 4, 5, 7, 8, 9}, original.InOrder())
	assert.Equal(t, []int{1, 4, 5, 7, 8, 9, 10}, clone.InOrder())

	original.Remove(9)
	original.Insert(0)
	assert.Equal(t, []int{0, 1, 3, 4, 5, 7, 8}, original.InOrder())
	assert.Equal(t, []int{1, 4, 5, 7, 8, 9, 10}, clone.InOrder())

	assert.NoError(t, original.Validate())
	assert.NoError(t, clone.Validate())
}

func TestSwapAndClear(t *testing.T) {
	a := avl.New(1, 2, 3)
	b := avl.New(10)

	a.Swap(b)
	assert.Equal(t, []int{10}, a.InOrder())
	assert.Equal(t, 1, a.Size())
	assert.Equal(t, []int{1, 2, 3}, b.InOrder())
	assert.Equal(t, 3, b.Size())

	b.Clear()
	assert.True(t, b.IsEmpty())
	assert.Equal(t, 0, b.Size())
	assert.NoError(t, b.Validate())
}

func TestPrint(t *testing.T) {
	tree := avl.New(1, 2, 3)

	expected := "└── 2 (h:2)\n" +
		"    ├── 3 (h:1)\n" +
		"    └── 1 (h:1)\n"
	assert.Equal(t, expected, tree.Sprint())
}

// random mix of inserts and removes checked against a map after every
// operation
func TestRandomOperations(t *testing.T) {
	for seed := uint64(1); seed <= 5; seed++ {
		rng := rand.New(rand.NewPCG(seed, seed*7919))
		tree := avl.New()
		reference := map[int]struct{}{}

		for i := 0; i < 2000; i++ {
			v := rng.IntN(300) - 150
			_, present := reference[v]

			if rng.IntN(3) == 0 {
				assert.Equal(t, present, tree.Remove(v), "seed %d remove %d", seed, v)
				delete(reference, v)
			} else {
				assert.Equal(t, !present, tree.Insert(v), "seed %d insert %d", seed, v)
				reference[v] = struct{}{}
			}

			require.NoError(t, tree.Validate(), "seed %d step %d", seed, i)
		}

		expected := make([]int, 0, len(reference))
		for v := range reference {
			expected = append(expected, v)
		}
		sort.Ints(expected)
		assert.Equal(t, expected, tree.InOrder())
		assert.Equal(t, len(expected), tree.Size())
	}
}

// inserting 1..n in order is the degenerate case for a plain search
// tree, removing every other key forces rebalancing on the way up
func TestSequentialLoadStaysLogarithmic(t *testing.T) {
	const n = 1 << 12
	tree := avl.New()
	for i := 1; i <= n; i++ {
		tree.Insert(i)
	}
	require.NoError(t, tree.Validate())
	// 1.44 log2(n) bound
	assert.LessOrEqual(t, tree.Height(), 18)

	for i := 2; i <= n; i += 2 {
		require.True(t, tree.Remove(i))
	}
	require.NoError(t, tree.Validate())
	assert.Equal(t, n/2, tree.Size())

	for i := n - 1; i >= 1; i -= 2 {
		require.True(t, tree.Remove(i))
		if i%64 == 1 {
			require.NoError(t, tree.Validate())
		}
	}
	assert.True(t, tree.IsEmpty())
	assert.NoError(t, tree.Validate())
}
