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

package main

import (
	"encoding/binary"
	"sync"

	"github.com/willf/bloom"

	"github.com/cybrota/avlkit/avl"
)

// FilterStats counts how often the bloom filter spared a tree descent
type FilterStats struct {
	Lookups  int
	Skipped  int
	Rebuilds int
	Stale    int
}

// GuardedTree is an avl.Tree behind a single mutex, with a bloom filter
// in front of Find. Keys never inserted are rejected by the filter
// without touching the tree.
type GuardedTree struct {
	mu     sync.Mutex
	tree   *avl.Tree
	filter *bloom.BloomFilter
	stats  FilterStats
}

// NewGuardedTree creates an empty tree with a filter sized by config
func NewGuardedTree(config FilterConfig) *GuardedTree {
	return &GuardedTree{
		tree:   avl.New(),
		filter: bloom.New(config.Size, config.Hashes),
	}
}

func keyBytes(key int) []byte {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(key))
	return buf[:]
}

// Insert adds key to the filter and the tree, reporting whether it was new
func (g *GuardedTree) Insert(key int) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.filter.Add(keyBytes(key))
	return g.tree.Insert(key)
}

// InsertAll inserts keys in order, calling progress after each one, and
// returns how many were new.
func (g *GuardedTree) InsertAll(keys []int, progress func()) int {
	g.mu.Lock()
	defer g.mu.Unlock()

	added := 0
	for _, key := range keys {
		g.filter.Add(keyBytes(key))
		if g.tree.Insert(key) {
			added++
		}
		if progress != nil {
			progress()
		}
	}
	return added
}

// Remove deletes key from the tree. The filter cannot forget the key, so
// it is rebuilt once stale entries outnumber live keys.
func (g *GuardedTree) Remove(key int) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.tree.Remove(key) {
		return false
	}
	g.stats.Stale++
	if g.stats.Stale > g.tree.Size() {
		g.rebuildLocked()
	}
	return true
}

// Find consults the filter first and descends the tree only on a hit
func (g *GuardedTree) Find(key int) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.stats.Lookups++
	if !g.filter.Test(keyBytes(key)) {
		g.stats.Skipped++
		return false
	}
	return g.tree.Find(key)
}

// Clear empties both the tree and the filter
func (g *GuardedTree) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.tree.Clear()
	g.filter.ClearAll()
	g.stats.Stale = 0
}

func (g *GuardedTree) rebuildLocked() {
	g.filter.ClearAll()
	for key := range g.tree.All() {
		g.filter.Add(keyBytes(key))
	}
	g.stats.Stale = 0
	g.stats.Rebuilds++
}

// View runs fn with the tree locked. fn must not keep the tree.
func (g *GuardedTree) View(fn func(tree *avl.Tree)) {
	g.mu.Lock()
	defer g.mu.Unlock()

	fn(g.tree)
}

// Snapshot returns a deep copy of the tree
func (g *GuardedTree) Snapshot() *avl.Tree {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.tree.Clone()
}

// Stats returns a copy of the lookup counters
func (g *GuardedTree) Stats() FilterStats {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.stats
}
