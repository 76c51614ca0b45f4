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
	"testing"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/cybrota/avlkit/avl"
)

func TestRenderTreeCachesByShape(t *testing.T) {
	c := NewRenderCache(defaultConfig.Cache)
	tree := avl.New(2, 1, 3)

	first := RenderTree(c, tree)
	if first != tree.Sprint() {
		t.Fatalf("RenderTree = %q; want %q", first, tree.Sprint())
	}
	if c.ItemCount() != 1 {
		t.Errorf("ItemCount = %d; want 1", c.ItemCount())
	}

	// same shape built in a different order hits the cache
	same := avl.New(2, 3, 1)
	RenderTree(c, same)
	if c.ItemCount() != 1 {
		t.Errorf("ItemCount after same shape = %d; want 1", c.ItemCount())
	}

	tree.Insert(4)
	if got := RenderTree(c, tree); got != tree.Sprint() {
		t.Errorf("RenderTree after insert = %q; want %q", got, tree.Sprint())
	}
	if c.ItemCount() != 2 {
		t.Errorf("ItemCount after insert = %d; want 2", c.ItemCount())
	}
}

func TestTreeSignatureDistinguishesShapes(t *testing.T) {
	a := treeSignature(avl.New(1, 2, 3, 4))
	b := treeSignature(avl.New(4, 3, 2, 1))
	if a == b {
		t.Errorf("different shapes share signature %q", a)
	}
}

func TestRenderCacheExpiration(t *testing.T) {
	c := cache.New(100*time.Millisecond, 50*time.Millisecond)
	tree := avl.New(1)

	RenderTree(c, tree)
	if _, ok := c.Get(treeSignature(tree)); !ok {
		t.Fatalf("rendering not cached")
	}

	time.Sleep(150 * time.Millisecond)

	if _, ok := c.Get(treeSignature(tree)); ok {
		t.Errorf("rendering still cached after expiration")
	}
}
