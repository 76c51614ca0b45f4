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
	"fmt"

	"github.com/patrickmn/go-cache"

	"github.com/cybrota/avlkit/avl"
)

// NewRenderCache creates a cache for rendered tree pictures
func NewRenderCache(config CacheConfig) *cache.Cache {
	return cache.New(config.Expiration, config.Cleanup)
}

// treeSignature identifies a tree shape: the pre-order keys of a binary
// search tree determine its structure.
func treeSignature(tree *avl.Tree) string {
	return fmt.Sprintf("%d:%v", tree.Size(), tree.PreOrder())
}

// RenderTree returns the ASCII picture of tree, rendering it only when
// the same shape has not been seen recently.
func RenderTree(c *cache.Cache, tree *avl.Tree) string {
	key := treeSignature(tree)
	if val, ok := c.Get(key); ok {
		return val.(string)
	}

	picture := tree.Sprint()
	c.SetDefault(key, picture)
	return picture
}
