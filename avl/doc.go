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

// Package avl implements a height-balanced binary search tree over int
// keys.
//
// Every node caches the height of its subtree and after each Insert or
// Remove the heights of a node's two subtrees differ by at most one, so
// all operations run in O(log n).
//
// Keys are unique: inserting a key that is already present leaves the
// tree unchanged. Removing a node with two children copies the in-order
// successor's key into it and removes the successor instead.
//
// A Tree is not safe for concurrent use. Guard it with a single mutex
// if more than one goroutine touches it.
package avl
