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

// Node is one key of a Tree. A node is owned by exactly one parent (or
// by the Tree itself for the root).
type Node struct {
	value  int
	height int // leaf = 1
	left   *Node
	right  *Node
}

func newNode(value int) *Node {
	return &Node{value: value, height: 1}
}

// Value returns the key held by the node.
func (n *Node) Value() int {
	return n.value
}

// Height returns the cached height of the subtree rooted at n, 0 for nil.
func (n *Node) Height() int {
	if n == nil {
		return 0
	}
	return n.height
}

// Left returns the left child or nil.
func (n *Node) Left() *Node {
	if n == nil {
		return nil
	}
	return n.left
}

// Right returns the right child or nil.
func (n *Node) Right() *Node {
	if n == nil {
		return nil
	}
	return n.right
}

// lowest key node of a sub-tree
func (n *Node) first() *Node {
	if n == nil {
		return nil
	}
	for n.left != nil {
		n = n.left
	}
	return n
}

// highest key node of a sub-tree
func (n *Node) last() *Node {
	if n == nil {
		return nil
	}
	for n.right != nil {
		n = n.right
	}
	return n
}
