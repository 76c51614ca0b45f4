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

// Insert adds value to the tree. It returns false, leaving the tree
// unchanged, if value is already present.
func (tree *Tree) Insert(value int) bool {
	added := false
	tree.root = insert(tree.root, value, &added)
	if added {
		tree.count += 1
	}
	return added
}

// internal routine for insert, returns the new root of the sub-tree
func insert(node *Node, value int, added *bool) *Node {
	if node == nil {
		*added = true
		return newNode(value)
	}

	switch {
	case value > node.value:
		node.right = insert(node.right, value, added)
	case value < node.value:
		node.left = insert(node.left, value, added)
	default:
		return node
	}

	if !*added {
		return node
	}
	return rebalance(node)
}
