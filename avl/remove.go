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

// Remove deletes value from the tree and reports whether it was present.
func (tree *Tree) Remove(value int) bool {
	removed := false
	tree.root = remove(tree.root, value, &removed)
	if removed {
		tree.count -= 1
	}
	return removed
}

// internal routine for remove, returns the new root of the sub-tree
func remove(node *Node, value int, removed *bool) *Node {
	if node == nil { // value not in tree
		return nil
	}

	switch {
	case value > node.value:
		node.right = remove(node.right, value, removed)
	case value < node.value:
		node.left = remove(node.left, value, removed)
	default:
		*removed = true
		switch {
		case node.left == nil && node.right == nil:
			return nil
		case node.left == nil:
			return node.right
		case node.right == nil:
			return node.left
		}

		// two children: take over the successor's key and remove the
		// successor from the right sub-tree instead
		successor := node.right.first()
		node.value = successor.value
		node.right = remove(node.right, successor.value, removed)
	}

	if !*removed {
		return node
	}
	return rebalance(node)
}
