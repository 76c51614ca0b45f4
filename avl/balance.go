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

func height(node *Node) int {
	if node == nil {
		return 0
	}
	return node.height
}

func updateHeight(node *Node) {
	node.height = max(height(node.left), height(node.right)) + 1
}

// balanceFactor is height(left) - height(right), 0 for nil.
func balanceFactor(node *Node) int {
	if node == nil {
		return 0
	}
	return height(node.left) - height(node.right)
}

// rotateLeft makes node.right the root of the sub-tree and returns it.
func rotateLeft(node *Node) *Node {
	if node == nil || node.right == nil {
		return node
	}

	pivot := node.right
	node.right = pivot.left
	pivot.left = node

	// child before new parent
	updateHeight(node)
	updateHeight(pivot)

	return pivot
}

// rotateRight makes node.left the root of the sub-tree and returns it.
func rotateRight(node *Node) *Node {
	if node == nil || node.left == nil {
		return node
	}

	pivot := node.left
	node.left = pivot.right
	pivot.right = node

	updateHeight(node)
	updateHeight(pivot)

	return pivot
}

// rebalance refreshes the height of node and applies a single or double
// rotation if its balance factor is outside [-1, +1]. It returns the new
// root of the sub-tree.
func rebalance(node *Node) *Node {
	updateHeight(node)

	switch bf := balanceFactor(node); {
	case bf > 1:
		// Left-Right case
		if balanceFactor(node.left) < 0 {
			node.left = rotateLeft(node.left)
		}
		return rotateRight(node)
	case bf < -1:
		// Right-Left case
		if balanceFactor(node.right) > 0 {
			node.right = rotateRight(node.right)
		}
		return rotateLeft(node)
	}

	return node
}
