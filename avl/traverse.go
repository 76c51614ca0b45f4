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

import (
	"iter"
)

// InOrder returns the keys in ascending order.
func (tree *Tree) InOrder() []int {
	result := make([]int, 0, tree.count)
	inOrder(tree.root, &result)
	return result
}

func inOrder(node *Node, result *[]int) {
	if node == nil {
		return
	}
	inOrder(node.left, result)
	*result = append(*result, node.value)
	inOrder(node.right, result)
}

// PreOrder returns the keys node first, then left, then right.
func (tree *Tree) PreOrder() []int {
	result := make([]int, 0, tree.count)
	preOrder(tree.root, &result)
	return result
}

func preOrder(node *Node, result *[]int) {
	if node == nil {
		return
	}
	*result = append(*result, node.value)
	preOrder(node.left, result)
	preOrder(node.right, result)
}

// PostOrder returns the keys left, then right, then node.
func (tree *Tree) PostOrder() []int {
	result := make([]int, 0, tree.count)
	postOrder(tree.root, &result)
	return result
}

func postOrder(node *Node, result *[]int) {
	if node == nil {
		return
	}
	postOrder(node.left, result)
	postOrder(node.right, result)
	*result = append(*result, node.value)
}

// BFS returns the keys in level order, left to right within a level.
func (tree *Tree) BFS() []int {
	result := make([]int, 0, tree.count)
	for _, level := range tree.Levels() {
		result = append(result, level...)
	}
	return result
}

// BFSLevels returns the keys grouped by depth, root level first.
func (tree *Tree) BFSLevels() [][]int {
	var result [][]int
	for _, level := range tree.Levels() {
		result = append(result, level)
	}
	return result
}

// All returns an iterator over the keys in ascending order.
// The iterator may be ranged over any number of times; the tree must
// not be modified while an iteration is in progress.
func (tree *Tree) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		var stack []*Node
		curr := tree.root
		for curr != nil || len(stack) > 0 {
			for curr != nil {
				stack = append(stack, curr)
				curr = curr.left
			}
			curr = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(curr.value) {
				return
			}
			curr = curr.right
		}
	}
}

// Levels returns an iterator over the depth and keys of each level of
// the tree, root (depth 0) first.
func (tree *Tree) Levels() iter.Seq2[int, []int] {
	return func(yield func(int, []int) bool) {
		if tree.root == nil {
			return
		}

		queue := []*Node{tree.root}
		for depth := 0; len(queue) > 0; depth++ {
			width := len(queue)
			level := make([]int, 0, width)
			for _, node := range queue[:width] {
				level = append(level, node.value)
				if node.left != nil {
					queue = append(queue, node.left)
				}
				if node.right != nil {
					queue = append(queue, node.right)
				}
			}
			queue = queue[width:]
			if !yield(depth, level) {
				return
			}
		}
	}
}
