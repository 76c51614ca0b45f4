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
	"errors"
	"fmt"
)

// ErrEmptyTree is returned by Min and Max when the tree holds no keys.
var ErrEmptyTree = errors.New("avl: tree is empty")

// Tree holds the root node of a tree and its node count.
type Tree struct {
	root  *Node
	count int
}

// New creates a tree and inserts values in the order given.
func New(values ...int) *Tree {
	tree := &Tree{}
	for _, v := range values {
		tree.Insert(v)
	}
	return tree
}

// Root returns the root node, nil for an empty tree.
func (tree *Tree) Root() *Node {
	return tree.root
}

// IsEmpty reports whether the tree holds no keys.
func (tree *Tree) IsEmpty() bool {
	return tree.root == nil
}

// Size returns the number of keys in the tree.
func (tree *Tree) Size() int {
	return tree.count
}

// Height returns the height of the tree, 0 when empty.
func (tree *Tree) Height() int {
	return height(tree.root)
}

// Find reports whether value is present.
func (tree *Tree) Find(value int) bool {
	curr := tree.root
	for curr != nil {
		switch {
		case value < curr.value:
			curr = curr.left
		case value > curr.value:
			curr = curr.right
		default:
			return true
		}
	}
	return false
}

// Min returns the smallest key.
func (tree *Tree) Min() (int, error) {
	if tree.root == nil {
		return 0, ErrEmptyTree
	}
	return tree.root.first().value, nil
}

// Max returns the largest key.
func (tree *Tree) Max() (int, error) {
	if tree.root == nil {
		return 0, ErrEmptyTree
	}
	return tree.root.last().value, nil
}

// Clear drops every node.
func (tree *Tree) Clear() {
	tree.root = nil
	tree.count = 0
}

// Swap exchanges the contents of two trees without touching any node.
func (tree *Tree) Swap(other *Tree) {
	tree.root, other.root = other.root, tree.root
	tree.count, other.count = other.count, tree.count
}

// Clone returns a structural deep copy. The copy shares no nodes with
// tree, so mutating one never affects the other.
func (tree *Tree) Clone() *Tree {
	clone := &Tree{count: tree.count}
	if tree.root == nil {
		return clone
	}

	type pending struct {
		src *Node
		dst **Node
	}

	// explicit stack, the source shape is not trusted to be balanced
	stack := []pending{{src: tree.root, dst: &clone.root}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := &Node{value: top.src.value, height: top.src.height}
		*top.dst = n

		if top.src.right != nil {
			stack = append(stack, pending{src: top.src.right, dst: &n.right})
		}
		if top.src.left != nil {
			stack = append(stack, pending{src: top.src.left, dst: &n.left})
		}
	}
	return clone
}

// String returns the keys in ascending order, e.g. "[1 2 3]".
func (tree *Tree) String() string {
	return fmt.Sprint(tree.InOrder())
}
