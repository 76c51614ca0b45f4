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
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Print writes an ASCII picture of the tree to w, one node per line with
// its cached height. The right sub-tree is drawn above the left one so
// that the picture reads like the tree rotated a quarter turn.
func (tree *Tree) Print(w io.Writer) error {
	bw := bufio.NewWriter(w)
	printTree(bw, tree.root, "", true)
	return bw.Flush()
}

// Sprint returns the picture written by Print.
func (tree *Tree) Sprint() string {
	var sb strings.Builder
	_ = tree.Print(&sb)
	return sb.String()
}

func printTree(w *bufio.Writer, node *Node, prefix string, isLast bool) {
	if node == nil {
		return
	}

	branch, indent := "├── ", "│   "
	if isLast {
		branch, indent = "└── ", "    "
	}
	fmt.Fprintf(w, "%s%s%d (h:%d)\n", prefix, branch, node.value, node.height)

	if node.right != nil {
		printTree(w, node.right, prefix+indent, node.left == nil)
	}
	if node.left != nil {
		printTree(w, node.left, prefix+indent, true)
	}
}
