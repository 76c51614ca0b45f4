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
	"io"

	"github.com/cybrota/avlkit/avl"
)

type demoScenario struct {
	title  string
	insert []int
	remove []int
}

var demoScenarios = []demoScenario{
	{title: "round trip", insert: []int{5, 3, 8, 1, 4, 7, 9, 2, 6}},
	{title: "ascending insert (left rotation)", insert: []int{1, 2, 3}},
	{title: "left-right double rotation", insert: []int{3, 1, 2}},
	{title: "two-child delete", insert: []int{5, 3, 8, 1, 4, 7, 9}, remove: []int{5}},
}

// runDemo walks through the classic balancing scenarios and a copy
// independence check, printing traversals and pictures. It returns the
// first error from writing a tree picture.
func runDemo(w io.Writer) error {
	for _, sc := range demoScenarios {
		tree := avl.New(sc.insert...)
		for _, v := range sc.remove {
			tree.Remove(v)
		}

		fmt.Fprintf(w, "%s== %s ==%s\n", Info, sc.title, Reset)
		fmt.Fprintf(w, "insert:    %v\n", sc.insert)
		if len(sc.remove) > 0 {
			fmt.Fprintf(w, "remove:    %v\n", sc.remove)
		}
		if err := printTreeSummary(w, tree); err != nil {
			return fmt.Errorf("demo %s: %w", sc.title, err)
		}
		fmt.Fprintln(w)
	}

	original := avl.New(5, 3, 8, 1, 4, 7, 9)
	clone := original.Clone()
	clone.Insert(10)
	clone.Remove(3)

	fmt.Fprintf(w, "%s== copy independence ==%s\n", Info, Reset)
	fmt.Fprintf(w, "original:  %v\n", original.InOrder())
	_, err := fmt.Fprintf(w, "copy:      %v\n", clone.InOrder())
	return err
}

func printTreeSummary(w io.Writer, tree *avl.Tree) error {
	fmt.Fprintf(w, "inorder:   %v\n", tree.InOrder())
	fmt.Fprintf(w, "preorder:  %v\n", tree.PreOrder())
	fmt.Fprintf(w, "postorder: %v\n", tree.PostOrder())
	fmt.Fprintf(w, "bfs:       %v\n", tree.BFS())
	fmt.Fprintf(w, "levels:    %v\n", tree.BFSLevels())
	fmt.Fprintf(w, "height:    %d  size: %d  avl: %t\n", tree.Height(), tree.Size(), tree.IsAVL())
	return tree.Print(w)
}
