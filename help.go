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
	"runtime"
	"strings"

	markdown "github.com/MichaelMure/go-term-markdown"

	"github.com/cybrota/avlkit/workload"
)

func getHelpMessage() string {
	message := fmt.Sprintf(`

 **avlkit %s**

A height-balanced binary search tree over integer keys, with a script runner,
bulk loader, dashboard and interactive explorer.

Built with Go %s

# 1. Commands
* **run** opens the interactive explorer (default)
* **demo** walks through the rotation and deletion scenarios
* **exec FILE** runs an operation script, use - for stdin
* **load** bulk inserts a generated workload and validates the result
* **dashboard** shows nodes per level and lookup statistics
* **settings** prints (and creates) ~/.avlkit.yaml

# 2. Script language
* insert K... / remove K... / find K...
* inorder, preorder, postorder, bfs, levels
* height, size, empty, check, min, max, print, clear
* load WORKLOAD N [SEED], see the workloads below
* Lines starting with # are comments

# 3. Workloads
%s

# 4. Guarantees
* Keys are unique, inserting an existing key changes nothing
* Heights of sibling sub-trees differ by at most one after every change
* In-order traversal is always strictly ascending

# License
Licensed under the Apache License, Version 2.0

`, version, runtime.Version(), workloadList())
	result := markdown.Render(message, 80, 3)
	return string(result)
}

func workloadList() string {
	var sb strings.Builder
	for _, line := range workloadUsage(workload.NewManager()) {
		sb.WriteString("* " + line + "\n")
	}
	return sb.String()
}
