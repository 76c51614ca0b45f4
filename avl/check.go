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
	"fmt"
)

// ViolationKind names the invariant a ViolationError reports.
type ViolationKind int

const (
	OrderViolation   ViolationKind = iota // key outside the range allowed by its ancestors
	BalanceViolation                      // sub-tree heights differ by more than one
	HeightViolation                       // cached height disagrees with the actual shape
	CountViolation                        // node count disagrees with Size
)

func (k ViolationKind) String() string {
	switch k {
	case OrderViolation:
		return "order"
	case BalanceViolation:
		return "balance"
	case HeightViolation:
		return "height"
	case CountViolation:
		return "count"
	default:
		return fmt.Sprintf("ViolationKind(%d)", int(k))
	}
}

// ViolationError describes the first broken invariant found by Validate.
type ViolationError struct {
	Kind   ViolationKind
	Key    int // offending node, root key for CountViolation
	Detail string
}

func (e *ViolationError) Error() string {
	return fmt.Sprintf("avl: %s violation at %d: %s", e.Kind, e.Key, e.Detail)
}

// IsAVL recomputes every sub-tree height from scratch, ignoring the
// cached values, and reports whether every node is height-balanced.
func (tree *Tree) IsAVL() bool {
	_, ok := balancedHeight(tree.root)
	return ok
}

func balancedHeight(node *Node) (int, bool) {
	if node == nil {
		return 0, true
	}
	lh, ok := balancedHeight(node.left)
	if !ok {
		return 0, false
	}
	rh, ok := balancedHeight(node.right)
	if !ok {
		return 0, false
	}
	if lh-rh > 1 || rh-lh > 1 {
		return 0, false
	}
	return 1 + max(lh, rh), true
}

// Validate checks the ordering, balance, cached height and node count
// invariants and returns a *ViolationError for the first one broken.
func (tree *Tree) Validate() error {
	var c checker
	if _, err := c.walk(tree.root); err != nil {
		return err
	}
	if c.count != tree.count {
		key := 0
		if tree.root != nil {
			key = tree.root.value
		}
		return &ViolationError{
			Kind:   CountViolation,
			Key:    key,
			Detail: fmt.Sprintf("found %d nodes, size is %d", c.count, tree.count),
		}
	}
	return nil
}

// checker walks the tree in order so that every key must exceed the
// previous one.
type checker struct {
	count   int
	last    int
	started bool
}

func (c *checker) walk(node *Node) (int, error) {
	if node == nil {
		return 0, nil
	}

	lh, err := c.walk(node.left)
	if err != nil {
		return 0, err
	}

	if c.started && node.value <= c.last {
		return 0, &ViolationError{
			Kind:   OrderViolation,
			Key:    node.value,
			Detail: fmt.Sprintf("follows %d in order", c.last),
		}
	}
	c.last = node.value
	c.started = true
	c.count += 1

	rh, err := c.walk(node.right)
	if err != nil {
		return 0, err
	}

	if bf := lh - rh; bf > 1 || bf < -1 {
		return 0, &ViolationError{
			Kind:   BalanceViolation,
			Key:    node.value,
			Detail: fmt.Sprintf("balance factor %+d", bf),
		}
	}
	actual := 1 + max(lh, rh)
	if node.height != actual {
		return 0, &ViolationError{
			Kind:   HeightViolation,
			Key:    node.value,
			Detail: fmt.Sprintf("cached %d, actual %d", node.height, actual),
		}
	}
	return actual, nil
}
