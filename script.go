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
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-shellwords"
	"github.com/patrickmn/go-cache"

	"github.com/cybrota/avlkit/avl"
	"github.com/cybrota/avlkit/workload"
)

// Op is one parsed script line, e.g. "insert 5 3 8"
type Op struct {
	Name string
	Args []string
}

// ParseLine splits a script line into an operation. Blank lines and
// comments yield a nil Op.
func ParseLine(line string) (*Op, error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return nil, nil
	}

	parts, err := shellwords.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("failed to split %q: %w", trimmed, err)
	}
	if len(parts) == 0 {
		return nil, nil
	}
	return &Op{Name: strings.ToLower(parts[0]), Args: parts[1:]}, nil
}

func parseKeys(args []string) ([]int, error) {
	if len(args) == 0 {
		return nil, errors.New("missing key")
	}
	keys := make([]int, len(args))
	for i, arg := range args {
		k, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid key %q: %w", arg, err)
		}
		keys[i] = k
	}
	return keys, nil
}

func joinKeys(keys []int) string {
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = strconv.Itoa(k)
	}
	return strings.Join(parts, " ")
}

// Session executes operations against one guarded tree
type Session struct {
	tree      *GuardedTree
	renders   *cache.Cache
	workloads *workload.Manager
}

// NewSession creates an empty tree with its render cache and workloads
func NewSession(config *Config) *Session {
	return &Session{
		tree:      NewGuardedTree(config.Filter),
		renders:   NewRenderCache(config.Cache),
		workloads: workload.NewManager(),
	}
}

// Tree returns the guarded tree the session mutates
func (s *Session) Tree() *GuardedTree {
	return s.tree
}

// Render returns the cached ASCII picture of the current tree
func (s *Session) Render() string {
	var picture string
	s.tree.View(func(tree *avl.Tree) {
		picture = RenderTree(s.renders, tree)
	})
	return picture
}

// Exec parses and runs a single line, returning its output lines.
// A failed line leaves the tree untouched.
func (s *Session) Exec(line string) ([]string, error) {
	op, err := ParseLine(line)
	if err != nil || op == nil {
		return nil, err
	}
	return s.Apply(op)
}

// Apply runs a parsed operation against the session tree
func (s *Session) Apply(op *Op) ([]string, error) {
	switch op.Name {
	case "insert", "add":
		keys, err := parseKeys(op.Args)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op.Name, err)
		}
		added := 0
		for _, k := range keys {
			if s.tree.Insert(k) {
				added++
			}
		}
		return []string{fmt.Sprintf("inserted %d of %d", added, len(keys))}, nil

	case "remove", "delete":
		keys, err := parseKeys(op.Args)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op.Name, err)
		}
		removed := 0
		for _, k := range keys {
			if s.tree.Remove(k) {
				removed++
			}
		}
		return []string{fmt.Sprintf("removed %d of %d", removed, len(keys))}, nil

	case "find", "contains":
		keys, err := parseKeys(op.Args)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op.Name, err)
		}
		out := make([]string, len(keys))
		for i, k := range keys {
			out[i] = fmt.Sprintf("%d: %t", k, s.tree.Find(k))
		}
		return out, nil

	case "load":
		return s.load(op.Args)

	case "clear":
		s.tree.Clear()
		return []string{"cleared"}, nil

	case "print":
		picture := s.Render()
		if picture == "" {
			return []string{"(empty)"}, nil
		}
		return strings.Split(strings.TrimSuffix(picture, "\n"), "\n"), nil
	}

	var (
		out []string
		err error
	)
	known := true
	s.tree.View(func(tree *avl.Tree) {
		switch op.Name {
		case "inorder":
			out = []string{joinKeys(tree.InOrder())}
		case "preorder":
			out = []string{joinKeys(tree.PreOrder())}
		case "postorder":
			out = []string{joinKeys(tree.PostOrder())}
		case "bfs":
			out = []string{joinKeys(tree.BFS())}
		case "levels":
			for depth, level := range tree.Levels() {
				out = append(out, fmt.Sprintf("%d: %s", depth, joinKeys(level)))
			}
		case "height":
			out = []string{strconv.Itoa(tree.Height())}
		case "size":
			out = []string{strconv.Itoa(tree.Size())}
		case "empty":
			out = []string{strconv.FormatBool(tree.IsEmpty())}
		case "check":
			if verr := tree.Validate(); verr != nil {
				out = []string{verr.Error()}
			} else {
				out = []string{"ok"}
			}
		case "min", "max":
			v, merr := tree.Min()
			if op.Name == "max" {
				v, merr = tree.Max()
			}
			if errors.Is(merr, avl.ErrEmptyTree) {
				out = []string{"empty tree"}
			} else {
				out = []string{strconv.Itoa(v)}
			}
		default:
			known = false
		}
	})
	if !known {
		err = fmt.Errorf("unknown command %q", op.Name)
	}
	return out, err
}

// load WORKLOAD N [SEED]
func (s *Session) load(args []string) ([]string, error) {
	if len(args) < 2 {
		return nil, errors.New("load: usage load WORKLOAD N [SEED]")
	}
	g, err := s.workloads.Get(args[0])
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	n, err := strconv.Atoi(args[1])
	if err != nil {
		return nil, fmt.Errorf("load: invalid count %q: %w", args[1], err)
	}
	if err := workload.CheckCount(n); err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	var seed int64
	if len(args) > 2 {
		if seed, err = strconv.ParseInt(args[2], 10, 64); err != nil {
			return nil, fmt.Errorf("load: invalid seed %q: %w", args[2], err)
		}
	}

	added := s.tree.InsertAll(g.Keys(n, seed), nil)
	return []string{fmt.Sprintf("loaded %d keys (%s)", added, g.Name())}, nil
}

// RunScript executes r line by line, writing output to w. It stops at
// the first failing line.
func (s *Session) RunScript(r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		out, err := s.Exec(scanner.Text())
		if err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
		for _, line := range out {
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
	}
	return scanner.Err()
}
