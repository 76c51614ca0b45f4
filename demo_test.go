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
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestRunDemo(t *testing.T) {
	var buf bytes.Buffer
	if err := runDemo(&buf); err != nil {
		t.Fatalf("runDemo: %v", err)
	}
	out := buf.String()

	expected := []string{
		"== round trip ==",
		"inorder:   [1 2 3 4 5 6 7 8 9]",
		"== ascending insert (left rotation) ==",
		"preorder:  [2 1 3]",
		"== two-child delete ==",
		"inorder:   [1 3 4 7 8 9]",
		"└── 7 (h:3)",
		"original:  [1 3 4 5 7 8 9]",
		"copy:      [1 4 5 7 8 9 10]",
	}
	for _, want := range expected {
		if !strings.Contains(out, want) {
			t.Errorf("demo output missing %q", want)
		}
	}
	if strings.Contains(out, "avl: false") {
		t.Errorf("demo produced an unbalanced tree:\n%s", out)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestRunDemoReportsWriteErrors(t *testing.T) {
	err := runDemo(failingWriter{})
	if err == nil || !strings.Contains(err.Error(), "disk full") {
		t.Errorf("runDemo error = %v; want the writer error", err)
	}
}
