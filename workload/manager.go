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

package workload

import (
	"fmt"
	"sort"
)

// Manager keeps the registered generators in priority order
type Manager struct {
	generators []Generator
}

// NewManager creates a manager with all built-in generators
func NewManager() *Manager {
	manager := &Manager{}

	manager.Register(AscendingGenerator{})
	manager.Register(DescendingGenerator{})
	manager.Register(ZigzagGenerator{})
	manager.Register(RandomGenerator{})
	manager.Register(ShuffledGenerator{})

	return manager
}

// Register adds a generator, replacing any previous one with the same name
func (m *Manager) Register(generator Generator) {
	for i, g := range m.generators {
		if g.Name() == generator.Name() {
			m.generators[i] = generator
			return
		}
	}
	m.generators = append(m.generators, generator)
	sort.SliceStable(m.generators, func(i, j int) bool {
		return m.generators[i].Priority() < m.generators[j].Priority()
	})
}

// Get returns the generator registered under name
func (m *Manager) Get(name string) (Generator, error) {
	for _, g := range m.generators {
		if g.Name() == name {
			return g, nil
		}
	}
	return nil, fmt.Errorf("unknown workload %q (available: %v)", name, m.Names())
}

// Names lists the registered generators in priority order
func (m *Manager) Names() []string {
	names := make([]string, len(m.generators))
	for i, g := range m.generators {
		names[i] = g.Name()
	}
	return names
}

// Generators returns the registered generators in priority order
func (m *Manager) Generators() []Generator {
	return append([]Generator(nil), m.generators...)
}
