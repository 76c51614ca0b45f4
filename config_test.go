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
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/cybrota/avlkit/workload"
)

func TestLoadConfigFromMissingFile(t *testing.T) {
	config, err := LoadConfigFrom(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *config != defaultConfig {
		t.Errorf("config = %+v; want defaults %+v", *config, defaultConfig)
	}
}

func TestLoadConfigFromPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "avlkit.yaml")
	data := `
workload:
  pattern: zigzag
  count: 64
filter:
  hashes: 7
cache:
  expiration: 90s
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	config, err := LoadConfigFrom(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if config.Workload.Pattern != "zigzag" || config.Workload.Count != 64 {
		t.Errorf("workload = %+v", config.Workload)
	}
	if config.Workload.Seed != defaultConfig.Workload.Seed {
		t.Errorf("seed = %d; want default %d", config.Workload.Seed, defaultConfig.Workload.Seed)
	}
	if config.Filter.Hashes != 7 || config.Filter.Size != defaultConfig.Filter.Size {
		t.Errorf("filter = %+v", config.Filter)
	}
	if config.Cache.Expiration != 90*time.Second {
		t.Errorf("expiration = %v; want 90s", config.Cache.Expiration)
	}
	if !config.Display.Color {
		t.Errorf("display.color lost its default")
	}
}

func TestLoadConfigFromMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "avlkit.yaml")
	if err := os.WriteFile(path, []byte("workload: [unterminated"), 0644); err != nil {
		t.Fatal(err)
	}

	config, err := LoadConfigFrom(path)
	if err == nil {
		t.Fatalf("expected a parse error")
	}
	if *config != defaultConfig {
		t.Errorf("malformed file should fall back to defaults, got %+v", *config)
	}
}

func TestWriteConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "avlkit.yaml")
	want := DefaultConfig()
	want.Workload.Pattern = "descending"
	want.Cache.Cleanup = time.Minute

	if err := writeConfigFile(path, want); err != nil {
		t.Fatalf("writeConfigFile: %v", err)
	}
	got, err := LoadConfigFrom(path)
	if err != nil {
		t.Fatalf("LoadConfigFrom: %v", err)
	}
	if *got != *want {
		t.Errorf("round trip = %+v; want %+v", *got, *want)
	}
}

func TestApplyDefaultsRepairsZeroValues(t *testing.T) {
	config := &Config{Workload: WorkloadConfig{Count: -5}}
	config.applyDefaults()

	if config.Workload.Pattern != defaultConfig.Workload.Pattern {
		t.Errorf("pattern = %q", config.Workload.Pattern)
	}
	if config.Workload.Count != 0 {
		t.Errorf("count = %d; want 0", config.Workload.Count)
	}
	if config.Filter.Size == 0 || config.Filter.Hashes == 0 {
		t.Errorf("filter not repaired: %+v", config.Filter)
	}
	if config.Cache.Expiration <= 0 || config.Cache.Cleanup <= 0 {
		t.Errorf("cache not repaired: %+v", config.Cache)
	}
}

func TestLoadConfigClampsWorkloadCount(t *testing.T) {
	path := filepath.Join(t.TempDir(), "avlkit.yaml")
	if err := os.WriteFile(path, []byte("workload:\n  count: 4611686018427387904\n"), 0644); err != nil {
		t.Fatal(err)
	}

	config, err := LoadConfigFrom(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if config.Workload.Count != workload.MaxCount {
		t.Errorf("count = %d; want %d", config.Workload.Count, workload.MaxCount)
	}
}
