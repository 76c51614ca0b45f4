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
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/cybrota/avlkit/workload"
)

const configFileName = ".avlkit.yaml"

type WorkloadConfig struct {
	Pattern string `yaml:"pattern"`
	Count   int    `yaml:"count"`
	Seed    int64  `yaml:"seed"`
}

type DisplayConfig struct {
	Color bool `yaml:"color"`
}

type FilterConfig struct {
	Size   uint `yaml:"size"`   // bits in the bloom filter
	Hashes uint `yaml:"hashes"` // hash functions per key
}

type CacheConfig struct {
	Expiration time.Duration `yaml:"expiration"`
	Cleanup    time.Duration `yaml:"cleanup"`
}

type Config struct {
	Workload WorkloadConfig `yaml:"workload"`
	Display  DisplayConfig  `yaml:"display"`
	Filter   FilterConfig   `yaml:"filter"`
	Cache    CacheConfig    `yaml:"cache"`
}

var defaultConfig = Config{
	Workload: WorkloadConfig{
		Pattern: "shuffled",
		Count:   1000,
		Seed:    1,
	},
	Display: DisplayConfig{
		Color: true,
	},
	Filter: FilterConfig{
		Size:   1 << 16,
		Hashes: 4,
	},
	Cache: CacheConfig{
		// Rendered trees go stale on the next mutation anyway
		Expiration: 30 * time.Minute,
		Cleanup:    5 * time.Minute,
	},
}

// DefaultConfig returns a copy of the built-in settings
func DefaultConfig() *Config {
	c := defaultConfig
	return &c
}

// LoadConfig reads ~/.avlkit.yaml, falling back to defaults when the file
// or the home directory is missing.
func LoadConfig() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return DefaultConfig(), nil
	}
	return LoadConfigFrom(configPath)
}

// LoadConfigFrom reads settings from path. A missing file yields the
// defaults; an unreadable or malformed file yields the defaults and an
// error describing why.
func LoadConfigFrom(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return DefaultConfig(), fmt.Errorf("failed to open config %s: %w", path, err)
	}
	defer f.Close()

	config, err := decodeConfig(f)
	if err != nil {
		return DefaultConfig(), fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return config, nil
}

func decodeConfig(r io.Reader) (*Config, error) {
	config := DefaultConfig()
	// fields absent from the file keep their default values
	if err := yaml.NewDecoder(r).Decode(config); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	config.applyDefaults()
	return config, nil
}

// applyDefaults replaces values that would make a component unusable
func (c *Config) applyDefaults() {
	if c.Workload.Pattern == "" {
		c.Workload.Pattern = defaultConfig.Workload.Pattern
	}
	c.Workload.Count = max(0, min(c.Workload.Count, workload.MaxCount))
	if c.Filter.Size == 0 {
		c.Filter.Size = defaultConfig.Filter.Size
	}
	if c.Filter.Hashes == 0 {
		c.Filter.Hashes = defaultConfig.Filter.Hashes
	}
	if c.Cache.Expiration <= 0 {
		c.Cache.Expiration = defaultConfig.Cache.Expiration
	}
	if c.Cache.Cleanup <= 0 {
		c.Cache.Cleanup = defaultConfig.Cache.Cleanup
	}
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFileName), nil
}

func writeConfigFile(path string, config *Config) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func displaySettings(w io.Writer) {
	configPath, err := getConfigPath()
	if err != nil {
		fmt.Fprintf(w, "❌ Failed to get config path: %v\n", err)
		return
	}

	config, err := LoadConfigFrom(configPath)
	if err != nil {
		fmt.Fprintf(w, "❌ Failed to load configuration: %v\n", err)
		return
	}

	configExists := true
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		configExists = false
		fmt.Fprintf(w, "📝 Configuration file not found. Creating default configuration...\n\n")

		if err := writeConfigFile(configPath, config); err != nil {
			fmt.Fprintf(w, "❌ Failed to create default config file: %v\n", err)
			return
		}
		fmt.Fprintf(w, "✅ Created default configuration at: %s\n\n", configPath)
	}

	fmt.Fprintf(w, "🔧 avlkit Configuration Settings\n")
	fmt.Fprintf(w, "═══════════════════════════════\n\n")

	if configExists {
		fmt.Fprintf(w, "📍 Config file: %s\n", configPath)
	} else {
		fmt.Fprintf(w, "📍 Config file: %s (newly created)\n", configPath)
	}

	fmt.Fprintf(w, "📊 Current settings:\n\n")
	printSetting(w, "workload.pattern", config.Workload.Pattern)
	printSetting(w, "workload.count", config.Workload.Count)
	printSetting(w, "workload.seed", config.Workload.Seed)
	printSetting(w, "display.color", config.Display.Color)
	printSetting(w, "filter.size", config.Filter.Size)
	printSetting(w, "filter.hashes", config.Filter.Hashes)
	printSetting(w, "cache.expiration", config.Cache.Expiration)
	printSetting(w, "cache.cleanup", config.Cache.Cleanup)
}

func printSetting(w io.Writer, name string, value any) {
	fmt.Fprintf(w, "  • %s%s%s: %v\n", Green, name, Reset, value)
}
