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
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const configFileName = ".ranktree.yaml"

type IndexConfig struct {
	BloomSize    uint          `yaml:"bloom_size"`
	BloomHashes  uint          `yaml:"bloom_hashes"`
	CacheTTL     time.Duration `yaml:"cache_ttl"`
	CacheCleanup time.Duration `yaml:"cache_cleanup"`
}

type RenderConfig struct {
	MaxNodes int `yaml:"max_nodes"`
}

type BenchConfig struct {
	Sizes []int  `yaml:"sizes"`
	Seed  uint64 `yaml:"seed"`
}

type Config struct {
	Index  IndexConfig  `yaml:"index"`
	Render RenderConfig `yaml:"render"`
	Bench  BenchConfig  `yaml:"bench"`
}

func defaultConfig() *Config {
	return &Config{
		Index: IndexConfig{
			BloomSize:    1 << 16,
			BloomHashes:  4,
			CacheTTL:     30 * time.Minute,
			CacheCleanup: 5 * time.Minute,
		},
		Render: RenderConfig{
			MaxNodes: 64,
		},
		Bench: BenchConfig{
			Sizes: []int{1000, 2000, 4000, 8000, 16000},
			Seed:  1,
		},
	}
}

// LoadConfig reads ~/.ranktree.yaml. Any problem with the file falls back to
// the defaults, so callers always get a usable configuration.
func LoadConfig() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return defaultConfig(), nil
	}
	return loadConfigFrom(configPath)
}

func loadConfigFrom(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return defaultConfig(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return defaultConfig(), nil
	}

	// fields missing from the file keep their defaults
	config := defaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return defaultConfig(), fmt.Errorf("invalid config %s: %w", configPath, err)
	}
	config.normalize()
	return config, nil
}

// normalize replaces values that would make a component unusable.
func (c *Config) normalize() {
	d := defaultConfig()
	if c.Index.BloomSize == 0 {
		c.Index.BloomSize = d.Index.BloomSize
	}
	if c.Index.BloomHashes == 0 {
		c.Index.BloomHashes = d.Index.BloomHashes
	}
	if c.Index.CacheTTL <= 0 {
		c.Index.CacheTTL = d.Index.CacheTTL
	}
	if c.Index.CacheCleanup <= 0 {
		c.Index.CacheCleanup = d.Index.CacheCleanup
	}
	if c.Render.MaxNodes <= 0 {
		c.Render.MaxNodes = d.Render.MaxNodes
	}
	if len(c.Bench.Sizes) == 0 {
		c.Bench.Sizes = d.Bench.Sizes
	}
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFileName), nil
}

func writeDefaultConfig(configPath string) error {
	data, err := yaml.Marshal(defaultConfig())
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %v", err)
	}

	err = os.WriteFile(configPath, data, 0644)
	if err != nil {
		return fmt.Errorf("failed to write config file: %v", err)
	}

	return nil
}

func displaySettings() error {
	configPath, err := getConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	configExists := true
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		configExists = false
		fmt.Printf("📝 Configuration file not found. Creating default configuration...\n\n")

		if err := writeDefaultConfig(configPath); err != nil {
			return err
		}
		fmt.Printf("✅ Created default configuration at: %s\n\n", configPath)
	}

	config, err := loadConfigFrom(configPath)
	if err != nil {
		return err
	}

	fmt.Printf("🔧 ranktree Configuration Settings\n")
	fmt.Printf("═══════════════════════════════════\n\n")

	if configExists {
		fmt.Printf("📍 Config file: %s\n", configPath)
	} else {
		fmt.Printf("📍 Config file: %s (newly created)\n", configPath)
	}

	fmt.Printf("📊 Current settings:\n\n")

	fmt.Printf("🔍 %sLookup index:%s\n", Green, Reset)
	fmt.Printf("  • %sbloom_size%s: %d bits\n", Green, Reset, config.Index.BloomSize)
	fmt.Printf("  • %sbloom_hashes%s: %d\n", Green, Reset, config.Index.BloomHashes)
	fmt.Printf("  • %scache_ttl%s: %s\n", Green, Reset, config.Index.CacheTTL)
	fmt.Printf("  • %scache_cleanup%s: %s\n\n", Green, Reset, config.Index.CacheCleanup)

	fmt.Printf("🌳 %sRendering:%s\n", Green, Reset)
	fmt.Printf("  • %smax_nodes%s: %d\n\n", Green, Reset, config.Render.MaxNodes)

	fmt.Printf("⏱  %sBench:%s\n", Green, Reset)
	fmt.Printf("  • %ssizes%s: %v\n", Green, Reset, config.Bench.Sizes)
	fmt.Printf("  • %sseed%s: %d\n", Green, Reset, config.Bench.Seed)
	return nil
}
