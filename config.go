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

const configFileName = ".arbor.yaml"

// Key modes accepted by tree.key_mode and --mode
const (
	KeyModeNumber = "number"
	KeyModeString = "string"
)

type TreeConfig struct {
	KeyMode     string `yaml:"key_mode"`
	ShowBalance bool   `yaml:"show_balance"`
}

type AnimationConfig struct {
	StepDelayMs   int `yaml:"step_delay_ms"`
	HighlightMs   int `yaml:"highlight_ms"`
	DeleteDelayMs int `yaml:"delete_delay_ms"`
}

type RenderConfig struct {
	CacheMinutes int `yaml:"cache_minutes"`
}

type Config struct {
	Tree      TreeConfig      `yaml:"tree"`
	Animation AnimationConfig `yaml:"animation"`
	Render    RenderConfig    `yaml:"render"`
}

var defaultConfig = Config{
	Tree: TreeConfig{
		KeyMode:     KeyModeNumber,
		ShowBalance: true,
	},
	Animation: AnimationConfig{
		StepDelayMs:   500,
		HighlightMs:   3000,
		DeleteDelayMs: 2000,
	},
	Render: RenderConfig{
		CacheMinutes: 30,
	},
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFileName), nil
}

// LoadConfig reads ~/.arbor.yaml. A missing file yields the defaults. A file
// that cannot be read or parsed yields the defaults together with the error,
// so callers can report it and still start.
func LoadConfig() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return defaults(), nil
	}
	return loadConfigFrom(configPath)
}

func loadConfigFrom(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return defaults(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return defaults(), fmt.Errorf("reading %s: %w", configPath, err)
	}

	// start from the defaults so a partial file only overrides what it names
	config := defaults()
	if err := yaml.Unmarshal(data, config); err != nil {
		return defaults(), fmt.Errorf("parsing %s: %w", configPath, err)
	}
	config.normalize()

	return config, nil
}

func defaults() *Config {
	c := defaultConfig
	return &c
}

// normalize replaces out-of-range values with the defaults.
func (c *Config) normalize() {
	if c.Tree.KeyMode != KeyModeNumber && c.Tree.KeyMode != KeyModeString {
		c.Tree.KeyMode = defaultConfig.Tree.KeyMode
	}
	if c.Animation.StepDelayMs < 0 {
		c.Animation.StepDelayMs = defaultConfig.Animation.StepDelayMs
	}
	if c.Animation.HighlightMs < 0 {
		c.Animation.HighlightMs = defaultConfig.Animation.HighlightMs
	}
	if c.Animation.DeleteDelayMs < 0 {
		c.Animation.DeleteDelayMs = defaultConfig.Animation.DeleteDelayMs
	}
	if c.Render.CacheMinutes <= 0 {
		c.Render.CacheMinutes = defaultConfig.Render.CacheMinutes
	}
}

func (a AnimationConfig) StepDelay() time.Duration {
	return time.Duration(a.StepDelayMs) * time.Millisecond
}

func (a AnimationConfig) Highlight() time.Duration {
	return time.Duration(a.HighlightMs) * time.Millisecond
}

func (a AnimationConfig) DeleteDelay() time.Duration {
	return time.Duration(a.DeleteDelayMs) * time.Millisecond
}

func writeConfigFile(configPath string, config *Config) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %v", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %v", err)
	}
	return nil
}

func createDefaultConfigFile() error {
	configPath, err := getConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %v", err)
	}
	return writeConfigFile(configPath, &defaultConfig)
}

func displaySettings() {
	configPath, err := getConfigPath()
	if err != nil {
		fmt.Printf("❌ Failed to get config path: %v\n", err)
		return
	}

	config, err := LoadConfig()
	if err != nil {
		fmt.Printf("⚠️  %v. Showing default settings.\n\n", err)
	}

	configExists := true
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		configExists = false
		fmt.Printf("📝 Configuration file not found. Creating default configuration...\n\n")

		if err := createDefaultConfigFile(); err != nil {
			fmt.Printf("❌ Failed to create default config file: %v\n", err)
			return
		}
		fmt.Printf("✅ Created default configuration at: %s\n\n", configPath)
	}

	fmt.Printf("🔧 Arbor Configuration Settings\n")
	fmt.Printf("═══════════════════════════════════\n\n")

	if configExists {
		fmt.Printf("📍 Config file: %s\n", configPath)
	} else {
		fmt.Printf("📍 Config file: %s (newly created)\n", configPath)
	}

	fmt.Printf("📊 Current settings:\n\n")

	fmt.Printf("🌳 %sTree:%s\n", Green, Reset)
	fmt.Printf("  • %skey_mode%s: %s\n", Green, Reset, config.Tree.KeyMode)
	if config.Tree.KeyMode == KeyModeNumber {
		fmt.Printf("    Keys are integers compared by value\n")
	} else {
		fmt.Printf("    Keys are strings compared lexicographically\n")
	}
	fmt.Printf("  • %sshow_balance%s: %t\n\n", Green, Reset, config.Tree.ShowBalance)

	fmt.Printf("🎞  %sAnimation:%s\n", Green, Reset)
	fmt.Printf("  • %sstep_delay_ms%s: %d\n", Green, Reset, config.Animation.StepDelayMs)
	fmt.Printf("  • %shighlight_ms%s: %d\n", Green, Reset, config.Animation.HighlightMs)
	fmt.Printf("  • %sdelete_delay_ms%s: %d\n\n", Green, Reset, config.Animation.DeleteDelayMs)

	fmt.Printf("🖼  %sRender:%s\n", Green, Reset)
	fmt.Printf("  • %scache_minutes%s: %d\n\n", Green, Reset, config.Render.CacheMinutes)

	fmt.Printf("💡 To switch to string keys, edit %s:\n", configPath)
	fmt.Printf("   tree:\n     key_mode: string\n")
}
