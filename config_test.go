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
	"strings"
	"testing"
	"time"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), configFileName)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	config, err := loadConfigFrom(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *config != defaultConfig {
		t.Errorf("config = %+v; want defaults %+v", *config, defaultConfig)
	}
}

func TestLoadConfigPartialOverride(t *testing.T) {
	path := writeTempConfig(t, "tree:\n  key_mode: string\nanimation:\n  step_delay_ms: 50\n")

	config, _ := loadConfigFrom(path)
	if config.Tree.KeyMode != KeyModeString {
		t.Errorf("KeyMode = %q; want %q", config.Tree.KeyMode, KeyModeString)
	}
	if config.Animation.StepDelay() != 50*time.Millisecond {
		t.Errorf("StepDelay() = %v; want 50ms", config.Animation.StepDelay())
	}
	// untouched fields keep their defaults
	if config.Animation.HighlightMs != defaultConfig.Animation.HighlightMs {
		t.Errorf("HighlightMs = %d; want %d", config.Animation.HighlightMs, defaultConfig.Animation.HighlightMs)
	}
	if !config.Tree.ShowBalance {
		t.Error("ShowBalance = false; want default true")
	}
}

func TestLoadConfigNormalizesBadValues(t *testing.T) {
	path := writeTempConfig(t, "tree:\n  key_mode: hex\nanimation:\n  delete_delay_ms: -5\nrender:\n  cache_minutes: 0\n")

	config, _ := loadConfigFrom(path)
	if config.Tree.KeyMode != KeyModeNumber {
		t.Errorf("KeyMode = %q; want fallback %q", config.Tree.KeyMode, KeyModeNumber)
	}
	if config.Animation.DeleteDelayMs != defaultConfig.Animation.DeleteDelayMs {
		t.Errorf("DeleteDelayMs = %d; want %d", config.Animation.DeleteDelayMs, defaultConfig.Animation.DeleteDelayMs)
	}
	if config.Render.CacheMinutes != defaultConfig.Render.CacheMinutes {
		t.Errorf("CacheMinutes = %d; want %d", config.Render.CacheMinutes, defaultConfig.Render.CacheMinutes)
	}
}

func TestLoadConfigInvalidYAMLUsesDefaults(t *testing.T) {
	path := writeTempConfig(t, "tree: [unterminated")

	config, err := loadConfigFrom(path)
	if err == nil {
		t.Fatal("expected a parse error for invalid YAML")
	}
	if !strings.Contains(err.Error(), path) {
		t.Errorf("error %q does not name the file %s", err, path)
	}
	if config == nil || *config != defaultConfig {
		t.Errorf("config = %+v; want defaults", config)
	}
}

func TestWriteConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), configFileName)
	want := defaultConfig
	want.Tree.KeyMode = KeyModeString
	want.Animation.StepDelayMs = 10

	if err := writeConfigFile(path, &want); err != nil {
		t.Fatalf("writeConfigFile() error: %v", err)
	}
	got, _ := loadConfigFrom(path)
	if *got != want {
		t.Errorf("loaded %+v; want %+v", *got, want)
	}
}

func TestDefaultsAreCopies(t *testing.T) {
	c := defaults()
	c.Tree.KeyMode = KeyModeString
	if defaultConfig.Tree.KeyMode != KeyModeNumber {
		t.Error("mutating defaults() changed defaultConfig")
	}
}
