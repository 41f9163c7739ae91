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
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Palette holds every color the tree renderer and the TUI draw with.
type Palette struct {
	Levels    []lipgloss.Color // cycled by node depth
	NodeText  lipgloss.Color
	Edge      lipgloss.Color
	Path      lipgloss.Color // search path
	Found     lipgloss.Color
	Target    lipgloss.Color // node about to be deleted
	Border    lipgloss.Color
	Focus     lipgloss.Color
	TextMuted lipgloss.Color
}

type TerminalMode int

const (
	TerminalModeUnknown TerminalMode = iota
	TerminalModeLight
	TerminalModeDark
)

var (
	currentPalette *Palette
	detectedMode   TerminalMode

	// ANSI prefixes for plain CLI output
	Green, Info, Warning, Error, Reset = "\033[92m", "\033[96m", "\033[93m", "\033[91m", "\033[0m"
)

// detectTerminalMode attempts to detect whether the terminal is in light or dark mode
func detectTerminalMode() TerminalMode {
	if colorScheme := os.Getenv("COLORFGBG"); colorScheme != "" {
		// COLORFGBG format is typically "foreground;background"
		parts := strings.Split(colorScheme, ";")
		if len(parts) >= 2 {
			bg := parts[len(parts)-1]
			if bg == "0" || bg == "8" || bg == "16" {
				return TerminalModeDark
			} else if bg == "15" || bg == "7" || bg == "255" {
				return TerminalModeLight
			}
		}
	}

	for _, env := range []string{"TERM_THEME", "THEME"} {
		if theme := strings.ToLower(os.Getenv(env)); theme != "" {
			if strings.Contains(theme, "dark") {
				return TerminalModeDark
			} else if strings.Contains(theme, "light") {
				return TerminalModeLight
			}
		}
	}

	// Default to dark mode as it's more common in terminals
	return TerminalModeDark
}

// createLightPalette darkens the level colors so white node labels stay readable
func createLightPalette() *Palette {
	return &Palette{
		Levels: []lipgloss.Color{
			"#c45f00", "#0a7d0a", "#1f3fcc", "#4a4a4a", "#7a0e99", "#008a83",
		},
		NodeText:  "#ffffff",
		Edge:      "#444444",
		Path:      "#b58900",
		Found:     "#b58900",
		Target:    "#cc0000",
		Border:    "8",
		Focus:     "4",
		TextMuted: "240",
	}
}

func createDarkPalette() *Palette {
	return &Palette{
		Levels: []lipgloss.Color{
			"#ff8d0c", "#10b810", "#3357FF", "#646464", "#a113c9", "#00c7bd",
		},
		NodeText:  "#000000",
		Edge:      "#bbbbbb",
		Path:      "#ffff00",
		Found:     "#ffff00",
		Target:    "#ff0000",
		Border:    "240",
		Focus:     "14",
		TextMuted: "245",
	}
}

// InitializeColors detects terminal mode and sets up the matching palette
// and ANSI codes.
func InitializeColors() {
	detectedMode = detectTerminalMode()

	switch detectedMode {
	case TerminalModeLight:
		currentPalette = createLightPalette()
	default:
		currentPalette = createDarkPalette()
	}
	Green, Info, Warning, Error, Reset = GetANSIColors()
}

// GetPalette returns the current palette
func GetPalette() *Palette {
	if currentPalette == nil {
		InitializeColors()
	}
	return currentPalette
}

// LevelColor returns the fill color for a node at depth.
func (p *Palette) LevelColor(depth int) lipgloss.Color {
	return p.Levels[depth%len(p.Levels)]
}

func GetANSIColors() (success, info, warning, error, reset string) {
	// For light mode terminals, use darker colors for better contrast
	if detectedMode == TerminalModeLight {
		success = "\033[32m"
		info = "\033[34m"
		warning = "\033[33m"
		error = "\033[31m"
	} else {
		success = "\033[92m"
		info = "\033[96m"
		warning = "\033[93m"
		error = "\033[91m"
	}

	reset = "\033[0m"
	return
}
