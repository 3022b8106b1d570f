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

type ColorScheme struct {
	Primary   lipgloss.Color
	Accent    lipgloss.Color
	Success   lipgloss.Color
	Warning   lipgloss.Color
	Error     lipgloss.Color
	Border    lipgloss.Color
	Text      lipgloss.Color
	TextMuted lipgloss.Color
}

type TerminalMode int

const (
	TerminalModeUnknown TerminalMode = iota
	TerminalModeLight
	TerminalModeDark
)

// ANSI escapes for plain (non-TUI) output. InitializeColors fills them in.
var (
	Green = "\033[32m"
	Info  = "\033[34m"
	Error = "\033[31m"
	Reset = "\033[0m"
)

var (
	currentColorScheme *ColorScheme
	detectedMode       TerminalMode
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

func createLightColorScheme() *ColorScheme {
	return &ColorScheme{
		Primary:   lipgloss.Color("4"),
		Accent:    lipgloss.Color("5"),
		Success:   lipgloss.Color("2"),
		Warning:   lipgloss.Color("3"),
		Error:     lipgloss.Color("1"),
		Border:    lipgloss.Color("8"),
		Text:      lipgloss.Color("0"),
		TextMuted: lipgloss.Color("240"),
	}
}

func createDarkColorScheme() *ColorScheme {
	return &ColorScheme{
		Primary:   lipgloss.Color("39"),
		Accent:    lipgloss.Color("205"),
		Success:   lipgloss.Color("46"),
		Warning:   lipgloss.Color("11"),
		Error:     lipgloss.Color("196"),
		Border:    lipgloss.Color("240"),
		Text:      lipgloss.Color("15"),
		TextMuted: lipgloss.Color("243"),
	}
}

// InitializeColors picks the palette for the detected terminal mode. Plain
// escapes are dropped when NO_COLOR is set.
func InitializeColors() {
	detectedMode = detectTerminalMode()
	if detectedMode == TerminalModeLight {
		currentColorScheme = createLightColorScheme()
	} else {
		currentColorScheme = createDarkColorScheme()
	}

	if os.Getenv("NO_COLOR") != "" {
		Green, Info, Error, Reset = "", "", "", ""
		return
	}
	if detectedMode == TerminalModeLight {
		Green, Info, Error, Reset = "\033[32m", "\033[34m", "\033[31m", "\033[0m"
	} else {
		Green, Info, Error, Reset = "\033[92m", "\033[96m", "\033[91m", "\033[0m"
	}
}

func GetColorScheme() *ColorScheme {
	if currentColorScheme == nil {
		InitializeColors()
	}
	return currentColorScheme
}
