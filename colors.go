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

type TerminalMode int

// TerminalModeUnknown is reported until the colors are initialized.
const (
	TerminalModeUnknown TerminalMode = iota
	TerminalModeLight
	TerminalModeDark
)

func (m TerminalMode) String() string {
	switch m {
	case TerminalModeLight:
		return "light"
	case TerminalModeDark:
		return "dark"
	default:
		return "unknown"
	}
}

// Styles used for CLI and REPL output
type Styles struct {
	Title   lipgloss.Style
	Value   lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Muted   lipgloss.Style
}

var (
	currentStyles *Styles
	detectedMode  TerminalMode
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

func createLightStyles() *Styles {
	return &Styles{
		Title:   lipgloss.NewStyle().Foreground(lipgloss.Color("4")).Bold(true),
		Value:   lipgloss.NewStyle().Foreground(lipgloss.Color("0")),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	}
}

func createDarkStyles() *Styles {
	return &Styles{
		Title:   lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
		Value:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("46")),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

// InitializeColors detects terminal mode and sets up the matching styles
func InitializeColors() {
	detectedMode = detectTerminalMode()

	switch detectedMode {
	case TerminalModeLight:
		currentStyles = createLightStyles()
	default:
		currentStyles = createDarkStyles()
	}
}

// GetStyles returns the current styles, detecting the terminal mode on first use
func GetStyles() *Styles {
	if currentStyles == nil {
		InitializeColors()
	}
	return currentStyles
}

// GetTerminalMode returns the detected terminal mode
func GetTerminalMode() TerminalMode {
	return detectedMode
}
