// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 vincent-4

package ui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	promptStyle   = lipgloss.NewStyle().Bold(true)
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	warnStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	successStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	identStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// Styled text helpers for callers composing messages outside this package.

func Title(s string) string      { return titleStyle.Render(s) }
func ErrorText(s string) string  { return errorStyle.Render(s) }
func Warn(s string) string       { return warnStyle.Render(s) }
func Success(s string) string    { return successStyle.Render(s) }
func Identifier(s string) string { return identStyle.Render(s) }
