// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 vincent-4

package ui

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
)

// ErrSelectionCancelled reports that the operator backed out of a menu.
var ErrSelectionCancelled = errors.New("selection cancelled")

// Picker is a Console whose Select uses an arrow-key menu when stdin is a
// terminal. Everything else, including Select on pipes and redirects, defers
// to the embedded numbered-menu Stdio.
type Picker struct {
	*Stdio
}

// NewPicker builds a Picker over the process's standard streams.
func NewPicker() *Picker {
	return &Picker{Stdio: NewStdio(os.Stdin, os.Stdout)}
}

func (p *Picker) Select(label string, options []string) (int, error) {
	if !isatty.IsTerminal(os.Stdin.Fd()) {
		return p.Stdio.Select(label, options)
	}

	m := pickerModel{label: label, options: options, selected: -1}
	final, err := tea.NewProgram(m).Run()
	if err != nil {
		return 0, err
	}
	result, ok := final.(pickerModel)
	if !ok || result.selected < 0 {
		return 0, ErrSelectionCancelled
	}
	return result.selected, nil
}

type pickerKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

var pickerKeys = pickerKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter"),
	),
	Quit: key.NewBinding(
		key.WithKeys("esc", "ctrl+c", "q"),
	),
}

type pickerModel struct {
	label    string
	options  []string
	cursor   int
	selected int
}

func (m pickerModel) Init() tea.Cmd {
	return nil
}

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(keyMsg, pickerKeys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, pickerKeys.Down):
		if m.cursor < len(m.options)-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, pickerKeys.Select):
		m.selected = m.cursor
		return m, tea.Quit
	case key.Matches(keyMsg, pickerKeys.Quit):
		return m, tea.Quit
	}
	return m, nil
}

func (m pickerModel) View() string {
	var b strings.Builder
	b.WriteString(promptStyle.Render(m.label))
	b.WriteString("\n\n")
	for i, option := range m.options {
		if i == m.cursor {
			fmt.Fprintf(&b, "%s %s\n", cursorStyle.Render(">"), selectedStyle.Render(option))
		} else {
			fmt.Fprintf(&b, "  %s\n", option)
		}
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("up/down move, enter select, esc cancel"))
	b.WriteString("\n")
	return b.String()
}
