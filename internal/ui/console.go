// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 vincent-4

// Package ui provides the console abstraction the dedupe flow talks through,
// plus the interactive selection menus built on top of it.
package ui

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Console is the terminal surface passed explicitly to the orchestration
// layer, so the flow can run against a scripted console in tests instead of
// a real terminal.
type Console interface {
	Printf(format string, a ...any)
	Println(a ...any)

	// Prompt prints label and reads one trimmed line of input.
	Prompt(label string) (string, error)
	// Confirm asks a yes/no question; only "y" (any case) answers yes.
	Confirm(label string) (bool, error)
	// Select presents options and returns the index of the chosen one.
	Select(label string, options []string) (int, error)
}

// Stdio is a plain line-based Console over an arbitrary reader/writer pair.
// Select renders a numbered menu and re-prompts until the answer is valid.
type Stdio struct {
	in  *bufio.Reader
	out io.Writer
}

// NewStdio builds a Stdio console over the given streams.
func NewStdio(in io.Reader, out io.Writer) *Stdio {
	return &Stdio{in: bufio.NewReader(in), out: out}
}

func (c *Stdio) Printf(format string, a ...any) {
	fmt.Fprintf(c.out, format, a...)
}

func (c *Stdio) Println(a ...any) {
	fmt.Fprintln(c.out, a...)
}

func (c *Stdio) Prompt(label string) (string, error) {
	fmt.Fprint(c.out, label)
	line, err := c.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (c *Stdio) Confirm(label string) (bool, error) {
	answer, err := c.Prompt(label)
	if err != nil {
		return false, err
	}
	return strings.EqualFold(answer, "y"), nil
}

func (c *Stdio) Select(label string, options []string) (int, error) {
	fmt.Fprintf(c.out, "\n%s\n\n", promptStyle.Render(label))
	for i, option := range options {
		fmt.Fprintf(c.out, "  %d. %s\n", i+1, option)
	}
	for {
		answer, err := c.Prompt("\nEnter the number of your choice: ")
		if err != nil {
			return 0, err
		}
		choice, convErr := strconv.Atoi(answer)
		if convErr == nil && choice >= 1 && choice <= len(options) {
			return choice - 1, nil
		}
		fmt.Fprintln(c.out, errorStyle.Render("Invalid option. Please try again."))
	}
}
