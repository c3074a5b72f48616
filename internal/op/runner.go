// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 vincent-4

package op

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os/exec"
	"strings"
)

// Runner executes one external command and returns its stdout. It exists so
// the Client can be tested against a fake instead of a real op binary.
type Runner interface {
	Output(name string, args ...string) ([]byte, error)
}

// ErrOpNotFound reports that the op binary could not be found at all. It is
// the one invocation failure callers are expected to distinguish, since
// "op is not installed" should not read as "the vault is empty".
var ErrOpNotFound = errors.New("1Password CLI (op) not found")

type execRunner struct{}

// NewRunner returns a Runner backed by os/exec.
func NewRunner() Runner {
	return execRunner{}
}

func (execRunner) Output(name string, args ...string) ([]byte, error) {
	cmd := exec.Command(name, args...)
	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf

	if err := cmd.Run(); err != nil {
		// exec.ErrNotFound covers PATH lookups; fs.ErrNotExist covers an
		// explicit op_path pointing at a file that isn't there.
		if errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %q does not exist", ErrOpNotFound, name)
		}
		if exitErr, ok := err.(*exec.ExitError); ok {
			stderr := strings.TrimSpace(stderrBuf.String())
			if stderr != "" {
				return stdoutBuf.Bytes(), fmt.Errorf("%s exited with status %d: %s", name, exitErr.ExitCode(), stderr)
			}
			return stdoutBuf.Bytes(), fmt.Errorf("%s exited with status %d", name, exitErr.ExitCode())
		}
		return stdoutBuf.Bytes(), fmt.Errorf("%s failed: %w", name, err)
	}
	return stdoutBuf.Bytes(), nil
}
