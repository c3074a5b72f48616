// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 vincent-4

package util

import "strings"

const shellSpecial = " \t\n'\"`\\$&|;<>()*?[]#~%!{}"

// QuoteArgForShell quotes an argument for safe display as part of a POSIX
// shell command line. Arguments without special characters pass through
// unquoted so rendered commands stay readable.
func QuoteArgForShell(arg string) string {
	if arg != "" && !strings.ContainsAny(arg, shellSpecial) {
		return arg
	}
	quoted := strings.ReplaceAll(arg, "'", `'\''`)
	return `'` + quoted + `'`
}

// JoinCommand renders an argv as a single copy-pasteable shell line.
func JoinCommand(argv []string) string {
	quoted := make([]string, len(argv))
	for i, arg := range argv {
		quoted[i] = QuoteArgForShell(arg)
	}
	return strings.Join(quoted, " ")
}
