// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 vincent-4

package main

import "github.com/vincent-4/1password-utils/cmd/cli"

func main() {
	cli.RunCLI()
}
