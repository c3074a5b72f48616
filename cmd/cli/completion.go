// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 vincent-4

package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/vincent-4/1password-utils/internal/op"
)

// vaultCompletionFunc completes the vault-name positional from a live
// `op vault list`. Completion is best effort: any error, and any ambiguity
// about which account to list, yields no suggestions.
func vaultCompletionFunc(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) != 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	client := opClient
	if client == nil {
		client = op.NewClient(op.NewRunner(), "")
	}

	account := flagAccount
	if account == "" {
		account = cfg.DefaultAccount
	}
	if account == "" {
		accounts, err := client.ListAccounts()
		if err != nil || len(accounts) != 1 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		account = accounts[0].UserUUID
	}

	vaults, err := client.ListVaults(account)
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	var names []string
	for _, v := range vaults {
		if strings.HasPrefix(v.Name, toComplete) {
			names = append(names, v.Name)
		}
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}
