// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 vincent-4

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vincent-4/1password-utils/internal/ui"
)

var accountsCmd = &cobra.Command{
	Use:   "accounts",
	Short: "List the 1Password accounts the CLI is signed in to",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		accounts, err := opClient.ListAccounts()
		if err != nil {
			return err
		}
		if len(accounts) == 0 {
			fmt.Println("No accounts found. Please ensure you are signed in to the 1Password CLI.")
			return nil
		}
		statusColor.Println("Signed-in accounts:")
		for _, a := range accounts {
			fmt.Printf("- %s %s (%s)\n", a.Email, identifierColor.Sprint(a.UserUUID), a.URL)
		}
		return nil
	},
}

var flagVaultsAccount string

var vaultsCmd = &cobra.Command{
	Use:   "vaults",
	Short: "List the vaults visible to an account",
	Long: `Lists the vaults of one 1Password account. With a single signed-in account
no flag is needed; otherwise pass --account or pick from the menu.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		account := flagVaultsAccount
		if account == "" {
			account = cfg.DefaultAccount
		}
		if account == "" {
			chosen, ok, err := selectAccount(ui.NewPicker(), opClient, true)
			if err != nil || !ok {
				return err
			}
			account = chosen
		}

		vaults, err := opClient.ListVaults(account)
		if err != nil {
			return err
		}
		if len(vaults) == 0 {
			fmt.Println("No vaults found for this account.")
			return nil
		}
		statusColor.Println("Vaults:")
		for _, v := range vaults {
			fmt.Printf("- %s (%s)\n", v.Name, identifierColor.Sprint(v.ID))
		}
		return nil
	},
}

func init() {
	vaultsCmd.Flags().StringVar(&flagVaultsAccount, "account", "", "account user UUID to list vaults for")
}
