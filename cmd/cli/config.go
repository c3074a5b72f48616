// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 vincent-4

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vincent-4/1password-utils/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the opdupes configuration file",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration and where it lives",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.DefaultConfigPath()
		if err != nil {
			return err
		}
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("failed to marshal config: %w", err)
		}
		statusColor.Printf("Config file: %s\n\n", path)
		fmt.Print(string(data))
		return nil
	},
}

var configSetVaultCmd = &cobra.Command{
	Use:   "set-default-vault <name>",
	Short: "Set the vault used when none is given on the command line",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg.DefaultVault = args[0]
		if err := config.SaveConfig(cfg); err != nil {
			return err
		}
		successColor.Printf("Default vault set to %s.\n", identifierColor.Sprint(args[0]))
		return nil
	},
}

var configSetAccountCmd = &cobra.Command{
	Use:   "set-default-account <user-uuid>",
	Short: "Set the account used when --account is not passed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg.DefaultAccount = args[0]
		if err := config.SaveConfig(cfg); err != nil {
			return err
		}
		successColor.Printf("Default account set to %s.\n", identifierColor.Sprint(args[0]))
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetVaultCmd)
	configCmd.AddCommand(configSetAccountCmd)
}
