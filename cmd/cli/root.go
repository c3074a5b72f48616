// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 vincent-4

package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/vincent-4/1password-utils/internal/config"
	"github.com/vincent-4/1password-utils/internal/logger"
	"github.com/vincent-4/1password-utils/internal/op"
	"github.com/vincent-4/1password-utils/internal/ui"
)

var (
	statusColor     = color.New(color.FgCyan)
	errorColor      = color.New(color.FgRed)
	successColor    = color.New(color.FgGreen)
	identifierColor = color.New(color.FgBlue)
)

var (
	cfg      config.Config
	opClient *op.Client
)

var (
	flagDryRun  bool
	flagAccount string
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   "opdupes [vault-name]",
	Short: "Find and archive duplicate items in a 1Password vault",
	Long: `Finds items that share a title in a 1Password vault and archives all but
the most recently updated copy of each.

Requires the 1Password CLI (op) to be installed and signed in. Archiving is
confirmed once for the whole vault; use --dry-run to preview the op commands
without executing them. With no vault argument, the account and vault are
selected interactively.`,
	Example:           "  opdupes MyVault\n  opdupes\n  opdupes --dry-run MyVault",
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: vaultCompletionFunc,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger.InitLogger(flagVerbose)
		if err := config.EnsureConfigDir(); err != nil {
			return fmt.Errorf("failed to ensure config directory: %w", err)
		}
		loaded, err := config.LoadConfig()
		if err != nil {
			return err
		}
		cfg = loaded
		opClient = op.NewClient(op.NewRunner(), cfg.OpPath)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		vaultName := cfg.DefaultVault
		if len(args) == 1 {
			vaultName = args[0]
		}
		account := flagAccount
		if account == "" {
			account = cfg.DefaultAccount
		}
		dryRun := flagDryRun
		if !cmd.Flags().Changed("dry-run") {
			dryRun = cfg.DryRun
		}
		return runDedupe(ui.NewPicker(), opClient, vaultName, account, dryRun)
	},
}

// RunCLI is the program entry point used by cmd/opdupes.
func RunCLI() {
	if err := rootCmd.Execute(); err != nil {
		errorColor.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "print the op commands that would run without executing them")
	rootCmd.Flags().StringVar(&flagAccount, "account", "", "account user UUID to operate on (skips the account menu)")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "mirror log output to stderr")
	rootCmd.AddCommand(accountsCmd)
	rootCmd.AddCommand(vaultsCmd)
	rootCmd.AddCommand(configCmd)
}
