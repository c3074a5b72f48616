// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 vincent-4

package cli

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"

	"github.com/vincent-4/1password-utils/internal/dedupe"
	"github.com/vincent-4/1password-utils/internal/logger"
	"github.com/vincent-4/1password-utils/internal/op"
	"github.com/vincent-4/1password-utils/internal/ui"
	"github.com/vincent-4/1password-utils/internal/util"
)

// runDedupe drives the whole flow: account and vault selection, the scan,
// the single whole-vault confirmation, and the archive loop. All operator
// I/O goes through the console so the flow is testable without a terminal.
func runDedupe(console ui.Console, client *op.Client, vaultName, account string, dryRun bool) error {
	console.Println(ui.Title("\n--- 1Password Duplicate Archiver ---"))
	console.Println(ui.Success("Use --dry-run to preview archiving actions without executing them."))

	if account == "" {
		chosen, ok, err := selectAccount(console, client, vaultName != "")
		if err != nil || !ok {
			return err
		}
		account = chosen
	}

	if vaultName == "" {
		chosen, ok, err := selectVault(console, client, account)
		if err != nil || !ok {
			return err
		}
		vaultName = chosen
	}

	console.Printf("\nSelected vault: %s\n", ui.Identifier(vaultName))

	s := newSpinner(" Scanning for duplicates...")
	s.Start()
	items, err := client.ListItems(account, vaultName)
	s.Stop()
	if err != nil {
		return err
	}

	groups := dedupe.FindDuplicates(items)
	if len(groups) == 0 {
		console.Println(ui.Success("No duplicates found in this vault."))
		return nil
	}

	total := dedupe.CountDuplicates(groups)
	console.Printf("\n%s were found across %d titles.\n\n",
		ui.Warn(fmt.Sprintf("%d duplicate items", total)), len(groups))
	for _, g := range groups {
		console.Printf(" - %s: %d duplicates (of %d)\n",
			ui.Identifier(g.Title), len(g.Items)-1, len(g.Items))
	}

	// One confirmation covers the whole vault; there is no per-group prompt.
	confirmed, err := console.Confirm("\nWould you like to archive these duplicates now? (y/N): ")
	if err != nil {
		return err
	}
	if !confirmed {
		console.Println(ui.ErrorText("Aborting: no items were archived."))
		return nil
	}
	console.Println()

	failed := archiveDuplicates(console, client, groups, account, vaultName, dryRun, total)

	if dryRun {
		console.Println(ui.Success("\nDry run complete. No items were archived."))
		return nil
	}
	if failed > 0 {
		console.Printf("%s\n", ui.Warn(fmt.Sprintf(
			"\nDone, with problems: %d of %d archive calls failed. See the log for details.", failed, total)))
		return nil
	}
	console.Println(ui.Success("\nDone! The duplicates have been archived."))
	return nil
}

// archiveDuplicates walks groups in order and archives every member after
// the first. Failures are logged and counted but never stop the loop; each
// archive call is independent.
func archiveDuplicates(console ui.Console, client *op.Client, groups []dedupe.Group, account, vaultName string, dryRun bool, total int) int {
	var s *spinner.Spinner
	if !dryRun {
		s = newSpinner(fmt.Sprintf(" Archiving duplicates... (0/%d)", total))
		s.Start()
		defer s.Stop()
	}

	failed := 0
	done := 0
	for _, g := range groups {
		for _, item := range g.Duplicates() {
			if dryRun {
				console.Printf("%s Would run: %s\n", ui.Warn("[DRY RUN]"),
					util.JoinCommand(client.ArchiveArgs(account, vaultName, item.ID)))
			} else if err := client.ArchiveItem(account, vaultName, item.ID); err != nil {
				failed++
				logger.Error("archive failed",
					"item", item.ID, "title", item.Title, "error", err.Error())
			}
			done++
			if s != nil {
				s.Suffix = fmt.Sprintf(" Archiving duplicates... (%d/%d)", done, total)
			}
		}
	}
	return failed
}

// selectAccount resolves which account to operate on. With a known vault a
// single signed-in account is used without prompting; otherwise the operator
// picks from a menu. The false return without error is an informational
// termination that has already been reported.
func selectAccount(console ui.Console, client *op.Client, vaultKnown bool) (string, bool, error) {
	accounts, err := client.ListAccounts()
	if err != nil {
		return "", false, err
	}
	if len(accounts) == 0 {
		console.Println(ui.ErrorText("No accounts found. Please ensure you are signed in to the 1Password CLI."))
		return "", false, nil
	}
	if vaultKnown && len(accounts) == 1 {
		return accounts[0].UserUUID, true, nil
	}

	label := "Select an account:"
	if vaultKnown {
		label = "Multiple accounts found. Select one:"
	}
	options := make([]string, len(accounts))
	for i, a := range accounts {
		options[i] = a.Label()
	}
	idx, err := console.Select(label, options)
	if err != nil {
		if errors.Is(err, ui.ErrSelectionCancelled) {
			console.Println(ui.ErrorText("Aborting: no account selected."))
			return "", false, nil
		}
		return "", false, err
	}
	return accounts[idx].UserUUID, true, nil
}

func selectVault(console ui.Console, client *op.Client, account string) (string, bool, error) {
	vaults, err := client.ListVaults(account)
	if err != nil {
		return "", false, err
	}
	if len(vaults) == 0 {
		console.Println(ui.ErrorText("No vaults found for this account."))
		return "", false, nil
	}

	options := make([]string, len(vaults))
	for i, v := range vaults {
		options[i] = v.Name
	}
	idx, err := console.Select("Select a vault:", options)
	if err != nil {
		if errors.Is(err, ui.ErrSelectionCancelled) {
			console.Println(ui.ErrorText("Aborting: no vault selected."))
			return "", false, nil
		}
		return "", false, err
	}
	return vaults[idx].Name, true, nil
}

func newSpinner(suffix string) *spinner.Spinner {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	s.Color("cyan")
	s.Suffix = suffix
	return s
}
