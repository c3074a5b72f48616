// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 vincent-4

package op

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/vincent-4/1password-utils/internal/logger"
)

// DefaultBinary is the op executable looked up in PATH when the config does
// not name one explicitly.
const DefaultBinary = "op"

// Client talks to the 1Password CLI. Listing calls keep the historical
// degradation contract: whatever the CLI prints that is not a usable JSON
// array comes back as an empty result with a nil error, with the underlying
// failure written to the log. Only a missing binary is surfaced distinctly.
type Client struct {
	runner Runner
	binary string
}

// NewClient builds a Client over the given Runner. An empty binary path
// falls back to DefaultBinary.
func NewClient(runner Runner, binary string) *Client {
	if binary == "" {
		binary = DefaultBinary
	}
	return &Client{runner: runner, binary: binary}
}

// decodeList runs an op listing call and unmarshals its stdout into dst.
// Empty output, nonzero exits and undecodable JSON all leave dst untouched.
func (c *Client) decodeList(dst any, desc string, args ...string) error {
	out, err := c.runner.Output(c.binary, args...)
	if err != nil {
		if errors.Is(err, ErrOpNotFound) {
			return err
		}
		logger.Warn("op invocation failed, treating as empty", "call", desc, "error", err.Error())
		return nil
	}
	if len(bytes.TrimSpace(out)) == 0 {
		return nil
	}
	if err := json.Unmarshal(out, dst); err != nil {
		logger.Warn("op returned undecodable JSON, treating as empty", "call", desc, "error", err.Error())
	}
	return nil
}

// ListAccounts returns the accounts the CLI is signed in to.
func (c *Client) ListAccounts() ([]Account, error) {
	var accounts []Account
	err := c.decodeList(&accounts, "account list",
		"account", "list", "--format", "json")
	return accounts, err
}

// ListVaults returns the vaults visible to the given account user UUID.
func (c *Client) ListVaults(account string) ([]Vault, error) {
	var vaults []Vault
	err := c.decodeList(&vaults, "vault list",
		"vault", "list", "--account", account, "--format", "json")
	return vaults, err
}

// ListItems returns the items of one vault, scoped to the account used for
// the vault listing.
func (c *Client) ListItems(account, vault string) ([]Item, error) {
	var items []Item
	err := c.decodeList(&items, "item list",
		"item", "list", "--vault", vault, "--account", account, "--format", "json")
	return items, err
}

// ArchiveArgs is the full argv, binary included, that ArchiveItem executes.
// Dry runs render this instead of running it.
func (c *Client) ArchiveArgs(account, vault, itemID string) []string {
	return []string{c.binary, "item", "delete", itemID,
		"--vault", vault, "--archive", "--account", account}
}

// ArchiveItem moves the item to the store's archive. The transition is not
// reversible through this tool. Failures are returned to the caller, which
// continues with the rest of its worklist.
func (c *Client) ArchiveItem(account, vault, itemID string) error {
	argv := c.ArchiveArgs(account, vault, itemID)
	_, err := c.runner.Output(argv[0], argv[1:]...)
	return err
}
