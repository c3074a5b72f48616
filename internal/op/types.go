// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 vincent-4

// Package op wraps the 1Password CLI (`op`) behind a small client so the
// rest of the tool never assembles command lines or parses its JSON output
// directly.
package op

import "fmt"

// Account is one entry from `op account list`.
type Account struct {
	URL         string `json:"url"`
	Email       string `json:"email"`
	UserUUID    string `json:"user_uuid"`
	AccountUUID string `json:"account_uuid,omitempty"`
}

// Label renders the account the way the selection menu displays it.
func (a Account) Label() string {
	return fmt.Sprintf("%s - %s - %s", a.URL, a.Email, a.UserUUID)
}

// Vault is one entry from `op vault list`.
type Vault struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Item is one entry from `op item list`. UpdatedAt is kept as the RFC 3339
// string op reports; callers compare it lexically.
type Item struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Version   int    `json:"version,omitempty"`
	Category  string `json:"category,omitempty"`
	UpdatedAt string `json:"updated_at"`
}
