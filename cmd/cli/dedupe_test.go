// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 vincent-4

package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vincent-4/1password-utils/internal/op"
	"github.com/vincent-4/1password-utils/internal/ui"
)

// fakeRunner maps a joined argv to canned stdout or an error and records
// every call, so the whole flow runs without an op binary or a terminal.
type fakeRunner struct {
	outputs map[string]string
	errs    map[string]error
	calls   [][]string
}

func (f *fakeRunner) Output(name string, args ...string) ([]byte, error) {
	argv := append([]string{name}, args...)
	f.calls = append(f.calls, argv)
	key := strings.Join(argv, " ")
	if err, ok := f.errs[key]; ok {
		return nil, err
	}
	return []byte(f.outputs[key]), nil
}

func (f *fakeRunner) deleteCalls() [][]string {
	var deletes [][]string
	for _, call := range f.calls {
		if len(call) > 2 && call[1] == "item" && call[2] == "delete" {
			deletes = append(deletes, call)
		}
	}
	return deletes
}

const (
	accountsJSON = `[{"url": "https://my.1password.com", "email": "me@example.com", "user_uuid": "U1"}]`
	vaultsJSON   = `[{"id": "v1", "name": "Personal"}]`
	itemsJSON    = `[
		{"id": "keep", "title": "GitHub", "updated_at": "2024-03-01T00:00:00Z"},
		{"id": "old", "title": "GitHub", "updated_at": "2024-01-01T00:00:00Z"},
		{"id": "solo", "title": "Email", "updated_at": "2024-01-01T00:00:00Z"}
	]`
)

func newFlowFixture(items string) (*fakeRunner, *op.Client) {
	runner := &fakeRunner{
		outputs: map[string]string{
			"op account list --format json":                            accountsJSON,
			"op vault list --account U1 --format json":                 vaultsJSON,
			"op item list --vault Personal --account U1 --format json": items,
		},
		errs: map[string]error{},
	}
	return runner, op.NewClient(runner, "")
}

func scriptedConsole(input string) (ui.Console, *bytes.Buffer) {
	var out bytes.Buffer
	return ui.NewStdio(strings.NewReader(input), &out), &out
}

func TestDedupeDryRunExecutesNothing(t *testing.T) {
	runner, client := newFlowFixture(itemsJSON)
	console, out := scriptedConsole("y\n")

	err := runDedupe(console, client, "Personal", "", true)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "1 duplicate items")
	assert.Contains(t, out.String(), "GitHub: 1 duplicates (of 2)")
	assert.Contains(t, out.String(), "Would run: op item delete old --vault Personal --archive --account U1")
	assert.Contains(t, out.String(), "Dry run complete")
	assert.Empty(t, runner.deleteCalls(), "dry run must not mutate the store")
}

func TestDedupeExecuteArchivesOnlyDuplicates(t *testing.T) {
	runner, client := newFlowFixture(itemsJSON)
	console, out := scriptedConsole("y\n")

	err := runDedupe(console, client, "Personal", "", false)
	require.NoError(t, err)

	deletes := runner.deleteCalls()
	require.Len(t, deletes, 1)
	assert.Equal(t, "old", deletes[0][3], "only the older copy is archived")
	assert.Contains(t, out.String(), "Done! The duplicates have been archived.")
}

func TestDedupeArchiveFailureDoesNotStopTheLoop(t *testing.T) {
	runner, client := newFlowFixture(`[
		{"id": "keep", "title": "GitHub", "updated_at": "2024-03-01T00:00:00Z"},
		{"id": "old", "title": "GitHub", "updated_at": "2024-02-01T00:00:00Z"},
		{"id": "older", "title": "GitHub", "updated_at": "2024-01-01T00:00:00Z"}
	]`)
	runner.errs["op item delete old --vault Personal --archive --account U1"] =
		errors.New("op exited with status 1: item is locked")
	console, out := scriptedConsole("y\n")

	err := runDedupe(console, client, "Personal", "", false)
	require.NoError(t, err, "a failed archive call is absorbed, not propagated")

	deletes := runner.deleteCalls()
	require.Len(t, deletes, 2, "the loop continues past the failure")
	assert.Equal(t, "old", deletes[0][3])
	assert.Equal(t, "older", deletes[1][3])
	assert.Contains(t, out.String(), "Done, with problems: 1 of 2 archive calls failed.")
	assert.NotContains(t, out.String(), "Done! The duplicates have been archived.")
}

func TestDedupeDeclineArchivesNothing(t *testing.T) {
	runner, client := newFlowFixture(itemsJSON)
	console, out := scriptedConsole("n\n")

	err := runDedupe(console, client, "Personal", "", false)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Aborting: no items were archived.")
	assert.Empty(t, runner.deleteCalls())
}

func TestDedupeNoDuplicates(t *testing.T) {
	_, client := newFlowFixture(`[{"id": "solo", "title": "Email", "updated_at": "2024-01-01T00:00:00Z"}]`)
	console, out := scriptedConsole("")

	err := runDedupe(console, client, "Personal", "", false)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "No duplicates found in this vault.")
}

func TestDedupeNoAccountsIsInformational(t *testing.T) {
	runner := &fakeRunner{outputs: map[string]string{}}
	client := op.NewClient(runner, "")
	console, out := scriptedConsole("")

	err := runDedupe(console, client, "", "", false)
	require.NoError(t, err, "missing accounts terminate the run without an error exit")
	assert.Contains(t, out.String(), "No accounts found")
}

func TestDedupeInteractiveSelection(t *testing.T) {
	// No vault argument: pick account 1, vault 1, then confirm.
	runner, client := newFlowFixture(itemsJSON)
	console, out := scriptedConsole("1\n1\ny\n")

	err := runDedupe(console, client, "", "", false)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Select an account:")
	assert.Contains(t, out.String(), "https://my.1password.com - me@example.com - U1")
	assert.Contains(t, out.String(), "Select a vault:")
	assert.Contains(t, out.String(), "Selected vault: Personal")
	require.Len(t, runner.deleteCalls(), 1)
}

func TestDedupeAccountFlagSkipsMenu(t *testing.T) {
	runner, client := newFlowFixture(itemsJSON)
	console, out := scriptedConsole("1\ny\n")

	err := runDedupe(console, client, "", "U1", false)
	require.NoError(t, err)

	assert.NotContains(t, out.String(), "Select an account:")
	assert.Contains(t, out.String(), "Select a vault:")
	require.Len(t, runner.deleteCalls(), 1)
}
