// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 vincent-4

// Package dedupe holds the duplicate-detection core: grouping vault items by
// title and deciding which copy survives.
package dedupe

import (
	"sort"

	"github.com/vincent-4/1password-utils/internal/op"
)

// Group is a set of two or more items sharing one title, ordered by
// UpdatedAt descending. Items[0] is the copy to keep.
type Group struct {
	Title string
	Items []op.Item
}

// Keep returns the most recently updated member.
func (g Group) Keep() op.Item {
	return g.Items[0]
}

// Duplicates returns the members slated for archival.
func (g Group) Duplicates() []op.Item {
	return g.Items[1:]
}

// FindDuplicates groups items by exact, case-sensitive title and returns
// every title with two or more valid members. An item participates only when
// ID, Title and UpdatedAt are all non-empty; anything else is skipped without
// comment. Within a group items are ordered by UpdatedAt descending using
// plain string comparison, which is chronological for op's RFC 3339
// timestamps. The sort is stable, so items with identical timestamps keep
// the store's listing order. Groups come back in order of each title's first
// appearance in the input, making repeated runs over the same listing
// produce identical output.
func FindDuplicates(items []op.Item) []Group {
	byTitle := make(map[string][]op.Item)
	var titles []string

	for _, item := range items {
		if item.ID == "" || item.Title == "" || item.UpdatedAt == "" {
			continue
		}
		if _, seen := byTitle[item.Title]; !seen {
			titles = append(titles, item.Title)
		}
		byTitle[item.Title] = append(byTitle[item.Title], item)
	}

	var groups []Group
	for _, title := range titles {
		members := byTitle[title]
		if len(members) < 2 {
			continue
		}
		sorted := make([]op.Item, len(members))
		copy(sorted, members)
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].UpdatedAt > sorted[j].UpdatedAt
		})
		groups = append(groups, Group{Title: title, Items: sorted})
	}
	return groups
}

// CountDuplicates is the total number of archive candidates across groups.
func CountDuplicates(groups []Group) int {
	total := 0
	for _, g := range groups {
		total += len(g.Items) - 1
	}
	return total
}
