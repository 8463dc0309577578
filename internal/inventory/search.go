// SPDX-License-Identifier: MPL-2.0

package inventory

import "strings"

// Search filters items by case-insensitive substring match against name,
// barcode, description, and location. An item matches when the query is
// found in any of those fields. An empty query returns the input unchanged.
func Search(items []Item, query string) []Item {
	if query == "" {
		return items
	}
	q := strings.ToLower(query)

	var matched []Item
	for _, item := range items {
		if matchesQuery(&item, q) {
			matched = append(matched, item)
		}
	}
	return matched
}

func matchesQuery(item *Item, lowerQuery string) bool {
	for _, field := range []string{item.Name, item.Barcode, item.Description, item.Location} {
		if field != "" && strings.Contains(strings.ToLower(field), lowerQuery) {
			return true
		}
	}
	return false
}
