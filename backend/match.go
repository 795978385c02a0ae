package backend

import "strings"

// Match reports whether an item summary satisfies a free-text search.
// UUIDs match exactly (case-insensitively); title, account info, URLs, and
// tags match on case-insensitive substring. An empty term matches everything.
func Match(s ItemSummary, terms string) bool {
	terms = strings.ToLower(strings.TrimSpace(terms))
	if terms == "" {
		return true
	}

	if strings.EqualFold(s.UUID, terms) || strings.EqualFold(s.VaultUUID, terms) {
		return true
	}
	if strings.Contains(strings.ToLower(s.Title), terms) {
		return true
	}
	if strings.Contains(strings.ToLower(s.AccountInfo), terms) {
		return true
	}
	for _, u := range s.URLs {
		if strings.Contains(strings.ToLower(u), terms) {
			return true
		}
	}
	for _, t := range s.Tags {
		if strings.Contains(strings.ToLower(t), terms) {
			return true
		}
	}
	return false
}

// Filter returns the summaries matching the given terms, preserving order.
func Filter(items []ItemSummary, terms string) []ItemSummary {
	matched := make([]ItemSummary, 0, len(items))
	for _, s := range items {
		if Match(s, terms) {
			matched = append(matched, s)
		}
	}
	return matched
}
