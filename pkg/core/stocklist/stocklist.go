// Package stocklist provides the curated symbol list behind the search
// box autocomplete. The list is static and advisory: the analyze path
// accepts any identifier, listed or not.
package stocklist

import "strings"

// Option is one suggestible listing.
type Option struct {
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

// Search returns up to limit options whose symbol or name contains the
// query, case-insensitively, in list order. A blank query matches
// nothing.
func Search(query string, limit int) []Option {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" || limit <= 0 {
		return nil
	}
	var matches []Option
	for _, opt := range Listings {
		if strings.Contains(strings.ToLower(opt.Symbol), query) ||
			strings.Contains(strings.ToLower(opt.Name), query) {
			matches = append(matches, opt)
			if len(matches) == limit {
				break
			}
		}
	}
	return matches
}
