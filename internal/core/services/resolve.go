package services

import "strings"

// resolveByName returns the first item whose key equals name verbatim.
// When caseFold is true and no exact match exists, it retries once
// comparing case-folded forms. Returns nil when nothing matches.
//
// This is the single place the exact-then-case-insensitive matching
// policy lives; every lookup path goes through it so the per-corpus
// case policy is expressed (and tested) once.
func resolveByName[T any](items []T, name string, caseFold bool, key func(*T) string) *T {
	for i := range items {
		if key(&items[i]) == name {
			return &items[i]
		}
	}
	if !caseFold {
		return nil
	}
	for i := range items {
		if strings.EqualFold(key(&items[i]), name) {
			return &items[i]
		}
	}
	return nil
}

// containsFold reports whether s contains the already-lower-cased
// query as a substring, ignoring case. The empty query matches
// everything.
func containsFold(s, lowerQuery string) bool {
	return strings.Contains(strings.ToLower(s), lowerQuery)
}
