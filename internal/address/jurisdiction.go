package address

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.AmericanEnglish)

// ResolveJurisdiction derives the canonical jurisdiction key for an address:
// lowercase "city, state". Pure and total; exact match after lowercasing is
// the only equality rule (no alias table, no fuzzy matching).
func ResolveJurisdiction(addr NormalizedAddress) string {
	return strings.ToLower(addr.City + ", " + addr.State)
}

// DisplayJurisdiction is the capitalized form of a jurisdiction key, kept
// separate from the key itself so lookups stay case-exact.
func DisplayJurisdiction(key string) string {
	city, state, ok := strings.Cut(key, ", ")
	if !ok {
		return titleCaser.String(key)
	}
	return titleCaser.String(city) + ", " + strings.ToUpper(state)
}

// StateOf returns the uppercased state portion of a jurisdiction key, or ""
// when the key has no state part.
func StateOf(key string) string {
	_, state, ok := strings.Cut(key, ", ")
	if !ok {
		return ""
	}
	return strings.ToUpper(strings.TrimSpace(state))
}
