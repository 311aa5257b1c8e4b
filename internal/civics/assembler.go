// Package civics turns a visitor's address into the leveled bundle of
// elected officials shown on the find-your-representatives page.
package civics

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/votify/votify-backend/internal/address"
	"github.com/votify/votify-backend/internal/provider"
	"github.com/votify/votify-backend/internal/seeds"
	"github.com/votify/votify-backend/internal/store"
)

// Buckets is a representative bundle partitioned by level.
type Buckets struct {
	Federal []store.Representative `json:"federal"`
	State   []store.Representative `json:"state"`
	Local   []store.Representative `json:"local"`
}

// Assembler combines static built-in records with provider-sourced
// officials. Every call records the search, deduplicated never.
type Assembler struct {
	store    store.Store
	dir      *seeds.Directory
	provider provider.CivicProvider // nil when unconfigured

	// DegradeOnError controls what a provider failure does: true (the
	// default for this endpoint) silently falls back to the static tables,
	// false propagates the error.
	DegradeOnError bool
}

func NewAssembler(st store.Store, dir *seeds.Directory, p provider.CivicProvider) *Assembler {
	return &Assembler{
		store:          st,
		dir:            dir,
		provider:       p,
		DegradeOnError: true,
	}
}

// Assemble builds the bucket bundle for a resolved address and records the
// search. raw is the visitor's original input, kept verbatim on the record.
func (a *Assembler) Assemble(ctx context.Context, jurisdiction string, res address.Resolved, raw string) (Buckets, error) {
	defer a.recordSearch(raw, res, jurisdiction)

	var reps []store.Representative
	if a.provider != nil {
		fetched, err := a.fromProvider(ctx, raw, jurisdiction)
		switch {
		case err == nil && len(fetched) > 0:
			reps = fetched
		case err != nil && !a.DegradeOnError:
			return Buckets{}, err
		case err != nil:
			log.Printf("[assemble] provider failed, using static tables: %v", err)
		default:
			log.Printf("[assemble] provider returned no officials, using static tables")
		}
	}
	if reps == nil {
		reps = a.static(jurisdiction, res.Address)
	}

	// Response ids are per-request, not stable identity.
	for i := range reps {
		reps[i].ID = i + 1
	}

	return partition(reps), nil
}

// static builds the hand-entered bundle: the head of state always, then
// senators and governor by state code, a mayor by city, and any stored demo
// records for the jurisdiction.
func (a *Assembler) static(jurisdiction string, addr address.NormalizedAddress) []store.Representative {
	reps := []store.Representative{a.dir.HeadOfState}

	state := strings.ToUpper(addr.State)
	reps = append(reps, a.dir.Senators[state]...)
	if gov, ok := a.dir.Governors[state]; ok {
		reps = append(reps, gov)
	}

	cityKey := strings.ToLower(addr.City)
	if mayor, ok := a.dir.Mayors[cityKey]; ok {
		reps = append(reps, mayor)
	} else if addr.City != "" && addr.City != address.UnknownCity {
		// No exact city match: synthesize a placeholder so the local bucket
		// is never silently empty for a real city.
		reps = append(reps, store.Representative{
			Name:   "Office of the Mayor",
			Office: "Mayor of " + addr.City,
			Party:  "Nonpartisan",
			Level:  store.LevelLocal,
		})
	}

	if stored, err := a.store.RepresentativesByJurisdiction(jurisdiction); err == nil {
		reps = append(reps, stored...)
	}

	for i := range reps {
		reps[i].Jurisdiction = jurisdiction
	}
	return reps
}

// fromProvider fetches and reshapes provider officials into the
// Representative schema.
func (a *Assembler) fromProvider(ctx context.Context, raw, jurisdiction string) ([]store.Representative, error) {
	roster, err := a.provider.OfficialsByAddress(ctx, raw)
	if err != nil {
		return nil, err
	}

	reps := make([]store.Representative, 0, len(roster.Officials))
	for _, o := range roster.Officials {
		rep := store.Representative{
			Name:         o.Name,
			Office:       o.Office,
			Party:        o.Party,
			PhotoURL:     o.PhotoURL,
			Jurisdiction: jurisdiction,
			Level:        o.Level,
			Phones:       o.Phones,
			URLs:         o.URLs,
			Emails:       o.Emails,
		}
		if len(o.Phones) > 0 {
			rep.Phone = o.Phones[0]
		}
		if len(o.Emails) > 0 {
			rep.Email = o.Emails[0]
		}
		if len(o.URLs) > 0 {
			rep.Website = o.URLs[0]
		}
		if o.Address != nil {
			rep.Address = o.Address.String()
		}
		for _, link := range o.SocialLinks {
			rep.SocialLinks = append(rep.SocialLinks, store.SocialLink{Type: link.Type, URL: link.URL})
		}
		reps = append(reps, rep)
	}
	return reps, nil
}

func (a *Assembler) recordSearch(raw string, res address.Resolved, jurisdiction string) {
	rec := store.AddressSearch{
		Address:           raw,
		NormalizedAddress: FormatAddress(res.Address),
		Latitude:          res.Lat,
		Longitude:         res.Lng,
		Jurisdiction:      jurisdiction,
	}
	if err := a.store.CreateAddressSearch(&rec); err != nil {
		// The search log is best-effort; a write failure never fails the
		// search itself.
		log.Printf("[assemble] record search: %v", err)
	}
}

func partition(reps []store.Representative) Buckets {
	out := Buckets{
		Federal: []store.Representative{},
		State:   []store.Representative{},
		Local:   []store.Representative{},
	}
	for _, rep := range reps {
		switch rep.Level {
		case store.LevelFederal:
			out.Federal = append(out.Federal, rep)
		case store.LevelState:
			out.State = append(out.State, rep)
		case store.LevelLocal:
			out.Local = append(out.Local, rep)
		default:
			log.Printf("[assemble] dropping record %q with unknown level %q", rep.Name, rep.Level)
		}
	}
	return out
}

// FormatAddress renders a normalized address for display and for the
// search record.
func FormatAddress(a address.NormalizedAddress) string {
	return fmt.Sprintf("%s, %s, %s %s", a.Line1, a.City, a.State, a.Zip)
}
