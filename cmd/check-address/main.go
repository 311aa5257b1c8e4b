// Command check-address is a diagnostics tool: it runs an address through
// the normalizer and jurisdiction resolver, and when DATABASE_URL is set
// also lists the stored representatives for that jurisdiction.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/votify/votify-backend/internal/address"
	"github.com/votify/votify-backend/internal/geocode"
)

func main() {
	godotenv.Load(".env.local")

	if len(os.Args) < 2 {
		log.Fatal("usage: check-address <address>")
	}
	raw := strings.Join(os.Args[1:], " ")

	geocoder, err := geocode.NewClient()
	if err != nil {
		log.Fatalf("geocoder init error: %v", err)
	}
	var lookup address.Lookup
	if geocoder != nil {
		lookup = geocoder
	}
	norm := address.NewNormalizer(lookup)

	resolved := norm.Resolve(context.Background(), raw)
	addr := resolved.Address
	jurisdiction := address.ResolveJurisdiction(addr)

	fmt.Printf("Input:        %s\n", raw)
	fmt.Printf("Normalized:   %s, %s, %s %s\n", addr.Line1, addr.City, addr.State, addr.Zip)
	if resolved.Lat != "" {
		fmt.Printf("Coordinates:  %s, %s\n", resolved.Lat, resolved.Lng)
	}
	fmt.Printf("Jurisdiction: %s (%s)\n", jurisdiction, address.DisplayJurisdiction(jurisdiction))

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		fmt.Println("\nDATABASE_URL not set, skipping stored representative check")
		return
	}

	db, err := gorm.Open(postgres.Open(dbURL), &gorm.Config{})
	if err != nil {
		log.Fatalf("DB connection error: %v", err)
	}

	type Result struct {
		Name   string
		Office string
		Party  string
		Level  string
	}

	var results []Result
	query := `
		SELECT name, office, party, level
		FROM votify.representatives
		WHERE LOWER(jurisdiction) = ?
		ORDER BY level, name
	`

	if err := db.Raw(query, jurisdiction).Scan(&results).Error; err != nil {
		log.Fatalf("Query error: %v", err)
	}

	byLevel := make(map[string][]Result)
	for _, r := range results {
		byLevel[r.Level] = append(byLevel[r.Level], r)
	}

	fmt.Printf("\nStored representatives for %q: %d\n\n", jurisdiction, len(results))
	for level, reps := range byLevel {
		fmt.Printf("%s:\n", level)
		for _, r := range reps {
			fmt.Printf("  %s - %s (%s)\n", r.Name, r.Office, r.Party)
		}
	}
}
