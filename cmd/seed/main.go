// Command seed replaces the catalog tables (candidates, fallback elections,
// stored demo representatives) in Postgres with the embedded seed data.
// Destructive: wipes the tables before re-inserting, so it requires
// --confirm unless running with --dry-run.
package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/votify/votify-backend/internal/seeds"
	"github.com/votify/votify-backend/internal/store"
)

// CLI flags
var (
	dsn         = flag.String("dsn", os.Getenv("DATABASE_URL"), "Postgres DSN (default: env DATABASE_URL)")
	dryRun      = flag.Bool("dry-run", false, "Parse + validate only; no DB writes")
	confirm     = flag.Bool("confirm", false, "Required to perform destructive replace")
	advisoryKey = flag.Int64("advisory-lock", 0, "Optional Postgres advisory lock key. 0 = disabled")
)

type Counts struct {
	Representatives int64
	Candidates      int64
	Elections       int64
}

func main() {
	_ = godotenv.Load(".env.local")
	flag.Parse()

	dir, err := seeds.LoadDirectory()
	if err != nil {
		fatalf("seed data: %v", err)
	}
	cands, err := seeds.LoadCandidates()
	if err != nil {
		fatalf("seed data: %v", err)
	}
	elections, err := seeds.LoadElections()
	if err != nil {
		fatalf("seed data: %v", err)
	}

	fmt.Printf("Loaded %d stored representatives, %d candidates, %d elections from embedded seeds\n",
		len(dir.Stored), len(cands), len(elections))

	if *dryRun {
		printPlan(dir.Stored, cands, elections)
		fmt.Println("Dry run complete. No changes made.")
		return
	}

	if !*confirm {
		fatalf("Refusing to run without --confirm. Add --dry-run to preview.")
	}
	if *dsn == "" {
		fatalf("--dsn not provided and DATABASE_URL not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	db, err := sql.Open("pgx", *dsn)
	if err != nil {
		fatalf("connect: %v", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		fatalf("ping: %v", err)
	}

	tx, err := db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		fatalf("begin tx: %v", err)
	}
	defer func() {
		_ = tx.Rollback() // no-op if already committed
	}()

	// Optional advisory lock to avoid concurrent runs
	if *advisoryKey != 0 {
		if _, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock($1)`, *advisoryKey); err != nil {
			fatalf("advisory lock: %v", err)
		}
	}

	before, err := countAll(ctx, tx)
	if err != nil {
		fatalf("pre-count: %v", err)
	}
	fmt.Printf("Before: representatives=%d candidates=%d elections=%d\n",
		before.Representatives, before.Candidates, before.Elections)

	if err := wipeCatalog(ctx, tx); err != nil {
		fatalf("wipe data: %v", err)
	}

	if err := insertRepresentatives(ctx, tx, dir.Stored); err != nil {
		fatalf("insert representatives: %v", err)
	}
	if err := insertCandidates(ctx, tx, cands); err != nil {
		fatalf("insert candidates: %v", err)
	}
	if err := insertElections(ctx, tx, elections); err != nil {
		fatalf("insert elections: %v", err)
	}

	after, err := countAll(ctx, tx)
	if err != nil {
		fatalf("post-count: %v", err)
	}
	fmt.Printf("After:  representatives=%d candidates=%d elections=%d\n",
		after.Representatives, after.Candidates, after.Elections)

	if err := tx.Commit(); err != nil {
		fatalf("commit: %v", err)
	}
	fmt.Println("Seed complete.")
}

func printPlan(reps []store.Representative, cands []store.Candidate, elections []store.Election) {
	for _, r := range reps {
		fmt.Printf("  rep       %-28s %s (%s)\n", r.Name, r.Office, r.Jurisdiction)
	}
	for _, c := range cands {
		fmt.Printf("  candidate %-28s %s [%s]\n", c.Name, c.Office, c.RaceType)
	}
	for _, e := range elections {
		fmt.Printf("  election  %-40s %s (%s)\n", e.Name, e.Date, e.Jurisdiction)
	}
}

func countAll(ctx context.Context, tx *sql.Tx) (Counts, error) {
	var c Counts
	if err := tx.QueryRowContext(ctx, `SELECT count(*) FROM votify.representatives`).Scan(&c.Representatives); err != nil {
		return c, err
	}
	if err := tx.QueryRowContext(ctx, `SELECT count(*) FROM votify.candidates`).Scan(&c.Candidates); err != nil {
		return c, err
	}
	if err := tx.QueryRowContext(ctx, `SELECT count(*) FROM votify.elections`).Scan(&c.Elections); err != nil {
		return c, err
	}
	return c, nil
}

func wipeCatalog(ctx context.Context, tx *sql.Tx) error {
	for _, stmt := range []string{
		`DELETE FROM votify.representatives`,
		`DELETE FROM votify.candidates`,
		`DELETE FROM votify.elections`,
	} {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

func insertRepresentatives(ctx context.Context, tx *sql.Tx, reps []store.Representative) error {
	const q = `
		INSERT INTO votify.representatives
			(name, office, party, phone, email, website, photo_url, address,
			 jurisdiction, level, social_links, stances, recent_bills)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)`
	for _, r := range reps {
		links, err := json.Marshal(r.SocialLinks)
		if err != nil {
			return err
		}
		stances, err := json.Marshal(r.Stances)
		if err != nil {
			return err
		}
		bills, err := json.Marshal(r.RecentBills)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, q,
			r.Name, r.Office, r.Party, r.Phone, r.Email, r.Website, r.PhotoURL,
			r.Address, r.Jurisdiction, r.Level, links, stances, bills); err != nil {
			return err
		}
	}
	return nil
}

func insertCandidates(ctx context.Context, tx *sql.Tx, cands []store.Candidate) error {
	const q = `
		INSERT INTO votify.candidates
			(name, office, race_type, party, phone, email, website, photo_url,
			 age, background, positions, recent_actions)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)`
	for _, c := range cands {
		positions, err := json.Marshal(c.Positions)
		if err != nil {
			return err
		}
		actions, err := json.Marshal(c.RecentActions)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, q,
			c.Name, c.Office, c.RaceType, c.Party, c.Phone, c.Email, c.Website,
			c.PhotoURL, c.Age, c.Background, positions, actions); err != nil {
			return err
		}
	}
	return nil
}

func insertElections(ctx context.Context, tx *sql.Tx, elections []store.Election) error {
	const q = `
		INSERT INTO votify.elections
			(name, date, type, jurisdiction, registration_deadline,
			 early_voting_start, early_voting_end, election_office_url)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`
	for _, e := range elections {
		if _, err := tx.ExecContext(ctx, q,
			e.Name, e.Date, e.Type, e.Jurisdiction, e.RegistrationDeadline,
			e.EarlyVotingStart, e.EarlyVotingEnd, e.ElectionOfficeURL); err != nil {
			return err
		}
	}
	return nil
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "seed: "+format+"\n", args...)
	os.Exit(1)
}
