package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"github.com/votify/votify-backend/internal/address"
	"github.com/votify/votify-backend/internal/candidates"
	"github.com/votify/votify-backend/internal/civics"
	"github.com/votify/votify-backend/internal/db"
	"github.com/votify/votify-backend/internal/elections"
	"github.com/votify/votify-backend/internal/geocode"
	"github.com/votify/votify-backend/internal/middleware"
	"github.com/votify/votify-backend/internal/provider"
	"github.com/votify/votify-backend/internal/seeds"
	"github.com/votify/votify-backend/internal/store"

	// Import providers to register them via init()
	_ "github.com/votify/votify-backend/internal/provider/googlecivic"
)

func RootHandler(w http.ResponseWriter, r *http.Request) {
	response := "Server is up!"
	w.Header().Set("Content-Type", "text/plain")
	fmt.Fprintln(w, response)
}

func buildStore() store.Store {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Println("[Setup] DATABASE_URL not set, using in-memory store")
		st := store.NewMemoryStore()
		if err := seeds.SeedStore(st); err != nil {
			log.Fatal("Failed to seed in-memory store: ", err)
		}
		return st
	}

	gdb, err := db.Connect(dsn)
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}
	st, err := store.NewGormStore(gdb)
	if err != nil {
		log.Fatal("Failed to initialize store: ", err)
	}
	return st
}

func buildProvider() provider.CivicProvider {
	cfg := provider.LoadFromEnv()
	p, err := provider.NewProvider(cfg)
	if err != nil {
		log.Printf("[Setup] Civic provider unavailable: %v", err)
		return nil
	}
	log.Printf("[Setup] Using civic provider: %s", p.Name())
	return p
}

func main() {
	_ = godotenv.Load(".env.local")

	port := os.Getenv("PORT")
	if port == "" {
		port = "5050"
	}

	st := buildStore()
	civicProvider := buildProvider()

	geocoder, err := geocode.NewClient()
	if err != nil {
		log.Fatal("Failed to initialize geocoder: ", err)
	}
	var lookup address.Lookup
	if geocoder != nil {
		lookup = geocoder
	} else {
		log.Println("[Setup] GOOGLE_MAPS_API_KEY not set, using heuristic address normalization only")
	}
	normalizer := address.NewNormalizer(lookup)

	dir, err := seeds.LoadDirectory()
	if err != nil {
		log.Fatal("Failed to load representative directory: ", err)
	}
	offices, err := seeds.LoadElectionOffices()
	if err != nil {
		log.Fatal("Failed to load election office directory: ", err)
	}

	assembler := civics.NewAssembler(st, dir, civicProvider)
	civicsHandler := civics.NewHandler(st, assembler, normalizer)
	electionsHandler := elections.NewHandler(elections.NewGateway(st, civicProvider, offices))
	candidatesHandler := candidates.NewHandler(st)

	r := chi.NewRouter()
	r.Use(middleware.CORSMiddleware)
	r.Use(middleware.RequestIDMiddleware)
	r.Get("/", RootHandler)

	r.Mount("/api/representatives", civicsHandler.Routes())
	r.Mount("/api/searches", civicsHandler.SearchRoutes())
	r.Mount("/api/candidates", candidatesHandler.Routes())
	r.Mount("/api/elections", electionsHandler.Routes())
	r.Mount("/api/voterinfo", electionsHandler.VoterInfoRoutes())

	fmt.Println("Server listening on port :" + port + "...")

	http.ListenAndServe("0.0.0.0:"+port, r)
}
