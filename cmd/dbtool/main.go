package main

import (
	"city-insights-service/internal/adapters/repositories"
	"city-insights-service/internal/config"
	"city-insights-service/internal/platform/db"
	"log"
	"os"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
)

// dbtool creates the warehouse schema and loads the tonnage seed file.
// Run it once before the first server start and again whenever the
// seed data changes.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	seedPath := config.Get("SEED_PATH", "data/seeds/waste_tonnage.json")

	warehouse, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer warehouse.Close()

	if err := repositories.InitSchema(warehouse); err != nil {
		log.Fatal(err)
	}
	log.Println("Schema ready")

	n, err := repositories.SeedFromJSON(warehouse, seedPath)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("Seeded tonnage records count=%d path=%s", n, seedPath)
}
