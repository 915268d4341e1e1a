package main

import (
	"city-insights-service/internal/adapters/cache"
	"city-insights-service/internal/adapters/directions"
	"city-insights-service/internal/adapters/history"
	"city-insights-service/internal/adapters/repositories"
	"city-insights-service/internal/adapters/traffic"
	"city-insights-service/internal/api"
	"city-insights-service/internal/config"
	"city-insights-service/internal/platform/db"
	"city-insights-service/internal/services"
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	_ "modernc.org/sqlite"
)

// main is the application composition root.
// It wires concrete adapters (SQLite caches, Google Maps, 511NY, Postgres,
// Redis) behind ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	port := config.Get("PORT", "8080")
	sqlitePath := config.Get("SQLITE_PATH", "data/cache.db")
	redisAddr := config.Get("REDIS_ADDR", "localhost:6379")

	mapsKey := os.Getenv("GOOGLE_MAPS_API_KEY")
	if strings.TrimSpace(mapsKey) == "" {
		log.Fatal("GOOGLE_MAPS_API_KEY is required")
	}

	trafficKey := os.Getenv("NY511_API_KEY")
	if strings.TrimSpace(trafficKey) == "" {
		log.Fatal("NY511_API_KEY is required")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	policy, err := config.LoadRankingPolicy(config.Get("RANKING_POLICY_PATH", ""))
	if err != nil {
		log.Fatal(err)
	}

	cacheDB, err := openSQLite(sqlitePath)
	if err != nil {
		log.Fatal(err)
	}
	defer cacheDB.Close()

	if err := cache.InitSchema(cacheDB); err != nil {
		log.Fatal(err)
	}

	warehouse, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer warehouse.Close()

	// History is best-effort; an unreachable Redis degrades it, not the server.
	redisClient := redis.NewClient(&redis.Options{Addr: redisAddr})
	defer redisClient.Close()
	if err := pingRedis(redisClient); err != nil {
		log.Printf("redis unavailable addr=%s err=%v (search history degraded)", redisAddr, err)
	}

	routeCache := cache.NewSqliteRouteCache(cacheDB)
	geocodeCache := cache.NewSqliteGeocodeCache(cacheDB)
	provider, err := directions.NewGoogleDirectionsProvider(mapsKey, routeCache, geocodeCache)
	if err != nil {
		log.Fatal(err)
	}

	bounds := config.NYCBounds()
	feed, err := traffic.NewNY511Feed(trafficKey, bounds)
	if err != nil {
		log.Fatal(err)
	}

	searchHistory := history.NewRedisSearchHistory(redisClient, 10)

	planner := &services.TripPlanner{
		Policy:   policy,
		Bounds:   bounds,
		Provider: provider,
		Geocoder: provider,
		History:  searchHistory,
	}

	router := api.NewRouter(api.Deps{
		Planner: planner,
		Feed:    feed,
		Tonnage: repositories.NewPgTonnageRepository(warehouse),
		History: searchHistory,
	})

	// Timeouts are tuned for cold-cache trip planning (external API latency).
	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

func openSQLite(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("openSQLite: open sqlite database %q: %w", path, err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("openSQLite: verify sqlite connection to %q: %w", path, err)
	}

	return db, nil
}

func pingRedis(client *redis.Client) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return client.Ping(ctx).Err()
}
