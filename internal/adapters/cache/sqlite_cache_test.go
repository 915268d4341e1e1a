package cache

import (
	"city-insights-service/internal/domain"
	"database/sql"
	"testing"
	"time"

	_ "modernc.org/sqlite"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := InitSchema(db); err != nil {
		t.Fatalf("init schema: %v", err)
	}

	return db
}

func TestRouteCachePutGet(t *testing.T) {
	rc := NewSqliteRouteCache(newTestDB(t))

	routes := []domain.RouteCandidate{
		{
			Summary:                "via FDR Dr",
			StartAddress:           "350 5th Ave, New York",
			EndAddress:             "1 Centre St, New York",
			DistanceMeters:         5000,
			DurationSeconds:        900,
			TrafficDurationSeconds: 1200,
			Polyline:               "abc123",
			Warnings:               []string{"This route has tolls."},
		},
		{
			Summary:                "via Brooklyn Bridge",
			StartAddress:           "350 5th Ave, New York",
			EndAddress:             "1 Centre St, New York",
			DistanceMeters:         3000,
			DurationSeconds:        800,
			TrafficDurationSeconds: 800,
		},
	}

	if err := rc.Put("350 5th ave, new york", "1 centre st, new york", routes); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	got, hit, err := rc.Get("350 5th ave, new york", "1 centre st, new york", time.Minute)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !hit {
		t.Fatal("expected cache hit")
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 routes, got %d", len(got))
	}
	if got[0].Summary != "via FDR Dr" || got[1].Summary != "via Brooklyn Bridge" {
		t.Errorf("expected insertion order preserved, got %q then %q", got[0].Summary, got[1].Summary)
	}
	if got[0].Polyline != "abc123" {
		t.Errorf("expected polyline round trip, got %q", got[0].Polyline)
	}
	if len(got[0].Warnings) != 1 || got[0].Warnings[0] != "This route has tolls." {
		t.Errorf("expected warnings round trip, got %v", got[0].Warnings)
	}
	if got[1].Warnings != nil {
		t.Errorf("expected nil warnings for route without any, got %v", got[1].Warnings)
	}
}

func TestRouteCacheMiss(t *testing.T) {
	rc := NewSqliteRouteCache(newTestDB(t))

	_, hit, err := rc.Get("nowhere", "elsewhere", time.Minute)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if hit {
		t.Error("expected cache miss for unknown pair")
	}
}

func TestRouteCacheExpiry(t *testing.T) {
	rc := NewSqliteRouteCache(newTestDB(t))

	routes := []domain.RouteCandidate{{Summary: "via FDR Dr", DistanceMeters: 5000}}
	if err := rc.Put("a street 1", "b street 2", routes); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	time.Sleep(20 * time.Millisecond)

	_, hit, err := rc.Get("a street 1", "b street 2", 5*time.Millisecond)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if hit {
		t.Error("expected rows older than max age to be ignored")
	}
}

func TestRouteCachePutReplacesPair(t *testing.T) {
	rc := NewSqliteRouteCache(newTestDB(t))

	first := []domain.RouteCandidate{{Summary: "old a"}, {Summary: "old b"}, {Summary: "old c"}}
	if err := rc.Put("a street 1", "b street 2", first); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	second := []domain.RouteCandidate{{Summary: "new a"}}
	if err := rc.Put("a street 1", "b street 2", second); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	got, hit, err := rc.Get("a street 1", "b street 2", time.Minute)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !hit {
		t.Fatal("expected cache hit")
	}
	if len(got) != 1 || got[0].Summary != "new a" {
		t.Errorf("expected old rows replaced, got %d routes", len(got))
	}
}

func TestGeocodeCachePutGet(t *testing.T) {
	gc := NewSqliteGeocodeCache(newTestDB(t))

	want := domain.Coordinates{Lon: -73.9857, Lat: 40.7484}
	if err := gc.Put("350 5th ave, new york", want); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	got, hit, err := gc.Get("350 5th ave, new york")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !hit {
		t.Fatal("expected cache hit")
	}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestGeocodeCacheMiss(t *testing.T) {
	gc := NewSqliteGeocodeCache(newTestDB(t))

	_, hit, err := gc.Get("never cached")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if hit {
		t.Error("expected cache miss for unknown address")
	}
}

func TestGeocodeCacheReplace(t *testing.T) {
	gc := NewSqliteGeocodeCache(newTestDB(t))

	if err := gc.Put("1 centre st", domain.Coordinates{Lon: -74.0, Lat: 40.7}); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	want := domain.Coordinates{Lon: -74.0042, Lat: 40.7128}
	if err := gc.Put("1 centre st", want); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	got, hit, err := gc.Get("1 centre st")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !hit || got != want {
		t.Errorf("expected replaced coordinates %+v, got %+v (hit=%v)", want, got, hit)
	}
}
