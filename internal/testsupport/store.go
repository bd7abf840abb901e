package testsupport

import (
	"context"
	"testing"

	"pilgrim/internal/catalog"
	"pilgrim/internal/config"
)

// MustOpenStore opens a catalog.Store for tests and registers cleanup.
func MustOpenStore(t testing.TB, cfg *config.Config) *catalog.Store {
	t.Helper()

	store, err := catalog.Open(cfg)
	if err != nil {
		t.Fatalf("catalog.Open: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}

// SeedEpisode inserts an episode for tests using the provided store.
func SeedEpisode(t testing.TB, store *catalog.Store, celebrityID, title string) *catalog.Episode {
	t.Helper()

	ep, err := store.InsertEpisode(context.Background(), &catalog.Episode{
		CelebrityID: celebrityID,
		Title:       title,
	})
	if err != nil {
		t.Fatalf("store.InsertEpisode: %v", err)
	}
	return ep
}

// SeedLocation inserts a location for tests using the provided store.
func SeedLocation(t testing.TB, store *catalog.Store, loc catalog.Location) *catalog.Location {
	t.Helper()

	stored, err := store.InsertLocation(context.Background(), &loc)
	if err != nil {
		t.Fatalf("store.InsertLocation: %v", err)
	}
	return stored
}
