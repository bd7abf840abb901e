package reconcile_test

import (
	"context"
	"errors"
	"testing"

	"github.com/gofrs/flock"

	"pilgrim/internal/catalog"
	"pilgrim/internal/config"
	"pilgrim/internal/extraction"
	"pilgrim/internal/logging"
	"pilgrim/internal/matching"
	"pilgrim/internal/reconcile"
	"pilgrim/internal/testsupport"
)

func ginzaPatterns() extraction.PatternTable {
	return extraction.PatternTable{
		{
			Keywords: []string{"銀座三越", "三越"},
			Name:     "銀座三越",
			Address:  "東京都中央区銀座4丁目",
			Type:     "location",
		},
	}
}

func ginzaRules() map[string][]matching.Rule {
	return map[string][]matching.Rule{
		"ryo": {
			{
				EntityKeywords:  []string{"銀座三越"},
				EpisodeKeywords: []string{"銀座", "ショッピング"},
				Description:     "銀座エリアの店舗",
			},
		},
	}
}

func newRunner(t *testing.T, rules map[string][]matching.Rule, patterns extraction.PatternTable) (*reconcile.Runner, *catalog.Store, *config.Config) {
	t.Helper()
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	return reconcile.NewRunner(store, cfg, rules, patterns, logging.NewNop()), store, cfg
}

func TestRunMatchesAndLinks(t *testing.T) {
	runner, store, _ := newRunner(t, ginzaRules(), ginzaPatterns())
	ctx := context.Background()

	testsupport.SeedEpisode(t, store, "ryo", "【銀座三越】爆買いショッピング企画")

	summary, err := runner.Run(ctx, "ryo")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if summary.EpisodesScanned != 1 {
		t.Errorf("episodes scanned = %d, want 1", summary.EpisodesScanned)
	}
	if summary.Matched != 1 {
		t.Errorf("matched = %d, want 1 (summary %+v)", summary.Matched, summary)
	}

	locations, err := store.ListLocations(ctx, "ryo")
	if err != nil {
		t.Fatalf("ListLocations: %v", err)
	}
	if len(locations) != 1 {
		t.Fatalf("locations = %d, want 1", len(locations))
	}
	if locations[0].Name != "銀座三越" {
		t.Errorf("location name = %q", locations[0].Name)
	}
	count, err := store.CountLocationLinks(ctx, locations[0].ID)
	if err != nil {
		t.Fatalf("CountLocationLinks: %v", err)
	}
	if count != 1 {
		t.Errorf("junction rows = %d, want 1", count)
	}
}

func TestRunIsIdempotent(t *testing.T) {
	runner, store, _ := newRunner(t, ginzaRules(), ginzaPatterns())
	ctx := context.Background()

	testsupport.SeedEpisode(t, store, "ryo", "【銀座三越】爆買いショッピング企画")

	for run := 0; run < 2; run++ {
		if _, err := runner.Run(ctx, "ryo"); err != nil {
			t.Fatalf("run %d: %v", run, err)
		}
	}

	locations, err := store.ListLocations(ctx, "ryo")
	if err != nil {
		t.Fatalf("ListLocations: %v", err)
	}
	if len(locations) != 1 {
		t.Fatalf("locations = %d after two runs, want 1", len(locations))
	}
	count, err := store.CountLocationLinks(ctx, locations[0].ID)
	if err != nil {
		t.Fatalf("CountLocationLinks: %v", err)
	}
	if count != 1 {
		t.Errorf("junction rows = %d after two runs, want 1", count)
	}
}

func TestRunUnmatchedStillCreatesLocation(t *testing.T) {
	// Pattern hits but no rule claims the candidate.
	runner, store, _ := newRunner(t, map[string][]matching.Rule{}, ginzaPatterns())
	ctx := context.Background()

	testsupport.SeedEpisode(t, store, "ryo", "銀座三越のデパ地下を散歩")

	summary, err := runner.Run(ctx, "ryo")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if summary.Unmatched != 1 {
		t.Errorf("unmatched = %d, want 1 (summary %+v)", summary.Unmatched, summary)
	}

	locations, err := store.ListLocations(ctx, "ryo")
	if err != nil {
		t.Fatalf("ListLocations: %v", err)
	}
	if len(locations) != 1 {
		t.Fatalf("locations = %d, want 1 (unmatched candidates still persist)", len(locations))
	}
	count, err := store.CountLocationLinks(ctx, locations[0].ID)
	if err != nil {
		t.Fatalf("CountLocationLinks: %v", err)
	}
	if count != 0 {
		t.Errorf("junction rows = %d for unmatched candidate, want 0", count)
	}
}

func TestRunDiscardsLowConfidence(t *testing.T) {
	// No known pattern; the bare store-suffix name carries no corroborating
	// signal and falls below the discard threshold.
	runner, store, _ := newRunner(t, ginzaRules(), nil)
	ctx := context.Background()

	testsupport.SeedEpisode(t, store, "ryo", "泪橋食堂で夕飯を食べた")

	summary, err := runner.Run(ctx, "ryo")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if summary.Discarded == 0 {
		t.Errorf("expected discarded candidates, summary %+v", summary)
	}

	locations, err := store.ListLocations(ctx, "ryo")
	if err != nil {
		t.Fatalf("ListLocations: %v", err)
	}
	if len(locations) != 0 {
		t.Errorf("discarded candidates must not persist: %d locations", len(locations))
	}
}

func TestRunSkipsPersonCandidates(t *testing.T) {
	runner, store, _ := newRunner(t, ginzaRules(), nil)
	ctx := context.Background()

	testsupport.SeedEpisode(t, store, "ryo", "田中 太郎と銀座を歩く")

	summary, err := runner.Run(ctx, "ryo")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if summary.Skipped == 0 {
		t.Errorf("expected skipped person candidates, summary %+v", summary)
	}

	locations, err := store.ListLocations(ctx, "ryo")
	if err != nil {
		t.Fatalf("ListLocations: %v", err)
	}
	if len(locations) != 0 {
		t.Errorf("person candidates must not persist as locations: %d rows", len(locations))
	}
}

func TestRunRefusesConcurrentLock(t *testing.T) {
	runner, _, cfg := newRunner(t, ginzaRules(), ginzaPatterns())

	lock := flock.New(cfg.LockPath())
	locked, err := lock.TryLock()
	if err != nil || !locked {
		t.Fatalf("pre-acquire lock: locked=%v err=%v", locked, err)
	}
	defer lock.Unlock()

	_, err = runner.Run(context.Background(), "ryo")
	if !errors.Is(err, reconcile.ErrLocked) {
		t.Errorf("err = %v, want ErrLocked", err)
	}
}
