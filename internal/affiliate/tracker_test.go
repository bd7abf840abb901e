package affiliate_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"pilgrim/internal/affiliate"
	"pilgrim/internal/catalog"
	"pilgrim/internal/logging"
	"pilgrim/internal/testsupport"
)

func newTracker(t *testing.T) (*affiliate.Tracker, *catalog.Store) {
	t.Helper()
	store := testsupport.MustOpenStore(t, testsupport.NewConfig(t))
	return affiliate.NewTracker(store, logging.NewNop()), store
}

func TestRegisterURLPromotesUnset(t *testing.T) {
	tracker, store := newTracker(t)
	ctx := context.Background()
	loc := testsupport.SeedLocation(t, store, catalog.Location{CelebrityID: "ryo", Name: "炭火やきとり 泪橋"})

	if err := tracker.RegisterURL(ctx, loc, "https://tabelog.com/tokyo/A1324/"); err != nil {
		t.Fatalf("RegisterURL: %v", err)
	}

	stored, err := store.GetLocation(ctx, loc.ID)
	if err != nil {
		t.Fatalf("GetLocation: %v", err)
	}
	if stored.Affiliate.LinkSwitch.Status != catalog.LinkStatusInactive {
		t.Errorf("status = %q, want inactive", stored.Affiliate.LinkSwitch.Status)
	}
	if stored.Affiliate.LinkSwitch.OriginalURL == "" {
		t.Error("original url not persisted")
	}
}

func TestActivateWithoutURLRejected(t *testing.T) {
	tracker, store := newTracker(t)
	ctx := context.Background()
	loc := testsupport.SeedLocation(t, store, catalog.Location{CelebrityID: "ryo", Name: "炭火やきとり 泪橋"})

	err := tracker.Activate(ctx, loc, "manual")
	if !errors.Is(err, affiliate.ErrInvalidTransition) {
		t.Fatalf("err = %v, want ErrInvalidTransition", err)
	}

	stored, err := store.GetLocation(ctx, loc.ID)
	if err != nil {
		t.Fatalf("GetLocation: %v", err)
	}
	if stored.Affiliate.LinkSwitch.Status == catalog.LinkStatusActive {
		t.Error("rejected activation must not change state")
	}
}

func TestActivateSetsMetadata(t *testing.T) {
	tracker, store := newTracker(t)
	ctx := context.Background()
	loc := testsupport.SeedLocation(t, store, catalog.Location{CelebrityID: "ryo", Name: "銀座三越"})

	if err := tracker.RegisterURL(ctx, loc, "https://tabelog.com/tokyo/A1301/"); err != nil {
		t.Fatalf("RegisterURL: %v", err)
	}
	if err := tracker.Activate(ctx, loc, "manual"); err != nil {
		t.Fatalf("Activate: %v", err)
	}

	stored, err := store.GetLocation(ctx, loc.ID)
	if err != nil {
		t.Fatalf("GetLocation: %v", err)
	}
	ls := stored.Affiliate.LinkSwitch
	if ls.Status != catalog.LinkStatusActive {
		t.Errorf("status = %q, want active", ls.Status)
	}
	if ls.ActivationDate == nil || ls.LastVerified == nil {
		t.Error("activation timestamps not set")
	}
	if ls.ActivationSource != "manual" {
		t.Errorf("activation source = %q, want manual", ls.ActivationSource)
	}
}

func TestMarkClosedIsOneWay(t *testing.T) {
	tracker, store := newTracker(t)
	ctx := context.Background()
	loc := testsupport.SeedLocation(t, store, catalog.Location{CelebrityID: "ryo", Name: "銀座三越"})

	if err := tracker.RegisterURL(ctx, loc, "https://tabelog.com/tokyo/A1301/"); err != nil {
		t.Fatalf("RegisterURL: %v", err)
	}
	if err := tracker.Activate(ctx, loc, "manual"); err != nil {
		t.Fatalf("Activate: %v", err)
	}
	if err := tracker.MarkClosed(ctx, loc); err != nil {
		t.Fatalf("MarkClosed: %v", err)
	}

	stored, err := store.GetLocation(ctx, loc.ID)
	if err != nil {
		t.Fatalf("GetLocation: %v", err)
	}
	if stored.Affiliate.LinkSwitch.Status != catalog.LinkStatusInactive {
		t.Errorf("closed location status = %q, want inactive", stored.Affiliate.LinkSwitch.Status)
	}

	// Reactivation must fail even though the URL survived the closure.
	if err := tracker.Activate(ctx, loc, "manual"); !errors.Is(err, affiliate.ErrInvalidTransition) {
		t.Errorf("err = %v, want ErrInvalidTransition after closure", err)
	}
}

func TestTransitionSafetyInvariant(t *testing.T) {
	tracker, store := newTracker(t)
	ctx := context.Background()
	loc := testsupport.SeedLocation(t, store, catalog.Location{CelebrityID: "ryo", Name: "一蘭"})

	// Arbitrary call sequence; active must always imply URL + not closed.
	steps := []func() error{
		func() error { return tracker.Activate(ctx, loc, "s1") },
		func() error { return tracker.RegisterURL(ctx, loc, "https://tabelog.com/x/") },
		func() error { return tracker.Activate(ctx, loc, "s2") },
		func() error { return tracker.MarkClosed(ctx, loc) },
		func() error { return tracker.Activate(ctx, loc, "s3") },
	}
	for i, step := range steps {
		err := step()
		if err != nil && !errors.Is(err, affiliate.ErrInvalidTransition) {
			t.Fatalf("step %d: %v", i, err)
		}

		stored, err := store.GetLocation(ctx, loc.ID)
		if err != nil {
			t.Fatalf("step %d GetLocation: %v", i, err)
		}
		ls := stored.Affiliate.LinkSwitch
		if ls.Status == catalog.LinkStatusActive {
			if ls.OriginalURL == "" {
				t.Fatalf("step %d: active without original url", i)
			}
			if stored.Affiliate.Restaurant.BusinessStatus == catalog.BusinessPermanentlyClosed {
				t.Fatalf("step %d: active while permanently closed", i)
			}
		}
	}
}

func TestActivateBatchCounts(t *testing.T) {
	tracker, store := newTracker(t)
	ctx := context.Background()

	eligible := testsupport.SeedLocation(t, store, catalog.Location{
		CelebrityID: "ryo",
		Name:        "銀座三越",
		Affiliate: catalog.AffiliateInfo{
			LinkSwitch: catalog.LinkSwitch{
				Status:      catalog.LinkStatusInactive,
				OriginalURL: "https://tabelog.com/tokyo/A1301/",
			},
			Restaurant: catalog.RestaurantInfo{BusinessStatus: catalog.BusinessOperating},
		},
	})
	closed := testsupport.SeedLocation(t, store, catalog.Location{
		CelebrityID: "ryo",
		Name:        "閉店済みの店",
		Affiliate: catalog.AffiliateInfo{
			LinkSwitch: catalog.LinkSwitch{
				Status:      catalog.LinkStatusInactive,
				OriginalURL: "https://tabelog.com/tokyo/A9999/",
			},
			Restaurant: catalog.RestaurantInfo{BusinessStatus: catalog.BusinessPermanentlyClosed},
		},
	})
	active := testsupport.SeedLocation(t, store, catalog.Location{
		CelebrityID: "ryo",
		Name:        "既に有効な店",
		Affiliate: catalog.AffiliateInfo{
			LinkSwitch: catalog.LinkSwitch{
				Status:      catalog.LinkStatusActive,
				OriginalURL: "https://tabelog.com/tokyo/A1111/",
			},
			Restaurant: catalog.RestaurantInfo{BusinessStatus: catalog.BusinessOperating},
		},
	})
	noURL := testsupport.SeedLocation(t, store, catalog.Location{CelebrityID: "ryo", Name: "炭火やきとり 泪橋"})

	input := []*catalog.Location{eligible, closed, active, noURL}
	summary, err := tracker.ActivateBatch(ctx, input, "batch-test")
	if err != nil {
		t.Fatalf("ActivateBatch: %v", err)
	}

	if summary.Activated != 1 || summary.SkippedClosed != 1 || summary.AlreadyActive != 1 || summary.Ineligible != 1 {
		t.Errorf("summary = %+v, want one of each outcome", summary)
	}
	if summary.Total() != len(input) {
		t.Errorf("counts sum to %d, want %d", summary.Total(), len(input))
	}
	if summary.BatchID == "" {
		t.Error("batch id not set")
	}

	stored, err := store.GetLocation(ctx, eligible.ID)
	if err != nil {
		t.Fatalf("GetLocation: %v", err)
	}
	if stored.Affiliate.LinkSwitch.Status != catalog.LinkStatusActive {
		t.Errorf("eligible location status = %q, want active", stored.Affiliate.LinkSwitch.Status)
	}
	if !strings.HasPrefix(stored.Affiliate.LinkSwitch.ActivationSource, "batch-test/") {
		t.Errorf("activation source = %q, want batch-test/<id>", stored.Affiliate.LinkSwitch.ActivationSource)
	}
}

func TestActivateBatchDemotesClosedActive(t *testing.T) {
	tracker, store := newTracker(t)
	ctx := context.Background()

	// Active link whose business has since closed.
	loc := testsupport.SeedLocation(t, store, catalog.Location{
		CelebrityID: "ryo",
		Name:        "閉店した人気店",
		Affiliate: catalog.AffiliateInfo{
			LinkSwitch: catalog.LinkSwitch{
				Status:      catalog.LinkStatusActive,
				OriginalURL: "https://tabelog.com/tokyo/A2222/",
			},
			Restaurant: catalog.RestaurantInfo{BusinessStatus: catalog.BusinessPermanentlyClosed},
		},
	})

	summary, err := tracker.ActivateBatch(ctx, []*catalog.Location{loc}, "batch-test")
	if err != nil {
		t.Fatalf("ActivateBatch: %v", err)
	}
	if summary.SkippedClosed != 1 || summary.AlreadyActive != 0 {
		t.Errorf("summary = %+v, want skipped-closed, never already-active", summary)
	}

	stored, err := store.GetLocation(ctx, loc.ID)
	if err != nil {
		t.Fatalf("GetLocation: %v", err)
	}
	if stored.Affiliate.LinkSwitch.Status != catalog.LinkStatusInactive {
		t.Errorf("status = %q, want inactive after demotion", stored.Affiliate.LinkSwitch.Status)
	}
}
