package affiliate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"pilgrim/internal/catalog"
	"pilgrim/internal/logging"
)

// ErrInvalidTransition marks a rejected state change. The location is left
// untouched when this is returned.
var ErrInvalidTransition = errors.New("invalid affiliate transition")

// Tracker applies link lifecycle transitions to location records.
type Tracker struct {
	store  *catalog.Store
	logger *slog.Logger
}

// NewTracker builds a Tracker over the catalog store.
func NewTracker(store *catalog.Store, logger *slog.Logger) *Tracker {
	return &Tracker{
		store:  store,
		logger: logging.NewComponentLogger(logger, "affiliate"),
	}
}

// RegisterURL records a newly discovered original URL and moves an unset
// link to inactive. Registering the same URL again is a no-op; closed
// locations keep their URL updated but stay inactive.
func (t *Tracker) RegisterURL(ctx context.Context, loc *catalog.Location, originalURL string) error {
	if loc == nil {
		return errors.New("location is nil")
	}
	if originalURL == "" {
		return fmt.Errorf("%w: empty original url", ErrInvalidTransition)
	}

	ls := &loc.Affiliate.LinkSwitch
	if ls.OriginalURL == originalURL && ls.Status != catalog.LinkStatusUnset {
		return nil
	}
	ls.OriginalURL = originalURL
	if ls.Status == catalog.LinkStatusUnset {
		ls.Status = catalog.LinkStatusInactive
	}

	if err := t.store.UpdateLocation(ctx, loc); err != nil {
		return fmt.Errorf("register url: %w", err)
	}
	t.logger.Info("registered affiliate url",
		logging.Int64("location_id", loc.ID),
		logging.String("status", string(ls.Status)))
	return nil
}

// Activate moves an inactive link to active. The guard requires a non-empty
// original URL and a business that is not permanently closed; violations
// return ErrInvalidTransition without any state change. Already-active
// links are a no-op.
func (t *Tracker) Activate(ctx context.Context, loc *catalog.Location, source string) error {
	if loc == nil {
		return errors.New("location is nil")
	}

	ls := &loc.Affiliate.LinkSwitch
	if ls.Status == catalog.LinkStatusActive {
		return nil
	}
	if ls.OriginalURL == "" {
		return fmt.Errorf("%w: location %d has no original url", ErrInvalidTransition, loc.ID)
	}
	if loc.Affiliate.Restaurant.BusinessStatus == catalog.BusinessPermanentlyClosed {
		return fmt.Errorf("%w: location %d is permanently closed", ErrInvalidTransition, loc.ID)
	}

	now := time.Now().UTC()
	ls.Status = catalog.LinkStatusActive
	ls.ActivationDate = &now
	ls.LastVerified = &now
	ls.ActivationSource = source

	if err := t.store.UpdateLocation(ctx, loc); err != nil {
		return fmt.Errorf("activate link: %w", err)
	}
	t.logger.Info("activated affiliate link",
		logging.Int64("location_id", loc.ID),
		logging.String("source", source))
	return nil
}

// MarkClosed records a permanent business closure and demotes the link to
// inactive from any state. The demotion is one-way; Activate refuses closed
// locations afterwards.
func (t *Tracker) MarkClosed(ctx context.Context, loc *catalog.Location) error {
	if loc == nil {
		return errors.New("location is nil")
	}

	loc.Affiliate.Restaurant.BusinessStatus = catalog.BusinessPermanentlyClosed
	if loc.Affiliate.LinkSwitch.Status == catalog.LinkStatusActive {
		loc.Affiliate.LinkSwitch.Status = catalog.LinkStatusInactive
	}

	if err := t.store.UpdateLocation(ctx, loc); err != nil {
		return fmt.Errorf("mark closed: %w", err)
	}
	t.logger.Info("marked location closed",
		logging.Int64("location_id", loc.ID),
		logging.String("status", string(loc.Affiliate.LinkSwitch.Status)))
	return nil
}
