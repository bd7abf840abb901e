package affiliate

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"pilgrim/internal/catalog"
	"pilgrim/internal/logging"
)

// Summary reports the disjoint outcomes of one activation batch. The four
// counts always sum to the number of input locations.
type Summary struct {
	BatchID       string
	Activated     int
	SkippedClosed int
	AlreadyActive int
	Ineligible    int
}

// Total returns the number of locations the batch examined.
func (s Summary) Total() int {
	return s.Activated + s.SkippedClosed + s.AlreadyActive + s.Ineligible
}

// ActivateBatch activates every eligible inactive link in the set. Each
// location lands in exactly one count:
//
//   - permanently closed rows are skipped; active ones are demoted first
//   - already-active rows are left untouched
//   - rows without an original URL are counted ineligible, no state change
//   - remaining rows activate, stamped with this batch's id and source
//
// Per-location write failures are logged and counted ineligible; the batch
// never aborts on one row.
func (t *Tracker) ActivateBatch(ctx context.Context, locations []*catalog.Location, source string) (Summary, error) {
	summary := Summary{BatchID: uuid.NewString()}
	batchSource := fmt.Sprintf("%s/%s", source, summary.BatchID)

	for _, loc := range locations {
		if loc == nil {
			summary.Ineligible++
			continue
		}

		if loc.Affiliate.Restaurant.BusinessStatus == catalog.BusinessPermanentlyClosed {
			if loc.Affiliate.LinkSwitch.Status == catalog.LinkStatusActive {
				if err := t.MarkClosed(ctx, loc); err != nil {
					t.logger.Error("demoting closed location failed",
						logging.Int64("location_id", loc.ID),
						logging.Error(err))
				}
			}
			summary.SkippedClosed++
			continue
		}

		if loc.Affiliate.LinkSwitch.Status == catalog.LinkStatusActive {
			summary.AlreadyActive++
			continue
		}

		err := t.Activate(ctx, loc, batchSource)
		switch {
		case errors.Is(err, ErrInvalidTransition):
			summary.Ineligible++
		case err != nil:
			t.logger.Error("activation failed",
				logging.Int64("location_id", loc.ID),
				logging.Error(err))
			summary.Ineligible++
		default:
			summary.Activated++
		}
	}

	t.logger.Info("activation batch finished",
		logging.String("batch_id", summary.BatchID),
		logging.Int("activated", summary.Activated),
		logging.Int("skipped_closed", summary.SkippedClosed),
		logging.Int("already_active", summary.AlreadyActive),
		logging.Int("ineligible", summary.Ineligible))
	return summary, nil
}
