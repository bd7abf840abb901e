package dedup

import (
	"context"
	"errors"
	"log/slog"

	"pilgrim/internal/catalog"
	"pilgrim/internal/logging"
)

// MergeSummary aggregates the outcome of merging duplicate groups.
type MergeSummary struct {
	GroupsMerged   int
	RowsRemoved    int
	LinksRepointed int64
}

// Merger collapses duplicate groups into their reference records.
type Merger struct {
	store  *catalog.Store
	logger *slog.Logger
}

// NewMerger builds a Merger over the catalog store.
func NewMerger(store *catalog.Store, logger *slog.Logger) *Merger {
	return &Merger{
		store:  store,
		logger: logging.NewComponentLogger(logger, "dedup"),
	}
}

// MergeGroup re-points every junction row from the group's duplicates to its
// reference, then deletes the duplicate rows. A failure on one duplicate
// stops the group merge so no row is deleted with links still attached.
func (m *Merger) MergeGroup(ctx context.Context, group Group) (MergeSummary, error) {
	var summary MergeSummary
	if group.Reference == nil {
		return summary, errors.New("group has no reference record")
	}
	if group.Size() < 2 {
		return summary, nil
	}

	for _, duplicate := range group.Duplicates() {
		moved, err := m.store.RepointLocationLinks(ctx, duplicate.ID, group.Reference.ID)
		if err != nil {
			return summary, err
		}
		summary.LinksRepointed += moved

		if err := m.store.DeleteLocation(ctx, duplicate.ID); err != nil {
			return summary, err
		}
		summary.RowsRemoved++

		m.logger.Info("merged duplicate location",
			logging.Int64("duplicate_id", duplicate.ID),
			logging.Int64("reference_id", group.Reference.ID),
			logging.Int64("links_repointed", moved))
	}
	summary.GroupsMerged = 1
	return summary, nil
}

// MergeAll merges every duplicate group in the provided location set. A
// failing group is logged and skipped; remaining groups still merge.
func (m *Merger) MergeAll(ctx context.Context, locations []*catalog.Location) (MergeSummary, error) {
	var total MergeSummary
	var firstErr error

	for _, group := range DuplicateGroups(locations) {
		summary, err := m.MergeGroup(ctx, group)
		total.GroupsMerged += summary.GroupsMerged
		total.RowsRemoved += summary.RowsRemoved
		total.LinksRepointed += summary.LinksRepointed
		if err != nil {
			m.logger.Error("group merge failed",
				logging.String("key", group.Key),
				logging.Error(err))
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return total, firstErr
}
