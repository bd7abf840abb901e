package catalog

import (
	"context"
	"fmt"
	"time"
)

// LinkEpisodeLocation records that a location appeared in an episode. The
// insert is idempotent: linking an already-linked pair reports created=false
// and is not an error.
func (s *Store) LinkEpisodeLocation(ctx context.Context, episodeID, locationID int64) (bool, error) {
	res, err := s.db.ExecContext(
		ctx,
		`INSERT OR IGNORE INTO episode_locations (episode_id, location_id, created_at) VALUES (?, ?, ?)`,
		episodeID,
		locationID,
		timestamp(time.Now()),
	)
	if err != nil {
		return false, fmt.Errorf("link episode %d to location %d: %w", episodeID, locationID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return affected > 0, nil
}

// LinkEpisodeItem records that an item appeared in an episode, idempotently.
func (s *Store) LinkEpisodeItem(ctx context.Context, episodeID, itemID int64) (bool, error) {
	res, err := s.db.ExecContext(
		ctx,
		`INSERT OR IGNORE INTO episode_items (episode_id, item_id, created_at) VALUES (?, ?, ?)`,
		episodeID,
		itemID,
		timestamp(time.Now()),
	)
	if err != nil {
		return false, fmt.Errorf("link episode %d to item %d: %w", episodeID, itemID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return affected > 0, nil
}

// LocationLinks returns the junction rows referencing a location.
func (s *Store) LocationLinks(ctx context.Context, locationID int64) ([]EpisodeLocation, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT episode_id, location_id FROM episode_locations WHERE location_id = ? ORDER BY episode_id`,
		locationID,
	)
	if err != nil {
		return nil, fmt.Errorf("query location links: %w", err)
	}
	defer rows.Close()

	var links []EpisodeLocation
	for rows.Next() {
		var link EpisodeLocation
		if err := rows.Scan(&link.EpisodeID, &link.LocationID); err != nil {
			return nil, fmt.Errorf("scan location link: %w", err)
		}
		links = append(links, link)
	}
	return links, rows.Err()
}

// RepointLocationLinks moves every junction row from one location to another
// inside a single transaction. Pairs that would collide with an existing
// (episode, to) link collapse to the existing row, so re-pointing is
// idempotent and never orphans a junction row.
func (s *Store) RepointLocationLinks(ctx context.Context, fromLocationID, toLocationID int64) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin repoint tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(
		ctx,
		`INSERT OR IGNORE INTO episode_locations (episode_id, location_id, created_at)
         SELECT episode_id, ?, ? FROM episode_locations WHERE location_id = ?`,
		toLocationID,
		timestamp(time.Now()),
		fromLocationID,
	)
	if err != nil {
		return 0, fmt.Errorf("copy links from location %d to %d: %w", fromLocationID, toLocationID, err)
	}
	moved, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}

	if _, err := tx.ExecContext(
		ctx,
		`DELETE FROM episode_locations WHERE location_id = ?`,
		fromLocationID,
	); err != nil {
		return 0, fmt.Errorf("remove links from location %d: %w", fromLocationID, err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit repoint: %w", err)
	}
	return moved, nil
}

// CountLocationLinks returns the number of junction rows for a location.
func (s *Store) CountLocationLinks(ctx context.Context, locationID int64) (int, error) {
	var count int
	err := s.db.QueryRowContext(
		ctx,
		`SELECT COUNT(1) FROM episode_locations WHERE location_id = ?`,
		locationID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count location links: %w", err)
	}
	return count, nil
}
