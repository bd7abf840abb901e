package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// InsertEpisode persists a collected episode and returns the stored row.
func (s *Store) InsertEpisode(ctx context.Context, ep *Episode) (*Episode, error) {
	if ep == nil {
		return nil, errors.New("episode is nil")
	}
	now := timestamp(time.Now())
	res, err := s.db.ExecContext(
		ctx,
		`INSERT INTO episodes (celebrity_id, title, description, air_date, view_count, created_at, updated_at)
         VALUES (?, ?, ?, ?, ?, ?, ?)`,
		ep.CelebrityID,
		ep.Title,
		nullableString(ep.Description),
		nullableString(ep.AirDate),
		ep.ViewCount,
		now,
		now,
	)
	if err != nil {
		return nil, fmt.Errorf("insert episode: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}
	return s.GetEpisode(ctx, id)
}

// GetEpisode fetches an episode by identifier. Returns nil when not found.
func (s *Store) GetEpisode(ctx context.Context, id int64) (*Episode, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+episodeColumns+` FROM episodes WHERE id = ?`, id)
	ep, err := scanEpisode(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get episode: %w", err)
	}
	return ep, nil
}

// EpisodesByCelebrity returns all episodes owned by a celebrity in insertion order.
func (s *Store) EpisodesByCelebrity(ctx context.Context, celebrityID string) ([]*Episode, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT `+episodeColumns+` FROM episodes WHERE celebrity_id = ? ORDER BY id`,
		celebrityID,
	)
	if err != nil {
		return nil, fmt.Errorf("query episodes: %w", err)
	}
	defer rows.Close()

	var episodes []*Episode
	for rows.Next() {
		ep, err := scanEpisode(rows)
		if err != nil {
			return nil, fmt.Errorf("scan episode: %w", err)
		}
		episodes = append(episodes, ep)
	}
	return episodes, rows.Err()
}

// UpdateEpisodeDescription backfills an episode description.
func (s *Store) UpdateEpisodeDescription(ctx context.Context, id int64, description string) error {
	_, err := s.db.ExecContext(
		ctx,
		`UPDATE episodes SET description = ?, updated_at = ? WHERE id = ?`,
		nullableString(description),
		timestamp(time.Now()),
		id,
	)
	if err != nil {
		return fmt.Errorf("update episode description: %w", err)
	}
	return nil
}
