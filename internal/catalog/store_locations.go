package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// InsertLocation persists a newly extracted location and returns the stored row.
func (s *Store) InsertLocation(ctx context.Context, loc *Location) (*Location, error) {
	if loc == nil {
		return nil, errors.New("location is nil")
	}
	tags, err := encodeTags(loc.Tags)
	if err != nil {
		return nil, err
	}
	affiliate := loc.Affiliate
	if affiliate.LinkSwitch.Status == "" {
		affiliate = NewAffiliateInfo()
	}
	affJSON, err := encodeAffiliate(affiliate)
	if err != nil {
		return nil, err
	}

	now := timestamp(time.Now())
	res, err := s.db.ExecContext(
		ctx,
		`INSERT INTO locations (celebrity_id, name, address, description, tags_json, external_url, affiliate_info_json, created_at, updated_at)
         VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		loc.CelebrityID,
		loc.Name,
		nullableString(loc.Address),
		nullableString(loc.Description),
		tags,
		nullableString(loc.ExternalURL),
		affJSON,
		now,
		now,
	)
	if err != nil {
		return nil, fmt.Errorf("insert location: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}
	return s.GetLocation(ctx, id)
}

// GetLocation fetches a location by identifier. Returns nil when not found.
func (s *Store) GetLocation(ctx context.Context, id int64) (*Location, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+locationColumns+` FROM locations WHERE id = ?`, id)
	loc, err := scanLocation(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get location: %w", err)
	}
	return loc, nil
}

// ListLocations returns locations ordered by id. An empty celebrityID lists
// every celebrity's locations.
func (s *Store) ListLocations(ctx context.Context, celebrityID string) ([]*Location, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if celebrityID == "" {
		rows, err = s.db.QueryContext(ctx, `SELECT `+locationColumns+` FROM locations ORDER BY id`)
	} else {
		rows, err = s.db.QueryContext(
			ctx,
			`SELECT `+locationColumns+` FROM locations WHERE celebrity_id = ? ORDER BY id`,
			celebrityID,
		)
	}
	if err != nil {
		return nil, fmt.Errorf("query locations: %w", err)
	}
	defer rows.Close()

	var locations []*Location
	for rows.Next() {
		loc, err := scanLocation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan location: %w", err)
		}
		locations = append(locations, loc)
	}
	return locations, rows.Err()
}

// UpdateLocation persists changes to an existing location, including its
// affiliate metadata.
func (s *Store) UpdateLocation(ctx context.Context, loc *Location) error {
	if loc == nil {
		return errors.New("location is nil")
	}
	tags, err := encodeTags(loc.Tags)
	if err != nil {
		return err
	}
	affJSON, err := encodeAffiliate(loc.Affiliate)
	if err != nil {
		return err
	}
	loc.UpdatedAt = time.Now().UTC()
	_, err = s.db.ExecContext(
		ctx,
		`UPDATE locations
         SET celebrity_id = ?, name = ?, address = ?, description = ?, tags_json = ?,
             external_url = ?, affiliate_info_json = ?, updated_at = ?
         WHERE id = ?`,
		loc.CelebrityID,
		loc.Name,
		nullableString(loc.Address),
		nullableString(loc.Description),
		tags,
		nullableString(loc.ExternalURL),
		affJSON,
		timestamp(loc.UpdatedAt),
		loc.ID,
	)
	if err != nil {
		return fmt.Errorf("update location: %w", err)
	}
	return nil
}

// DeleteLocation removes a location row. Junction rows must be re-pointed
// before deletion; callers use RepointLocationLinks first.
func (s *Store) DeleteLocation(ctx context.Context, id int64) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM locations WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete location: %w", err)
	}
	return nil
}
