package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// InsertItem persists a newly extracted merchandise item and returns the stored row.
func (s *Store) InsertItem(ctx context.Context, item *Item) (*Item, error) {
	if item == nil {
		return nil, errors.New("item is nil")
	}
	tags, err := encodeTags(item.Tags)
	if err != nil {
		return nil, err
	}
	now := timestamp(time.Now())
	res, err := s.db.ExecContext(
		ctx,
		`INSERT INTO items (celebrity_id, name, brand, description, tags_json, external_url, created_at, updated_at)
         VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		item.CelebrityID,
		item.Name,
		nullableString(item.Brand),
		nullableString(item.Description),
		tags,
		nullableString(item.ExternalURL),
		now,
		now,
	)
	if err != nil {
		return nil, fmt.Errorf("insert item: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}
	return s.GetItem(ctx, id)
}

// GetItem fetches an item by identifier. Returns nil when not found.
func (s *Store) GetItem(ctx context.Context, id int64) (*Item, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+itemColumns+` FROM items WHERE id = ?`, id)
	item, err := scanItem(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}
	return item, nil
}

// ListItems returns items ordered by id. An empty celebrityID lists all items.
func (s *Store) ListItems(ctx context.Context, celebrityID string) ([]*Item, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if celebrityID == "" {
		rows, err = s.db.QueryContext(ctx, `SELECT `+itemColumns+` FROM items ORDER BY id`)
	} else {
		rows, err = s.db.QueryContext(
			ctx,
			`SELECT `+itemColumns+` FROM items WHERE celebrity_id = ? ORDER BY id`,
			celebrityID,
		)
	}
	if err != nil {
		return nil, fmt.Errorf("query items: %w", err)
	}
	defer rows.Close()

	var items []*Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
