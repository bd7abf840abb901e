package catalog

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

const episodeColumns = "id, celebrity_id, title, description, air_date, view_count, created_at, updated_at"

const locationColumns = "id, celebrity_id, name, address, description, tags_json, external_url, affiliate_info_json, created_at, updated_at"

const itemColumns = "id, celebrity_id, name, brand, description, tags_json, external_url, created_at, updated_at"

type rowScanner interface{ Scan(dest ...any) error }

func scanEpisode(scanner rowScanner) (*Episode, error) {
	var (
		ep          Episode
		description sql.NullString
		airDate     sql.NullString
		createdRaw  string
		updatedRaw  string
	)
	if err := scanner.Scan(
		&ep.ID,
		&ep.CelebrityID,
		&ep.Title,
		&description,
		&airDate,
		&ep.ViewCount,
		&createdRaw,
		&updatedRaw,
	); err != nil {
		return nil, err
	}
	ep.Description = description.String
	ep.AirDate = airDate.String
	if created, err := parseTimeString(createdRaw); err == nil {
		ep.CreatedAt = created
	}
	if updated, err := parseTimeString(updatedRaw); err == nil {
		ep.UpdatedAt = updated
	}
	return &ep, nil
}

func scanLocation(scanner rowScanner) (*Location, error) {
	var (
		loc         Location
		address     sql.NullString
		description sql.NullString
		tagsJSON    sql.NullString
		externalURL sql.NullString
		affJSON     sql.NullString
		createdRaw  string
		updatedRaw  string
	)
	if err := scanner.Scan(
		&loc.ID,
		&loc.CelebrityID,
		&loc.Name,
		&address,
		&description,
		&tagsJSON,
		&externalURL,
		&affJSON,
		&createdRaw,
		&updatedRaw,
	); err != nil {
		return nil, err
	}
	loc.Address = address.String
	loc.Description = description.String
	loc.ExternalURL = externalURL.String
	if tagsJSON.Valid && tagsJSON.String != "" {
		if err := json.Unmarshal([]byte(tagsJSON.String), &loc.Tags); err != nil {
			return nil, fmt.Errorf("decode tags for location %d: %w", loc.ID, err)
		}
	}
	loc.Affiliate = NewAffiliateInfo()
	if affJSON.Valid && affJSON.String != "" {
		if err := json.Unmarshal([]byte(affJSON.String), &loc.Affiliate); err != nil {
			return nil, fmt.Errorf("decode affiliate info for location %d: %w", loc.ID, err)
		}
	}
	if created, err := parseTimeString(createdRaw); err == nil {
		loc.CreatedAt = created
	}
	if updated, err := parseTimeString(updatedRaw); err == nil {
		loc.UpdatedAt = updated
	}
	return &loc, nil
}

func scanItem(scanner rowScanner) (*Item, error) {
	var (
		item        Item
		brand       sql.NullString
		description sql.NullString
		tagsJSON    sql.NullString
		externalURL sql.NullString
		createdRaw  string
		updatedRaw  string
	)
	if err := scanner.Scan(
		&item.ID,
		&item.CelebrityID,
		&item.Name,
		&brand,
		&description,
		&tagsJSON,
		&externalURL,
		&createdRaw,
		&updatedRaw,
	); err != nil {
		return nil, err
	}
	item.Brand = brand.String
	item.Description = description.String
	item.ExternalURL = externalURL.String
	if tagsJSON.Valid && tagsJSON.String != "" {
		if err := json.Unmarshal([]byte(tagsJSON.String), &item.Tags); err != nil {
			return nil, fmt.Errorf("decode tags for item %d: %w", item.ID, err)
		}
	}
	if created, err := parseTimeString(createdRaw); err == nil {
		item.CreatedAt = created
	}
	if updated, err := parseTimeString(updatedRaw); err == nil {
		item.UpdatedAt = updated
	}
	return &item, nil
}

func encodeTags(tags []string) (any, error) {
	if len(tags) == 0 {
		return nil, nil
	}
	data, err := json.Marshal(tags)
	if err != nil {
		return nil, fmt.Errorf("encode tags: %w", err)
	}
	return string(data), nil
}

func encodeAffiliate(info AffiliateInfo) (string, error) {
	data, err := json.Marshal(info)
	if err != nil {
		return "", fmt.Errorf("encode affiliate info: %w", err)
	}
	return string(data), nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}

func parseTimeString(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, fmt.Errorf("empty time value")
	}
	parsed, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}, err
	}
	return parsed.UTC(), nil
}

func timestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
