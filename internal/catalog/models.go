package catalog

import (
	"strings"
	"time"
)

// LinkStatus is the activation lifecycle of a location's affiliate link.
type LinkStatus string

const (
	LinkStatusUnset    LinkStatus = "unset"
	LinkStatusInactive LinkStatus = "inactive"
	LinkStatusActive   LinkStatus = "active"
)

var linkStatusSet = map[LinkStatus]struct{}{
	LinkStatusUnset:    {},
	LinkStatusInactive: {},
	LinkStatusActive:   {},
}

// ParseLinkStatus converts a string into a known LinkStatus.
func ParseLinkStatus(value string) (LinkStatus, bool) {
	normalized := LinkStatus(strings.ToLower(strings.TrimSpace(value)))
	if normalized == "" {
		return "", false
	}
	_, ok := linkStatusSet[normalized]
	return normalized, ok
}

// BusinessStatus describes whether the underlying business still operates.
type BusinessStatus string

const (
	BusinessOperating         BusinessStatus = "operating"
	BusinessPermanentlyClosed BusinessStatus = "permanently_closed"
	BusinessOperatingOverseas BusinessStatus = "operating_overseas"
)

// LinkSwitch carries the affiliate link activation state for one location.
type LinkSwitch struct {
	Status           LinkStatus `json:"status"`
	OriginalURL      string     `json:"original_url,omitempty"`
	LastVerified     *time.Time `json:"last_verified,omitempty"`
	ActivationDate   *time.Time `json:"activation_date,omitempty"`
	ActivationSource string     `json:"activation_source,omitempty"`
}

// RestaurantInfo carries business verification metadata for one location.
type RestaurantInfo struct {
	VerificationStatus string         `json:"verification_status,omitempty"`
	BusinessStatus     BusinessStatus `json:"business_status,omitempty"`
}

// AffiliateInfo is the nested affiliate metadata persisted per location.
type AffiliateInfo struct {
	LinkSwitch LinkSwitch     `json:"linkswitch"`
	Restaurant RestaurantInfo `json:"restaurant_info"`
}

// NewAffiliateInfo returns affiliate metadata in its initial state.
func NewAffiliateInfo() AffiliateInfo {
	return AffiliateInfo{
		LinkSwitch: LinkSwitch{Status: LinkStatusUnset},
		Restaurant: RestaurantInfo{BusinessStatus: BusinessOperating},
	}
}

// Episode is a collected video episode. Immutable once collected except for
// description backfills; the reconciliation engine only reads episodes.
type Episode struct {
	ID          int64
	CelebrityID string
	Title       string
	Description string
	AirDate     string
	ViewCount   int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Location is a physical place extracted from episode content, owned by one
// celebrity and possibly referenced by many episodes through junction rows.
type Location struct {
	ID          int64
	CelebrityID string
	Name        string
	Address     string
	Description string
	Tags        []string
	ExternalURL string
	Affiliate   AffiliateInfo
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Item is a merchandise item extracted from episode content.
type Item struct {
	ID          int64
	CelebrityID string
	Name        string
	Brand       string
	Description string
	Tags        []string
	ExternalURL string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// EpisodeLocation links one episode to one location it featured.
type EpisodeLocation struct {
	EpisodeID  int64
	LocationID int64
}

// EpisodeItem links one episode to one item it featured.
type EpisodeItem struct {
	EpisodeID int64
	ItemID    int64
}
