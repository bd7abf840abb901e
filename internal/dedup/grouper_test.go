package dedup

import (
	"testing"

	"pilgrim/internal/catalog"
)

func loc(name, address string) *catalog.Location {
	return &catalog.Location{Name: name, Address: address}
}

func TestGroupLocationsIdentity(t *testing.T) {
	rows := []*catalog.Location{
		loc("サンリオピューロランド", "東京都多摩市"),
		loc("サンリオピューロランド ", "東京都多摩市"), // trailing space
		loc("銀座三越", "東京都中央区"),
	}

	groups := GroupLocations(rows)
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	if groups[0].Size() != 2 {
		t.Errorf("trailing-space variant not grouped: size = %d", groups[0].Size())
	}
}

func TestGroupLocationsPartition(t *testing.T) {
	rows := []*catalog.Location{
		loc("a", "x"), loc("b", "y"), loc("a", "x"), loc("c", ""), loc("b", "y"), loc("b", "z"),
	}

	groups := GroupLocations(rows)
	if len(groups) > len(rows) {
		t.Errorf("groups (%d) exceed input rows (%d)", len(groups), len(rows))
	}

	total := 0
	seen := make(map[*catalog.Location]bool)
	for _, group := range groups {
		for _, member := range group.Members {
			if seen[member] {
				t.Errorf("row %v appears in more than one group", member)
			}
			seen[member] = true
			total++
		}
	}
	if total != len(rows) {
		t.Errorf("grouped %d rows, want all %d", total, len(rows))
	}
}

func TestGroupLocationsAddressDistinguishes(t *testing.T) {
	rows := []*catalog.Location{
		loc("一蘭", "東京都渋谷区"),
		loc("一蘭", "福岡県福岡市"),
	}
	if groups := GroupLocations(rows); len(groups) != 2 {
		t.Errorf("same name at different addresses should not group: %d groups", len(groups))
	}
}

func TestCompletenessScore(t *testing.T) {
	tests := []struct {
		name string
		loc  *catalog.Location
		want int
	}{
		{"empty", loc("x", ""), 0},
		{"long address", loc("x", "東京都中央区銀座四丁目6番16号"), 3},
		{"short address", loc("x", "東京都"), 0},
		{
			"everything",
			&catalog.Location{
				Name:        "x",
				Address:     "東京都中央区銀座四丁目6番16号",
				Description: "日本橋と並ぶ三越の旗艦店。ライオン像が目印の老舗百貨店。",
				ExternalURL: "https://example.com",
				Tags:        []string{"shopping"},
			},
			7,
		},
		{"nil", nil, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CompletenessScore(tt.loc); got != tt.want {
				t.Errorf("CompletenessScore = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestReferenceSelectionDeterministic(t *testing.T) {
	rich := &catalog.Location{
		Name:        "サンリオピューロランド",
		Address:     "東京都多摩市落合1-31",
		Description: "屋内型テーマパーク。キティやマイメロのショーが一日中開催される。",
		ExternalURL: "https://puroland.jp",
		Tags:        []string{"theme-park"},
	}
	poor := loc("サンリオピューロランド", "東京都多摩市落合1-31")

	// Same rows in both orders select the same reference.
	for _, rows := range [][]*catalog.Location{{poor, rich}, {rich, poor}} {
		groups := GroupLocations(rows)
		if len(groups) != 1 {
			t.Fatalf("expected 1 group, got %d", len(groups))
		}
		if groups[0].Reference != rich {
			t.Errorf("reference = %+v, want the richer row", groups[0].Reference)
		}
	}
}

func TestReferenceTieKeepsFirst(t *testing.T) {
	first := loc("泪橋", "東京都")
	second := loc("泪橋", "東京都")

	groups := GroupLocations([]*catalog.Location{first, second})
	if len(groups) != 1 {
		t.Fatalf("expected 1 group, got %d", len(groups))
	}
	if groups[0].Reference != first {
		t.Error("equal scores should keep the first encountered row")
	}
}

func TestDuplicateGroupsFilters(t *testing.T) {
	rows := []*catalog.Location{
		loc("a", "x"), loc("a", "x"), loc("b", "y"),
	}
	dupes := DuplicateGroups(rows)
	if len(dupes) != 1 {
		t.Fatalf("expected 1 duplicate group, got %d", len(dupes))
	}
	if dupes[0].Size() != 2 {
		t.Errorf("duplicate group size = %d, want 2", dupes[0].Size())
	}
}
