package dedup

import (
	"unicode/utf8"

	"pilgrim/internal/catalog"
	"pilgrim/internal/textutil"
)

// Group is a set of location rows sharing one normalized identity key.
type Group struct {
	Key       string
	Members   []*catalog.Location
	Reference *catalog.Location
}

// Size returns the number of members in the group.
func (g Group) Size() int {
	return len(g.Members)
}

// Duplicates returns the non-reference members of the group.
func (g Group) Duplicates() []*catalog.Location {
	dupes := make([]*catalog.Location, 0, len(g.Members))
	for _, member := range g.Members {
		if member != g.Reference {
			dupes = append(dupes, member)
		}
	}
	return dupes
}

// GroupLocations partitions rows by normalized (name, address) identity.
// Every input row lands in exactly one group; group order follows first
// appearance in the input.
func GroupLocations(locations []*catalog.Location) []Group {
	index := make(map[string]int, len(locations))
	var groups []Group

	for _, loc := range locations {
		if loc == nil {
			continue
		}
		key := textutil.NormalizeKey(loc.Name, loc.Address)
		if at, ok := index[key]; ok {
			groups[at].Members = append(groups[at].Members, loc)
			continue
		}
		index[key] = len(groups)
		groups = append(groups, Group{Key: key, Members: []*catalog.Location{loc}})
	}

	for i := range groups {
		groups[i].Reference = selectReference(groups[i].Members)
	}
	return groups
}

// DuplicateGroups filters to groups that actually contain duplicates.
func DuplicateGroups(locations []*catalog.Location) []Group {
	var out []Group
	for _, group := range GroupLocations(locations) {
		if group.Size() > 1 {
			out = append(out, group)
		}
	}
	return out
}

// CompletenessScore measures how much usable information a row carries.
func CompletenessScore(loc *catalog.Location) int {
	if loc == nil {
		return 0
	}
	score := 0
	if utf8.RuneCountInString(loc.Address) > 10 {
		score += 3
	}
	if utf8.RuneCountInString(loc.Description) > 20 {
		score += 2
	}
	if loc.ExternalURL != "" {
		score++
	}
	if len(loc.Tags) > 0 {
		score++
	}
	return score
}

// selectReference picks the highest-scoring member; ties keep the first
// encountered.
func selectReference(members []*catalog.Location) *catalog.Location {
	var best *catalog.Location
	bestScore := -1
	for _, member := range members {
		if score := CompletenessScore(member); score > bestScore {
			best = member
			bestScore = score
		}
	}
	return best
}
