package extraction

import (
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// KnownPattern maps keyword hits in free text to a canonical entity.
type KnownPattern struct {
	Keywords []string `toml:"keywords"`
	Name     string   `toml:"name"`
	Address  string   `toml:"address"`
	Type     string   `toml:"type"`
}

// PatternTable is the ordered list of known-entity patterns. Order matters:
// earlier patterns claim a canonical name before later ones.
type PatternTable []KnownPattern

type patternsFile struct {
	Patterns []KnownPattern `toml:"pattern"`
}

// LoadPatterns reads a pattern table from a TOML file. A missing path is a
// configuration error; malformed entries are rejected at load time.
func LoadPatterns(path string) (PatternTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read pattern table: %w", err)
	}
	var file patternsFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse pattern table: %w", err)
	}
	table := PatternTable(file.Patterns)
	if err := table.Validate(); err != nil {
		return nil, err
	}
	return table, nil
}

// Validate checks pattern table invariants.
func (t PatternTable) Validate() error {
	for i, pattern := range t {
		if strings.TrimSpace(pattern.Name) == "" {
			return fmt.Errorf("pattern %d: name must not be empty", i)
		}
		if len(pattern.Keywords) == 0 {
			return fmt.Errorf("pattern %d (%s): keywords must not be empty", i, pattern.Name)
		}
		for _, kw := range pattern.Keywords {
			if strings.TrimSpace(kw) == "" {
				return fmt.Errorf("pattern %d (%s): blank keyword", i, pattern.Name)
			}
		}
		switch pattern.Type {
		case "", string(CandidateLocation), string(CandidateItem):
		default:
			return fmt.Errorf("pattern %d (%s): unknown type %q", i, pattern.Name, pattern.Type)
		}
	}
	return nil
}

func (p KnownPattern) candidateType() CandidateType {
	if p.Type == string(CandidateItem) {
		return CandidateItem
	}
	return CandidateLocation
}
