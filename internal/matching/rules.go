package matching

import (
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Rule pairs entity keywords with episode keywords for one matching attempt.
// Both keyword lists are ordered and must be non-empty.
type Rule struct {
	EntityKeywords  []string `toml:"entity_keywords"`
	EpisodeKeywords []string `toml:"episode_keywords"`
	Description     string   `toml:"description"`
}

// RuleSet is the ordered rule list for one celebrity. Earlier rules win.
type RuleSet struct {
	Celebrity string `toml:"celebrity"`
	Rules     []Rule `toml:"rule"`
}

type rulesFile struct {
	RuleSets []RuleSet `toml:"ruleset"`
}

// LoadRules reads per-celebrity rule sets from a TOML file and validates
// them. Rule order within a celebrity is preserved from the file.
func LoadRules(path string) (map[string][]Rule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rule table: %w", err)
	}
	var file rulesFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse rule table: %w", err)
	}

	rules := make(map[string][]Rule, len(file.RuleSets))
	for _, set := range file.RuleSets {
		celebrity := strings.TrimSpace(set.Celebrity)
		if celebrity == "" {
			return nil, fmt.Errorf("ruleset without a celebrity")
		}
		if _, exists := rules[celebrity]; exists {
			return nil, fmt.Errorf("duplicate ruleset for celebrity %q", celebrity)
		}
		if err := validateRules(celebrity, set.Rules); err != nil {
			return nil, err
		}
		rules[celebrity] = set.Rules
	}
	return rules, nil
}

func validateRules(celebrity string, rules []Rule) error {
	for i, rule := range rules {
		if len(rule.EntityKeywords) == 0 {
			return fmt.Errorf("celebrity %q rule %d: entity_keywords must not be empty", celebrity, i)
		}
		if len(rule.EpisodeKeywords) == 0 {
			return fmt.Errorf("celebrity %q rule %d: episode_keywords must not be empty", celebrity, i)
		}
		for _, kw := range append(append([]string{}, rule.EntityKeywords...), rule.EpisodeKeywords...) {
			if strings.TrimSpace(kw) == "" {
				return fmt.Errorf("celebrity %q rule %d: blank keyword", celebrity, i)
			}
		}
	}
	return nil
}
