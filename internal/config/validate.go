package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate checks configuration invariants that would otherwise surface as
// confusing runtime behavior.
func (c *Config) Validate() error {
	var problems []string

	switch c.Logging.Format {
	case "", "console", "json":
	default:
		problems = append(problems, fmt.Sprintf("logging.format: unsupported value %q", c.Logging.Format))
	}

	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		problems = append(problems, fmt.Sprintf("logging.level: unsupported value %q", c.Logging.Level))
	}

	if strings.TrimSpace(c.Paths.DataDir) == "" {
		problems = append(problems, "paths.data_dir: must not be empty")
	}

	s := c.Scoring
	if !(s.HighThreshold > s.MediumThreshold && s.MediumThreshold > s.LowThreshold) {
		problems = append(problems, fmt.Sprintf(
			"scoring: thresholds must be strictly decreasing (high=%d medium=%d low=%d)",
			s.HighThreshold, s.MediumThreshold, s.LowThreshold))
	}
	if s.LowThreshold < 0 || s.HighThreshold > 100 {
		problems = append(problems, "scoring: thresholds must stay within [0,100]")
	}
	for name, weight := range map[string]int{
		"strict_name_weight":  s.StrictNameWeight,
		"common_name_weight":  s.CommonNameWeight,
		"honorific_weight":    s.HonorificWeight,
		"booking_url_penalty": s.BookingURLPenalty,
		"phone_penalty":       s.PhonePenalty,
		"address_penalty":     s.AddressPenalty,
	} {
		if weight < 0 {
			problems = append(problems, fmt.Sprintf("scoring.%s: must not be negative", name))
		}
	}

	if c.Matching.EpisodeLookupLimit <= 0 {
		problems = append(problems, "matching.episode_lookup_limit: must be positive")
	}

	if len(problems) > 0 {
		return errors.New("invalid configuration:\n  - " + strings.Join(problems, "\n  - "))
	}
	return nil
}
