package matching

import (
	"context"
	"log/slog"

	"pilgrim/internal/catalog"
	"pilgrim/internal/logging"
	"pilgrim/internal/textutil"
)

// Match is the outcome of a successful episode attribution.
type Match struct {
	Episode   *catalog.Episode
	RuleIndex int
	Rule      Rule
}

// Matcher finds the episode a candidate entity appeared in, scoped to one
// celebrity's episodes and rules.
type Matcher struct {
	store  *catalog.Store
	limit  int
	logger *slog.Logger
}

// NewMatcher builds a Matcher. limit caps how many episodes a keyword lookup
// may consider; the first hit is authoritative.
func NewMatcher(store *catalog.Store, limit int, logger *slog.Logger) *Matcher {
	if limit <= 0 {
		limit = 5
	}
	return &Matcher{
		store:  store,
		limit:  limit,
		logger: logging.NewComponentLogger(logger, "matcher"),
	}
}

// MatchEpisode applies the ordered rules to a candidate name and returns the
// first episode a rule yields, or nil when no rule matches. A nil result is
// a normal terminal outcome, not an error.
func (m *Matcher) MatchEpisode(ctx context.Context, celebrityID, candidateName string, rules []Rule) (*Match, error) {
	if candidateName == "" || len(rules) == 0 {
		return nil, nil
	}

	episodes, err := m.store.EpisodesByCelebrity(ctx, celebrityID)
	if err != nil {
		return nil, err
	}
	if len(episodes) == 0 {
		return nil, nil
	}

	for ruleIdx, rule := range rules {
		if !ruleClaimsCandidate(rule, candidateName) {
			continue
		}
		for _, keyword := range rule.EpisodeKeywords {
			if ep := firstEpisodeWithKeyword(episodes, keyword, m.limit); ep != nil {
				m.logger.Debug("candidate matched to episode",
					logging.String("candidate", candidateName),
					logging.Int64("episode_id", ep.ID),
					logging.Int("rule_index", ruleIdx),
					logging.String("episode_keyword", keyword))
				return &Match{Episode: ep, RuleIndex: ruleIdx, Rule: rule}, nil
			}
		}
	}
	return nil, nil
}

// ruleClaimsCandidate reports whether any entity keyword is a substring of
// the candidate name.
func ruleClaimsCandidate(rule Rule, candidateName string) bool {
	for _, keyword := range rule.EntityKeywords {
		if textutil.ContainsFold(candidateName, keyword) {
			return true
		}
	}
	return false
}

// firstEpisodeWithKeyword scans episodes in order for titles containing the
// keyword. The lookup fans out to at most limit matches; the first one is
// authoritative.
func firstEpisodeWithKeyword(episodes []*catalog.Episode, keyword string, limit int) *catalog.Episode {
	var matches []*catalog.Episode
	for _, ep := range episodes {
		if textutil.ContainsFold(ep.Title, keyword) {
			matches = append(matches, ep)
			if len(matches) >= limit {
				break
			}
		}
	}
	if len(matches) == 0 {
		return nil
	}
	return matches[0]
}
