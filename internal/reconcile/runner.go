package reconcile

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/gofrs/flock"

	"pilgrim/internal/catalog"
	"pilgrim/internal/config"
	"pilgrim/internal/extraction"
	"pilgrim/internal/logging"
	"pilgrim/internal/matching"
	"pilgrim/internal/scoring"
	"pilgrim/internal/textutil"
)

// ErrLocked is returned when another reconcile run holds the run lock.
var ErrLocked = errors.New("another reconcile run is in progress")

// Summary aggregates one run's per-candidate outcomes.
type Summary struct {
	EpisodesScanned int
	Candidates      int
	Matched         int
	Unmatched       int
	Discarded       int
	Skipped         int
	Failed          int
}

// Runner wires the extractor, scorer and matcher over the catalog store.
type Runner struct {
	store     *catalog.Store
	cfg       *config.Config
	extractor *extraction.Extractor
	scorer    *scoring.HeuristicScorer
	matcher   *matching.Matcher
	rules     map[string][]matching.Rule
	logger    *slog.Logger
}

// NewRunner builds a Runner from loaded rule and pattern configuration.
func NewRunner(
	store *catalog.Store,
	cfg *config.Config,
	rules map[string][]matching.Rule,
	patterns extraction.PatternTable,
	logger *slog.Logger,
) *Runner {
	return &Runner{
		store:     store,
		cfg:       cfg,
		extractor: extraction.NewExtractor(patterns),
		scorer:    scoring.NewHeuristicScorer(cfg.Scoring),
		matcher:   matching.NewMatcher(store, cfg.Matching.EpisodeLookupLimit, logger),
		rules:     rules,
		logger:    logging.NewComponentLogger(logger, "reconcile"),
	}
}

// Run reconciles one celebrity's episodes under the run lock. Candidate
// failures are logged and counted; only lock and read errors abort the run.
func (r *Runner) Run(ctx context.Context, celebrityID string) (Summary, error) {
	var summary Summary

	lock := flock.New(r.cfg.LockPath())
	locked, err := lock.TryLock()
	if err != nil {
		return summary, fmt.Errorf("acquire run lock: %w", err)
	}
	if !locked {
		return summary, ErrLocked
	}
	defer func() { _ = lock.Unlock() }()

	episodes, err := r.store.EpisodesByCelebrity(ctx, celebrityID)
	if err != nil {
		return summary, fmt.Errorf("list episodes: %w", err)
	}

	locations, err := r.locationIndex(ctx, celebrityID)
	if err != nil {
		return summary, err
	}
	items, err := r.itemIndex(ctx, celebrityID)
	if err != nil {
		return summary, err
	}

	rules := r.rules[celebrityID]
	for _, episode := range episodes {
		summary.EpisodesScanned++
		r.reconcileEpisode(ctx, episode, rules, locations, items, &summary)
	}

	r.logger.Info("reconcile run finished",
		logging.String("celebrity_id", celebrityID),
		logging.Int("episodes", summary.EpisodesScanned),
		logging.Int("candidates", summary.Candidates),
		logging.Int("matched", summary.Matched),
		logging.Int("unmatched", summary.Unmatched),
		logging.Int("discarded", summary.Discarded),
		logging.Int("skipped", summary.Skipped),
		logging.Int("failed", summary.Failed))
	return summary, nil
}

func (r *Runner) reconcileEpisode(
	ctx context.Context,
	episode *catalog.Episode,
	rules []matching.Rule,
	locations map[string]*catalog.Location,
	items map[string]*catalog.Item,
	summary *Summary,
) {
	candidates := r.extractor.Extract(episode.Title, episode.Description)
	for _, candidate := range candidates {
		summary.Candidates++

		sideChannel := r.scoreContext(candidate, episode.Description)
		result := r.scorer.Score(candidate, sideChannel)
		if r.scorer.Classify(result.Score) == scoring.ConfidenceDiscard {
			summary.Discarded++
			continue
		}

		switch candidate.Type {
		case extraction.CandidateLocation:
			r.reconcileLocation(ctx, episode, candidate, rules, locations, summary)
		case extraction.CandidateItem:
			r.reconcileItem(ctx, episode, candidate, rules, items, summary)
		default:
			// Person mentions corroborate episodes but are never persisted.
			summary.Skipped++
		}
	}
}

func (r *Runner) reconcileLocation(
	ctx context.Context,
	episode *catalog.Episode,
	candidate extraction.Candidate,
	rules []matching.Rule,
	index map[string]*catalog.Location,
	summary *Summary,
) {
	key := textutil.NormalizeKey(candidate.Name, candidate.Address)
	loc, ok := index[key]
	if !ok {
		stored, err := r.store.InsertLocation(ctx, &catalog.Location{
			CelebrityID: episode.CelebrityID,
			Name:        candidate.Name,
			Address:     candidate.Address,
		})
		if err != nil {
			r.failCandidate(candidate, episode, -1, err, summary)
			return
		}
		loc = stored
		index[key] = loc
	}

	match, err := r.matcher.MatchEpisode(ctx, episode.CelebrityID, candidate.Name, rules)
	if err != nil {
		r.failCandidate(candidate, episode, -1, err, summary)
		return
	}
	if match == nil {
		summary.Unmatched++
		return
	}

	if _, err := r.store.LinkEpisodeLocation(ctx, match.Episode.ID, loc.ID); err != nil {
		r.failCandidate(candidate, episode, match.RuleIndex, err, summary)
		return
	}
	summary.Matched++
}

func (r *Runner) reconcileItem(
	ctx context.Context,
	episode *catalog.Episode,
	candidate extraction.Candidate,
	rules []matching.Rule,
	index map[string]*catalog.Item,
	summary *Summary,
) {
	key := textutil.Normalize(candidate.Name)
	item, ok := index[key]
	if !ok {
		stored, err := r.store.InsertItem(ctx, &catalog.Item{
			CelebrityID: episode.CelebrityID,
			Name:        candidate.Name,
		})
		if err != nil {
			r.failCandidate(candidate, episode, -1, err, summary)
			return
		}
		item = stored
		index[key] = item
	}

	match, err := r.matcher.MatchEpisode(ctx, episode.CelebrityID, candidate.Name, rules)
	if err != nil {
		r.failCandidate(candidate, episode, -1, err, summary)
		return
	}
	if match == nil {
		summary.Unmatched++
		return
	}

	if _, err := r.store.LinkEpisodeItem(ctx, match.Episode.ID, item.ID); err != nil {
		r.failCandidate(candidate, episode, match.RuleIndex, err, summary)
		return
	}
	summary.Matched++
}

// scoreContext derives the side-channel scoring signals from the episode
// description and the candidate's own address.
func (r *Runner) scoreContext(candidate extraction.Candidate, description string) scoring.Context {
	address := candidate.Address
	if address == "" {
		address = textutil.ExtractAddress(description)
	}
	return scoring.Context{
		HasAddress:    address != "",
		HasPhone:      textutil.HasPhoneNumber(description),
		HasBookingURL: textutil.HasURL(description),
		Address:       address,
	}
}

func (r *Runner) failCandidate(
	candidate extraction.Candidate,
	episode *catalog.Episode,
	ruleIndex int,
	err error,
	summary *Summary,
) {
	summary.Failed++
	r.logger.Error("candidate reconciliation failed",
		logging.String("candidate", candidate.Name),
		logging.Int64("episode_id", episode.ID),
		logging.Int("rule_index", ruleIndex),
		logging.Error(err))
}

func (r *Runner) locationIndex(ctx context.Context, celebrityID string) (map[string]*catalog.Location, error) {
	rows, err := r.store.ListLocations(ctx, celebrityID)
	if err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	index := make(map[string]*catalog.Location, len(rows))
	for _, row := range rows {
		index[textutil.NormalizeKey(row.Name, row.Address)] = row
	}
	return index, nil
}

func (r *Runner) itemIndex(ctx context.Context, celebrityID string) (map[string]*catalog.Item, error) {
	rows, err := r.store.ListItems(ctx, celebrityID)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	index := make(map[string]*catalog.Item, len(rows))
	for _, row := range rows {
		index[textutil.Normalize(row.Name)] = row
	}
	return index, nil
}
