package scoring

import (
	"fmt"
	"regexp"
	"unicode/utf8"

	"pilgrim/internal/config"
	"pilgrim/internal/extraction"
	"pilgrim/internal/textutil"
)

// Context carries the side-channel attributes of the record a candidate was
// extracted from. These corroborate or disqualify the candidate independent
// of its name.
type Context struct {
	HasAddress    bool
	HasPhone      bool
	HasBookingURL bool
	// Address is the concrete address text, used for the long-address penalty.
	Address string
}

// Result is a scored candidate evaluation.
type Result struct {
	Score   int
	Reasons []string
}

// Confidence buckets a score for callers that only care about thresholds.
type Confidence string

const (
	ConfidenceHigh    Confidence = "high"
	ConfidenceMedium  Confidence = "medium"
	ConfidenceLow     Confidence = "low"
	ConfidenceDiscard Confidence = "discard"
)

// Scorer estimates how likely a candidate is a genuine entity of its type.
type Scorer interface {
	Score(candidate extraction.Candidate, sideChannel Context) Result
}

// strictNamePattern is the surname-givenname token shape worth the top weight.
var strictNamePattern = regexp.MustCompile(`^(?:[一-龠々]{1,3}[\s　][一-龠々]{1,4}|[A-Z][a-z]+ [A-Z][a-z]+)$`)

// honorificSuffixPattern matches honorific or group-name suffixes on the name itself.
var honorificSuffixPattern = regexp.MustCompile(`(?:さん|くん|ちゃん|様|先生|社長|会長|一家|ファミリー|兄弟)$`)

// commonSurnames is the common-name dictionary consulted for the medium weight.
var commonSurnames = []string{
	"佐藤", "鈴木", "高橋", "田中", "伊藤", "渡辺", "山本", "中村", "小林", "加藤",
	"吉田", "山田", "佐々木", "山口", "松本", "井上", "木村", "林", "斎藤", "清水",
}

// placeholderAddresses are generic values that carry no locating information
// and therefore trigger no penalty.
var placeholderAddresses = []string{"日本", "東京", "不明", "非公開", "未定"}

// HeuristicScorer is the keyword/regex-based Scorer implementation.
type HeuristicScorer struct {
	cfg config.Scoring
}

// NewHeuristicScorer builds a scorer from configured weights and penalties.
func NewHeuristicScorer(cfg config.Scoring) *HeuristicScorer {
	return &HeuristicScorer{cfg: cfg}
}

// Score evaluates one candidate. The result is clamped to [0,100] and the
// reason list explains every signal that contributed.
func (s *HeuristicScorer) Score(candidate extraction.Candidate, sideChannel Context) Result {
	score := 0
	var reasons []string

	if strictNamePattern.MatchString(candidate.Name) {
		score += s.cfg.StrictNameWeight
		reasons = append(reasons, fmt.Sprintf("strict surname-givenname shape (+%d)", s.cfg.StrictNameWeight))
	}
	if s.matchesCommonName(candidate.Name) {
		score += s.cfg.CommonNameWeight
		reasons = append(reasons, fmt.Sprintf("common-name dictionary hit (+%d)", s.cfg.CommonNameWeight))
	}
	if honorificSuffixPattern.MatchString(candidate.Name) || candidate.SourceRule == extraction.SourceHonorific {
		score += s.cfg.HonorificWeight
		reasons = append(reasons, fmt.Sprintf("honorific or group-name match (+%d)", s.cfg.HonorificWeight))
	}
	if candidate.SourceRule == extraction.SourceKnownPattern {
		score += s.cfg.CommonNameWeight
		reasons = append(reasons, fmt.Sprintf("known-entity pattern hit (+%d)", s.cfg.CommonNameWeight))
	}

	if sideChannel.HasBookingURL {
		score -= s.cfg.BookingURLPenalty
		reasons = append(reasons, fmt.Sprintf("external booking URL present (-%d)", s.cfg.BookingURLPenalty))
	}
	if sideChannel.HasPhone {
		score -= s.cfg.PhonePenalty
		reasons = append(reasons, fmt.Sprintf("phone number present (-%d)", s.cfg.PhonePenalty))
	}
	if isConcreteLongAddress(sideChannel.Address) {
		score -= s.cfg.AddressPenalty
		reasons = append(reasons, fmt.Sprintf("long concrete address (-%d)", s.cfg.AddressPenalty))
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return Result{Score: score, Reasons: reasons}
}

// Classify buckets a score using the configured thresholds.
func (s *HeuristicScorer) Classify(score int) Confidence {
	switch {
	case score >= s.cfg.HighThreshold:
		return ConfidenceHigh
	case score >= s.cfg.MediumThreshold:
		return ConfidenceMedium
	case score >= s.cfg.LowThreshold:
		return ConfidenceLow
	default:
		return ConfidenceDiscard
	}
}

func (s *HeuristicScorer) matchesCommonName(name string) bool {
	for _, surname := range commonSurnames {
		if textutil.ContainsFold(name, surname) {
			return true
		}
	}
	return false
}

// isConcreteLongAddress reports whether an address is specific enough to
// disqualify a person candidate: longer than 15 runes and not a placeholder.
func isConcreteLongAddress(address string) bool {
	if utf8.RuneCountInString(address) <= 15 {
		return false
	}
	for _, placeholder := range placeholderAddresses {
		if textutil.EqualFold(address, placeholder) {
			return false
		}
	}
	return true
}
