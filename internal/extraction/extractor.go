package extraction

import (
	"regexp"
	"strings"

	"pilgrim/internal/textutil"
)

// cjkNamePattern matches a kanji surname/givenname pair separated by a space.
var cjkNamePattern = regexp.MustCompile(`[一-龠々]{1,3}[\s　][一-龠々]{1,4}`)

// latinNamePattern matches a Latin "First Last" token pair.
var latinNamePattern = regexp.MustCompile(`\b[A-Z][a-z]+ [A-Z][a-z]+\b`)

// honorificPattern captures a name followed by a Japanese honorific suffix.
var honorificPattern = regexp.MustCompile(`([一-龠々ぁ-んァ-ヶーA-Za-z]{2,10})(さん|くん|ちゃん|様|先生|社長|会長)`)

// storeSuffixPattern matches names ending in a store-type suffix. A hit is a
// location candidate and a strong "not a person" signal at the same time.
var storeSuffixPattern = regexp.MustCompile(`[一-龠々ぁ-んァ-ヶーA-Za-z0-9]{2,12}(?:本店|支店|食堂|カフェ|レストラン|ベーカリー|珈琲店|店|屋|亭|軒)`)

// chainBrands are franchise brands that never name an individual location.
var chainBrands = []string{
	"マクドナルド",
	"スターバックス",
	"セブンイレブン",
	"ファミリーマート",
	"ローソン",
	"ユニクロ",
	"ドン・キホーテ",
	"イオン",
}

// franchiseWords indicate the text is describing a chain, not a single place.
var franchiseWords = []string{
	"フランチャイズ",
	"チェーン店",
	"全国展開",
	"直営店",
}

// Extractor produces entity candidates from free text. The pattern table is
// explicit construction-time configuration so rule sets can be swapped per
// celebrity and per test.
type Extractor struct {
	patterns PatternTable
}

// NewExtractor builds an Extractor over the given pattern table. A nil or
// empty table is valid; generic heuristics still apply.
func NewExtractor(patterns PatternTable) *Extractor {
	return &Extractor{patterns: patterns}
}

// Extract returns ordered candidates found in the concatenated title and
// description, deduplicated by canonical name. Empty input returns nil.
func (e *Extractor) Extract(title, description string) []Candidate {
	text := strings.TrimSpace(strings.TrimSpace(title) + " " + strings.TrimSpace(description))
	if text == "" {
		return nil
	}

	var out []Candidate
	seen := make(map[string]struct{})
	add := func(c Candidate) {
		key := textutil.Normalize(c.Name)
		if key == "" {
			return
		}
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		out = append(out, c)
	}

	// Known patterns claim canonical names first.
	for _, pattern := range e.patterns {
		for _, keyword := range pattern.Keywords {
			if textutil.ContainsFold(text, keyword) {
				add(Candidate{
					Name:       pattern.Name,
					Address:    pattern.Address,
					Type:       pattern.candidateType(),
					SourceRule: SourceKnownPattern,
				})
				break
			}
		}
	}

	// Store-suffix names become location candidates unless they name a chain.
	for _, match := range storeSuffixPattern.FindAllString(text, -1) {
		if containsAny(match, chainBrands) {
			continue
		}
		add(Candidate{Name: match, Type: CandidateLocation, SourceRule: SourceStoreSuffix})
	}

	// Person-name families, vetoed when negative signals outweigh positives.
	for _, match := range cjkNamePattern.FindAllString(text, -1) {
		if keep, _ := weighPersonSignals(match); keep {
			add(Candidate{Name: match, Type: CandidatePerson, SourceRule: SourcePersonName})
		}
	}
	for _, match := range latinNamePattern.FindAllString(text, -1) {
		if keep, _ := weighPersonSignals(match); keep {
			add(Candidate{Name: match, Type: CandidatePerson, SourceRule: SourcePersonName})
		}
	}
	for _, groups := range honorificPattern.FindAllStringSubmatch(text, -1) {
		name := groups[1]
		if keep, _ := weighPersonSignals(name); keep {
			add(Candidate{Name: name, Type: CandidatePerson, SourceRule: SourceHonorific})
		}
	}

	return out
}

// weighPersonSignals balances "looks like a person" against "definitely not a
// person" for a candidate name. The candidate is kept only when the negative
// signals do not outweigh the positives.
func weighPersonSignals(name string) (keep bool, negatives int) {
	positives := 1 // the name already matched a person family
	if cjkNamePattern.MatchString(name) || latinNamePattern.MatchString(name) {
		positives++
	}

	if storeSuffixPattern.MatchString(name) {
		negatives += 2
	}
	if containsAny(name, chainBrands) {
		negatives += 2
	}
	if containsAny(name, franchiseWords) {
		negatives += 2
	}

	return negatives < positives, negatives
}

func containsAny(text string, needles []string) bool {
	for _, needle := range needles {
		if textutil.ContainsFold(text, needle) {
			return true
		}
	}
	return false
}
