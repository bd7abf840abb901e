// Package extraction turns free text from episode titles and descriptions
// into entity candidates: store names, merchandise items, and person names.
//
// Extraction is heuristic and two-layered. A known-entity pattern table maps
// keyword hits to canonical names with addresses and types; generic regex
// families then pick up person names (CJK surname-givenname pairs, Latin
// "First Last", honorific suffixes) and store-like names. "Definitely not a
// person" patterns (store-type suffixes, chain brands, franchise wording)
// veto person candidates whose negative signals outweigh the positives.
//
// Candidates are unpersisted and ordered; duplicates by canonical name are
// collapsed within one extraction call. Empty input yields an empty result,
// never an error.
package extraction
