// Package scoring assigns confidence scores to extracted entity candidates.
//
// The Scorer interface keeps the heuristic nature of the current
// implementation explicit: HeuristicScorer adds fixed weights for
// corroborating signals (strict surname-givenname shape, common-name
// dictionary hits, honorifics) and subtracts fixed penalties for
// disqualifying ones (booking URLs, phone numbers, long concrete addresses),
// clamping the result to [0,100]. A statistical scorer can replace it
// without changing callers.
//
// Scores are monotonic in their signals: adding a corroborating signal never
// lowers a score, adding a disqualifying signal never raises one.
package scoring
