// Package matching associates entity candidates with the episodes they
// appeared in, using per-celebrity keyword rules.
//
// A rule pairs entity keywords (matched against the candidate name) with
// episode keywords (matched against episode titles, in the array's order).
// Rules are an ordered list and the first rule that yields an episode wins;
// the order is part of the configuration contract, not an accident of map
// iteration. Episode lookups are capped and the first returned episode is
// authoritative.
//
// An unmatched candidate is a normal terminal outcome, not an error. Junction
// writes are idempotent: matching the same candidate twice links the same
// episode once.
package matching
