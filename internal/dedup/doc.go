// Package dedup groups near-identical location records emitted by
// independent collection runs and selects a reference record per group.
//
// Identity is the normalized (name, address) pair; grouping itself never
// mutates data. Each group's reference is the member with the highest
// information-completeness score; ties keep the first row encountered.
//
// The explicit merge step re-points junction rows from duplicates to the
// reference before deleting them, so no (episode, location) association is
// ever orphaned. Re-pointing is idempotent: pairs that collide with an
// existing reference link collapse to one row.
package dedup
