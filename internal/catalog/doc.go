// Package catalog persists the fan-content records the reconciliation engine
// operates on: episodes, locations, merchandise items, and the junction rows
// linking entities to the episodes they appeared in.
//
// The Store manages the SQLite database, schema initialization, and plain
// CRUD operations. It deliberately contains no matching or scoring logic;
// the engine packages treat it as an opaque repository gateway. Junction
// inserts are idempotent: writing the same (episode, entity) pair twice is
// success-equivalent and never duplicates rows.
//
// Affiliate metadata is stored as JSON in affiliate_info_json, mirroring how
// the rest of the row is flat columns. Schema changes bump the version in
// schema.go; the database is rebuilt from ingestion when versions mismatch.
package catalog
