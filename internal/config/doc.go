// Package config loads and validates pilgrim's TOML configuration.
//
// Configuration sections by subsystem:
//   - Paths: data directory, log directory, rule and pattern table files
//   - Scoring: heuristic weights, penalties, and classification thresholds
//   - Matching: episode lookup limits
//   - Affiliate: activation batch settings
//   - Logging: log format and level
//
// Load resolves the config path (explicit flag, then the user config dir,
// then a project-local pilgrim.toml), applies defaults for missing values,
// expands ~ in paths, and validates the result. Matching rule tables and
// known-entity pattern tables live in separate TOML files referenced from
// [paths] so they can be swapped per celebrity without touching code.
package config
