// Package textutil provides text normalization and pattern helpers for the
// reconciliation engine.
//
// The primary use cases are:
//   - Normalizing names and addresses for comparison (trim, lowercase,
//     full-width/half-width folding)
//   - Building grouping keys for duplicate detection
//   - Detecting address-like substrings, phone numbers, and URLs in free text
//
// Normalization folds CJK full-width forms so that "ABC" and "ABC" compare
// equal. All comparisons in the engine go through these helpers so the
// extraction, matching, and grouping layers agree on text identity.
package textutil
