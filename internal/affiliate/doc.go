// Package affiliate manages the per-location link activation lifecycle.
//
// A location's link moves unset → inactive when it gains an original URL,
// and inactive → active only when the URL is present and the business is
// not permanently closed. A closure demotes the link from any state and is
// one-way; closed locations are never reactivated automatically.
//
// Invalid transitions are rejected without mutating state and reported via
// ErrInvalidTransition so batch callers can count them instead of failing.
package affiliate
