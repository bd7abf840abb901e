// Package reconcile drives the extraction pipeline over collected episodes.
//
// For each episode it extracts entity candidates, scores them, drops the
// ones below the low-confidence threshold, finds or creates the backing
// location/item row, and attributes the entity to an episode through the
// junction table. Failures are local to one candidate; a batch always runs
// to completion and reports aggregate counts.
//
// A file lock serializes runs. Reads may observe a concurrent collection
// pass, but only one reconcile pass writes at a time.
package reconcile
