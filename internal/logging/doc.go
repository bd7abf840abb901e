// Package logging builds slog loggers for pilgrim and provides typed
// attribute helpers so call sites stay terse and consistent.
//
// Loggers write to stdout and, when a log directory is configured, to
// pilgrim.log inside it. Format is either human-oriented text ("console")
// or machine-oriented JSON ("json"). Component loggers carry a standard
// "component" attribute so batch output can be filtered per engine stage.
package logging
