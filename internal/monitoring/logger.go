// Package monitoring holds the pluggable diagnostic logger shared by the
// planner's packages. Narration (parse summaries, per-strategy scores,
// accepted local-search moves) goes through Logf so the CLI can mute it and
// tests can capture or redirect it.
package monitoring

import "log"

// Logf is the package-level diagnostic logger. It defaults to log.Printf but
// may be replaced by SetLogger.
var Logf func(format string, v ...interface{}) = log.Printf

// SetLogger replaces the package logger. Passing nil installs a no-op
// logger, which silences all diagnostic narration.
func SetLogger(f func(format string, v ...interface{})) {
	if f == nil {
		Logf = func(string, ...interface{}) {}
		return
	}
	Logf = f
}
