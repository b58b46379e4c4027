// Package session persists merge results. The most recent result is the
// hand-off point between the merge and export flows: merging writes it,
// exporting reads it. Results are kept as history rows in a SQLite
// database under the data directory, guarded by a file lock so concurrent
// CLI invocations do not interleave writes.
package session
