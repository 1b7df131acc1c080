// Package cache stores evaluated series on disk so that re-running the same
// file with the same parameters skips loading and computing.
//
// Entries live as JSON files under $EORX_HOME/cache, one per key. A key is the
// SHA-256 of the input file contents together with everything that changes
// the result: sheet, technology, mode and physical parameters. Entries expire
// after a TTL and are removed lazily on read or by CleanupExpired.
package cache
