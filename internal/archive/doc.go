// Package archive keeps full roster snapshots in SQLite.
//
// A snapshot copies every record and relation of a [roster.Repository] at the moment it is saved,
// under a generated UUID and a per-database sequence number for human-readable ordering
// (snapshot #1, #2, ...). Restoring a snapshot replaces a repository's contents with the copy.
//
// Key Implementations:
//   - [Store] : snapshot persistence over a migrated database
//   - [NextSequence] : atomic per-table sequence counters
//
// The schema lives in the shared migrations and must be applied with [shared.RunMigrations] before use.
package archive
