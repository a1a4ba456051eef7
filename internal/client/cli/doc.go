// Package cli runs one printquote command: estimate an archive locally or on
// the quote server, fetch a finished server job, or list past estimates.
//
// Every estimate is recorded in a SQLite history next to the working
// directory, keyed by the archive's fingerprint, so re-submitting the same
// archive is reported.
package cli
