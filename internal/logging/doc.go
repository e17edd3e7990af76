// Package logging builds the process-wide slog logger: a console stream plus
// the fixed-name append-only log file that records directory provisioning,
// every file move, the run summary, and any error.
package logging
