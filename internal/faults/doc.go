// Package faults defines the sentinel error kinds surfaced by the organizer
// workflow and a Wrap helper that attaches stage context to them.
//
// Every failure is fatal to the run: callers log the wrapped error and return
// it to the top level, which prints a single user-facing line. errors.Is
// against the sentinels drives user messaging and exit behavior.
package faults
