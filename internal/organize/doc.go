// Package organize implements the scan-classify-move pipeline: it enumerates
// the direct children of a source directory, classifies each regular file by
// extension, and relocates it into the matching category folder under the
// organized root.
//
// A run is one-shot with no checkpointing. Per-file errors are fatal: the run
// stops where it is, already-moved files stay moved, and no report is
// written. An interrupted run leaves the source directory partially
// organized; rerunning picks up the remaining files.
package organize
