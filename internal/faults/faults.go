package faults

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrDirectoryCreate covers failures while provisioning the organized
	// directory layout, including path collisions with non-directories.
	ErrDirectoryCreate = errors.New("directory creation error")
	// ErrFileMove covers per-file relocation failures: permissions,
	// vanished sources, cross-device copy failures.
	ErrFileMove = errors.New("file move error")
	// ErrReportWrite indicates the summary report could not be written.
	ErrReportWrite = errors.New("report write error")
	// ErrInvalidSource indicates the source path does not exist or is not
	// a directory.
	ErrInvalidSource = errors.New("invalid source directory")
)

// Wrap builds an error message that includes stage context while tagging it
// with the provided marker for later classification. The marker should be one
// of the exported sentinel errors above.
func Wrap(marker error, stage, operation, message string, err error) error {
	detail := buildDetail(stage, operation, message)
	if marker == nil {
		marker = ErrFileMove
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

func buildDetail(stage, operation, message string) string {
	parts := make([]string, 0, 3)
	if stage = strings.TrimSpace(stage); stage != "" {
		parts = append(parts, stage)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "organizer failure"
	}
	return strings.Join(parts, ": ")
}
