// Package fileutil provides small filesystem helpers shared by the organizer.
package fileutil

import (
	"errors"
	"io"
	"os"
	"syscall"
)

// CopyFile streams src to dst, setting default permissions (0o644) on dst.
func CopyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}

// MoveFile relocates src to dst. It prefers an atomic rename; when src and
// dst live on different filesystems the rename fails with EXDEV and the move
// degrades to copy+delete, which is not atomic and may leave both copies
// behind on failure.
func MoveFile(src, dst string) error {
	err := os.Rename(src, dst)
	if err == nil {
		return nil
	}

	var linkErr *os.LinkError
	if !errors.As(err, &linkErr) || !errors.Is(linkErr.Err, syscall.EXDEV) {
		return err
	}

	if copyErr := CopyFile(src, dst); copyErr != nil {
		return copyErr
	}
	return os.Remove(src)
}
