package organize

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"tidy/internal/faults"
)

// maxCollisionAttempts bounds the counter suffix search; hitting it means
// thousands of files with the same name landed in one category within a
// single second.
const maxCollisionAttempts = 10000

// destinationFor computes the target path for name inside dir. An existing
// file at the plain path is never overwritten: the first fallback inserts a
// seconds-granularity timestamp between stem and extension, and a counter
// suffix covers same-second collisions on top of that.
func (o *Organizer) destinationFor(dir, name string) (string, error) {
	candidate := filepath.Join(dir, name)
	free, err := pathFree(candidate)
	if err != nil {
		return "", faults.Wrap(faults.ErrFileMove, "organizing", "probe destination", candidate, err)
	}
	if free {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	stamp := o.now().Format("20060102_150405")

	candidate = filepath.Join(dir, fmt.Sprintf("%s_%s%s", stem, stamp, ext))
	free, err = pathFree(candidate)
	if err != nil {
		return "", faults.Wrap(faults.ErrFileMove, "organizing", "probe destination", candidate, err)
	}
	if free {
		return candidate, nil
	}

	for attempt := 1; attempt <= maxCollisionAttempts; attempt++ {
		candidate = filepath.Join(dir, fmt.Sprintf("%s_%s_%d%s", stem, stamp, attempt, ext))
		free, err = pathFree(candidate)
		if err != nil {
			return "", faults.Wrap(faults.ErrFileMove, "organizing", "probe destination", candidate, err)
		}
		if free {
			return candidate, nil
		}
	}
	return "", faults.Wrap(faults.ErrFileMove, "organizing", "resolve collision",
		fmt.Sprintf("exhausted destination names for %s in %s", name, dir), nil)
}

func pathFree(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return false, nil
	}
	if os.IsNotExist(err) {
		return true, nil
	}
	return false, err
}
