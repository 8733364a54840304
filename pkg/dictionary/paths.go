package dictionary

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// ErrNoMatch is returned when a dictionary pattern matches no file.
var ErrNoMatch = errors.New("pattern matches no dictionary file")

// ExpandPaths resolves glob patterns such as "lists/**/*.txt" into files,
// sorted within each pattern. Plain paths are kept as given.
func ExpandPaths(patterns []string) ([]string, error) {
	var out []string
	for _, pattern := range patterns {
		if !strings.ContainsAny(pattern, "*?[{") {
			out = append(out, pattern)
			continue
		}
		matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("bad dictionary pattern %q: %w", pattern, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("%w: %s", ErrNoMatch, pattern)
		}
		slices.Sort(matches)
		out = append(out, matches...)
	}
	return out, nil
}
