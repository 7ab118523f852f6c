package corpus

import (
	"fmt"
	"os"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// DiscoverFiles expands glob patterns against root and returns matching
// file paths relative to root, deduplicated and sorted. Syntactically
// invalid patterns are ignored. A missing root is not an error; it
// simply matches nothing, so an absent source contributes zero records.
func DiscoverFiles(root string, patterns []string) ([]string, error) {
	if _, err := os.Stat(root); err != nil {
		return nil, nil
	}

	fsys := os.DirFS(root)
	seen := make(map[string]bool)
	matches := make([]string, 0)
	for _, pattern := range patterns {
		if !doublestar.ValidatePattern(pattern) {
			continue
		}
		found, err := doublestar.Glob(fsys, pattern)
		if err != nil {
			return nil, fmt.Errorf("expand pattern %q: %w", pattern, err)
		}
		for _, path := range found {
			if seen[path] {
				continue
			}
			seen[path] = true
			matches = append(matches, path)
		}
	}
	sort.Strings(matches)
	return matches, nil
}
