package operation

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gitlab.com/tozd/go/errors"
)

// ResolveTargets expands doublestar globs into files. Plain paths are kept as
// given so that a missing file surfaces as a read error. Duplicates are dropped.
func ResolveTargets(targets []string) ([]string, error) {
	seen := map[string]bool{}
	var out []string

	add := func(p string) {
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}

	for _, target := range targets {
		if !isGlob(target) {
			add(target)
			continue
		}

		matches, err := doublestar.FilepathGlob(target, doublestar.WithFilesOnly())
		if err != nil {
			return nil, errors.Errorf("expanding %q: %w", target, err)
		}
		if len(matches) == 0 {
			return nil, errors.Errorf("no files match %q", target)
		}
		for _, m := range matches {
			add(m)
		}
	}

	return out, nil
}

func isGlob(p string) bool {
	return strings.ContainsAny(p, "*?[{")
}
