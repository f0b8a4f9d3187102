package resource

import (
	"cmp"
	"io/fs"
	"path/filepath"
	"slices"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Suggestion is an existing file that may replace a missing one.
type Suggestion struct {
	Path     string
	Distance int
}

// Suggest walks roots for files that could stand in for the missing path:
// files of the same resource kind, closest name first. At most limit
// suggestions are returned; limit <= 0 means no limit.
func Suggest(missing string, kind Kind, roots []string, limit int) []Suggestion {
	base := strings.ToLower(filepath.Base(missing))

	seen := make(map[string]bool)
	var out []Suggestion
	for _, root := range roots {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return nil
			}
			if d.IsDir() {
				if path != root && strings.HasPrefix(d.Name(), ".") {
					return filepath.SkipDir
				}
				return nil
			}
			if seen[path] {
				return nil
			}
			if k, ok := DetectKind(path); !ok || k != kind {
				return nil
			}
			seen[path] = true
			out = append(out, Suggestion{
				Path:     path,
				Distance: levenshtein.ComputeDistance(base, strings.ToLower(d.Name())),
			})
			return nil
		})
	}

	slices.SortFunc(out, func(a, b Suggestion) int {
		if c := cmp.Compare(a.Distance, b.Distance); c != 0 {
			return c
		}
		return cmp.Compare(a.Path, b.Path)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
