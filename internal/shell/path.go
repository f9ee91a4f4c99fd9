package shell

import (
	"os"
	"path/filepath"
	"strings"
)

// PathResolver resolves a bare program name to an absolute path on $PATH.
// PATH is re-split on every call rather than cached.
type PathResolver struct{}

func NewPathResolver() *PathResolver {
	return &PathResolver{}
}

// Dirs returns the colon-separated PATH directories in order, empty
// entries removed.
func (r *PathResolver) Dirs() []string {
	path := os.Getenv("PATH")
	if path == "" {
		return nil
	}
	parts := strings.Split(path, ":")
	dirs := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			dirs = append(dirs, p)
		}
	}
	return dirs
}

// Resolve returns the first dir/name on PATH that exists as a regular file
// with the owner execute bit set.
func (r *PathResolver) Resolve(name string) (string, bool) {
	for _, dir := range r.Dirs() {
		candidate := filepath.Join(dir, name)
		info, err := os.Stat(candidate)
		if err != nil {
			continue
		}
		if info.Mode().IsRegular() && info.Mode().Perm()&0100 != 0 {
			return candidate, true
		}
	}
	return "", false
}
