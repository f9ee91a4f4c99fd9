package shell

import (
	"os"
	"sort"
	"strings"
)

// CompletionProvider produces Tab-completion candidates for the program-name
// position only. Argument positions never offer filename completion.
type CompletionProvider struct {
	path *PathResolver
}

func NewCompletionProvider(path *PathResolver) *CompletionProvider {
	return &CompletionProvider{path: path}
}

// Candidates returns the union of builtin names and PATH executables whose
// name begins with prefix, deduplicated and sorted. Directory read errors on
// a PATH entry are skipped silently.
func (c *CompletionProvider) Candidates(prefix string) []string {
	seen := make(map[string]bool)
	out := make([]string, 0, 8)

	for _, name := range builtinNames {
		if strings.HasPrefix(name, prefix) {
			seen[name] = true
			out = append(out, name)
		}
	}

	for _, dir := range c.path.Dirs() {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			name := entry.Name()
			if seen[name] || !strings.HasPrefix(name, prefix) {
				continue
			}
			info, err := entry.Info()
			if err != nil || !info.Mode().IsRegular() {
				continue
			}
			if info.Mode().Perm()&0111 == 0 {
				continue
			}
			seen[name] = true
			out = append(out, name)
		}
	}

	sort.Strings(out)
	return out
}

// Callback is wired as golang.org/x/term.Terminal's AutoCompleteCallback.
// Only acts on Tab, and only within the first word of the line.
func (c *CompletionProvider) Callback(line string, pos int, key rune) (string, int, bool) {
	if key != '\t' {
		return "", 0, false
	}
	before := line[:pos]
	if strings.ContainsAny(before, " \t") {
		return "", 0, false
	}

	candidates := c.Candidates(before)
	switch len(candidates) {
	case 0:
		return "", 0, false
	case 1:
		rest := line[pos:]
		completed := candidates[0]
		if !strings.HasPrefix(rest, " ") {
			completed += " "
		}
		newLine := completed + rest
		return newLine, len(completed), true
	default:
		lcp := longestCommonPrefix(candidates)
		if len(lcp) <= len(before) {
			return "", 0, false
		}
		newLine := lcp + line[pos:]
		return newLine, len(lcp), true
	}
}

func longestCommonPrefix(strs []string) string {
	if len(strs) == 0 {
		return ""
	}
	prefix := strs[0]
	for _, s := range strs[1:] {
		i := 0
		for i < len(prefix) && i < len(s) && prefix[i] == s[i] {
			i++
		}
		prefix = prefix[:i]
		if prefix == "" {
			break
		}
	}
	return prefix
}
