package shell

import "os"

// Config is the session's environment snapshot, read once at startup so the
// rest of the shell doesn't call os.Getenv ad hoc for values that don't
// change mid-session.
type Config struct {
	Home     string
	HistFile string
}

// LoadConfig reads HOME and the optional SHELL_HISTFILE variable naming a
// history file that is loaded into the buffer at startup; the buffer is not
// written back to it automatically. PATH
// is deliberately not captured here: PathResolver re-reads it per call (see
// path.go) so resolution always reflects the current environment and
// filesystem rather than a value snapshotted at startup.
func LoadConfig() Config {
	return Config{
		Home:     os.Getenv("HOME"),
		HistFile: os.Getenv("SHELL_HISTFILE"),
	}
}

// expandTilde replaces a leading "~" or "~/" with home. Unset home leaves
// the path unchanged.
func expandTilde(path, home string) string {
	if home == "" {
		return path
	}
	if path == "~" {
		return home
	}
	if len(path) >= 2 && path[0] == '~' && path[1] == '/' {
		return home + path[1:]
	}
	return path
}
