package shell

import (
	"io"
	"os"
)

// IOBindings is the stdin/stdout/stderr a command (builtin or external) runs
// against.
type IOBindings struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// ApplyRedirections opens every redirection target and returns an IOBindings
// with Stdout/Stderr swapped accordingly, plus the files it opened so the
// caller can close them once the command no longer needs them. A target
// that fails to open leaves that stream unchanged.
func ApplyRedirections(redirs map[int]Redirection, base IOBindings) (IOBindings, []*os.File) {
	result := base
	opened := make([]*os.File, 0, len(redirs))

	for fd, r := range redirs {
		flags := os.O_WRONLY | os.O_CREATE
		if r.Mode == RedirAppend {
			flags |= os.O_APPEND
		} else {
			flags |= os.O_TRUNC
		}

		f, err := os.OpenFile(r.Target, flags, 0644)
		if err != nil {
			continue
		}
		opened = append(opened, f)

		switch fd {
		case 1:
			result.Stdout = f
		case 2:
			result.Stderr = f
		}
	}

	return result, opened
}

// CloseAll closes every file in files, ignoring errors.
func CloseAll(files []*os.File) {
	for _, f := range files {
		f.Close()
	}
}
