// Command shell is a small POSIX-flavored command interpreter: tokenizing,
// pipelines, redirection, a handful of builtins, PATH-based program
// resolution, Tab completion and persistent history.
package main

import (
	"os"

	"github.com/djleamen/goshell/internal/shell"
)

func main() {
	if shell.IsReexecBuiltinStage() {
		os.Exit(shell.RunReexecBuiltinStage())
	}

	sh := shell.New(shell.LoadConfig())
	sh.Run()
}
