package shell

import (
	"fmt"
	"os"
)

// ReexecEnv marks a process as a re-exec'd pipeline stage running a single
// builtin rather than the interactive REPL. Set by Executor.buildStageCmd
// with argv[0] set to the builtin's name.
const ReexecEnv = "GOSHELL_BUILTIN_STAGE"

// IsReexecBuiltinStage reports whether the current process was launched by
// Executor as a builtin pipeline stage rather than as the interactive shell.
func IsReexecBuiltinStage() bool {
	return os.Getenv(ReexecEnv) == "1"
}

// RunReexecBuiltinStage runs the builtin named by argv[0] against the
// process's inherited stdin/stdout/stderr and returns its exit code.
func RunReexecBuiltinStage() int {
	name := ""
	if len(os.Args) > 0 {
		name = os.Args[0]
	}
	args := os.Args[1:]

	sh := newShellCore(LoadConfig())
	fn, ok := sh.builtins[name]
	if !ok {
		fmt.Fprintf(os.Stderr, "%s: not a builtin\n", name)
		return 1
	}
	return fn(sh, args, IOBindings{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr})
}
