package shell

import (
	"fmt"
	"io"
	"os"
	"os/exec"
)

// Executor runs a multi-stage Pipeline: resolves every stage, allocates n-1
// pipes, spawns each stage as a real child process (external programs exec
// directly; builtins exec a re-exec'd copy of this binary, see reexec.go),
// and waits on every child in spawn order.
type Executor struct {
	sh *Shell
}

func NewExecutor(sh *Shell) *Executor {
	return &Executor{sh: sh}
}

// Run executes p against base's streams. It never returns an error: failures
// are reported directly to base.Stderr as they're encountered.
func (e *Executor) Run(p *Pipeline, base IOBindings) {
	n := len(p.Commands)
	if n == 0 {
		return
	}

	type stage struct {
		cmd       Command
		path      string
		isBuiltin bool
	}

	stages := make([]stage, n)
	for i, cmd := range p.Commands {
		name := cmd.Name()
		if _, ok := e.sh.builtins[name]; ok {
			stages[i] = stage{cmd: cmd, isBuiltin: true}
			continue
		}
		path, ok := e.sh.path.Resolve(name)
		if !ok {
			fmt.Fprintf(base.Stderr, "%s: command not found\n", name)
			return
		}
		stages[i] = stage{cmd: cmd, path: path}
	}

	readers := make([]*os.File, n-1)
	writers := make([]*os.File, n-1)
	closeAllPipes := func(upTo int) {
		for j := 0; j < upTo; j++ {
			readers[j].Close()
			writers[j].Close()
		}
	}
	for i := 0; i < n-1; i++ {
		r, w, err := os.Pipe()
		if err != nil {
			fmt.Fprintf(base.Stderr, "Error creating pipe: %v\n", err)
			closeAllPipes(i)
			return
		}
		readers[i] = r
		writers[i] = w
	}

	opened := make([]*os.File, 0, n)
	cmds := make([]*exec.Cmd, n)

	for i, st := range stages {
		var stdin io.Reader = base.Stdin
		var stdout io.Writer = base.Stdout
		if i > 0 {
			stdin = readers[i-1]
		}
		if i < n-1 {
			stdout = writers[i]
		}

		bound, openedHere := ApplyRedirections(st.cmd.Redirs, IOBindings{
			Stdin:  stdin,
			Stdout: stdout,
			Stderr: base.Stderr,
		})
		opened = append(opened, openedHere...)

		cmd := e.buildStageCmd(st.cmd, st.path, st.isBuiltin)
		cmd.Stdin = bound.Stdin
		cmd.Stdout = bound.Stdout
		cmd.Stderr = bound.Stderr
		cmds[i] = cmd
	}

	for i, cmd := range cmds {
		if err := cmd.Start(); err != nil {
			fmt.Fprintf(base.Stderr, "Fork failed: %v\n", err)
			cmds[i] = nil
		}
	}

	closeAllPipes(len(readers))
	CloseAll(opened)

	for _, cmd := range cmds {
		if cmd == nil {
			continue
		}
		cmd.Wait()
	}
}

// buildStageCmd returns the *exec.Cmd for one pipeline stage, either the
// resolved external program or a re-exec'd builtin stage.
func (e *Executor) buildStageCmd(c Command, path string, isBuiltin bool) *exec.Cmd {
	if !isBuiltin {
		cmd := exec.Command(path)
		cmd.Args = append([]string{c.Name()}, c.Args()...)
		return cmd
	}

	self := e.sh.selfPath
	cmd := exec.Command(self)
	cmd.Args = append([]string{c.Name()}, c.Args()...)
	cmd.Env = append(os.Environ(), ReexecEnv+"=1")
	return cmd
}
