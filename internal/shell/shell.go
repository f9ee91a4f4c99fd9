package shell

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"golang.org/x/term"
)

// Shell holds the PATH resolver, history buffer, builtin registry,
// completion provider and line editor. One instance per process: either
// the interactive REPL (New) or, inside a re-exec'd pipeline stage, the
// stripped-down core a lone builtin runs against (newShellCore).
type Shell struct {
	cfg        Config
	path       *PathResolver
	hist       *HistoryStore
	builtins   map[string]BuiltinFunc
	completion *CompletionProvider
	editor     lineEditor
	selfPath   string
	restore    func()
}

// newShellCore builds the pieces common to the interactive shell and a
// re-exec'd builtin stage: PATH resolution, history, the builtin table,
// completion, and the path to this binary.
func newShellCore(cfg Config) *Shell {
	sh := &Shell{cfg: cfg}
	sh.path = NewPathResolver()
	sh.hist = NewHistoryStore()
	sh.builtins = newBuiltins()
	sh.completion = NewCompletionProvider(sh.path)

	if exe, err := os.Executable(); err == nil {
		sh.selfPath = exe
	} else {
		sh.selfPath = os.Args[0]
	}
	return sh
}

// New builds the interactive shell. When stdin is a terminal it puts it into
// raw mode and drives it through golang.org/x/term for in-line editing and
// Tab completion; otherwise it falls back to a plain line-at-a-time reader
// so piped or redirected stdin still works.
func New(cfg Config) *Shell {
	sh := newShellCore(cfg)

	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		prevState, err := term.MakeRaw(fd)
		if err == nil {
			sh.restore = func() { term.Restore(fd, prevState) }
		}
		sh.editor = newTermEditor(os.Stdin, "$ ")
	} else {
		sh.editor = newPlainEditor(os.Stdin, os.Stdout)
	}
	sh.editor.SetAutoComplete(sh.completion.Callback)

	sh.loadHistoryFile()
	return sh
}

// NewWithIO builds a shell over an arbitrary reader/writer pair, always
// using the plain line editor, bypassing any tty detection. Tests use this
// to drive the REPL loop deterministically.
func NewWithIO(cfg Config, r io.Reader, w io.Writer) *Shell {
	sh := newShellCore(cfg)
	sh.editor = newPlainEditor(r, w)
	sh.loadHistoryFile()
	return sh
}

func (sh *Shell) loadHistoryFile() {
	if sh.cfg.HistFile == "" {
		return
	}
	if _, err := os.Stat(sh.cfg.HistFile); err != nil {
		return
	}
	sh.hist.LoadFile(sh.cfg.HistFile)
}

// Close restores the terminal to cooked mode, if New put it into raw mode.
func (sh *Shell) Close() {
	if sh.restore != nil {
		sh.restore()
	}
}

// Run is the REPL driver: print a prompt, read one line, record it in
// history, parse it into a pipeline and dispatch. It returns when the line
// editor reports EOF (Ctrl-D, or the input stream running dry).
func (sh *Shell) Run() {
	defer sh.Close()

	for {
		sh.editor.Prompt()
		line, err := sh.editor.ReadLine()
		if err != nil {
			return
		}

		if strings.TrimSpace(line) != "" {
			sh.hist.Append(line)
		}

		pipeline, err := ParsePipeline(line)
		if err != nil || pipeline.Len() == 0 {
			continue
		}

		if pipeline.Len() > 1 {
			NewExecutor(sh).Run(pipeline, IOBindings{
				Stdin:  os.Stdin,
				Stdout: sh.editor,
				Stderr: sh.editor,
			})
			continue
		}

		sh.runSingle(pipeline.Commands[0])
	}
}

// runSingle dispatches one unpiped command. Builtins run directly in this
// process against the line editor; external programs are exec'd with their
// streams wired the same way.
func (sh *Shell) runSingle(cmd Command) {
	name := cmd.Name()

	bound, opened := ApplyRedirections(cmd.Redirs, IOBindings{
		Stdin:  os.Stdin,
		Stdout: sh.editor,
		Stderr: sh.editor,
	})
	defer CloseAll(opened)

	if fn, ok := sh.builtins[name]; ok {
		fn(sh, cmd.Args(), bound)
		return
	}

	path, ok := sh.path.Resolve(name)
	if !ok {
		fmt.Fprintf(bound.Stdout, "%s: command not found\n", name)
		return
	}

	ext := exec.Command(path)
	ext.Args = append([]string{name}, cmd.Args()...)
	ext.Stdin = bound.Stdin
	ext.Stdout = bound.Stdout
	ext.Stderr = bound.Stderr

	if err := ext.Start(); err != nil {
		fmt.Fprintf(bound.Stderr, "Fork failed: %v\n", err)
		return
	}
	ext.Wait()
}
