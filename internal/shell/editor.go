package shell

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"golang.org/x/term"
)

// lineEditor is the read-line capability the REPL driver runs against: print
// a prompt, read one line, optionally offer completion. Two implementations
// back it: an interactive one over a real tty, and a plain one over any
// io.Reader/io.Writer.
type lineEditor interface {
	io.Writer
	ReadLine() (string, error)
	Prompt()
	SetAutoComplete(func(line string, pos int, key rune) (string, int, bool))
}

// termEditor wraps golang.org/x/term.Terminal over the raw tty. The
// terminal draws and redraws its own prompt, so Prompt is a no-op here.
type termEditor struct {
	t *term.Terminal
}

func newTermEditor(rw io.ReadWriter, prompt string) *termEditor {
	return &termEditor{t: term.NewTerminal(rw, prompt)}
}

func (e *termEditor) Write(p []byte) (int, error) { return e.t.Write(p) }
func (e *termEditor) ReadLine() (string, error)   { return e.t.ReadLine() }
func (e *termEditor) Prompt()                     {}
func (e *termEditor) SetAutoComplete(cb func(string, int, rune) (string, int, bool)) {
	e.t.AutoCompleteCallback = cb
}

// plainEditor reads newline-delimited lines from an arbitrary reader and
// writes unmediated bytes to an arbitrary writer. No escape codes, no
// in-line editing, no completion.
type plainEditor struct {
	r *bufio.Reader
	w io.Writer
}

func newPlainEditor(r io.Reader, w io.Writer) *plainEditor {
	return &plainEditor{r: bufio.NewReader(r), w: w}
}

func (e *plainEditor) Write(p []byte) (int, error) { return e.w.Write(p) }

func (e *plainEditor) ReadLine() (string, error) {
	line, err := e.r.ReadString('\n')
	if err != nil {
		if line != "" {
			return strings.TrimRight(line, "\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\n"), nil
}

func (e *plainEditor) Prompt() { fmt.Fprint(e.w, "$ ") }

func (e *plainEditor) SetAutoComplete(func(string, int, rune) (string, int, bool)) {}
