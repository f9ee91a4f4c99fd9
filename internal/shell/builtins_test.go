package shell

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func newTestShell(t *testing.T, home string) (*Shell, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	sh := newShellCore(Config{Home: home})
	return sh, &bytes.Buffer{}, &bytes.Buffer{}
}

func TestEchoBuiltinJoinsArgsWithSpace(t *testing.T) {
	sh, out, errOut := newTestShell(t, "")
	echoBuiltin(sh, []string{"hello", "world"}, IOBindings{Stdout: out, Stderr: errOut})
	if out.String() != "hello world\n" {
		t.Errorf("got %q", out.String())
	}
}

func TestTypeBuiltinBuiltinExternalAndUnknown(t *testing.T) {
	dir := t.TempDir()
	exe := filepath.Join(dir, "ls")
	if err := os.WriteFile(exe, []byte("x"), 0755); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PATH", dir)

	sh, out, errOut := newTestShell(t, "")

	typeBuiltin(sh, []string{"echo"}, IOBindings{Stdout: out, Stderr: errOut})
	if out.String() != "echo is a shell builtin\n" {
		t.Errorf("builtin case: got %q", out.String())
	}

	out.Reset()
	typeBuiltin(sh, []string{"ls"}, IOBindings{Stdout: out, Stderr: errOut})
	if out.String() != "ls is "+exe+"\n" {
		t.Errorf("external case: got %q", out.String())
	}

	out.Reset()
	status := typeBuiltin(sh, []string{"nosuch"}, IOBindings{Stdout: out, Stderr: errOut})
	if out.String() != "nosuch: not found\n" || status != 1 {
		t.Errorf("unknown case: got %q, status %d", out.String(), status)
	}
}

func TestCdBuiltinDefaultsToHome(t *testing.T) {
	home := t.TempDir()
	sh, out, errOut := newTestShell(t, home)

	cwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(cwd)

	cdBuiltin(sh, nil, IOBindings{Stdout: out, Stderr: errOut})

	got, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	resolvedHome, _ := filepath.EvalSymlinks(home)
	resolvedGot, _ := filepath.EvalSymlinks(got)
	if resolvedGot != resolvedHome {
		t.Errorf("cd with no args: got wd %q, want %q", resolvedGot, resolvedHome)
	}
}

func TestCdBuiltinExpandsTilde(t *testing.T) {
	home := t.TempDir()
	sub := filepath.Join(home, "sub")
	if err := os.Mkdir(sub, 0755); err != nil {
		t.Fatal(err)
	}
	sh, out, errOut := newTestShell(t, home)

	cwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(cwd)

	cdBuiltin(sh, []string{"~/sub"}, IOBindings{Stdout: out, Stderr: errOut})

	got, _ := os.Getwd()
	resolvedSub, _ := filepath.EvalSymlinks(sub)
	resolvedGot, _ := filepath.EvalSymlinks(got)
	if resolvedGot != resolvedSub {
		t.Errorf("cd ~/sub: got wd %q, want %q", resolvedGot, resolvedSub)
	}
}

func TestCdBuiltinMissingDirReportsOnStdout(t *testing.T) {
	sh, out, errOut := newTestShell(t, "")
	status := cdBuiltin(sh, []string{"/no/such/dir"}, IOBindings{Stdout: out, Stderr: errOut})

	if status != 1 {
		t.Errorf("expected status 1, got %d", status)
	}
	if errOut.Len() != 0 {
		t.Errorf("expected no stderr output, got %q", errOut.String())
	}
	want := "cd: /no/such/dir: No such file or directory\n"
	if out.String() != want {
		t.Errorf("got %q, want %q", out.String(), want)
	}
}

func TestPwdBuiltin(t *testing.T) {
	sh, out, errOut := newTestShell(t, "")
	pwdBuiltin(sh, nil, IOBindings{Stdout: out, Stderr: errOut})

	wd, _ := os.Getwd()
	if out.String() != wd+"\n" {
		t.Errorf("got %q, want %q", out.String(), wd+"\n")
	}
}

func TestHistoryBuiltinRendersTail(t *testing.T) {
	sh, out, errOut := newTestShell(t, "")
	sh.hist.Append("echo one")
	sh.hist.Append("echo two")

	historyBuiltin(sh, nil, IOBindings{Stdout: out, Stderr: errOut})
	want := "    1  echo one\n    2  echo two\n"
	if out.String() != want {
		t.Errorf("got %q, want %q", out.String(), want)
	}
}
