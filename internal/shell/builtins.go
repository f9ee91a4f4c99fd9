package shell

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// BuiltinFunc implements one in-process command.
type BuiltinFunc func(sh *Shell, args []string, io IOBindings) int

// builtinNames lists the six in-process commands.
var builtinNames = []string{"exit", "echo", "type", "pwd", "cd", "history"}

func newBuiltins() map[string]BuiltinFunc {
	return map[string]BuiltinFunc{
		"exit":    exitBuiltin,
		"echo":    echoBuiltin,
		"type":    typeBuiltin,
		"pwd":     pwdBuiltin,
		"cd":      cdBuiltin,
		"history": historyBuiltin,
	}
}

// exitBuiltin terminates whichever process is running it: the REPL when
// run directly, or just the current pipeline child when re-exec'd.
func exitBuiltin(sh *Shell, args []string, io IOBindings) int {
	os.Exit(0)
	return 0
}

func echoBuiltin(sh *Shell, args []string, io IOBindings) int {
	fmt.Fprintln(io.Stdout, strings.Join(args, " "))
	return 0
}

func typeBuiltin(sh *Shell, args []string, io IOBindings) int {
	if len(args) == 0 {
		return 0
	}
	status := 0
	for _, name := range args {
		if _, ok := sh.builtins[name]; ok {
			fmt.Fprintf(io.Stdout, "%s is a shell builtin\n", name)
			continue
		}
		if path, ok := sh.path.Resolve(name); ok {
			fmt.Fprintf(io.Stdout, "%s is %s\n", name, path)
			continue
		}
		fmt.Fprintf(io.Stdout, "%s: not found\n", name)
		status = 1
	}
	return status
}

func pwdBuiltin(sh *Shell, args []string, io IOBindings) int {
	wd, err := os.Getwd()
	if err != nil {
		fmt.Fprintln(io.Stderr, "pwd: error getting current directory")
		return 1
	}
	fmt.Fprintln(io.Stdout, wd)
	return 0
}

func cdBuiltin(sh *Shell, args []string, io IOBindings) int {
	var target string
	switch len(args) {
	case 0:
		target = sh.cfg.Home
		if target == "" {
			return 0
		}
	default:
		target = args[0]
	}

	target = expandTilde(target, sh.cfg.Home)
	if err := os.Chdir(target); err != nil {
		fmt.Fprintf(io.Stdout, "cd: %s: No such file or directory\n", target)
		return 1
	}
	return 0
}

func historyBuiltin(sh *Shell, args []string, io IOBindings) int {
	if len(args) >= 1 {
		switch args[0] {
		case "-r":
			if len(args) < 2 {
				fmt.Fprintln(io.Stderr, "history: -r: No such file or directory")
				return 1
			}
			if err := sh.hist.LoadFile(args[1]); err != nil {
				fmt.Fprintf(io.Stderr, "history: %s: No such file or directory\n", args[1])
				return 1
			}
			return 0
		case "-w":
			if len(args) < 2 {
				fmt.Fprintln(io.Stderr, "history: -w: cannot create")
				return 1
			}
			if err := sh.hist.SaveFile(args[1]); err != nil {
				fmt.Fprintf(io.Stderr, "history: %s: cannot create\n", args[1])
				return 1
			}
			return 0
		case "-a":
			if len(args) < 2 {
				fmt.Fprintln(io.Stderr, "history: -a: cannot create")
				return 1
			}
			if err := sh.hist.AppendFile(args[1]); err != nil {
				fmt.Fprintf(io.Stderr, "history: %s: cannot create\n", args[1])
				return 1
			}
			return 0
		}
	}

	n := -1
	if len(args) == 1 {
		if v, err := strconv.Atoi(args[0]); err == nil {
			n = v
		}
	}
	for _, entry := range sh.hist.Tail(n) {
		fmt.Fprintf(io.Stdout, "    %d  %s\n", entry.Index, entry.Line)
	}
	return 0
}
