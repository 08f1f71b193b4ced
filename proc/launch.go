// Copyright (c) 2026, the smallsh authors
// See LICENSE for licensing information

//go:build unix

// Package proc is the process launcher and waiter: fork/exec and
// waitpid over the real OS.
package proc

import (
	"fmt"
	"os"
	"os/exec"
	"syscall"

	"smallsh/parser"
)

// Files holds the three standard streams a launched process inherits.
type Files struct {
	Stdin, Stdout, Stderr *os.File
}

// nullFile opens a read side that always yields EOF, for a background
// command's stdin, which is unconditionally redirected to a null
// source regardless of any explicit redirection on the line.
func nullFile() (*os.File, error) {
	return os.Open(os.DevNull)
}

// openRedirect opens the file named by r: `<` read-only, `>`
// write/create/truncate, `>>` write/create/append, both write modes at
// 0o777 subject to umask.
func openRedirect(r parser.Redirect) (*os.File, error) {
	switch r.Kind {
	case parser.In:
		return os.Open(r.Path)
	case parser.OutTruncate:
		return os.OpenFile(r.Path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o777)
	case parser.OutAppend:
		return os.OpenFile(r.Path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o777)
	default:
		return nil, fmt.Errorf("smallsh: unknown redirection kind %d", r.Kind)
	}
}

// resolveStreams builds the child's stdin/stdout/stderr from cmd's
// redirections. When background is true,
// explicit redirections are ignored except that stdin always becomes
// the null source; otherwise later redirections of the same kind
// override earlier ones by reopening the stream, which falls out
// naturally here since files are applied left-to-right and the last
// assignment to stdin/stdout wins.
//
// Every *os.File opened here, including one overridden by a later
// redirect of the same kind, is closed by the returned cleanup; on an
// open error the files opened so far are closed before returning.
func resolveStreams(cmd parser.Command, base Files) (files Files, cleanup func(), err error) {
	files = base
	var opened []*os.File
	cleanup = func() {
		for _, f := range opened {
			f.Close()
		}
	}

	if cmd.Background {
		null, err := nullFile()
		if err != nil {
			return Files{}, nil, fmt.Errorf("smallsh: background stdin: %w", err)
		}
		files.Stdin = null
		opened = append(opened, null)
		return files, cleanup, nil
	}

	for _, r := range cmd.Redirects {
		f, err := openRedirect(r)
		if err != nil {
			cleanup()
			return Files{}, nil, fmt.Errorf("smallsh: %s: %w", r.Path, err)
		}
		opened = append(opened, f)
		switch r.Kind {
		case parser.In:
			files.Stdin = f
		case parser.OutTruncate, parser.OutAppend:
			files.Stdout = f
		}
	}
	return files, cleanup, nil
}

// Launch applies cmd's redirections and starts argv as a child
// process. If cmd.Argv is empty after redirections are removed, no
// process is started and ok is false — the caller treats this as an
// immediate, successful no-op equivalent to a child that exits 0.
//
// Launch restores the pre-shell disposition of SIGINT and SIGTSTP for
// the new child without any child-side code: Go has no literal
// fork(), os.StartProcess goes straight from clone to execve in one
// syscall, so there is no window to run code in the child before it
// execs. The interactive ignore installed by shell.Shell uses
// signal.Notify into a drained channel rather than signal.Ignore, so
// SIGINT/SIGTSTP are *caught*, not *SIG_IGN*, from the OS's point of
// view. POSIX execve resets a caught disposition to its default but
// leaves a true SIG_IGN ignored across exec — exactly the "child must
// not inherit the ignore" behavior wanted here, so it falls out of how
// the parent chooses to ignore in the first place rather than needing
// an explicit reset. See DESIGN.md.
func Launch(cmd parser.Command, base Files) (proc *os.Process, ok bool, err error) {
	if len(cmd.Argv) == 0 {
		// Still honor any redirection side effects (e.g. truncating a
		// file) even though nothing execs.
		_, cleanup, err := resolveStreams(cmd, base)
		if err != nil {
			return nil, false, err
		}
		cleanup()
		return nil, false, nil
	}

	files, cleanup, err := resolveStreams(cmd, base)
	if err != nil {
		return nil, false, err
	}
	defer cleanup()

	path, err := exec.LookPath(cmd.Argv[0])
	if err != nil {
		return nil, false, fmt.Errorf("smallsh: %s: %w", cmd.Argv[0], err)
	}

	attr := &os.ProcAttr{
		Files: []*os.File{files.Stdin, files.Stdout, files.Stderr},
		Sys:   &syscall.SysProcAttr{},
	}
	p, err := os.StartProcess(path, cmd.Argv, attr)
	if err != nil {
		return nil, false, fmt.Errorf("smallsh: fork: %w", err)
	}
	return p, true, nil
}

