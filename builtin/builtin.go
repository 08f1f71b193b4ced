// Copyright (c) 2026, the smallsh authors
// See LICENSE for licensing information

// Package builtin recognizes and executes smallsh's two in-process
// commands, exit and cd.
package builtin

import (
	"fmt"
	"io"
	"strconv"

	"smallsh/shellstate"
)

// Env looks up an environment variable. Package shell satisfies this
// with a small adapter type over os.Getenv.
type Env interface {
	Getenv(name string) string
}

// Dir changes the process's working directory. Package shell satisfies
// this with a small adapter type over os.Chdir.
type Dir interface {
	Chdir(path string) error
}

// Names are matched by exact textual equality on argv[0], before
// redirections are parsed: a builtin does not honor `<`, `>`, `>>` or
// `&`; such words reach it as ordinary arguments.
const (
	Exit = "exit"
	Cd   = "cd"
)

// Is reports whether name names a builtin.
func Is(name string) bool {
	return name == Exit || name == Cd
}

// Result reports what Dispatch did.
type Result struct {
	// Exit is true when the shell itself should terminate with Code.
	Exit bool
	Code int
}

// Dispatch runs the builtin named by argv[0]. argv[0] must satisfy
// Is(argv[0]); callers check that before parsing redirections.
//
// On a builtin argument error, Dispatch reports to stderr and sets
// status to 1 via state; the caller is expected to discard the rest of
// the line and reprompt. A successful builtin never touches status.
func Dispatch(argv []string, state *shellstate.State, env Env, dir Dir, stderr io.Writer) Result {
	switch argv[0] {
	case Exit:
		return dispatchExit(argv, state, stderr)
	case Cd:
		return dispatchCd(argv, state, env, dir, stderr)
	default:
		panic("builtin: Dispatch called with non-builtin argv[0] " + argv[0])
	}
}

func dispatchExit(argv []string, state *shellstate.State, stderr io.Writer) Result {
	switch len(argv) {
	case 1:
		return Result{Exit: true, Code: state.StatusCode()}
	case 2:
		n, err := strconv.ParseInt(argv[1], 10, 64)
		if err != nil {
			fmt.Fprintf(stderr, "smallsh: exit: %q is not a valid integer\n", argv[1])
			state.SetStatus(1)
			return Result{}
		}
		return Result{Exit: true, Code: int(n)}
	default:
		fmt.Fprintln(stderr, "smallsh: exit: too many arguments")
		state.SetStatus(1)
		return Result{}
	}
}

func dispatchCd(argv []string, state *shellstate.State, env Env, dir Dir, stderr io.Writer) Result {
	var path string
	switch len(argv) {
	case 1:
		path = env.Getenv("HOME")
	case 2:
		path = argv[1]
	default:
		fmt.Fprintln(stderr, "smallsh: cd: too many arguments")
		state.SetStatus(1)
		return Result{}
	}
	if err := dir.Chdir(path); err != nil {
		fmt.Fprintf(stderr, "smallsh: cd: %v\n", err)
		state.SetStatus(1)
	}
	return Result{}
}
