// Copyright (c) 2026, the smallsh authors
// See LICENSE for licensing information

// Package shellstate holds the process-wide special parameters a smallsh
// process carries for its own lifetime: $$, $?, and $!.
//
// These live as fields on a State value threaded through the
// interpreter rather than as mutable package-level globals, so nothing
// is shared except through an explicit argument.
package shellstate

import (
	"os"
	"strconv"
)

// State is the shell's special-parameter set: $$, $?, $!.
//
// Each field keeps both the typed value and its pre-rendered textual
// form: word expansion (expand.Word) reads $$/$?/$! as text, and the
// bare `exit` builtin reads the status as an int through StatusCode.
type State struct {
	pid    int
	pidStr string

	status    int
	statusStr string

	bgpid    int
	bgpidSet bool
	bgpidStr string
}

// New returns a State for the calling process: pid is the process's
// own PID, status starts at "0", and bgpid starts unset.
func New() *State {
	pid := os.Getpid()
	return &State{
		pid:       pid,
		pidStr:    strconv.Itoa(pid),
		status:    0,
		statusStr: "0",
	}
}

// PID returns $$.
func (s *State) PID() string { return s.pidStr }

// Status returns $?.
func (s *State) Status() string { return s.statusStr }

// StatusCode returns the last foreground status as an integer, used by
// the bare `exit` builtin.
func (s *State) StatusCode() int { return s.status }

// BackgroundPID returns $!, or the empty string if no background or
// stopped-foreground process has ever been recorded.
func (s *State) BackgroundPID() string {
	if !s.bgpidSet {
		return ""
	}
	return s.bgpidStr
}

// SetStatus records the outcome of a foreground child or a builtin
// argument error. Callers must not invoke this for a successful
// builtin, which leaves $? untouched.
func (s *State) SetStatus(code int) {
	s.status = code
	s.statusStr = strconv.Itoa(code)
}

// SetBackgroundPID records $!: set when a background child is
// launched, and when a foreground child is observed stopped and
// detached into the background.
func (s *State) SetBackgroundPID(pid int) {
	s.bgpid = pid
	s.bgpidStr = strconv.Itoa(pid)
	s.bgpidSet = true
}
