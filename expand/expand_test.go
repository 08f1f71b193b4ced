// Copyright (c) 2026, the smallsh authors
// See LICENSE for licensing information

package expand_test

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"smallsh/expand"
)

type fakeParams struct {
	pid, status, bgpid string
}

func (p fakeParams) PID() string           { return p.pid }
func (p fakeParams) Status() string        { return p.status }
func (p fakeParams) BackgroundPID() string { return p.bgpid }

type fakeEnviron map[string]string

func (e fakeEnviron) Getenv(name string) string { return e[name] }

func TestWord(t *testing.T) {
	params := fakeParams{pid: "4242", status: "7", bgpid: "99"}
	env := fakeEnviron{"HOME": "/home/user"}

	tests := []struct {
		name string
		word string
		want string
	}{
		{"no dollar is unchanged", "plain", "plain"},
		{"pid status bgpid", "$$ $? $!", "4242 7 99"},
		{"missing var is empty", "a${FOO}b", "ab"},
		{"set var", "${HOME}/bin", "/home/user/bin"},
		{"literal dollar before other char", "cost $5", "cost $5"},
		{"trailing dollar", "price$", "price$"},
		{"unterminated brace copied literally", "a${FOO", "a${FOO"},
		{"adjacent tokens", "$$$?", "42427"},
		{"lone pid token", "$$", "4242"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := qt.New(t)
			c.Assert(expand.Word(tc.word, params, env), qt.Equals, tc.want)
		})
	}
}

func TestWordIdempotentWithoutDollar(t *testing.T) {
	c := qt.New(t)
	params := fakeParams{}
	env := fakeEnviron{}
	for _, w := range []string{"", "echo", "hi there", "/usr/bin/env"} {
		c.Assert(expand.Word(w, params, env), qt.Equals, w)
	}
}

func TestWordNeverRescansSubstitution(t *testing.T) {
	c := qt.New(t)
	params := fakeParams{pid: "$?"}
	env := fakeEnviron{}
	// If expansion were recursive, "$$" would expand to "$?" and then
	// again to the status value. It must stop after one substitution.
	c.Assert(expand.Word("$$", params, env), qt.Equals, "$?")
}
