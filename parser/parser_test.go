// Copyright (c) 2026, the smallsh authors
// See LICENSE for licensing information

package parser_test

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"smallsh/parser"
)

func TestParseArgvOnly(t *testing.T) {
	c := qt.New(t)
	cmd, err := parser.Parse([]string{"echo", "hi", "there"})
	c.Assert(err, qt.IsNil)
	c.Assert(cmd, qt.DeepEquals, parser.Command{Argv: []string{"echo", "hi", "there"}})
}

func TestParseRedirections(t *testing.T) {
	c := qt.New(t)
	cmd, err := parser.Parse([]string{"wc", "<", "in.txt", ">", "out.txt"})
	c.Assert(err, qt.IsNil)
	c.Assert(cmd.Argv, qt.DeepEquals, []string{"wc"})
	c.Assert(cmd.Background, qt.IsFalse)
	c.Assert(cmd.Redirects, qt.DeepEquals, []parser.Redirect{
		{Kind: parser.In, Path: "in.txt"},
		{Kind: parser.OutTruncate, Path: "out.txt"},
	})
}

func TestParseAppend(t *testing.T) {
	c := qt.New(t)
	cmd, err := parser.Parse([]string{"cmd", ">>", "log.txt"})
	c.Assert(err, qt.IsNil)
	c.Assert(cmd.Redirects, qt.DeepEquals, []parser.Redirect{{Kind: parser.OutAppend, Path: "log.txt"}})
}

func TestParseBackground(t *testing.T) {
	c := qt.New(t)
	cmd, err := parser.Parse([]string{"sleep", "1", "&"})
	c.Assert(err, qt.IsNil)
	c.Assert(cmd.Argv, qt.DeepEquals, []string{"sleep", "1"})
	c.Assert(cmd.Background, qt.IsTrue)
}

func TestParseBackgroundPositionIrrelevant(t *testing.T) {
	c := qt.New(t)
	cmd, err := parser.Parse([]string{"&", "sleep", "1"})
	c.Assert(err, qt.IsNil)
	c.Assert(cmd.Background, qt.IsTrue)
	c.Assert(cmd.Argv, qt.DeepEquals, []string{"sleep", "1"})
}

func TestParseMissingRedirectionTarget(t *testing.T) {
	c := qt.New(t)
	_, err := parser.Parse([]string{"wc", "<"})
	c.Assert(err, qt.ErrorIs, parser.ErrMissingTarget)
}

func TestParseNeverPutsOperatorsInArgv(t *testing.T) {
	c := qt.New(t)
	cmd, err := parser.Parse([]string{"a", "&", "<", "in", ">", "out", ">>", "log", "b"})
	c.Assert(err, qt.IsNil)
	for _, w := range cmd.Argv {
		c.Assert(w, qt.Not(qt.Equals), "&")
		c.Assert(w, qt.Not(qt.Equals), "<")
		c.Assert(w, qt.Not(qt.Equals), ">")
		c.Assert(w, qt.Not(qt.Equals), ">>")
	}
	c.Assert(cmd.Argv, qt.DeepEquals, []string{"a", "b"})
}
