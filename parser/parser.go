// Copyright (c) 2026, the smallsh authors
// See LICENSE for licensing information

// Package parser separates redirection operators and the background
// marker from a command's argv.
package parser

import "fmt"

// RedirKind identifies which stream a Redirect applies to and how the
// target file is opened.
type RedirKind int

const (
	// In opens Path read-only and attaches it to stdin.
	In RedirKind = iota
	// OutTruncate opens Path write/create/truncate and attaches it to
	// stdout.
	OutTruncate
	// OutAppend opens Path write/create/append and attaches it to
	// stdout.
	OutAppend
)

// Redirect is one `{kind, path}` directive parsed off a command line.
type Redirect struct {
	Kind RedirKind
	Path string
}

// Command is the parser's output: argv with operators and their
// filename arguments removed, the background flag, and the ordered
// redirections that survived.
//
// A later redirection of the same Kind overrides an earlier one: the
// Redirects slice simply lists them in encounter order and the
// launcher (package proc) reopens the stream each time, so the last
// one wins naturally.
type Command struct {
	Argv       []string
	Background bool
	Redirects  []Redirect
}

// ErrMissingTarget is returned when a redirection operator is the last
// word on the line, with nothing to serve as its filename.
var ErrMissingTarget = fmt.Errorf("missing redirection target")

// Parse turns an already-lexed-and-expanded word list into a Command.
//
// `&` anywhere in the word list marks the command as background; `<`,
// `>`, and `>>` each consume the following word as a filename
// regardless of where Background ends up, even though a background
// command ignores the resulting redirections for its default streams
// (the launcher enforces that, not the parser — the parser's only job
// is to describe what appeared on the line).
func Parse(words []string) (Command, error) {
	var cmd Command
	for i := 0; i < len(words); i++ {
		w := words[i]
		switch w {
		case "&":
			cmd.Background = true
		case "<", ">", ">>":
			if i+1 >= len(words) {
				return Command{}, ErrMissingTarget
			}
			path := words[i+1]
			i++
			kind := In
			switch w {
			case ">":
				kind = OutTruncate
			case ">>":
				kind = OutAppend
			}
			cmd.Redirects = append(cmd.Redirects, Redirect{Kind: kind, Path: path})
		default:
			cmd.Argv = append(cmd.Argv, w)
		}
	}
	return cmd, nil
}
