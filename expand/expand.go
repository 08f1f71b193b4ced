// Copyright (c) 2026, the smallsh authors
// See LICENSE for licensing information

// Package expand replaces the parameter tokens $$, $?, $! and
// ${NAME} inside a single word.
package expand

import "strings"

// Params is the source of the three special-parameter substitutions.
// shellstate.State satisfies this.
type Params interface {
	PID() string
	Status() string
	BackgroundPID() string
}

// Environ looks up an environment variable, returning "" if unset.
// Package shell satisfies this with a small adapter type over
// os.Getenv.
type Environ interface {
	Getenv(name string) string
}

// Word expands all parameter tokens in word and returns a newly
// allocated string. It never re-scans its own output: tokens inside a
// substituted value are copied verbatim.
//
// The accumulator is a local strings.Builder, not shared state across
// calls, so nothing survives between words here.
func Word(word string, params Params, env Environ) string {
	if !strings.Contains(word, "$") {
		return word
	}

	var out strings.Builder
	pos := 0
	for {
		start, end, repl, ok := scan(word, pos, params, env)
		if !ok {
			out.WriteString(word[pos:])
			break
		}
		out.WriteString(word[pos:start])
		out.WriteString(repl)
		pos = end
	}
	return out.String()
}

// scan finds the next parameter token in word at or after pos and
// returns its [start, end) byte range and substitution text. ok is
// false once no further token is found, in which case start/end/repl
// are zero values and the caller should copy the remaining tail.
func scan(word string, pos int, params Params, env Environ) (start, end int, repl string, ok bool) {
	for {
		i := strings.IndexByte(word[pos:], '$')
		if i < 0 {
			return 0, 0, "", false
		}
		start = pos + i
		if start+1 >= len(word) {
			// Trailing, unfollowed '$': copied literally, so report no
			// token and let the caller flush the tail.
			return 0, 0, "", false
		}
		switch word[start+1] {
		case '$':
			return start, start + 2, params.PID(), true
		case '?':
			return start, start + 2, params.Status(), true
		case '!':
			return start, start + 2, params.BackgroundPID(), true
		case '{':
			rest := word[start+2:]
			close := strings.IndexByte(rest, '}')
			if close < 0 {
				// No closing brace anywhere in the remainder: "${" is
				// not a token, copy it literally and keep scanning
				// past it for further tokens.
				pos = start + 2
				continue
			}
			name := rest[:close]
			return start, start + 2 + close + 1, env.Getenv(name), true
		default:
			// '$' not followed by a recognized token byte: copied
			// literally, keep scanning past it.
			pos = start + 1
			continue
		}
	}
}
