// Copyright (c) 2026, the smallsh authors
// See LICENSE for licensing information

// Package lexer splits one logical input line into words, honoring
// '#' comments and backslash escapes.
package lexer

// MaxWords bounds the word list a single line may produce.
const MaxWords = 512

// isSpace reports whether b is part of the ASCII whitespace class the
// lexer breaks words on: space, tab, newline, CR, VT, FF.
func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

// Split scans line into a bounded, ordered sequence of words. An empty
// or wholly-commented line yields zero words, which is a valid result —
// callers re-prompt rather than treat it as an error.
//
// A '\' escapes exactly the byte that follows it: that byte is copied
// into the current word verbatim, bypassing whitespace and comment
// recognition for that one byte. The backslash itself is dropped, so an
// escaped `&`, `<` or `>` that forms a whole word is still an operator
// to the parser, which compares the final text. A trailing '\' with
// nothing after it contributes nothing further.
func Split(line string) []string {
	var words []string
	i, n := 0, len(line)

	skipSpace := func() {
		for i < n && isSpace(line[i]) {
			i++
		}
	}

	skipSpace()
	for i < n && len(words) < MaxWords {
		if line[i] == '#' {
			break
		}
		var word []byte
		for i < n && !isSpace(line[i]) {
			if line[i] == '\\' {
				i++
				if i >= n {
					break
				}
			}
			word = append(word, line[i])
			i++
		}
		words = append(words, string(word))
		skipSpace()
	}
	return words
}
