package readycli

import (
	"strings"
	"unicode"
)

// tokenizer states
type tokenState int

const (
	stateNewToken tokenState = iota
	stateContinue
	stateSingleQuotes
	stateDoubleQuotes
)

// Tokenize splits a raw command line into tokens. Whitespace separates tokens
// outside quotes. A single-quoted span is taken literally. Inside double
// quotes only \" and \\ are escapes; any other backslash sequence passes
// through unchanged. Outside quotes a backslash escapes the next character
// verbatim, so "a\ b" is the single token "a b".
//
// Malformed input never fails: an unterminated quote or a trailing backslash
// emits the partial token accumulated so far (the trailing backslash is kept
// literally). Tokenize is pure and total over any input string.
func Tokenize(line string) []string {
	tokens := make([]string, 0, 8)
	var current strings.Builder
	escaped := false

	state := stateNewToken
	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		c := runes[i]
		if escaped {
			escaped = false
			current.WriteRune(c)
			continue
		}
		switch state {
		case stateNewToken, stateContinue:
			switch c {
			case '\\':
				escaped = true
				state = stateContinue
			case '\'':
				state = stateSingleQuotes
			case '"':
				state = stateDoubleQuotes
			default:
				if !unicode.IsSpace(c) {
					current.WriteRune(c)
					state = stateContinue
				} else if state == stateContinue {
					tokens = append(tokens, current.String())
					current.Reset()
					state = stateNewToken
				}
			}
		case stateSingleQuotes:
			if c == '\'' {
				state = stateContinue
			} else {
				current.WriteRune(c)
			}
		case stateDoubleQuotes:
			switch c {
			case '"':
				state = stateContinue
			case '\\':
				if i+1 >= len(runes) {
					// trailing escape at end of input, kept literally
					current.WriteRune(c)
					break
				}
				i++
				next := runes[i]
				if next == '"' || next == '\\' {
					current.WriteRune(next)
				} else {
					current.WriteRune(c)
					current.WriteRune(next)
				}
			default:
				current.WriteRune(c)
			}
		}
	}

	if escaped {
		current.WriteRune('\\')
		tokens = append(tokens, current.String())
	} else if state != stateNewToken {
		tokens = append(tokens, current.String())
	}
	return tokens
}
