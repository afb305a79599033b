package ee

import "strconv"

// InputError is an error with position information. BadCharacterError and
// TokenizerError, the two tokenizer-stage errors that carry an offset,
// implement it; ParseError and EvalError describe structural problems with
// no single offset and do not.
type InputError interface {
	error
	// Pos returns the rune offset at which the error was detected.
	Pos() int
}

var (
	_ InputError = (*BadCharacterError)(nil)
	_ InputError = (*TokenizerError)(nil)
)

// errpos formats a position-tagged error message.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}
