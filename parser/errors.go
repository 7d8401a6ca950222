package parser

import (
	"fmt"

	"github.com/krisys/PL241-MCS-Compiler/lexer"
)

// SyntaxError is a fatal violation of the grammar.  It aborts the parse at
// once; there is no recovery and no partial tree.
type SyntaxError struct {
	Msg string
}

func (e *SyntaxError) Error() string {
	return "syntax error: " + e.Msg
}

// InternalError reports a boundary that reached the top of the parse
// uncaught.  That means a handler consumed a closing token without any
// open construct waiting for it: a bug in the parser, not in the program
// being parsed.
type InternalError struct {
	Msg string
}

func (e *InternalError) Error() string {
	return "internal error: " + e.Msg
}

func syntaxErrorf(format string, args ...any) *SyntaxError {
	return &SyntaxError{Msg: fmt.Sprintf(format, args...)}
}

func expected(want string, got lexer.Token) *SyntaxError {
	return syntaxErrorf("Expected %s but got ‘%s’", want, got)
}

func unexpectedEnd(want string) *SyntaxError {
	return syntaxErrorf("Expected %s but got the end of the input", want)
}
