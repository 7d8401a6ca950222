package lexer

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

const eof rune = -1

type lexer struct {
	input string  // The input string to lex
	start int     // The start of the current token in input
	pos   int     // The pos of the cursor in input
	width int     // Width of the last rune lexed
	toks  []Token // Tokens emitted so far
	err   error   // First malformed lexeme encountered, if any
}

// Tokenize splits src into its ordered sequence of raw lexemes, dropping
// whitespace.  Matching is longest-first: the number and identifier
// patterns, then the multi-rune operators ‘<-’ ‘==’ ‘!=’ ‘<=’ ‘>=’, and
// finally any single non-space rune.  Tokenize holds no global state; the
// same input always yields the same output.
func Tokenize(src string) ([]Token, error) {
	l := &lexer{input: src}
	for state := lexDefault; state != nil; {
		state = state(l)
	}
	if l.err != nil {
		return nil, l.err
	}
	return l.toks, nil
}

func (l *lexer) emit() {
	l.toks = append(l.toks, Token(l.input[l.start:l.pos]))
	l.start = l.pos
}

func (l *lexer) next() rune {
	var r rune

	if l.pos >= len(l.input) {
		l.width = 0
		return eof
	}
	r, l.width = utf8.DecodeRuneInString(l.input[l.pos:])
	l.pos += l.width
	return r
}

func (l *lexer) peek() rune {
	r := l.next()
	l.backup()
	return r
}

func (l *lexer) backup() {
	l.pos -= l.width
}

func (l *lexer) errorf(format string, args ...any) lexFn {
	l.err = fmt.Errorf(format, args...)
	return nil
}

func isLetter(r rune) bool {
	return unicode.IsLetter(r)
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
