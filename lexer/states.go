package lexer

import "unicode"

type lexFn func(*lexer) lexFn

func lexDefault(l *lexer) lexFn {
	for {
		switch r := l.next(); {
		case r == eof:
			return nil
		case unicode.IsSpace(r):
			l.start = l.pos
		case isDigit(r):
			l.backup()
			return lexNumber
		case isLetter(r):
			l.backup()
			return lexWord
		case r == '<':
			return lexLess
		case r == '>', r == '=', r == '!':
			if l.peek() == '=' {
				l.next()
			}
			l.emit()
		default:
			// Any other single non-space rune stands alone.
			l.emit()
		}
	}
}

// lexNumber consumes a digit run.  A letter directly after the run would
// split into a second token under pure longest-match, silently turning a
// typo like ‘1abc’ into two tokens; it is rejected here instead.
func lexNumber(l *lexer) lexFn {
	for isDigit(l.peek()) {
		l.next()
	}
	if r := l.peek(); isLetter(r) {
		return l.errorf("malformed number ‘%s%c’", l.input[l.start:l.pos], r)
	}
	l.emit()
	return lexDefault
}

func lexWord(l *lexer) lexFn {
	for {
		r := l.peek()
		if !isLetter(r) && !isDigit(r) {
			break
		}
		l.next()
	}
	l.emit()
	return lexDefault
}

// lexLess handles the three tokens opening with ‘<’: the assignment arrow
// ‘<-’, the relational ‘<=’, and plain ‘<’.
func lexLess(l *lexer) lexFn {
	switch l.peek() {
	case '-', '=':
		l.next()
	}
	l.emit()
	return lexDefault
}
