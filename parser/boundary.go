package parser

import "github.com/krisys/PL241-MCS-Compiler/lexer"

// boundary is the non-error result of a grammar handler that ran into the
// token closing an enclosing construct.  It travels up the return path,
// frame by frame, untouched by every handler except the one waiting for
// that particular closer.  bNone means the handler parsed its own
// production and stopped before any closing token.
type boundary int

const (
	bNone boundary = iota

	bThen
	bElse
	bFi
	bDo
	bOd
	bRightBracket
	bRightBrace
	bRightParen
)

// boundaries maps each closing token to its boundary.
var boundaries = map[lexer.Token]boundary{
	"then": bThen,
	"else": bElse,
	"fi":   bFi,
	"do":   bDo,
	"od":   bOd,
	"]":    bRightBracket,
	"}":    bRightBrace,
	")":    bRightParen,
}

func (b boundary) String() string {
	for t, x := range boundaries {
		if x == b {
			return string(t)
		}
	}
	return "none"
}
