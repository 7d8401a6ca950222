package lexer

// Token is a raw lexeme sliced out of the source text.  Its category is
// derived from the text on demand, never stored alongside it.
type Token string

// TokenType is the lexical category of a token.
type TokenType int

const (
	// TokInvalid is the category of a token matching no pattern of the
	// grammar.  The tokenizer still emits such tokens; they fail later,
	// during leaf resolution in the parser.
	TokInvalid TokenType = iota

	TokNumber  // An integer literal
	TokIdent   // An identifier
	TokKeyword // A language keyword
	TokControl // ‘,’ ‘;’ or one of the bracket, brace, and paren pairs
	TokRelOp   // ‘==’ ‘!=’ ‘<’ ‘<=’ ‘>’ ‘>=’
	TokTermOp  // ‘*’ ‘/’
	TokExprOp  // ‘+’ ‘-’
	TokOtherOp // The assignment arrow ‘<-’ and the terminator ‘.’
)

var keywords = map[Token]bool{
	"array": true, "call": true, "do": true, "else": true, "fi": true,
	"function": true, "if": true, "let": true, "main": true, "od": true,
	"procedure": true, "return": true, "then": true, "var": true,
	"while": true,
}

var controls = map[Token]bool{
	",": true, ";": true,
	"[": true, "]": true,
	"{": true, "}": true,
	"(": true, ")": true,
}

var relOps = map[Token]bool{
	"==": true, "!=": true,
	"<": true, "<=": true,
	">": true, ">=": true,
}

// Type derives the category of t.  Keywords take precedence over the
// identifier pattern so that every token has exactly one category.
func (t Token) Type() TokenType {
	switch {
	case t.IsNumber():
		return TokNumber
	case keywords[t]:
		return TokKeyword
	case t.IsIdent():
		return TokIdent
	case controls[t]:
		return TokControl
	case relOps[t]:
		return TokRelOp
	case t == "*" || t == "/":
		return TokTermOp
	case t == "+" || t == "-":
		return TokExprOp
	case t == "<-" || t == ".":
		return TokOtherOp
	}
	return TokInvalid
}

// IsNumber reports whether t matches the number pattern, digit {digit}.
func (t Token) IsNumber() bool {
	if len(t) == 0 {
		return false
	}
	for _, r := range t {
		if !isDigit(r) {
			return false
		}
	}
	return true
}

// IsIdent reports whether t matches the identifier pattern,
// letter {letter | digit}.  This is a purely lexical test; keywords match
// it too, and Type resolves that overlap in favour of TokKeyword.
func (t Token) IsIdent() bool {
	if len(t) == 0 {
		return false
	}
	for i, r := range t {
		if i == 0 && !isLetter(r) {
			return false
		}
		if !isLetter(r) && !isDigit(r) {
			return false
		}
	}
	return true
}
