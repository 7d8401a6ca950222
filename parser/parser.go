package parser

import (
	"errors"
	"fmt"

	"github.com/krisys/PL241-MCS-Compiler/ast"
	"github.com/krisys/PL241-MCS-Compiler/lexer"
	"github.com/krisys/PL241-MCS-Compiler/log"
)

// Parser owns its token stream for the duration of a single parse.  It is
// not safe for concurrent use; make one per source text.
type Parser struct {
	toks *lexer.Stream
}

// New tokenizes src eagerly and returns a parser positioned at the first
// token.
func New(src string) (*Parser, error) {
	toks, err := lexer.Tokenize(src)
	if err != nil {
		return nil, &SyntaxError{Msg: err.Error()}
	}
	log.Debugf("tokens: %v", toks)
	return &Parser{toks: lexer.NewStream(toks)}, nil
}

// Parse tokenizes src and builds its parse tree.
func Parse(src string) (*ast.Node, error) {
	p, err := New(src)
	if err != nil {
		return nil, err
	}
	return p.Parse()
}

// Parse builds the parse tree rooted at the ‘main’ keyword.  On failure
// no partial tree is returned; the whole parse is discarded.
func (p *Parser) Parse() (*ast.Node, error) {
	root, b, err := p.computation()
	if err != nil {
		return nil, err
	}
	if b != bNone {
		return nil, &InternalError{Msg: fmt.Sprintf(
			"boundary ‘%s’ escaped to the top of the parse", b)}
	}
	return root, nil
}

func (p *Parser) peek() (lexer.Token, error) { return p.toks.Peek() }
func (p *Parser) next() (lexer.Token, error) { return p.toks.Next() }

// expect consumes the next token, requiring it to be want.
func (p *Parser) expect(want lexer.Token) error {
	t, err := p.next()
	if errors.Is(err, lexer.ErrEndOfStream) {
		return unexpectedEnd(fmt.Sprintf("‘%s’", want))
	}
	if t != want {
		return expected(fmt.Sprintf("‘%s’", want), t)
	}
	return nil
}

// boundaryAfter reads the token that should close the construct just
// parsed and converts it to its boundary.  bNone with a nil error means
// the stream ran out; the caller knows which closer went missing.
func (p *Parser) boundaryAfter(want string) (boundary, error) {
	t, err := p.peek()
	if errors.Is(err, lexer.ErrEndOfStream) {
		return bNone, nil
	}
	if b, ok := boundaries[t]; ok {
		p.next()
		return b, nil
	}
	return bNone, expected(want, t)
}

// ident consumes the next token, requiring an identifier, and appends its
// leaf to parent.
func (p *Parser) ident(parent *ast.Node) error {
	t, err := p.next()
	if errors.Is(err, lexer.ErrEndOfStream) {
		return unexpectedEnd("an identifier")
	}
	if t.Type() != lexer.TokIdent {
		return expected("an identifier", t)
	}
	parent.Append(ast.New(ast.Ident, string(t)))
	return nil
}
