package parser

import (
	"errors"

	"github.com/krisys/PL241-MCS-Compiler/ast"
	"github.com/krisys/PL241-MCS-Compiler/lexer"
)

// See grammar/grammar.ebnf for details

type parseFn func(*Parser, *ast.Node) (boundary, error)

// statements maps a statement's leading keyword to its handler.  The map
// is built once at startup; a keyword missing here cannot open a
// statement.  Assigned in init to avoid an initialization cycle through
// the handlers that recurse into statSequence.
var statements map[lexer.Token]parseFn

func init() {
	statements = map[lexer.Token]parseFn{
		"let":    (*Parser).assignment,
		"call":   (*Parser).funcCall,
		"if":     (*Parser).ifStatement,
		"while":  (*Parser).whileStatement,
		"return": (*Parser).returnStatement,
	}
}

// computation parses the whole program: ‘main’, declarations, the braced
// statement sequence, and the final ‘.’.
func (p *Parser) computation() (*ast.Node, boundary, error) {
	// The program entry point is the ‘main’ keyword; anything before it
	// is skipped over, never rewound to.
	if err := p.toks.SeekTo("main"); err != nil {
		return nil, bNone, syntaxErrorf("‘main’ not found")
	}
	p.next() // The ‘main’ keyword itself
	root := ast.New(ast.Keyword, "main")

	funcsSeen := false
decls:
	for {
		t, err := p.peek()
		if errors.Is(err, lexer.ErrEndOfStream) {
			return nil, bNone, unexpectedEnd("‘{’")
		}
		switch t {
		case "var", "array":
			if funcsSeen {
				return nil, bNone, expected("a function declaration or ‘{’", t)
			}
			if err := p.varDecl(root); err != nil {
				return nil, bNone, err
			}
		case "function", "procedure":
			funcsSeen = true
			b, err := p.funcDecl(root)
			if err != nil {
				return nil, bNone, err
			}
			if b != bNone {
				return nil, b, nil
			}
		default:
			break decls
		}
	}

	if err := p.expect("{"); err != nil {
		return nil, bNone, err
	}
	body := ast.New(ast.Abstract, "body")
	root.Append(body)

	b, err := p.statSequence(body)
	if err != nil {
		return nil, bNone, err
	}
	switch b {
	case bRightBrace:
	case bNone:
		return nil, bNone, syntaxErrorf("no matching ‘}’ for the program body")
	default:
		return nil, b, nil
	}

	t, err := p.next()
	if errors.Is(err, lexer.ErrEndOfStream) || t != "." {
		return nil, bNone, syntaxErrorf("program does not end with a ‘.’")
	}
	if t, err := p.peek(); err == nil {
		return nil, bNone, syntaxErrorf("trailing ‘%s’ after the final ‘.’", t)
	}
	return root, bNone, nil
}

// varDecl parses a ‘var’ or ‘array’ declaration up to and including the
// terminating semicolon.  Declarations cannot be interrupted by an
// enclosing closer, so no boundary is returned.
func (p *Parser) varDecl(parent *ast.Node) error {
	t, _ := p.next() // ‘var’ or ‘array’
	decl := ast.New(ast.Keyword, string(t))
	parent.Append(decl)

	if t == "array" {
		if t, err := p.peek(); err != nil || t != "[" {
			if err != nil {
				return unexpectedEnd("‘[’")
			}
			return expected("‘[’", t)
		}
		for {
			t, err := p.peek()
			if err != nil || t != "[" {
				break
			}
			p.next()
			dim := ast.New(ast.Control, "[")
			decl.Append(dim)

			t, err = p.next()
			if errors.Is(err, lexer.ErrEndOfStream) {
				return unexpectedEnd("an array dimension")
			}
			if !t.IsNumber() {
				return expected("a number", t)
			}
			dim.Append(ast.New(ast.Number, string(t)))

			if err := p.expect("]"); err != nil {
				return err
			}
		}
	}

	for {
		if err := p.ident(decl); err != nil {
			return err
		}
		t, err := p.next()
		if errors.Is(err, lexer.ErrEndOfStream) {
			return unexpectedEnd("‘;’")
		}
		switch t {
		case ",":
		case ";":
			return nil
		default:
			return expected("‘,’ or ‘;’", t)
		}
	}
}

// funcDecl parses ‘function’ or ‘procedure’, the name, the optional
// parenthesized formal parameters, any local declarations, and the braced
// body, each part followed by its required semicolon.
func (p *Parser) funcDecl(parent *ast.Node) (boundary, error) {
	t, _ := p.next() // ‘function’ or ‘procedure’
	fn := ast.New(ast.Keyword, string(t))
	parent.Append(fn)

	if err := p.ident(fn); err != nil {
		return bNone, err
	}
	name := fn.Children[0].Label

	if t, err := p.peek(); err == nil && t == "(" {
		p.next()
		params := ast.New(ast.Abstract, "parameters")
		fn.Append(params)
	plist:
		for {
			t, err := p.peek()
			if errors.Is(err, lexer.ErrEndOfStream) {
				return bNone, syntaxErrorf(
					"no matching ‘)’ for the formal parameters of ‘%s’", name)
			}
			switch t {
			case ")":
				p.next()
				break plist
			case ",":
				p.next()
			default:
				if err := p.ident(params); err != nil {
					return bNone, err
				}
			}
		}
	}

	if err := p.expect(";"); err != nil {
		return bNone, err
	}

	for {
		t, err := p.peek()
		if err != nil || (t != "var" && t != "array") {
			break
		}
		if err := p.varDecl(fn); err != nil {
			return bNone, err
		}
	}

	if err := p.expect("{"); err != nil {
		return bNone, err
	}
	body := ast.New(ast.Abstract, "body")
	fn.Append(body)

	b, err := p.statSequence(body)
	if err != nil {
		return bNone, err
	}
	switch b {
	case bRightBrace:
	case bNone:
		return bNone, syntaxErrorf("no matching ‘}’ for the body of ‘%s’", name)
	default:
		return b, nil
	}

	return bNone, p.expect(";")
}

// statSequence parses statements separated by semicolons into parent until
// a closing token surfaces.  The closing token is consumed and returned as
// its boundary; bNone means the stream ran out first, and the caller knows
// which closer it is missing.
func (p *Parser) statSequence(parent *ast.Node) (boundary, error) {
	for {
		t, err := p.peek()
		if errors.Is(err, lexer.ErrEndOfStream) {
			return bNone, nil
		}
		if b, ok := boundaries[t]; ok {
			p.next()
			return b, nil
		}
		if t == ";" {
			p.next()
			continue
		}
		b, err := p.statement(parent)
		if err != nil {
			return bNone, err
		}
		if b != bNone {
			// A closer for some construct above us; hand it on.
			return b, nil
		}
	}
}

func (p *Parser) statement(parent *ast.Node) (boundary, error) {
	t, err := p.peek()
	if errors.Is(err, lexer.ErrEndOfStream) {
		return bNone, unexpectedEnd("a statement")
	}
	fn, ok := statements[t]
	if !ok {
		return bNone, expected("a statement", t)
	}
	return fn(p, parent)
}

// assignment parses ‘let’ designator ‘<-’ expression.
func (p *Parser) assignment(parent *ast.Node) (boundary, error) {
	p.next() // ‘let’
	let := ast.New(ast.Keyword, "let")
	parent.Append(let)

	if b, err := p.designator(let); b != bNone || err != nil {
		return b, err
	}

	t, err := p.next()
	if errors.Is(err, lexer.ErrEndOfStream) {
		return bNone, unexpectedEnd("‘<-’")
	}
	if t != "<-" {
		return bNone, expected("‘<-’", t)
	}
	let.Append(ast.New(ast.Operator, "<-"))

	return p.expression(let)
}

// funcCall parses ‘call’ ident with an optional parenthesized,
// comma-separated argument list.  It serves both as a statement and as a
// factor.
func (p *Parser) funcCall(parent *ast.Node) (boundary, error) {
	p.next() // ‘call’
	call := ast.New(ast.Keyword, "call")
	parent.Append(call)

	if err := p.ident(call); err != nil {
		return bNone, err
	}

	if t, err := p.peek(); err != nil || t != "(" {
		return bNone, nil // The argument list is optional
	}
	p.next()
	args := ast.New(ast.Abstract, "arguments")
	call.Append(args)

	for {
		t, err := p.peek()
		if errors.Is(err, lexer.ErrEndOfStream) {
			return bNone, syntaxErrorf(
				"no matching ‘)’ for the arguments of ‘%s’",
				call.Children[0].Label)
		}
		if t == ")" {
			p.next()
			return bNone, nil
		}
		if t == "," {
			p.next()
			continue
		}
		b, err := p.expression(args)
		if err != nil {
			return bNone, err
		}
		switch b {
		case bNone:
		case bRightParen:
			// The argument expression ran into the closing paren.
			return bNone, nil
		default:
			return b, nil
		}
	}
}

// ifStatement is the conditional: ‘if’ relation ‘then’ statements
// [‘else’ statements] ‘fi’.  Sub-constructs accumulate under the branch
// whose opening keyword last surfaced as a boundary; ‘fi’ seals the whole
// construct.
func (p *Parser) ifStatement(parent *ast.Node) (boundary, error) {
	p.next() // ‘if’
	ifNode := ast.New(ast.Keyword, "if")
	parent.Append(ifNode)

	cond := ast.New(ast.Abstract, "condition")
	ifNode.Append(cond)

	b, err := p.relation(cond)
	if err != nil {
		return bNone, err
	}
	if b == bNone {
		b, err = p.boundaryAfter("‘then’")
		if err != nil {
			return bNone, err
		}
	}

	thenSeen, elseSeen := false, false
	for {
		var branch *ast.Node

		switch b {
		case bNone:
			// The stream ran out before the construct closed.
			if !thenSeen {
				return bNone, syntaxErrorf("no matching ‘then’ for the if")
			}
			return bNone, syntaxErrorf("no matching ‘fi’ for the if")
		case bThen:
			if thenSeen {
				return bNone, syntaxErrorf("duplicate ‘then’ for the same if")
			}
			thenSeen = true
			branch = ast.New(ast.Keyword, "then")
		case bElse:
			if !thenSeen {
				return bNone, syntaxErrorf("‘else’ found before the matching ‘then’")
			}
			if elseSeen {
				return bNone, syntaxErrorf("duplicate ‘else’ for the same if")
			}
			elseSeen = true
			branch = ast.New(ast.Keyword, "else")
		case bFi:
			if !thenSeen {
				return bNone, syntaxErrorf("‘fi’ found before the matching ‘then’")
			}
			return bNone, nil
		default:
			// A closer belonging to a construct above us.
			return b, nil
		}
		ifNode.Append(branch)

		b, err = p.statSequence(branch)
		if err != nil {
			return bNone, err
		}
	}
}

// whileStatement is the loop: ‘while’ relation ‘do’ statements ‘od’.
// Structurally the conditional with a single branch and no ‘else’.
func (p *Parser) whileStatement(parent *ast.Node) (boundary, error) {
	p.next() // ‘while’
	wh := ast.New(ast.Keyword, "while")
	parent.Append(wh)

	cond := ast.New(ast.Abstract, "condition")
	wh.Append(cond)

	b, err := p.relation(cond)
	if err != nil {
		return bNone, err
	}
	if b == bNone {
		b, err = p.boundaryAfter("‘do’")
		if err != nil {
			return bNone, err
		}
	}

	doSeen := false
	for {
		var branch *ast.Node

		switch b {
		case bNone:
			if !doSeen {
				return bNone, syntaxErrorf("no matching ‘do’ for the while")
			}
			return bNone, syntaxErrorf("no matching ‘od’ for the while")
		case bDo:
			if doSeen {
				return bNone, syntaxErrorf("duplicate ‘do’ for the same while")
			}
			doSeen = true
			branch = ast.New(ast.Keyword, "do")
		case bOd:
			if !doSeen {
				return bNone, syntaxErrorf("‘od’ found before the matching ‘do’")
			}
			return bNone, nil
		default:
			return b, nil
		}
		wh.Append(branch)

		b, err = p.statSequence(branch)
		if err != nil {
			return bNone, err
		}
	}
}

// returnStatement parses ‘return’ with an optional expression.  The
// expression is absent when a semicolon, a closing token, or the end of
// the stream follows directly.
func (p *Parser) returnStatement(parent *ast.Node) (boundary, error) {
	p.next() // ‘return’
	ret := ast.New(ast.Keyword, "return")
	parent.Append(ret)

	t, err := p.peek()
	if errors.Is(err, lexer.ErrEndOfStream) {
		return bNone, nil
	}
	if _, ok := boundaries[t]; ok || t == ";" {
		return bNone, nil
	}
	return p.expression(ret)
}

// relation parses expression relOp expression.  It appears only as the
// condition of a conditional or loop, never as an expression operand.
func (p *Parser) relation(parent *ast.Node) (boundary, error) {
	rel := ast.New(ast.Abstract, "relation")
	parent.Append(rel)

	if b, err := p.expression(rel); b != bNone || err != nil {
		return b, err
	}

	t, err := p.peek()
	if errors.Is(err, lexer.ErrEndOfStream) {
		return bNone, unexpectedEnd("a relational operator")
	}
	if t.Type() != lexer.TokRelOp {
		return bNone, expected("a relational operator", t)
	}
	p.next()
	rel.Append(ast.New(ast.Operator, string(t)))

	return p.expression(rel)
}

// expression parses term {(‘+’ | ‘-’) term}, left-associative, each
// operator recorded as a sibling node between the terms it joins.
func (p *Parser) expression(parent *ast.Node) (boundary, error) {
	expr := ast.New(ast.Abstract, "expression")
	parent.Append(expr)

	if b, err := p.term(expr); b != bNone || err != nil {
		return b, err
	}
	for {
		t, err := p.peek()
		if err != nil || t.Type() != lexer.TokExprOp {
			return bNone, nil
		}
		p.next()
		expr.Append(ast.New(ast.Operator, string(t)))
		if b, err := p.term(expr); b != bNone || err != nil {
			return b, err
		}
	}
}

// term parses factor {(‘*’ | ‘/’) factor}, the tighter precedence layer.
func (p *Parser) term(parent *ast.Node) (boundary, error) {
	trm := ast.New(ast.Abstract, "term")
	parent.Append(trm)

	if b, err := p.factor(trm); b != bNone || err != nil {
		return b, err
	}
	for {
		t, err := p.peek()
		if err != nil || t.Type() != lexer.TokTermOp {
			return bNone, nil
		}
		p.next()
		trm.Append(ast.New(ast.Operator, string(t)))
		if b, err := p.factor(trm); b != bNone || err != nil {
			return b, err
		}
	}
}

// factor parses a parenthesized expression, a function call, or a leaf.
// A closing token in leaf position means the factor's production is empty
// and the closer belongs to a construct further up; it is consumed here
// and begins its journey upwards as a boundary.
func (p *Parser) factor(parent *ast.Node) (boundary, error) {
	t, err := p.peek()
	if errors.Is(err, lexer.ErrEndOfStream) {
		return bNone, unexpectedEnd("a factor")
	}
	if b, ok := boundaries[t]; ok {
		p.next()
		return b, nil
	}

	fac := ast.New(ast.Abstract, "factor")
	parent.Append(fac)

	switch {
	case t == "(":
		p.next()
		b, err := p.expression(fac)
		if err != nil {
			return bNone, err
		}
		if b == bNone {
			b, err = p.boundaryAfter("‘)’")
			if err != nil {
				return bNone, err
			}
			if b == bNone {
				return bNone, syntaxErrorf("no matching ‘)’ for the ‘(’")
			}
		}
		if b != bRightParen {
			return b, nil
		}
		return bNone, nil
	case t == "call":
		return p.funcCall(fac)
	}

	// Leaf resolution: the identifier pattern is tried before the number
	// pattern, here and everywhere else a leaf is resolved.
	switch t.Type() {
	case lexer.TokIdent:
		return p.designator(fac)
	case lexer.TokNumber:
		p.next()
		fac.Append(ast.New(ast.Number, string(t)))
		return bNone, nil
	}
	return bNone, expected("an identifier or number", t)
}

// designator parses an identifier with zero or more bracketed index
// expressions, each index sealed by its right-bracket boundary.
func (p *Parser) designator(parent *ast.Node) (boundary, error) {
	des := ast.New(ast.Abstract, "designator")
	parent.Append(des)

	if err := p.ident(des); err != nil {
		return bNone, err
	}

	for {
		t, err := p.peek()
		if err != nil || t != "[" {
			return bNone, nil
		}
		p.next()
		idx := ast.New(ast.Control, "[")
		des.Append(idx)

		b, err := p.expression(idx)
		if err != nil {
			return bNone, err
		}
		if b == bNone {
			b, err = p.boundaryAfter("‘]’")
			if err != nil {
				return bNone, err
			}
			if b == bNone {
				return bNone, syntaxErrorf("no matching ‘]’ for the ‘[’")
			}
		}
		if b != bRightBracket {
			return b, nil
		}
	}
}
