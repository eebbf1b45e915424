package parser

import (
	"github.com/cymbtoolchain/cymb/internal/ast"
	"github.com/cymbtoolchain/cymb/internal/result"
	"github.com/cymbtoolchain/cymb/internal/token"
)

// parseBlock parses `{ <statements> }`.
func (p *Parser) parseBlock() ([]ast.Stmt, result.Outcome) {
	if _, ok := p.expect(token.LBrace); !ok {
		return nil, result.Invalid
	}
	var stmts []ast.Stmt
	outcome := result.Match
	for p.cur().Kind != token.RBrace {
		if p.atEOF() {
			p.unexpectedToken(p.cur())
			return stmts, result.Invalid
		}
		s, o := p.parseStatement()
		if o == result.NoMatch {
			p.unexpectedToken(p.cur())
			return stmts, result.Invalid
		}
		if s != nil {
			stmts = append(stmts, s)
		}
		if o == result.Invalid {
			outcome = result.Invalid
			p.recoverStatement()
		}
	}
	p.advance() // '}'
	return stmts, outcome
}

// recoverStatement skips forward to the next statement terminator (';' at
// brace depth 0, or a closing '}') so a malformed statement doesn't cascade
// failures through the rest of the block. Per spec.md §4.3: "does not
// attempt further recovery within the current production" — this recovers
// at the enclosing block level, not within the failed statement itself.
func (p *Parser) recoverStatement() {
	depth := 0
	for !p.atEOF() {
		switch p.cur().Kind {
		case token.LBrace:
			depth++
		case token.RBrace:
			if depth == 0 {
				return
			}
			depth--
		case token.Semicolon:
			if depth == 0 {
				p.advance()
				return
			}
		}
		p.advance()
	}
}

// parseStatementOrSingle parses either a brace-delimited block or a single
// statement, for constructs like `while` whose body may be either.
func (p *Parser) parseStatementOrSingle() ([]ast.Stmt, result.Outcome) {
	if p.cur().Kind == token.LBrace {
		return p.parseBlock()
	}
	s, o := p.parseStatement()
	if s == nil {
		return nil, o
	}
	return []ast.Stmt{s}, o
}

// parseStatement dispatches over the four statement forms spec.md §4.3
// lists: while, return, declaration, expression-statement.
func (p *Parser) parseStatement() (ast.Stmt, result.Outcome) {
	switch p.cur().Kind {
	case token.KwWhile:
		return p.parseWhile()
	case token.KwReturn:
		return p.parseReturn()
	}

	if decl, o := p.tryDeclaration(); o != result.NoMatch {
		return decl, o
	}

	return p.parseExprStmt()
}

func (p *Parser) parseWhile() (ast.Stmt, result.Outcome) {
	kw := p.advance()
	if _, ok := p.expect(token.LParen); !ok {
		return nil, result.Invalid
	}
	cond, co := p.parseExpr(1)
	if co == result.NoMatch {
		p.unexpectedToken(p.cur())
		return nil, result.Invalid
	}
	if _, ok := p.expect(token.RParen); !ok {
		return nil, result.Invalid
	}
	body, bo := p.parseStatementOrSingle()
	w := alloc(p, ast.While{Cond: cond, Body: body, Info: kw.Info})
	if co == result.Invalid || bo != result.Match {
		return w, result.Invalid
	}
	return w, result.Match
}

func (p *Parser) parseReturn() (ast.Stmt, result.Outcome) {
	kw := p.advance()
	if p.cur().Kind == token.Semicolon {
		p.advance()
		return alloc(p, ast.Return{Info: kw.Info}), result.Match
	}
	val, o := p.parseExpr(1)
	if o == result.NoMatch {
		p.unexpectedToken(p.cur())
		return nil, result.Invalid
	}
	ret := alloc(p, ast.Return{Value: val, Info: kw.Info})
	if o == result.Invalid {
		return ret, result.Invalid
	}
	if _, ok := p.expect(token.Semicolon); !ok {
		return ret, result.Invalid
	}
	return ret, result.Match
}

// tryDeclaration speculatively parses `<type> <identifier> [= <expr>] ;`,
// rolling back to no-match if the token at the cursor isn't a type
// specifier at all (so the caller falls through to expression-statement).
func (p *Parser) tryDeclaration() (ast.Stmt, result.Outcome) {
	cp := p.snapshot()
	typ, to := p.parseType()
	if to == result.NoMatch {
		p.restore(cp)
		return nil, result.NoMatch
	}
	if to == result.Invalid {
		return nil, result.Invalid
	}

	nameTok, ok := p.expect(token.Identifier)
	if !ok {
		p.restore(cp)
		return nil, result.NoMatch
	}
	name := alloc(p, ast.Identifier{Info: nameTok.Info})

	var init ast.Expr
	if p.cur().Kind == token.Equal {
		p.advance()
		var io result.Outcome
		init, io = p.parseExpr(1)
		if io == result.NoMatch {
			p.unexpectedToken(p.cur())
			return nil, result.Invalid
		}
		if io == result.Invalid {
			decl := alloc(p, ast.Declaration{Name: name, Type: typ, Init: init, Info: nameTok.Info})
			return decl, result.Invalid
		}
	}

	decl := alloc(p, ast.Declaration{Name: name, Type: typ, Init: init, Info: nameTok.Info})
	if _, ok := p.expect(token.Semicolon); !ok {
		return decl, result.Invalid
	}
	return decl, result.Match
}

func (p *Parser) parseExprStmt() (ast.Stmt, result.Outcome) {
	t := p.cur()
	expr, o := p.parseExpr(1)
	if o == result.NoMatch {
		p.unexpectedToken(p.cur())
		return nil, result.Invalid
	}
	stmt := alloc(p, ast.ExprStmt{X: expr, Info: t.Info})
	if o == result.Invalid {
		return stmt, result.Invalid
	}
	if _, ok := p.expect(token.Semicolon); !ok {
		return stmt, result.Invalid
	}
	return stmt, result.Match
}
