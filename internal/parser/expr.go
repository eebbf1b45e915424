package parser

import (
	"github.com/cymbtoolchain/cymb/internal/ast"
	"github.com/cymbtoolchain/cymb/internal/diag"
	"github.com/cymbtoolchain/cymb/internal/result"
	"github.com/cymbtoolchain/cymb/internal/token"
)

// opInfo is one binary operator's precedence-climbing metadata.
type opInfo struct {
	kind       ast.BinaryOpKind
	prec       int
	rightAssoc bool
}

// binOps is the operator table spec.md §4.3 describes: precedence 1-11,
// left-associative except assignment and compound assignment (1, right).
// It covers the full closed set of 29 operators spec.md §4.1 names.
var binOps = map[token.Kind]opInfo{
	token.Star:    {ast.Mul, 11, false},
	token.Slash:   {ast.Div, 11, false},
	token.Percent: {ast.Mod, 11, false},

	token.Plus:  {ast.Add, 10, false},
	token.Minus: {ast.Sub, 10, false},

	token.LShift: {ast.Shl, 9, false},
	token.RShift: {ast.Shr, 9, false},

	token.Less:         {ast.Lt, 8, false},
	token.Greater:      {ast.Gt, 8, false},
	token.LessEqual:    {ast.LtEq, 8, false},
	token.GreaterEqual: {ast.GtEq, 8, false},

	token.EqualEqual: {ast.Eq, 7, false},
	token.BangEqual:  {ast.NotEq, 7, false},

	token.Amp: {ast.BitAnd, 6, false},

	token.Caret: {ast.BitXor, 5, false},

	token.Pipe: {ast.BitOr, 4, false},

	token.AmpAmp:  {ast.LogAnd, 3, false},
	token.PipePipe: {ast.LogOr, 2, false},

	token.Equal:        {ast.Assign, 1, true},
	token.PlusEqual:    {ast.AddAssign, 1, true},
	token.MinusEqual:   {ast.SubAssign, 1, true},
	token.StarEqual:    {ast.MulAssign, 1, true},
	token.SlashEqual:   {ast.DivAssign, 1, true},
	token.PercentEqual: {ast.ModAssign, 1, true},
	token.AmpEqual:     {ast.AndAssign, 1, true},
	token.PipeEqual:    {ast.OrAssign, 1, true},
	token.CaretEqual:   {ast.XorAssign, 1, true},
	token.LShiftEqual:  {ast.ShlAssign, 1, true},
	token.RShiftEqual:  {ast.ShrAssign, 1, true},
}

// maxBinaryPrec is the highest binary precedence (multiplicative); unary
// prefixes bind one tighter, per spec.md §4.3.
const maxBinaryPrec = 11
const unaryPrec = maxBinaryPrec + 1

var prefixUnary = map[token.Kind]ast.UnaryOpKind{
	token.PlusPlus:   ast.PrefixInc,
	token.MinusMinus: ast.PrefixDec,
	token.Amp:        ast.AddressOf,
	token.Star:       ast.Indirection,
	token.Plus:       ast.UnaryPlus,
	token.Minus:      ast.UnaryMinus,
	token.Tilde:      ast.BitNot,
	token.Bang:       ast.LogNot,
}

// parseExpr implements spec.md §4.3's precedence-climbing algorithm: parse
// a unary-prefixed primary, then fold in binary operators whose precedence
// is >= minPrec (strictly > for left-associative ties, >= for right).
func (p *Parser) parseExpr(minPrec int) (ast.Expr, result.Outcome) {
	left, o := p.parseUnary()
	if o != result.Match {
		return left, o
	}

	for {
		info, ok := binOps[p.cur().Kind]
		if !ok || info.prec < minPrec {
			break
		}
		opTok := p.advance()
		nextMin := info.prec + 1
		if info.rightAssoc {
			nextMin = info.prec
		}
		right, ro := p.parseExpr(nextMin)
		if ro == result.NoMatch {
			p.unexpectedToken(p.cur())
			return left, result.Invalid
		}
		left = alloc(p, ast.BinaryOp{Op: info.kind, Left: left, Right: right, Info: opTok.Info})
		if ro == result.Invalid {
			return left, result.Invalid
		}
	}
	return left, result.Match
}

// parseUnary parses zero or more prefix operators around a postfix-chained
// primary.
func (p *Parser) parseUnary() (ast.Expr, result.Outcome) {
	if kind, ok := prefixUnary[p.cur().Kind]; ok {
		opTok := p.advance()
		operand, o := p.parseExprAtPrec(unaryPrec)
		if o == result.NoMatch {
			p.unexpectedToken(p.cur())
			return nil, result.Invalid
		}
		return alloc(p, ast.UnaryOp{Op: kind, Operand: operand, Info: opTok.Info}), o
	}
	return p.parsePostfix()
}

// parseExprAtPrec re-enters unary parsing (used for the operand of a
// prefix operator, which itself binds at unaryPrec).
func (p *Parser) parseExprAtPrec(prec int) (ast.Expr, result.Outcome) {
	if prec >= unaryPrec {
		return p.parseUnary()
	}
	return p.parseExpr(prec)
}

// parsePostfix parses a primary expression followed by any chain of
// postfix ++/--, call, subscript, or member-access suffixes.
func (p *Parser) parsePostfix() (ast.Expr, result.Outcome) {
	expr, o := p.parsePrimary()
	if o != result.Match {
		return expr, o
	}

	for {
		switch p.cur().Kind {
		case token.PlusPlus:
			t := p.advance()
			expr = alloc(p, ast.PostfixOp{Op: ast.PostfixInc, Operand: expr, Info: t.Info})
		case token.MinusMinus:
			t := p.advance()
			expr = alloc(p, ast.PostfixOp{Op: ast.PostfixDec, Operand: expr, Info: t.Info})
		case token.LParen:
			call, co := p.parseCallArgs(expr)
			expr = call
			if co == result.Invalid {
				return expr, result.Invalid
			}
		case token.LBracket:
			lb := p.advance()
			id, ok := exprAsIdentifier(expr)
			if !ok {
				p.diags.Add(diag.UnexpectedToken, lb.Info)
				return expr, result.Invalid
			}
			idx, io := p.parseExpr(1)
			if io == result.NoMatch {
				p.unexpectedToken(p.cur())
				return expr, result.Invalid
			}
			if _, ok := p.expect(token.RBracket); !ok {
				return expr, result.Invalid
			}
			expr = alloc(p, ast.ArraySubscript{Name: id, Index: idx, Info: lb.Info})
			if io == result.Invalid {
				return expr, result.Invalid
			}
		case token.Dot, token.Arrow:
			kind := ast.Dot
			if p.cur().Kind == token.Arrow {
				kind = ast.Arrow
			}
			opTok := p.advance()
			memberTok, ok := p.expect(token.Identifier)
			if !ok {
				return expr, result.Invalid
			}
			member := alloc(p, ast.Identifier{Info: memberTok.Info})
			expr = alloc(p, ast.MemberAccess{Kind: kind, Object: expr, Member: member, Info: opTok.Info})
		default:
			return expr, result.Match
		}
	}
}

// exprAsIdentifier narrows expr to a bare identifier, the only subscript
// target spec.md §4.1's literal "array-subscript (name, expression)" shape
// permits (narrower than general C, which allows subscripting any
// pointer-valued expression; see DESIGN.md).
func exprAsIdentifier(expr ast.Expr) (*ast.Identifier, bool) {
	id, ok := expr.(*ast.Identifier)
	return id, ok
}

func (p *Parser) parseCallArgs(callee ast.Expr) (ast.Expr, result.Outcome) {
	lparen := p.advance() // '('
	var args []ast.Expr
	if p.cur().Kind != token.RParen {
		for {
			arg, o := p.parseExpr(1)
			if o == result.NoMatch {
				p.unexpectedToken(p.cur())
				return alloc(p, ast.FunctionCall{Callee: callee, Args: args, Info: lparen.Info}), result.Invalid
			}
			args = append(args, arg)
			if o == result.Invalid {
				return alloc(p, ast.FunctionCall{Callee: callee, Args: args, Info: lparen.Info}), result.Invalid
			}
			if p.cur().Kind != token.Comma {
				break
			}
			p.advance()
		}
	}
	call := alloc(p, ast.FunctionCall{Callee: callee, Args: args, Info: lparen.Info})
	if _, ok := p.expect(token.RParen); !ok {
		p.diags.Add(diag.UnmatchedParenthesis, lparen.Info)
		return call, result.Invalid
	}
	return call, result.Match
}

// parsePrimary parses an integer constant, identifier, or parenthesized
// expression, per spec.md §4.3.
func (p *Parser) parsePrimary() (ast.Expr, result.Outcome) {
	t := p.cur()
	switch t.Kind {
	case token.IntegerConstant:
		p.advance()
		return alloc(p, ast.Constant{Value: t.Int, Info: t.Info}), result.Match
	case token.Identifier:
		p.advance()
		return alloc(p, ast.Identifier{Info: t.Info}), result.Match
	case token.LParen:
		lparen := p.advance()
		inner, o := p.parseExpr(1)
		if o == result.NoMatch {
			p.unexpectedToken(p.cur())
			return nil, result.Invalid
		}
		if _, ok := p.expect(token.RParen); !ok {
			p.diags.Add(diag.UnmatchedParenthesis, lparen.Info)
			return inner, result.Invalid
		}
		return inner, o
	default:
		return nil, result.NoMatch
	}
}
