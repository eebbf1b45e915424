package parser

import (
	"github.com/cymbtoolchain/cymb/internal/ast"
	"github.com/cymbtoolchain/cymb/internal/diag"
	"github.com/cymbtoolchain/cymb/internal/result"
	"github.com/cymbtoolchain/cymb/internal/token"
)

// baseSpec is one accepted combination of base-type keyword tokens, in the
// order spec.md §4.3 lists them.
type baseSpec struct {
	kinds []token.Kind
	base  ast.BaseKind
}

var baseSpecs = []baseSpec{
	{[]token.Kind{token.KwVoid}, ast.Void},
	{[]token.Kind{token.KwBool}, ast.Bool},
	{[]token.Kind{token.KwChar}, ast.Char},
	{[]token.Kind{token.KwSigned, token.KwChar}, ast.SignedChar},
	{[]token.Kind{token.KwUnsigned, token.KwChar}, ast.UnsignedChar},
	{[]token.Kind{token.KwShort}, ast.Short},
	{[]token.Kind{token.KwUnsigned, token.KwShort}, ast.UnsignedShort},
	{[]token.Kind{token.KwInt}, ast.Int},
	{[]token.Kind{token.KwUnsigned, token.KwInt}, ast.UnsignedInt},
	{[]token.Kind{token.KwUnsigned}, ast.UnsignedInt},
	{[]token.Kind{token.KwLong}, ast.Long},
	{[]token.Kind{token.KwUnsigned, token.KwLong}, ast.UnsignedLong},
	{[]token.Kind{token.KwLong, token.KwLong}, ast.LongLong},
	{[]token.Kind{token.KwUnsigned, token.KwLong, token.KwLong}, ast.UnsignedLongLong},
	{[]token.Kind{token.KwFloat}, ast.Float},
	{[]token.Kind{token.KwDouble}, ast.Double},
}

// parseType implements spec.md §4.3's type sub-parser: leading const/static
// qualifiers, a base-type keyword combination, trailing const qualifiers,
// then zero or more trailing `*` (each optionally followed by const/
// restrict) wrapping the preceding type as a pointer.
func (p *Parser) parseType() (ast.Type, result.Outcome) {
	start := p.cur()
	if !start.Kind.IsKeyword() {
		return nil, result.NoMatch
	}

	isConst := false
	isStatic := false
	sawConst := false
	sawStatic := false
	for {
		switch p.cur().Kind {
		case token.KwConst:
			if sawConst {
				p.diags.Add(diag.MultipleConst, p.cur().Info)
				return nil, result.Invalid
			}
			sawConst, isConst = true, true
			p.advance()
			continue
		case token.KwStatic:
			if sawStatic {
				p.diags.Add(diag.MultipleStatic, p.cur().Info)
				return nil, result.Invalid
			}
			sawStatic, isStatic = true, true
			p.advance()
			continue
		}
		break
	}

	base, ok := p.matchBaseSpec()
	if !ok {
		if sawConst || sawStatic {
			p.unexpectedToken(p.cur())
			return nil, result.Invalid
		}
		return nil, result.NoMatch
	}

	for p.cur().Kind == token.KwConst {
		if sawConst {
			p.diags.Add(diag.MultipleConst, p.cur().Info)
			return nil, result.Invalid
		}
		sawConst, isConst = true, true
		p.advance()
	}

	var typ ast.Type = alloc(p, ast.BasicType{Kind: base, IsConst: isConst, IsStatic: isStatic, Info: start.Info})

	for p.cur().Kind == token.Star {
		starTok := p.advance()
		ptrConst := false
		ptrRestrict := false
		for {
			switch p.cur().Kind {
			case token.KwConst:
				if ptrConst {
					p.diags.Add(diag.MultipleConst, p.cur().Info)
					return nil, result.Invalid
				}
				ptrConst = true
				p.advance()
				continue
			case token.KwRestrict:
				if ptrRestrict {
					p.diags.Add(diag.MultipleRestrict, p.cur().Info)
					return nil, result.Invalid
				}
				ptrRestrict = true
				p.advance()
				continue
			}
			break
		}
		typ = alloc(p, ast.Pointer{Pointee: typ, IsConst: ptrConst, IsRestrict: ptrRestrict, Info: starTok.Info})
	}

	return typ, result.Match
}

// matchBaseSpec tries every accepted base-type keyword combination longest
// first (so "unsigned long long" isn't mistaken for "unsigned long"),
// consuming tokens only on a match.
func (p *Parser) matchBaseSpec() (ast.BaseKind, bool) {
	best := -1
	var bestBase ast.BaseKind
	for _, spec := range baseSpecs {
		if len(spec.kinds) <= best {
			continue
		}
		if p.matchesAt(spec.kinds) {
			best = len(spec.kinds)
			bestBase = spec.base
		}
	}
	if best < 0 {
		return 0, false
	}
	p.pos += best
	return bestBase, true
}

func (p *Parser) matchesAt(kinds []token.Kind) bool {
	for i, k := range kinds {
		if p.peek(i).Kind != k {
			return false
		}
	}
	return true
}
