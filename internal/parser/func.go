package parser

import (
	"github.com/cymbtoolchain/cymb/internal/ast"
	"github.com/cymbtoolchain/cymb/internal/result"
	"github.com/cymbtoolchain/cymb/internal/token"
)

// parseFunction implements spec.md §4.3's function grammar:
// `<return-type> <identifier> ( <params> ) { <statements> }`, where params
// is empty, exactly `void`, or a comma-separated `<type> <identifier>`
// list. The parameter types and names become parallel sequences, plus a
// reconstructed FunctionType carrying only the types.
func (p *Parser) parseFunction() (*ast.Function, result.Outcome) {
	cp := p.snapshot()

	retType, to := p.parseType()
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

	if _, ok := p.expect(token.LParen); !ok {
		return nil, result.Invalid
	}

	paramTypes, paramNames, po := p.parseParams()
	if po == result.Invalid {
		return nil, result.Invalid
	}

	if _, ok := p.expect(token.RParen); !ok {
		return nil, result.Invalid
	}

	fnType := alloc(p, ast.FunctionType{Return: retType, Params: paramTypes, Info: nameTok.Info})

	body, bo := p.parseBlock()
	fn := alloc(p, ast.Function{
		Name:       name,
		FuncType:   fnType,
		ParamTypes: paramTypes,
		ParamNames: paramNames,
		Body:       body,
		Info:       nameTok.Info,
	})
	if bo != result.Match {
		return fn, result.Invalid
	}
	return fn, result.Match
}

// parseParams parses the parameter list between the function's parentheses:
// empty, exactly `void`, or a comma-separated `<type> <identifier>` list.
func (p *Parser) parseParams() ([]ast.Type, []*ast.Identifier, result.Outcome) {
	if p.cur().Kind == token.RParen {
		return nil, nil, result.Match
	}
	if p.cur().Kind == token.KwVoid && p.peek(1).Kind == token.RParen {
		p.advance()
		return nil, nil, result.Match
	}

	var types []ast.Type
	var names []*ast.Identifier
	for {
		typ, to := p.parseType()
		if to != result.Match {
			p.unexpectedToken(p.cur())
			return types, names, result.Invalid
		}
		nameTok, ok := p.expect(token.Identifier)
		if !ok {
			return types, names, result.Invalid
		}
		types = append(types, typ)
		names = append(names, alloc(p, ast.Identifier{Info: nameTok.Info}))
		if p.cur().Kind != token.Comma {
			break
		}
		p.advance()
	}
	return types, names, result.Match
}
