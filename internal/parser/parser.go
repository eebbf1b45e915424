// Package parser implements the token-list-to-AST stage of spec.md §4.3:
// a recursive-descent parser with precedence climbing for expressions and
// speculative (snapshot/restore) parsing wherever more than one statement
// or type form can start at the same token.
//
// Grounded on the teacher's Parser struct and checkpoint/restore dance in
// lookbusy1344/arm-emulator's parser/parser.go (it snapshots a token index
// before trying an instruction's alternate encodings and rewinds on
// no-match); generalized here to snapshot three resources at once (token
// cursor, diagnostic-list length, arena high-water mark) per spec.md §9's
// speculative-parsing contract, since a C statement or type alternative
// can both emit diagnostics and allocate AST nodes before failing.
package parser

import (
	"github.com/cymbtoolchain/cymb/internal/arena"
	"github.com/cymbtoolchain/cymb/internal/ast"
	"github.com/cymbtoolchain/cymb/internal/diag"
	"github.com/cymbtoolchain/cymb/internal/result"
	"github.com/cymbtoolchain/cymb/internal/token"
)

// Parser holds the read-only token stream, the diagnostic sink, and the
// arena every AST node is allocated from.
type Parser struct {
	toks  token.List
	pos   int
	diags *diag.List
	arena *arena.Arena
}

// New creates a Parser over toks, recording diagnostics into diags and
// allocating nodes out of a.
func New(toks token.List, diags *diag.List, a *arena.Arena) *Parser {
	return &Parser{toks: toks, diags: diags, arena: a}
}

// checkpoint is the three-resource snapshot spec.md §4.3 and §5 require
// before any speculative alternative.
type checkpoint struct {
	pos     int
	diagLen int
	mark    arena.Mark
}

func (p *Parser) snapshot() checkpoint {
	return checkpoint{pos: p.pos, diagLen: p.diags.Len(), mark: p.arena.Mark()}
}

func (p *Parser) restore(c checkpoint) {
	p.pos = c.pos
	p.diags.Truncate(c.diagLen)
	p.arena.Release(c.mark)
}

func (p *Parser) cur() token.Token {
	return p.toks.At(p.pos)
}

func (p *Parser) peek(n int) token.Token {
	return p.toks.At(p.pos + n)
}

func (p *Parser) advance() token.Token {
	t := p.cur()
	if t.Kind != token.EOF {
		p.pos++
	}
	return t
}

func (p *Parser) atEOF() bool {
	return p.cur().Kind == token.EOF
}

// expect consumes the current token if it matches kind, else records
// unexpected-token and returns ok=false without consuming.
func (p *Parser) expect(kind token.Kind) (token.Token, bool) {
	t := p.cur()
	if t.Kind != kind {
		p.unexpectedToken(t)
		return t, false
	}
	return p.advance(), true
}

func (p *Parser) unexpectedToken(t token.Token) {
	p.diags.Add(diag.UnexpectedToken, t.Info)
}

func alloc[T any](p *Parser, v T) *T {
	return arena.Alloc(p.arena, v)
}

// ParseProgram parses toks as a whole translation unit: a sequence of
// functions until end-of-input. Any leftover tokens after the last
// function make the whole parse invalid (spec.md §4.3 "Program").
func ParseProgram(toks token.List, diags *diag.List, a *arena.Arena) (*ast.Program, result.Outcome) {
	p := New(toks, diags, a)
	prog := alloc(p, ast.Program{})
	outcome := result.Match

	for !p.atEOF() {
		fn, o := p.parseFunction()
		switch o {
		case result.NoMatch:
			p.unexpectedToken(p.cur())
			return prog, result.Invalid
		case result.Invalid:
			outcome = result.Invalid
			if fn != nil {
				prog.Functions = append(prog.Functions, fn)
			}
		case result.Match:
			prog.Functions = append(prog.Functions, fn)
		}
	}
	return prog, outcome
}
