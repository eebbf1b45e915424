// Package lexer implements the reader-to-token-list stage of spec.md §4.2:
// a fixed-order dispatch over sub-lexers (string, character constant,
// punctuator, integer constant, identifier/keyword), each returning
// match/no-match/invalid.
//
// Grounded on the teacher's Lexer.NextToken single big switch
// (lookbusy1344/arm-emulator's parser/lexer.go), restructured into
// independent sub-lexer functions per spec.md's explicit contract that each
// sub-lexer commit or roll back the cursor on its own — the teacher's
// switch commits unconditionally because ARM-assembly tokens never need a
// no-match rollback (every character belongs to exactly one case), whereas
// C's sub-lexers are tried in a specified order and must leave the reader
// untouched on no-match.
package lexer

import (
	"github.com/cymbtoolchain/cymb/internal/diag"
	"github.com/cymbtoolchain/cymb/internal/result"
	"github.com/cymbtoolchain/cymb/internal/source"
	"github.com/cymbtoolchain/cymb/internal/token"
)

// subLexer attempts to lex one token starting at r. On NoMatch it must
// return r unchanged. On Match or Invalid it returns the reader advanced
// past the consumed text.
type subLexer func(r source.Reader, diags *diag.List) (token.Token, source.Reader, result.Outcome)

// order is the fixed dispatch order spec.md §4.2 mandates.
var order = []subLexer{
	lexString,
	lexCharConstant,
	lexPunctuator,
	lexIntegerConstant,
	lexIdentifier,
}

// Lex tokenizes src and returns the resulting token list plus a validity
// flag: false if any diagnostic was raised while lexing. The token list is
// still fully populated for downstream error recovery even when invalid,
// per spec.md §4.2.
func Lex(src string, tabWidth int, diags *diag.List) (token.List, bool) {
	r := source.New(src, tabWidth)
	var toks []token.Token
	valid := true

	for {
		r.SkipSpaces()
		if r.AtEOF() {
			toks = append(toks, token.Token{Kind: token.EOF, Info: diag.Info{Pos: r.Pos(), Line: r.CurrentLine()}})
			break
		}

		matched := false
		for _, sub := range order {
			tok, next, outcome := sub(r, diags)
			switch outcome {
			case result.Match:
				toks = append(toks, tok)
				r = next
				matched = true
			case result.Invalid:
				toks = append(toks, tok)
				r = next
				matched = true
				valid = false
			case result.NoMatch:
				continue
			}
			if matched {
				break
			}
		}

		if !matched {
			pos := r.Pos()
			line := r.CurrentLine()
			ch := r.PopOne()
			diags.Add(diag.UnknownToken, diag.Info{Pos: pos, Line: line, Hint: string(ch)})
			valid = false
		}
	}

	return token.List{Tokens: toks}, valid
}

func isIdentStart(ch byte) bool {
	return ch == '_' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isIdentCont(ch byte) bool {
	return isIdentStart(ch) || (ch >= '0' && ch <= '9')
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

// lexIdentifier implements spec.md §4.2's identifier/keyword sub-lexer: an
// identifier is [A-Za-z_][A-Za-z0-9_]*, then its exact-length slice is
// looked up in the keyword table.
func lexIdentifier(r source.Reader, _ *diag.List) (token.Token, source.Reader, result.Outcome) {
	if !isIdentStart(r.Current()) {
		return token.Token{}, r, result.NoMatch
	}
	start := r
	pos := r.Pos()
	line := r.CurrentLine()
	for isIdentCont(r.Current()) {
		r.PopOne()
	}
	text := r.Slice(start)
	kind := token.Identifier
	if kw, ok := token.LookupKeyword(text); ok {
		kind = kw
	}
	tok := token.Token{Kind: kind, Info: diag.Info{Pos: pos, Line: line, Hint: text}}
	return tok, r, result.Match
}

// lexPunctuator implements spec.md §4.2's punctuator sub-lexer: longest
// match from the static table wins (maximal munch).
func lexPunctuator(r source.Reader, _ *diag.List) (token.Token, source.Reader, result.Outcome) {
	start := r
	pos := r.Pos()
	line := r.CurrentLine()
	lookahead := r.Lookahead(3)
	kind, n, ok := token.MatchPunctuator(lookahead)
	if !ok {
		return token.Token{}, r, result.NoMatch
	}
	r.SkipN(n)
	tok := token.Token{Kind: kind, Info: diag.Info{Pos: pos, Line: line, Hint: r.Slice(start)}}
	return tok, r, result.Match
}
