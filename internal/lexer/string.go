package lexer

import (
	"github.com/cymbtoolchain/cymb/internal/diag"
	"github.com/cymbtoolchain/cymb/internal/result"
	"github.com/cymbtoolchain/cymb/internal/source"
	"github.com/cymbtoolchain/cymb/internal/token"
)

// isPrintable matches the byte range spec.md §4.2 allows verbatim inside a
// string before escape handling (deferred per spec.md §9 open question b:
// only the lexical shape of "..." is recognized, "\"" merely fails to
// terminate the string).
func isPrintable(ch byte) bool {
	return ch >= 0x20 && ch < 0x7f
}

// lexString implements spec.md §4.2's string sub-lexer: a sequence between
// '"' and '"' on a single logical line. A backslash followed by any
// character (including a quote) is passed through without interpretation
// beyond "doesn't terminate the string" — escape sequences are not
// decoded (spec.md §9, open question b).
func lexString(r source.Reader, diags *diag.List) (token.Token, source.Reader, result.Outcome) {
	if r.Current() != '"' {
		return token.Token{}, r, result.NoMatch
	}
	start := r
	pos := r.Pos()
	line := r.CurrentLine()
	r.PopOne() // opening quote

	outcome := result.Match
	for {
		ch := r.Current()
		switch {
		case ch == 0 || ch == '\n':
			diags.Add(diag.UnfinishedString, diag.Info{Pos: pos, Line: line, Hint: r.Slice(start)})
			outcome = result.Invalid
			goto done
		case ch == '"':
			r.PopOne()
			goto done
		case ch == '\\':
			r.PopOne()
			if r.Current() != 0 {
				r.PopOne()
			}
		case !isPrintable(ch):
			badPos := r.Pos()
			badLine := r.CurrentLine()
			r.PopOne()
			diags.Add(diag.InvalidStringCharacter, diag.Info{Pos: badPos, Line: badLine, Hint: string(ch)})
			outcome = result.Invalid
		default:
			r.PopOne()
		}
	}
done:
	tok := token.Token{Kind: token.StringConstant, Info: diag.Info{Pos: pos, Line: line, Hint: r.Slice(start)}}
	return tok, r, outcome
}

// lexCharConstant implements spec.md §4.2's character-constant sub-lexer:
// a single byte between ' and ', becoming an int-typed integer constant.
// Empty, unterminated, or multi-byte bodies are invalid-character-constant.
func lexCharConstant(r source.Reader, diags *diag.List) (token.Token, source.Reader, result.Outcome) {
	if r.Current() != '\'' {
		return token.Token{}, r, result.NoMatch
	}
	start := r
	pos := r.Pos()
	line := r.CurrentLine()
	r.PopOne() // opening quote

	var body []byte
	invalid := false
	for r.Current() != '\'' {
		ch := r.Current()
		if ch == 0 || ch == '\n' {
			invalid = true
			break
		}
		if ch == '\\' {
			r.PopOne()
			if r.Current() != 0 {
				body = append(body, r.PopOne())
			}
			continue
		}
		body = append(body, r.PopOne())
	}
	if !invalid && r.Current() == '\'' {
		r.PopOne() // closing quote
	} else {
		invalid = true
	}
	if len(body) != 1 {
		invalid = true
	}

	hint := r.Slice(start)
	if invalid {
		diags.Add(diag.InvalidCharacterConstant, diag.Info{Pos: pos, Line: line, Hint: hint})
		tok := token.Token{Kind: token.IntegerConstant, Info: diag.Info{Pos: pos, Line: line, Hint: hint}}
		return tok, r, result.Invalid
	}

	tok := token.Token{
		Kind: token.IntegerConstant,
		Info: diag.Info{Pos: pos, Line: line, Hint: hint},
		Int:  token.IntConstant{Type: token.TInt, Value: uint64(body[0])},
	}
	return tok, r, result.Match
}
