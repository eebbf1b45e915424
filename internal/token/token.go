// Package token defines the lexical token model of spec.md §3: a tagged
// token kind, the keyword/punctuator tables the lexer dispatches through,
// and the integer-constant payload.
//
// Grounded on the teacher's parser.TokenType/parser.Token (lookbusy1344/
// arm-emulator's parser/lexer.go): the String() table keyed by a map and
// the single flat Token struct are kept (here Kind/Info/Int, with the
// literal text and position carried together in Info); the
// token set itself is regrown from ARM-assembly tokens (registers,
// directives, condition codes) into the full C token set spec.md §3
// demands, with keyword kinds forming one contiguous block so IsKeyword is
// a range test.
package token

import (
	"fmt"

	"github.com/cymbtoolchain/cymb/internal/diag"
)

// Kind is a token's lexical category.
type Kind int

const (
	EOF Kind = iota
	Identifier

	keywordsStart
	KwAlignas
	KwAlignof
	KwAtomic
	KwAuto
	KwBitInt
	KwBool
	KwBreak
	KwCase
	KwChar
	KwComplex
	KwConst
	KwConstexpr
	KwContinue
	KwDefault
	KwDo
	KwDouble
	KwElse
	KwEnum
	KwExtern
	KwFalse
	KwFloat
	KwFor
	KwGeneric
	KwGoto
	KwIf
	KwImaginary
	KwInline
	KwInt
	KwLong
	KwNoreturn
	KwNullptr
	KwRegister
	KwRestrict
	KwReturn
	KwShort
	KwSigned
	KwSizeof
	KwStatic
	KwStaticAssert
	KwStruct
	KwSwitch
	KwThreadLocal
	KwTrue
	KwTypedef
	KwTypeof
	KwTypeofUnqual
	KwUnion
	KwUnsigned
	KwVoid
	KwVolatile
	KwWhile
	keywordsEnd

	IntegerConstant
	StringConstant

	// Brackets (the six bracket pairs of spec.md §3).
	LParen
	RParen
	LBracket
	RBracket
	LBrace
	RBrace

	// Punctuation.
	Comma
	Semicolon
	Colon
	Question
	Dot
	Arrow
	Ellipsis
	Tilde
	Bang

	// Arithmetic / bitwise / shift operators.
	Plus
	Minus
	Star
	Slash
	Percent
	Amp
	Pipe
	Caret
	LShift
	RShift

	// Comparison.
	Less
	Greater
	LessEqual
	GreaterEqual
	EqualEqual
	BangEqual

	// Logical.
	AmpAmp
	PipePipe

	// Assignment / compound assignment.
	Equal
	PlusEqual
	MinusEqual
	StarEqual
	SlashEqual
	PercentEqual
	AmpEqual
	PipeEqual
	CaretEqual
	LShiftEqual
	RShiftEqual

	// Increment / decrement.
	PlusPlus
	MinusMinus
)

// IsKeyword reports whether k is one of the contiguous reserved-word kinds.
func (k Kind) IsKeyword() bool {
	return k > keywordsStart && k < keywordsEnd
}

var kindNames = map[Kind]string{
	EOF:        "EOF",
	Identifier: "identifier",

	IntegerConstant: "integer-constant",
	StringConstant:  "string",

	LParen: "(", RParen: ")",
	LBracket: "[", RBracket: "]",
	LBrace: "{", RBrace: "}",

	Comma: ",", Semicolon: ";", Colon: ":", Question: "?",
	Dot: ".", Arrow: "->", Ellipsis: "...", Tilde: "~", Bang: "!",

	Plus: "+", Minus: "-", Star: "*", Slash: "/", Percent: "%",
	Amp: "&", Pipe: "|", Caret: "^", LShift: "<<", RShift: ">>",

	Less: "<", Greater: ">", LessEqual: "<=", GreaterEqual: ">=",
	EqualEqual: "==", BangEqual: "!=",

	AmpAmp: "&&", PipePipe: "||",

	Equal: "=", PlusEqual: "+=", MinusEqual: "-=", StarEqual: "*=",
	SlashEqual: "/=", PercentEqual: "%=", AmpEqual: "&=", PipeEqual: "|=",
	CaretEqual: "^=", LShiftEqual: "<<=", RShiftEqual: ">>=",

	PlusPlus: "++", MinusMinus: "--",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	if name, ok := keywordText[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// PromotedType is the integer-constant type an integer literal is promoted
// to, per spec.md §4.2.
type PromotedType int

const (
	TInt PromotedType = iota
	TLong
	TLongLong
	TUnsignedInt
	TUnsignedLong
	TUnsignedLongLong
)

func (t PromotedType) String() string {
	switch t {
	case TInt:
		return "int"
	case TLong:
		return "long"
	case TLongLong:
		return "long long"
	case TUnsignedInt:
		return "unsigned int"
	case TUnsignedLong:
		return "unsigned long"
	case TUnsignedLongLong:
		return "unsigned long long"
	default:
		return "?"
	}
}

// IntConstant is the payload carried by an integer-constant token.
type IntConstant struct {
	Type  PromotedType
	Value uint64
}

// Token is one lexical unit: a kind, diagnostic info (position, source
// line, and the exact hint text the token spans), and — only meaningful
// when Kind == IntegerConstant — the promoted integer payload.
type Token struct {
	Kind Kind
	Info diag.Info
	Int  IntConstant
}

// List is the ordered, randomly-indexable token sequence the lexer hands
// to the parser.
type List struct {
	Tokens []Token
}

// Len returns the number of tokens, including the trailing EOF.
func (l List) Len() int {
	return len(l.Tokens)
}

// At returns the token at index i. An index past the end returns the final
// (EOF) token, so lookahead past the end of input behaves like an infinite
// stream of EOF tokens instead of panicking; a negative index returns the
// first token.
func (l List) At(i int) Token {
	if i < 0 {
		i = 0
	}
	if i >= len(l.Tokens) {
		return l.Tokens[len(l.Tokens)-1]
	}
	return l.Tokens[i]
}
