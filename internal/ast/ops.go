package ast

import "github.com/cymbtoolchain/cymb/internal/diag"

// BinaryOpKind is one of the 29 binary/assignment operators spec.md §4.1
// closes the set over: arithmetic, bitwise, shift, comparison, logical,
// assignment, and compound assignment.
type BinaryOpKind int

const (
	Add BinaryOpKind = iota
	Sub
	Mul
	Div
	Mod

	BitAnd
	BitOr
	BitXor

	Shl
	Shr

	Lt
	Gt
	LtEq
	GtEq
	Eq
	NotEq

	LogAnd
	LogOr

	Assign
	AddAssign
	SubAssign
	MulAssign
	DivAssign
	ModAssign
	AndAssign
	OrAssign
	XorAssign
	ShlAssign
	ShrAssign
)

// BinaryOp is `<left> <op> <right>`.
type BinaryOp struct {
	Op    BinaryOpKind
	Left  Expr
	Right Expr
	Info  diag.Info
}

// UnaryOpKind is a prefix unary operator.
type UnaryOpKind int

const (
	PrefixInc UnaryOpKind = iota
	PrefixDec
	AddressOf
	Indirection
	UnaryPlus
	UnaryMinus
	BitNot
	LogNot
)

// UnaryOp is `<op><operand>`.
type UnaryOp struct {
	Op      UnaryOpKind
	Operand Expr
	Info    diag.Info
}

// PostfixOpKind is a postfix increment/decrement operator.
type PostfixOpKind int

const (
	PostfixInc PostfixOpKind = iota
	PostfixDec
)

// PostfixOp is `<operand><op>`.
type PostfixOp struct {
	Op      PostfixOpKind
	Operand Expr
	Info    diag.Info
}

func (*BinaryOp) node()  {}
func (*BinaryOp) expr()  {}
func (*UnaryOp) node()   {}
func (*UnaryOp) expr()   {}
func (*PostfixOp) node() {}
func (*PostfixOp) expr() {}
