// Package ast defines the parser's output tree: a tagged union of node
// variants per spec.md §4.1, implemented as marker interfaces over
// concrete per-variant structs so that dispatch is an exhaustive type
// switch rather than a discriminant field plus shared-struct access
// (spec.md §9's explicit design note).
//
// Grounded on the teacher's instruction-operand variants
// (lookbusy1344/arm-emulator's parser/instructions.go defines one struct
// per addressing mode behind a common Operand interface); the same shape
// is regrown here over C's program/function/statement/expression/type
// grammar. Every node except the Program root carries the diag.Info of the
// token it was built from, so a later diagnostic pass can point back into source without a
// second position-tracking scheme.
package ast

import (
	"github.com/cymbtoolchain/cymb/internal/diag"
	"github.com/cymbtoolchain/cymb/internal/token"
)

// Node is the root of the AST tagged union.
type Node interface {
	node()
}

// Stmt is a statement-position node.
type Stmt interface {
	Node
	stmt()
}

// Expr is an expression-position node.
type Expr interface {
	Node
	expr()
}

// Type is a type-position node.
type Type interface {
	Node
	typ()
}

// Program is the root node: an ordered sequence of functions, in source
// order, until end-of-input (spec.md §4.3's program sub-parser).
type Program struct {
	Functions []*Function
}

func (*Program) node() {}

// Function is `<return-type> <identifier> ( <params> ) { <statements> }`.
// ParamTypes and ParamNames are parallel sequences reconstructed into
// FuncType, which carries only the parameter types (spec.md §4.1).
type Function struct {
	Name       *Identifier
	FuncType   *FunctionType
	ParamTypes []Type
	ParamNames []*Identifier
	Body       []Stmt
	Info       diag.Info
}

func (*Function) node() {}

// FunctionType is the reconstructed (return type, parameter types) shape
// spec.md §4.1 calls out as its own node distinct from Function.
type FunctionType struct {
	Return Type
	Params []Type
	Info   diag.Info
}

func (*FunctionType) node() {}
func (*FunctionType) typ()  {}

// BaseKind is the scalar base type of a BasicType node.
type BaseKind int

const (
	Void BaseKind = iota
	Char
	SignedChar
	UnsignedChar
	Short
	UnsignedShort
	Int
	UnsignedInt
	Long
	UnsignedLong
	LongLong
	UnsignedLongLong
	Float
	Double
	Bool
)

// BasicType is a scalar type name, with the const/static qualifiers
// spec.md §4.1 attaches directly to the type node rather than a separate
// qualifier list.
type BasicType struct {
	Kind     BaseKind
	IsConst  bool
	IsStatic bool
	Info     diag.Info
}

func (*BasicType) node() {}
func (*BasicType) typ()  {}

// Pointer wraps a pointee type with the qualifiers that attach to the
// pointer itself (as opposed to the pointee).
type Pointer struct {
	Pointee    Type
	IsConst    bool
	IsRestrict bool
	Info       diag.Info
}

func (*Pointer) node() {}
func (*Pointer) typ()  {}

// Declaration is `<type> <identifier> [= <expr>] ;`.
type Declaration struct {
	Name *Identifier
	Type Type
	Init Expr // nil if no initializer
	Info diag.Info
}

func (*Declaration) node() {}
func (*Declaration) stmt() {}

// While is `while ( <expr> ) <body>`, where the body is either a
// brace-delimited block or a single statement; Body holds its statements.
type While struct {
	Cond Expr
	Body []Stmt
	Info diag.Info
}

func (*While) node() {}
func (*While) stmt() {}

// Return is `return [<expr>] ;`.
type Return struct {
	Value Expr // nil for a bare return
	Info  diag.Info
}

func (*Return) node() {}
func (*Return) stmt() {}

// ExprStmt is an expression used in statement position, e.g. `x = 1;` or
// a bare call `f();`.
type ExprStmt struct {
	X    Expr
	Info diag.Info
}

func (*ExprStmt) node() {}
func (*ExprStmt) stmt() {}

// Identifier is a name reference. Its text is carried by Info.Hint rather
// than a separate field, per spec.md §4.1 ("identifier (name carried by
// diagnostic-info hint)"); it is reused wherever the grammar calls for a
// bare name (function names, declared names, member names), not only in
// expression position.
type Identifier struct {
	Info diag.Info
}

func (*Identifier) node() {}
func (*Identifier) expr() {}

// Name returns the identifier's text.
func (i *Identifier) Name() string {
	return i.Info.Hint
}

// Constant is an integer-constant literal.
type Constant struct {
	Value token.IntConstant
	Info  diag.Info
}

func (*Constant) node() {}
func (*Constant) expr() {}

// FunctionCall is `<callee> ( <args> )`.
type FunctionCall struct {
	Callee Expr
	Args   []Expr
	Info   diag.Info
}

func (*FunctionCall) node() {}
func (*FunctionCall) expr() {}

// ArraySubscript is `<name> [ <expr> ]`. The target is restricted to a
// bare identifier rather than a general expression, matching spec.md
// §4.1's literal "array-subscript (name, expression)" shape (narrower
// than C's grammar, which allows subscripting any pointer-valued
// expression; documented in DESIGN.md).
type ArraySubscript struct {
	Name  *Identifier
	Index Expr
	Info  diag.Info
}

func (*ArraySubscript) node() {}
func (*ArraySubscript) expr() {}

// MemberKind distinguishes `.` from `->` member access.
type MemberKind int

const (
	Dot MemberKind = iota
	Arrow
)

// MemberAccess is `<object> . <member>` or `<object> -> <member>`.
type MemberAccess struct {
	Kind   MemberKind
	Object Expr
	Member *Identifier
	Info   diag.Info
}

func (*MemberAccess) node() {}
func (*MemberAccess) expr() {}
