package ast

// Expr is an expression.
//
// Expr is one of the following types.
//
//	*ast.IntLit
//	*ast.FloatLit
//	*ast.Ident
//	*ast.BinaryExpr
//	*ast.CallExpr
type Expr interface {
	// isExpr ensures that only expressions can be assigned to the ast.Expr
	// interface.
	isExpr()
}

// IntLit is an integer literal.
type IntLit struct {
	Value int32
}

// FloatLit is a floating-point literal.
type FloatLit struct {
	Value float32
}

// Ident is a variable reference.
type Ident struct {
	Name string
}

// BinaryOp is the symbol of a binary operator.
type BinaryOp string

// Arithmetic operators.
const (
	Add BinaryOp = "+"
	Sub BinaryOp = "-"
	Mul BinaryOp = "*"
	Div BinaryOp = "/"
)

// BinaryExpr is a binary expression.
//
//	X Op Y
type BinaryExpr struct {
	Op BinaryOp
	X  Expr
	Y  Expr
}

// CallExpr is a function call expression.
type CallExpr struct {
	// Callee name.
	Name string
	// Actual arguments.
	Args []Expr
}

func (*IntLit) isExpr()     {}
func (*FloatLit) isExpr()   {}
func (*Ident) isExpr()      {}
func (*BinaryExpr) isExpr() {}
func (*CallExpr) isExpr()   {}
