package ast

// Stmt is a statement.
//
// Stmt is one of the following types.
//
//	*ast.ReturnStmt
//	*ast.AssignStmt
//	*ast.CallStmt
type Stmt interface {
	// isStmt ensures that only statements can be assigned to the ast.Stmt
	// interface.
	isStmt()
}

// ReturnStmt is a return statement.
type ReturnStmt struct {
	// Returned value; nil if the statement returns no value.
	Result Expr
}

// AssignStmt is an assignment statement.
//
//	Dest := Value;
type AssignStmt struct {
	// Name of the assigned variable.
	Dest string
	// Assigned value.
	Value Expr
}

// CallStmt is a procedure call statement.
//
//	Name(Args);
type CallStmt struct {
	// Callee name.
	Name string
	// Actual arguments.
	Args []Expr
}

func (*ReturnStmt) isStmt() {}
func (*AssignStmt) isStmt() {}
func (*CallStmt) isStmt()   {}
