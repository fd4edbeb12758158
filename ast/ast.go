// Package ast declares the types used to represent the abstract syntax tree of
// subprogram compilation units.
//
// The tree is produced by an external parser and consumed read-only by the
// lowering engine.
package ast

// Node is a top-level node of a compilation unit.
//
// Node is one of the following types.
//
//	*ast.Declaration
//	*ast.Subprogram
type Node interface {
	// isNode ensures that only top-level nodes can be assigned to the ast.Node
	// interface.
	isNode()
}

// === [ Types ] ===============================================================

// BasicType is a primitive data type.
type BasicType uint8

// Primitive data types.
const (
	// Void denotes the absence of a type; valid only as the result type of a
	// prototype.
	Void BasicType = iota
	// Integer is a signed integer type.
	Integer
	// Float is a floating-point type.
	Float
)

// String returns the source representation of the type.
func (t BasicType) String() string {
	switch t {
	case Void:
		return "void"
	case Integer:
		return "Integer"
	case Float:
		return "Float"
	}
	return "BasicType(?)"
}

// Direction is the passing mode of a parameter.
type Direction uint8

// Parameter directions.
const (
	// In parameters are passed by value and are read-only in the callee.
	In Direction = iota
	// Out parameters are passed by reference.
	Out
	// InOut parameters are passed by reference.
	InOut
)

// String returns the source representation of the direction.
func (d Direction) String() string {
	switch d {
	case In:
		return "in"
	case Out:
		return "out"
	case InOut:
		return "in out"
	}
	return "Direction(?)"
}

// ByRef reports whether parameters of the given direction are passed by
// reference.
func (d Direction) ByRef() bool {
	return d != In
}

// === [ Declarations ] ========================================================

// Param is a formal parameter of a prototype.
type Param struct {
	// Parameter name.
	Name string
	// Parameter type.
	Type BasicType
	// Passing mode.
	Dir Direction
}

// Prototype is the interface of a subprogram.
type Prototype struct {
	// Subprogram name; unique within a compilation unit.
	Name string
	// Formal parameters in declaration order.
	Params []*Param
	// Result type; Void for procedures.
	Result BasicType
}

// HasResult reports whether the prototype declares a return type.
func (p *Prototype) HasResult() bool {
	return p.Result != Void
}

// VarDecl is a local variable declaration.
type VarDecl struct {
	// Variable name.
	Name string
	// Variable type.
	Type BasicType
}

// Declaration is a subprogram interface without a body; either a forward
// declaration or an external subprogram.
type Declaration struct {
	Prototype *Prototype
}

// Subprogram is a subprogram definition.
type Subprogram struct {
	// Subprogram interface.
	Prototype *Prototype
	// Local variable declarations.
	Locals []*VarDecl
	// Statements of the body, in order.
	Body []Stmt
}

func (*Declaration) isNode() {}
func (*Subprogram) isNode()  {}
