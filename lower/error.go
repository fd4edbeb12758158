package lower

import "github.com/pkg/errors"

// Fatal lowering errors. Each aborts the compilation unit; use errors.Is to
// identify the class of an error returned by the generator.
var (
	// ErrUnknownSymbol is returned when a call references an unregistered
	// subprogram.
	ErrUnknownSymbol = errors.New("unknown symbol")
	// ErrUndefinedVariable is returned when a name is not bound in the
	// variable environment of the current subprogram.
	ErrUndefinedVariable = errors.New("undefined variable")
	// ErrImmutableAssignment is returned when assigning to an "in" parameter.
	ErrImmutableAssignment = errors.New("assignment to read-only variable")
	// ErrInvalidReferenceArgument is returned when the actual argument of an
	// "out" or "in out" parameter is not an addressable variable.
	ErrInvalidReferenceArgument = errors.New("invalid reference argument")
	// ErrUnreachableCode is returned when a statement follows a return
	// statement.
	ErrUnreachableCode = errors.New("unreachable code after return")
	// ErrUnimplementedOperator is returned for binary operators other than
	// '+', '-', '*' and '/'.
	ErrUnimplementedOperator = errors.New("unimplemented operator")
	// ErrVoidUsedAsValue is returned when a procedure is called in an
	// expression.
	ErrVoidUsedAsValue = errors.New("procedure used as value")
	// ErrDuplicateBinding is returned when a parameter or local variable name
	// is declared more than once in a subprogram.
	ErrDuplicateBinding = errors.New("duplicate binding")
	// ErrMissingReturnValue is returned when a function returns, or falls off
	// the end of its body, without a value.
	ErrMissingReturnValue = errors.New("missing return value")
	// ErrUnexpectedReturnValue is returned when a procedure returns a value.
	ErrUnexpectedReturnValue = errors.New("unexpected return value")
	// ErrArgumentCount is returned when the number of actual arguments of a
	// call differs from the number of formal parameters.
	ErrArgumentCount = errors.New("argument count mismatch")
	// ErrRedefinition is returned when a subprogram body is given twice.
	ErrRedefinition = errors.New("subprogram redefinition")
	// ErrSignatureMismatch is returned when a definition does not match the
	// parameter count of its earlier declaration.
	ErrSignatureMismatch = errors.New("signature mismatch")
	// ErrTypeMismatch is returned when operand or assignment types differ.
	ErrTypeMismatch = errors.New("type mismatch")
)

// fail records err as the fatal error of the compilation unit and reports it
// to the error handler.
func (gen *Generator) fail(err error) error {
	gen.err = err
	gen.eh(err)
	return err
}
