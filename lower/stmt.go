package lower

import (
	"fmt"

	"github.com/llir/llvm/ir/types"
	"github.com/mewspring/toyada/ast"
	"github.com/pkg/errors"
)

// lowerStmt lowers the statement to LLVM IR, emitting to f.
func (fgen *funcGen) lowerStmt(old ast.Stmt) error {
	switch old := old.(type) {
	case *ast.ReturnStmt:
		return fgen.lowerReturnStmt(old)
	case *ast.AssignStmt:
		return fgen.lowerAssignStmt(old)
	case *ast.CallStmt:
		entry, err := fgen.gen.lookupFunc(old.Name)
		if err != nil {
			return err
		}
		// Discard result.
		_, err = fgen.lowerCall(entry, old.Args)
		return err
	default:
		panic(fmt.Errorf("support for statement %T not yet implemented", old))
	}
}

// lowerReturnStmt lowers the return statement to LLVM IR, emitting to f.
func (fgen *funcGen) lowerReturnStmt(old *ast.ReturnStmt) error {
	fgen.returned = true
	if old.Result == nil {
		if fgen.sig.HasResult() {
			return errors.Wrapf(ErrMissingReturnValue, "return without value in function %q", fgen.f.Name())
		}
		// void return.
		fgen.cur.NewRet(nil)
		return nil
	}
	if !fgen.sig.HasResult() {
		return errors.Wrapf(ErrUnexpectedReturnValue, "return with value in procedure %q", fgen.f.Name())
	}
	x, err := fgen.lowerExpr(old.Result)
	if err != nil {
		return errors.WithStack(err)
	}
	if want := irBasicType(fgen.sig.Result); !types.Equal(x.Type(), want) {
		return errors.Wrapf(ErrTypeMismatch, "return value of type %v in function %q returning %v", x.Type(), fgen.f.Name(), want)
	}
	fgen.cur.NewRet(x)
	return nil
}

// lowerAssignStmt lowers the assignment statement to LLVM IR, emitting to f.
func (fgen *funcGen) lowerAssignStmt(old *ast.AssignStmt) error {
	dst, err := fgen.lookup(old.Dest)
	if err != nil {
		return err
	}
	if !dst.addressable {
		return errors.Wrapf(ErrImmutableAssignment, "assignment to \"in\" parameter %q", old.Dest)
	}
	x, err := fgen.lowerExpr(old.Value)
	if err != nil {
		return errors.WithStack(err)
	}
	if !types.Equal(x.Type(), dst.typ) {
		return errors.Wrapf(ErrTypeMismatch, "assignment of %v value to %q of type %v", x.Type(), old.Dest, dst.typ)
	}
	fgen.cur.NewStore(x, dst.v)
	return nil
}
