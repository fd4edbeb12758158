package lower

import (
	"fmt"

	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"
	"github.com/mewspring/toyada/ast"
	"github.com/pkg/errors"
)

// lowerExpr lowers the expression to LLVM IR, emitting to f.
func (fgen *funcGen) lowerExpr(old ast.Expr) (value.Value, error) {
	switch old := old.(type) {
	case *ast.IntLit:
		return constant.NewInt(irIntType, int64(old.Value)), nil
	case *ast.FloatLit:
		return constant.NewFloat(irFloatType, float64(old.Value)), nil
	case *ast.Ident:
		return fgen.lowerIdent(old)
	case *ast.BinaryExpr:
		return fgen.lowerBinaryExpr(old)
	case *ast.CallExpr:
		return fgen.lowerCallExpr(old)
	default:
		panic(fmt.Errorf("support for expression %T not yet implemented", old))
	}
}

// lowerIdent lowers the variable reference to LLVM IR, emitting to f.
func (fgen *funcGen) lowerIdent(old *ast.Ident) (value.Value, error) {
	b, err := fgen.lookup(old.Name)
	if err != nil {
		return nil, err
	}
	if b.addressable {
		return fgen.cur.NewLoad(b.typ, b.v), nil
	}
	return b.v, nil
}

// lowerBinaryExpr lowers the binary expression to LLVM IR, emitting to f. The
// left operand is evaluated before the right operand.
func (fgen *funcGen) lowerBinaryExpr(old *ast.BinaryExpr) (value.Value, error) {
	x, err := fgen.lowerExpr(old.X)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	y, err := fgen.lowerExpr(old.Y)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	t := x.Type()
	switch old.Op {
	case ast.Add, ast.Sub, ast.Mul, ast.Div:
		// valid operator.
	default:
		return nil, errors.Wrapf(ErrUnimplementedOperator, "support for '%s' binary expression not yet implemented", old.Op)
	}
	if !types.Equal(t, y.Type()) {
		return nil, errors.Wrapf(ErrTypeMismatch, "mismatched operand types to '%s' binary expression; %v and %v", old.Op, t, y.Type())
	}
	switch {
	case isIntType(t):
		switch old.Op {
		case ast.Add: // +
			return fgen.cur.NewAdd(x, y), nil
		case ast.Sub: // -
			return fgen.cur.NewSub(x, y), nil
		case ast.Mul: // *
			return fgen.cur.NewMul(x, y), nil
		default: // /
			// Integer is signed.
			return fgen.cur.NewSDiv(x, y), nil
		}
	case isFloatType(t):
		switch old.Op {
		case ast.Add: // +
			return fgen.cur.NewFAdd(x, y), nil
		case ast.Sub: // -
			return fgen.cur.NewFSub(x, y), nil
		case ast.Mul: // *
			return fgen.cur.NewFMul(x, y), nil
		default: // /
			return fgen.cur.NewFDiv(x, y), nil
		}
	default:
		return nil, errors.Wrapf(ErrTypeMismatch, "invalid operand type to '%s' binary expression; expected integer or floating-point scalar type, got %v", old.Op, t)
	}
}

// lowerCallExpr lowers the function call expression to LLVM IR, emitting to
// f.
func (fgen *funcGen) lowerCallExpr(old *ast.CallExpr) (value.Value, error) {
	entry, err := fgen.gen.lookupFunc(old.Name)
	if err != nil {
		return nil, err
	}
	if !entry.proto.HasResult() {
		return nil, errors.Wrapf(ErrVoidUsedAsValue, "procedure %q called in expression", old.Name)
	}
	return fgen.lowerCall(entry, old.Args)
}

// --- [ Calls ] ---------------------------------------------------------------

// lowerCall lowers a call to the registered subprogram with the given actual
// arguments, emitting to f.
func (fgen *funcGen) lowerCall(callee *funcEntry, oldArgs []ast.Expr) (*ir.InstCall, error) {
	formals := callee.proto.Params
	if len(oldArgs) != len(formals) {
		return nil, errors.Wrapf(ErrArgumentCount, "call to %q with %d arguments; expected %d", callee.proto.Name, len(oldArgs), len(formals))
	}
	args := make([]value.Value, 0, len(formals))
	for i, formal := range formals {
		arg, err := fgen.lowerArg(formal, oldArgs[i])
		if err != nil {
			return nil, errors.WithStack(err)
		}
		args = append(args, arg)
	}
	return fgen.cur.NewCall(callee.f, args...), nil
}

// lowerArg lowers the actual argument of the given formal parameter. Arguments
// of "out" and "in out" parameters are passed by their storage location.
func (fgen *funcGen) lowerArg(formal *ast.Param, old ast.Expr) (value.Value, error) {
	if !formal.Dir.ByRef() {
		arg, err := fgen.lowerExpr(old)
		if err != nil {
			return nil, err
		}
		if want := irBasicType(formal.Type); !types.Equal(arg.Type(), want) {
			return nil, errors.Wrapf(ErrTypeMismatch, "argument of type %v to parameter %q of type %v", arg.Type(), formal.Name, want)
		}
		return arg, nil
	}
	ident, ok := old.(*ast.Ident)
	if !ok {
		return nil, errors.Wrapf(ErrInvalidReferenceArgument, "%q parameter %q requires a variable argument, got %T", formal.Dir, formal.Name, old)
	}
	b, err := fgen.lookup(ident.Name)
	if err != nil {
		return nil, err
	}
	if !b.addressable {
		return nil, errors.Wrapf(ErrInvalidReferenceArgument, "read-only variable %q passed to %q parameter %q", ident.Name, formal.Dir, formal.Name)
	}
	if want := irBasicType(formal.Type); !types.Equal(b.typ, want) {
		return nil, errors.Wrapf(ErrTypeMismatch, "variable %q of type %v passed to parameter %q of type %v", ident.Name, b.typ, formal.Name, want)
	}
	return b.v, nil
}
