package lower

import (
	"github.com/mewspring/toyada/ast"
	"github.com/pkg/errors"
)

// lowerSubprogram lowers the subprogram definition to LLVM IR, emitting to m.
func (gen *Generator) lowerSubprogram(sp *ast.Subprogram) error {
	name := sp.Prototype.Name
	entry := gen.indexDef(sp.Prototype)
	if entry.defined {
		return errors.Wrapf(ErrRedefinition, "subprogram %q already defined", name)
	}
	if len(sp.Prototype.Params) != len(entry.proto.Params) {
		return errors.Wrapf(ErrSignatureMismatch, "subprogram %q defined with %d parameters; declared with %d", name, len(sp.Prototype.Params), len(entry.proto.Params))
	}
	entry.defined = true
	// Create LLVM IR function generator.
	fgen := gen.newFuncGen(entry)
	// The entry block is left unnamed, as labels share the local namespace of
	// parameters and variables.
	fgen.cur = fgen.f.NewBlock("")
	if err := fgen.buildScope(sp.Prototype.Params, sp.Locals); err != nil {
		return err
	}
	return fgen.lowerFuncBody(sp.Body)
}

// buildScope binds the parameters and local variables of the function,
// emitting a zero-initialized stack slot for each local variable to the entry
// block.
//
// Parameter names are taken from params while passing modes are those of the
// registered signature. The IR parameters are renamed to match, since a forward
// declaration may have named them differently.
func (fgen *funcGen) buildScope(params []*ast.Param, locals []*ast.VarDecl) error {
	for i, param := range params {
		formal := fgen.sig.Params[i]
		fgen.f.Params[i].SetName(param.Name)
		b := &binding{
			v:           fgen.f.Params[i],
			typ:         irBasicType(formal.Type),
			addressable: formal.Dir.ByRef(),
		}
		if err := fgen.bind(param.Name, b); err != nil {
			return err
		}
	}
	for _, local := range locals {
		typ := irBasicType(local.Type)
		slot := fgen.cur.NewAlloca(typ)
		slot.SetName(local.Name)
		fgen.cur.NewStore(zeroValue(local.Type), slot)
		b := &binding{
			v:           slot,
			typ:         typ,
			addressable: true,
		}
		if err := fgen.bind(local.Name, b); err != nil {
			return err
		}
	}
	return nil
}

// lowerFuncBody lowers the statements of the function body to LLVM IR,
// emitting to f. A void return is emitted if the body falls off the end.
func (fgen *funcGen) lowerFuncBody(body []ast.Stmt) error {
	for _, stmt := range body {
		if fgen.returned {
			return errors.Wrapf(ErrUnreachableCode, "statement after return in %q", fgen.f.Name())
		}
		if err := fgen.lowerStmt(stmt); err != nil {
			return err
		}
	}
	if fgen.returned {
		return nil
	}
	if fgen.sig.HasResult() {
		return errors.Wrapf(ErrMissingReturnValue, "function %q may reach end of body without returning a %v value", fgen.f.Name(), fgen.sig.Result)
	}
	// Procedures need not end with a return statement.
	fgen.cur.NewRet(nil)
	return nil
}
