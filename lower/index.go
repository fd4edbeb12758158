package lower

import (
	"github.com/llir/llvm/ir"
	"github.com/mewspring/toyada/ast"
	"github.com/pkg/errors"
	"github.com/rickypai/natsort"
)

// funcEntry is an entry of the function registry.
type funcEntry struct {
	// LLVM IR function declaration or definition.
	f *ir.Func
	// Prototype of the first declaration or definition of the subprogram. It
	// fixes the signature of every call site and of a later definition.
	proto *ast.Prototype
	// defined reports whether a body has been lowered into f.
	defined bool
}

// Func returns the LLVM IR function registered for the given subprogram name.
func (gen *Generator) Func(name string) (*ir.Func, error) {
	entry, err := gen.lookupFunc(name)
	if err != nil {
		return nil, err
	}
	return entry.f, nil
}

// Externals returns the names of subprograms which have been declared but not
// defined, in natural sort order.
func (gen *Generator) Externals() []string {
	var names []string
	for name, entry := range gen.funcs {
		if !entry.defined {
			names = append(names, name)
		}
	}
	natsort.Strings(names)
	return names
}

// lookupFunc returns the function registry entry of the given subprogram.
func (gen *Generator) lookupFunc(name string) (*funcEntry, error) {
	entry, ok := gen.funcs[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownSymbol, "unable to locate subprogram %q", name)
	}
	return entry, nil
}

// --- [ Function registry ] ---------------------------------------------------

// indexDecl creates a scaffolding IR function declaration (without body but
// with type) of the given prototype. Redeclaring a registered name leaves the
// existing entry untouched.
func (gen *Generator) indexDecl(proto *ast.Prototype) {
	if _, ok := gen.funcs[proto.Name]; ok {
		return
	}
	gen.newFuncEntry(proto)
}

// indexDef returns the function registry entry to be defined by a subprogram
// with the given prototype, reusing the entry of an earlier declaration if
// present.
func (gen *Generator) indexDef(proto *ast.Prototype) *funcEntry {
	if entry, ok := gen.funcs[proto.Name]; ok {
		return entry
	}
	return gen.newFuncEntry(proto)
}

// newFuncEntry adds an IR function of the given prototype to the module and
// registers it.
func (gen *Generator) newFuncEntry(proto *ast.Prototype) *funcEntry {
	sig := irFuncType(proto)
	f := gen.m.NewFunc(proto.Name, sig.RetType, irParams(proto, sig)...)
	entry := &funcEntry{
		f:     f,
		proto: proto,
	}
	gen.funcs[proto.Name] = entry
	return entry
}
