package lower

import (
	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"
	"github.com/mewspring/toyada/ast"
	"github.com/pkg/errors"
)

// funcGen is an LLVM IR generator for a given function.
type funcGen struct {
	// Module generator.
	gen *Generator
	// Registered prototype of the function; fixes parameter passing and the
	// result type.
	sig *ast.Prototype
	// Function scope.
	scope map[string]*binding
	// LLVM IR function being generated.
	f *ir.Func
	// Current basic block being generated.
	cur *ir.Block
	// returned reports whether a return statement has been lowered; no code
	// may follow it.
	returned bool
}

// binding is the storage of a variable within a function scope.
type binding struct {
	// Storage location of addressable variables, or the value of read-only
	// variables.
	v value.Value
	// LLVM IR type of the variable.
	typ types.Type
	// addressable reports whether v is a pointer to the variable.
	addressable bool
}

// newFuncGen returns a new LLVM IR function generator for the given registry
// entry.
func (gen *Generator) newFuncGen(entry *funcEntry) *funcGen {
	return &funcGen{
		gen:   gen,
		sig:   entry.proto,
		scope: make(map[string]*binding),
		f:     entry.f,
	}
}

// bind binds name to b in the function scope.
func (fgen *funcGen) bind(name string, b *binding) error {
	if _, ok := fgen.scope[name]; ok {
		return errors.Wrapf(ErrDuplicateBinding, "%q declared more than once in %q", name, fgen.f.Name())
	}
	fgen.scope[name] = b
	return nil
}

// lookup returns the binding of name in the function scope.
func (fgen *funcGen) lookup(name string) (*binding, error) {
	b, ok := fgen.scope[name]
	if !ok {
		return nil, errors.Wrapf(ErrUndefinedVariable, "unable to locate variable %q in %q", name, fgen.f.Name())
	}
	return b, nil
}
