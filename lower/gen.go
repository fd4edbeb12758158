package lower

import (
	"github.com/llir/llvm/ir"
)

// Generator keeps track of top-level entities when lowering a compilation unit
// from AST to LLVM IR representation.
//
// A Generator is not safe for concurrent use; use one per compilation unit.
type Generator struct {
	// Error handler used to report errors encountered during compilation.
	eh func(error)
	// LLVM IR module being generated.
	m *ir.Module
	// funcs maps from subprogram name to function registry entry.
	funcs map[string]*funcEntry
	// First fatal error; the compilation unit is discarded once set.
	err error
}

// NewGenerator returns a new generator for lowering a compilation unit to LLVM
// IR assembly. The error handler eh, if non-nil, is invoked when a fatal error
// is encountered during compilation.
func NewGenerator(eh func(error)) *Generator {
	if eh == nil {
		eh = func(error) {}
	}
	gen := &Generator{
		eh:    eh,
		m:     ir.NewModule(),
		funcs: make(map[string]*funcEntry),
	}
	return gen
}

// Module returns the LLVM IR module being generated.
func (gen *Generator) Module() *ir.Module {
	return gen.m
}

// Err returns the fatal error of the compilation unit, if any.
func (gen *Generator) Err() error {
	return gen.err
}
