// Package lower lowers subprogram compilation units in AST-form to LLVM IR
// assembly.
//
// Top-level nodes are lowered incrementally, one at a time, into the module of
// a Generator. A subprogram may call any subprogram declared or defined
// before it; forward declarations let mutually recursive subprograms resolve
// to the same IR function before and after their definition.
package lower

import (
	"fmt"

	"github.com/llir/llvm/ir"
	"github.com/mewspring/toyada/ast"
)

// Lower lowers the top-level nodes of a compilation unit to LLVM IR, in
// order, and returns the generated module. Lowering stops at the first fatal
// error, in which case the module must be discarded.
func (gen *Generator) Lower(nodes []ast.Node) (*ir.Module, error) {
	for _, node := range nodes {
		if err := gen.LowerNode(node); err != nil {
			return nil, err
		}
	}
	return gen.m, nil
}

// LowerNode lowers the top-level node to LLVM IR, emitting to m.
//
// Once a fatal error has been encountered, LowerNode returns that error
// without emitting further code.
func (gen *Generator) LowerNode(node ast.Node) error {
	if gen.err != nil {
		return gen.err
	}
	switch node := node.(type) {
	case *ast.Declaration:
		gen.indexDecl(node.Prototype)
		return nil
	case *ast.Subprogram:
		if err := gen.lowerSubprogram(node); err != nil {
			return gen.fail(err)
		}
		return nil
	default:
		panic(fmt.Errorf("support for top-level node %T not yet implemented", node))
	}
}
