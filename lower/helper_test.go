package lower

import (
	"testing"

	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	"github.com/mewspring/toyada/ast"
	"github.com/stretchr/testify/require"
)

// proto returns a prototype with the given name, result type and parameters.
func proto(name string, result ast.BasicType, params ...*ast.Param) *ast.Prototype {
	return &ast.Prototype{Name: name, Params: params, Result: result}
}

func param(name string, typ ast.BasicType, dir ast.Direction) *ast.Param {
	return &ast.Param{Name: name, Type: typ, Dir: dir}
}

func local(name string, typ ast.BasicType) *ast.VarDecl {
	return &ast.VarDecl{Name: name, Type: typ}
}

func ident(name string) *ast.Ident {
	return &ast.Ident{Name: name}
}

func intLit(x int32) *ast.IntLit {
	return &ast.IntLit{Value: x}
}

// lowerUnit lowers the given nodes with a fresh generator.
func lowerUnit(nodes ...ast.Node) (*Generator, error) {
	gen := NewGenerator(nil)
	_, err := gen.Lower(nodes)
	return gen, err
}

// mustLower lowers the given nodes and fails the test on error.
func mustLower(t *testing.T, nodes ...ast.Node) *Generator {
	t.Helper()
	gen, err := lowerUnit(nodes...)
	require.NoError(t, err)
	return gen
}

// entryBlock returns the single basic block of the named function.
func entryBlock(t *testing.T, gen *Generator, name string) *ir.Block {
	t.Helper()
	f, err := gen.Func(name)
	require.NoError(t, err)
	require.Len(t, f.Blocks, 1)
	return f.Blocks[0]
}

// intValue returns the value of the integer constant v.
func intValue(t *testing.T, v interface{}) int64 {
	t.Helper()
	c, ok := v.(*constant.Int)
	require.True(t, ok, "expected integer constant, got %T", v)
	return c.X.Int64()
}
