package lower

import (
	"testing"

	"github.com/llir/llvm/ir"
	"github.com/mewspring/toyada/ast"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssignToInParameter(t *testing.T) {
	_, err := lowerUnit(&ast.Subprogram{
		Prototype: proto("P", ast.Void, param("X", ast.Integer, ast.In)),
		Body:      []ast.Stmt{&ast.AssignStmt{Dest: "X", Value: intLit(1)}},
	})
	assert.True(t, errors.Is(err, ErrImmutableAssignment), "got %v", err)
}

func TestAssignToOutParameter(t *testing.T) {
	gen := mustLower(t, &ast.Subprogram{
		Prototype: proto("Set", ast.Void, param("R", ast.Integer, ast.Out)),
		Body:      []ast.Stmt{&ast.AssignStmt{Dest: "R", Value: intLit(5)}},
	})
	f, err := gen.Func("Set")
	require.NoError(t, err)
	block := entryBlock(t, gen, "Set")
	require.Len(t, block.Insts, 1)
	store := block.Insts[0].(*ir.InstStore)
	assert.Equal(t, int64(5), intValue(t, store.Src))
	assert.Same(t, f.Params[0], store.Dst)
}

func TestAssignToUndefinedVariable(t *testing.T) {
	_, err := lowerUnit(&ast.Subprogram{
		Prototype: proto("P", ast.Void),
		Body:      []ast.Stmt{&ast.AssignStmt{Dest: "Nope", Value: intLit(1)}},
	})
	assert.True(t, errors.Is(err, ErrUndefinedVariable), "got %v", err)
}

func TestAssignTypeMismatch(t *testing.T) {
	_, err := lowerUnit(&ast.Subprogram{
		Prototype: proto("P", ast.Void),
		Locals:    []*ast.VarDecl{local("I", ast.Integer)},
		Body:      []ast.Stmt{&ast.AssignStmt{Dest: "I", Value: &ast.FloatLit{Value: 1.5}}},
	})
	assert.True(t, errors.Is(err, ErrTypeMismatch), "got %v", err)
}

// Set_Bank_Angle(322, 4);
func TestCallWithImmediateArguments(t *testing.T) {
	gen := mustLower(t,
		&ast.Declaration{Prototype: proto("Set_Bank_Angle", ast.Void,
			param("Angle", ast.Integer, ast.In),
			param("Rate", ast.Integer, ast.In),
		)},
		&ast.Subprogram{
			Prototype: proto("Bank", ast.Void),
			Body: []ast.Stmt{
				&ast.CallStmt{Name: "Set_Bank_Angle", Args: []ast.Expr{intLit(322), intLit(4)}},
			},
		},
	)
	callee, err := gen.Func("Set_Bank_Angle")
	require.NoError(t, err)
	block := entryBlock(t, gen, "Bank")
	require.Len(t, block.Insts, 1)
	call, ok := block.Insts[0].(*ir.InstCall)
	require.True(t, ok)
	assert.Same(t, callee, call.Callee)
	require.Len(t, call.Args, 2)
	assert.Equal(t, int64(322), intValue(t, call.Args[0]))
	assert.Equal(t, int64(4), intValue(t, call.Args[1]))
}

// Foo(X); with X a local variable and Foo's parameter "in out".
func TestCallPassesStorageOfRefArgument(t *testing.T) {
	gen := mustLower(t,
		&ast.Declaration{Prototype: proto("Foo", ast.Void, param("N", ast.Integer, ast.InOut))},
		&ast.Subprogram{
			Prototype: proto("Caller", ast.Integer),
			Locals:    []*ast.VarDecl{local("X", ast.Integer)},
			Body: []ast.Stmt{
				&ast.CallStmt{Name: "Foo", Args: []ast.Expr{ident("X")}},
				&ast.ReturnStmt{Result: ident("X")},
			},
		},
	)
	block := entryBlock(t, gen, "Caller")
	// alloca, zero store, call, load.
	require.Len(t, block.Insts, 4)
	slot := block.Insts[0].(*ir.InstAlloca)
	call, ok := block.Insts[2].(*ir.InstCall)
	require.True(t, ok)
	require.Len(t, call.Args, 1)
	assert.Same(t, slot, call.Args[0])
	// The write-back of the callee is observed by reloading the slot.
	load := block.Insts[3].(*ir.InstLoad)
	assert.Same(t, slot, load.Src)
	assert.Same(t, load, block.Term.(*ir.TermRet).X)
}

func TestCallForwardsRefParameter(t *testing.T) {
	gen := mustLower(t,
		&ast.Declaration{Prototype: proto("Foo", ast.Void, param("N", ast.Integer, ast.Out))},
		&ast.Subprogram{
			Prototype: proto("Wrap", ast.Void, param("M", ast.Integer, ast.InOut)),
			Body:      []ast.Stmt{&ast.CallStmt{Name: "Foo", Args: []ast.Expr{ident("M")}}},
		},
	)
	f, err := gen.Func("Wrap")
	require.NoError(t, err)
	call := entryBlock(t, gen, "Wrap").Insts[0].(*ir.InstCall)
	assert.Same(t, f.Params[0], call.Args[0])
}

func TestInvalidReferenceArgument(t *testing.T) {
	golden := []struct {
		name string
		arg  ast.Expr
	}{
		{name: "literal", arg: intLit(3)},
		{name: "compound", arg: &ast.BinaryExpr{Op: ast.Add, X: ident("L"), Y: intLit(1)}},
		{name: "in parameter", arg: ident("X")},
	}
	for _, g := range golden {
		t.Run(g.name, func(t *testing.T) {
			_, err := lowerUnit(
				&ast.Declaration{Prototype: proto("Foo", ast.Void, param("N", ast.Integer, ast.InOut))},
				&ast.Subprogram{
					Prototype: proto("P", ast.Void, param("X", ast.Integer, ast.In)),
					Locals:    []*ast.VarDecl{local("L", ast.Integer)},
					Body:      []ast.Stmt{&ast.CallStmt{Name: "Foo", Args: []ast.Expr{g.arg}}},
				},
			)
			assert.True(t, errors.Is(err, ErrInvalidReferenceArgument), "got %v", err)
		})
	}
}

func TestCallArgumentCount(t *testing.T) {
	_, err := lowerUnit(
		&ast.Declaration{Prototype: proto("Foo", ast.Void, param("N", ast.Integer, ast.In))},
		&ast.Subprogram{
			Prototype: proto("P", ast.Void),
			Body:      []ast.Stmt{&ast.CallStmt{Name: "Foo"}},
		},
	)
	assert.True(t, errors.Is(err, ErrArgumentCount), "got %v", err)
}
