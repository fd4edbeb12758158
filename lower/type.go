package lower

import (
	"fmt"

	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/types"
	"github.com/mewspring/toyada/ast"
)

// LLVM IR types of the primitive types.
var (
	// irIntType is the LLVM IR type of Integer.
	irIntType = types.I32
	// irFloatType is the LLVM IR type of Float.
	irFloatType = types.Float
)

// irBasicType returns the LLVM IR type of the given primitive type.
func irBasicType(t ast.BasicType) types.Type {
	switch t {
	case ast.Integer:
		return irIntType
	case ast.Float:
		return irFloatType
	default:
		panic(fmt.Errorf("support for basic type %v not yet implemented", t))
	}
}

// irResultType returns the LLVM IR return type of the given result type.
func irResultType(t ast.BasicType) types.Type {
	if t == ast.Void {
		return types.Void
	}
	return irBasicType(t)
}

// irParamType returns the LLVM IR type of the given parameter; parameters
// passed by reference are pointers to their primitive type.
func irParamType(param *ast.Param) types.Type {
	switch param.Dir {
	case ast.In:
		return irBasicType(param.Type)
	case ast.Out, ast.InOut:
		return types.NewPointer(irBasicType(param.Type))
	default:
		panic(fmt.Errorf("support for parameter direction %v not yet implemented", param.Dir))
	}
}

// irFuncType returns the LLVM IR function signature of the given prototype.
func irFuncType(proto *ast.Prototype) *types.FuncType {
	var params []types.Type
	for _, param := range proto.Params {
		params = append(params, irParamType(param))
	}
	return types.NewFunc(irResultType(proto.Result), params...)
}

// zeroValue returns the zero constant of the given primitive type.
func zeroValue(t ast.BasicType) constant.Constant {
	switch t {
	case ast.Integer:
		return constant.NewInt(irIntType, 0)
	case ast.Float:
		return constant.NewFloat(irFloatType, 0)
	default:
		panic(fmt.Errorf("support for basic type %v not yet implemented", t))
	}
}

// ### [ Helper functions ] ####################################################

// isIntType reports whether the given type is an integer scalar type.
func isIntType(t types.Type) bool {
	_, ok := t.(*types.IntType)
	return ok
}

// isFloatType reports whether the given type is a floating-point scalar type.
func isFloatType(t types.Type) bool {
	_, ok := t.(*types.FloatType)
	return ok
}
