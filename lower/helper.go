package lower

import (
	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/types"
	"github.com/mewspring/toyada/ast"
)

// irParams returns the LLVM IR parameters of the given prototype, typed by the
// parameter types of sig.
func irParams(proto *ast.Prototype, sig *types.FuncType) []*ir.Param {
	var params []*ir.Param
	for i, oldParam := range proto.Params {
		param := ir.NewParam(oldParam.Name, sig.Params[i])
		params = append(params, param)
	}
	return params
}
