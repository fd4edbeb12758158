package ast

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// Decode reads a JSON-encoded compilation unit from r and returns its
// top-level nodes in source order.
//
// The unit is an array of one-key objects, each either
//
//	{"declaration": PROTOTYPE}
//	{"subprogram": {"prototype": PROTOTYPE, "locals": [...], "body": [...]}}
//
// Statements and expressions are likewise one-key objects keyed by kind
// ("return", "assign", "call"; "int", "float", "var", "binary", "call").
func Decode(r io.Reader) ([]Node, error) {
	var raws []json.RawMessage
	if err := json.NewDecoder(r).Decode(&raws); err != nil {
		return nil, errors.Wrap(err, "unable to decode compilation unit")
	}
	nodes := make([]Node, 0, len(raws))
	for i, raw := range raws {
		node, err := decodeNode(fmt.Sprintf("[%d]", i), raw)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		nodes = append(nodes, node)
	}
	return nodes, nil
}

// JSON representation of AST nodes.
type (
	jsonProto struct {
		Name   string       `json:"name"`
		Params []*jsonParam `json:"params"`
		Return string       `json:"return"`
	}
	jsonParam struct {
		Name string `json:"name"`
		Type string `json:"type"`
		Mode string `json:"mode"`
	}
	jsonVar struct {
		Name string `json:"name"`
		Type string `json:"type"`
	}
	jsonSubprogram struct {
		Prototype *jsonProto        `json:"prototype"`
		Locals    []*jsonVar        `json:"locals"`
		Body      []json.RawMessage `json:"body"`
	}
	jsonAssign struct {
		Dest  string          `json:"dest"`
		Value json.RawMessage `json:"value"`
	}
	jsonCall struct {
		Name string            `json:"name"`
		Args []json.RawMessage `json:"args"`
	}
	jsonBinary struct {
		Op string          `json:"op"`
		X  json.RawMessage `json:"x"`
		Y  json.RawMessage `json:"y"`
	}
)

// === [ Declarations ] ========================================================

// decodeNode decodes the top-level node at the given JSON path.
func decodeNode(path string, raw json.RawMessage) (Node, error) {
	kind, body, err := oneOf(path, raw)
	if err != nil {
		return nil, err
	}
	at := path + "." + kind
	switch kind {
	case "declaration":
		var old jsonProto
		if err := unmarshal(at, body, &old); err != nil {
			return nil, err
		}
		proto, err := decodeProto(at, &old)
		if err != nil {
			return nil, err
		}
		return &Declaration{Prototype: proto}, nil
	case "subprogram":
		var old jsonSubprogram
		if err := unmarshal(at, body, &old); err != nil {
			return nil, err
		}
		return decodeSubprogram(at, &old)
	default:
		return nil, errors.Errorf("%s: unknown top-level node kind %q", path, kind)
	}
}

// decodeSubprogram decodes the subprogram definition at the given JSON path.
func decodeSubprogram(path string, old *jsonSubprogram) (*Subprogram, error) {
	if old.Prototype == nil {
		return nil, errors.Errorf("%s: missing prototype", path)
	}
	proto, err := decodeProto(path+".prototype", old.Prototype)
	if err != nil {
		return nil, err
	}
	sp := &Subprogram{Prototype: proto}
	for i, oldVar := range old.Locals {
		varPath := fmt.Sprintf("%s.locals[%d]", path, i)
		if oldVar == nil || oldVar.Name == "" {
			return nil, errors.Errorf("%s: missing variable name", varPath)
		}
		typ, err := decodeType(varPath, oldVar.Type)
		if err != nil {
			return nil, err
		}
		sp.Locals = append(sp.Locals, &VarDecl{Name: oldVar.Name, Type: typ})
	}
	for i, oldStmt := range old.Body {
		stmt, err := decodeStmt(fmt.Sprintf("%s.body[%d]", path, i), oldStmt)
		if err != nil {
			return nil, err
		}
		sp.Body = append(sp.Body, stmt)
	}
	return sp, nil
}

// decodeProto decodes the prototype at the given JSON path.
func decodeProto(path string, old *jsonProto) (*Prototype, error) {
	if old.Name == "" {
		return nil, errors.Errorf("%s: missing subprogram name", path)
	}
	proto := &Prototype{Name: old.Name}
	for i, oldParam := range old.Params {
		paramPath := fmt.Sprintf("%s.params[%d]", path, i)
		if oldParam == nil || oldParam.Name == "" {
			return nil, errors.Errorf("%s: missing parameter name", paramPath)
		}
		typ, err := decodeType(paramPath, oldParam.Type)
		if err != nil {
			return nil, err
		}
		dir, err := decodeDirection(paramPath, oldParam.Mode)
		if err != nil {
			return nil, err
		}
		proto.Params = append(proto.Params, &Param{Name: oldParam.Name, Type: typ, Dir: dir})
	}
	if old.Return != "" {
		typ, err := decodeType(path+".return", old.Return)
		if err != nil {
			return nil, err
		}
		proto.Result = typ
	}
	return proto, nil
}

// decodeType decodes the name of a primitive type. Type names are case
// insensitive.
func decodeType(path, name string) (BasicType, error) {
	switch strings.ToLower(name) {
	case "integer":
		return Integer, nil
	case "float":
		return Float, nil
	default:
		return Void, errors.Errorf("%s: invalid type %q; expected \"integer\" or \"float\"", path, name)
	}
}

// decodeDirection decodes a parameter mode; the empty mode is In.
func decodeDirection(path, mode string) (Direction, error) {
	switch strings.ToLower(mode) {
	case "", "in":
		return In, nil
	case "out":
		return Out, nil
	case "in out", "inout":
		return InOut, nil
	default:
		return In, errors.Errorf("%s: invalid parameter mode %q", path, mode)
	}
}

// === [ Statements ] ==========================================================

// decodeStmt decodes the statement at the given JSON path.
func decodeStmt(path string, raw json.RawMessage) (Stmt, error) {
	kind, body, err := oneOf(path, raw)
	if err != nil {
		return nil, err
	}
	at := path + "." + kind
	switch kind {
	case "return":
		if isNull(body) {
			return &ReturnStmt{}, nil
		}
		x, err := decodeExpr(at, body)
		if err != nil {
			return nil, err
		}
		return &ReturnStmt{Result: x}, nil
	case "assign":
		var old jsonAssign
		if err := unmarshal(at, body, &old); err != nil {
			return nil, err
		}
		if old.Dest == "" {
			return nil, errors.Errorf("%s: missing assignment destination", at)
		}
		x, err := decodeExpr(at+".value", old.Value)
		if err != nil {
			return nil, err
		}
		return &AssignStmt{Dest: old.Dest, Value: x}, nil
	case "call":
		name, args, err := decodeCall(at, body)
		if err != nil {
			return nil, err
		}
		return &CallStmt{Name: name, Args: args}, nil
	default:
		return nil, errors.Errorf("%s: unknown statement kind %q", path, kind)
	}
}

// === [ Expressions ] =========================================================

// decodeExpr decodes the expression at the given JSON path.
func decodeExpr(path string, raw json.RawMessage) (Expr, error) {
	kind, body, err := oneOf(path, raw)
	if err != nil {
		return nil, err
	}
	at := path + "." + kind
	switch kind {
	case "int":
		var x int32
		if err := unmarshal(at, body, &x); err != nil {
			return nil, err
		}
		return &IntLit{Value: x}, nil
	case "float":
		var x float32
		if err := unmarshal(at, body, &x); err != nil {
			return nil, err
		}
		return &FloatLit{Value: x}, nil
	case "var":
		var name string
		if err := unmarshal(at, body, &name); err != nil {
			return nil, err
		}
		if name == "" {
			return nil, errors.Errorf("%s: missing variable name", at)
		}
		return &Ident{Name: name}, nil
	case "binary":
		var old jsonBinary
		if err := unmarshal(at, body, &old); err != nil {
			return nil, err
		}
		if old.Op == "" {
			return nil, errors.Errorf("%s: missing operator", at)
		}
		x, err := decodeExpr(at+".x", old.X)
		if err != nil {
			return nil, err
		}
		y, err := decodeExpr(at+".y", old.Y)
		if err != nil {
			return nil, err
		}
		return &BinaryExpr{Op: BinaryOp(old.Op), X: x, Y: y}, nil
	case "call":
		name, args, err := decodeCall(at, body)
		if err != nil {
			return nil, err
		}
		return &CallExpr{Name: name, Args: args}, nil
	default:
		return nil, errors.Errorf("%s: unknown expression kind %q", path, kind)
	}
}

// decodeCall decodes the callee name and actual arguments of a call.
func decodeCall(path string, raw json.RawMessage) (string, []Expr, error) {
	var old jsonCall
	if err := unmarshal(path, raw, &old); err != nil {
		return "", nil, err
	}
	if old.Name == "" {
		return "", nil, errors.Errorf("%s: missing callee name", path)
	}
	var args []Expr
	for i, oldArg := range old.Args {
		arg, err := decodeExpr(fmt.Sprintf("%s.args[%d]", path, i), oldArg)
		if err != nil {
			return "", nil, err
		}
		args = append(args, arg)
	}
	return old.Name, args, nil
}

// ### [ Helper functions ] ####################################################

// oneOf decodes a JSON object with exactly one key, returning the key and its
// value.
func oneOf(path string, raw json.RawMessage) (string, json.RawMessage, error) {
	var m map[string]json.RawMessage
	if err := unmarshal(path, raw, &m); err != nil {
		return "", nil, err
	}
	if len(m) != 1 {
		return "", nil, errors.Errorf("%s: expected object with exactly one key, got %d keys", path, len(m))
	}
	for kind, body := range m {
		return kind, body, nil
	}
	panic("unreachable")
}

// unmarshal decodes raw into v, annotating failures with the JSON path. A
// missing or null value is an error.
func unmarshal(path string, raw json.RawMessage, v interface{}) error {
	if len(raw) == 0 || isNull(raw) {
		return errors.Errorf("%s: missing value", path)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return errors.Wrapf(err, "%s", path)
	}
	return nil
}

// isNull reports whether raw is the JSON null literal.
func isNull(raw json.RawMessage) bool {
	return strings.TrimSpace(string(raw)) == "null"
}
