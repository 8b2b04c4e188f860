package ast

import (
	"encoding/json"
	"fmt"
)

// Print produces a deterministic JSON representation of an expression tree,
// for debugging and snapshotting. Positions are omitted so that the output
// doesn't change when line numbers shift.
func Print(n Node) string {
	if n == nil {
		return "null"
	}
	data, err := json.MarshalIndent(simplify(n), "", "  ")
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return string(data)
}

// simplify converts an AST node into a plain, JSON-serializable shape.
func simplify(n interface{}) interface{} {
	switch v := n.(type) {
	case nil:
		return nil

	case *Identifier:
		return map[string]interface{}{"node": "Identifier", "name": v.Name}

	case *Literal:
		return map[string]interface{}{
			"node":  "Literal",
			"kind":  v.Kind.String(),
			"value": v.Value,
		}

	case *Param:
		m := map[string]interface{}{"node": "Param", "name": v.Name}
		if v.Annotation != nil {
			m["annotation"] = v.Annotation.String()
		}
		return m

	case *Lambda:
		params := make([]interface{}, len(v.Params))
		for i, p := range v.Params {
			params[i] = simplify(p)
		}
		return map[string]interface{}{
			"node":   "Lambda",
			"params": params,
			"body":   simplify(v.Body),
		}

	case *FuncCall:
		args := make([]interface{}, len(v.Args))
		for i, a := range v.Args {
			args[i] = simplify(a)
		}
		return map[string]interface{}{
			"node": "FuncCall",
			"func": simplify(v.Func),
			"args": args,
		}

	case *Let:
		m := map[string]interface{}{
			"node":  "Let",
			"name":  v.Name,
			"value": simplify(v.Value),
			"body":  simplify(v.Body),
		}
		if v.Annotation != nil {
			m["annotation"] = v.Annotation.String()
		}
		return m

	case *If:
		return map[string]interface{}{
			"node": "If",
			"cond": simplify(v.Cond),
			"then": simplify(v.Then),
			"else": simplify(v.Else),
		}

	case *Tuple:
		elems := make([]interface{}, len(v.Elements))
		for i, e := range v.Elements {
			elems[i] = simplify(e)
		}
		return map[string]interface{}{"node": "Tuple", "elements": elems}

	case *FuncDecl:
		params := make([]interface{}, len(v.Params))
		for i, p := range v.Params {
			params[i] = simplify(p)
		}
		m := map[string]interface{}{
			"node":   "FuncDecl",
			"name":   v.Name,
			"params": params,
			"body":   simplify(v.Body),
		}
		if v.ReturnType != nil {
			m["returnType"] = v.ReturnType.String()
		}
		return m

	default:
		return fmt.Sprintf("<unprintable %T>", n)
	}
}
