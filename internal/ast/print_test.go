package ast

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sonsongithub/SwiftTypeInferenceHandsOn/internal/types"
)

func TestPrintLiteralIsDeterministicJSON(t *testing.T) {
	lit := &Literal{Kind: IntLiteral, Value: 42}

	out := Print(lit)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, "Literal", decoded["node"])
	assert.Equal(t, "Int", decoded["kind"])
	assert.Equal(t, float64(42), decoded["value"])
}

func TestPrintNilIsNullLiteral(t *testing.T) {
	assert.Equal(t, "null", Print(nil))
}

func TestPrintOmitsPositionsSoOutputIsStable(t *testing.T) {
	a := &Identifier{Name: "x", Pos: Pos{Line: 1, Column: 1}}
	b := &Identifier{Name: "x", Pos: Pos{Line: 99, Column: 7}}

	assert.Equal(t, Print(a), Print(b))
}

func TestPrintLambdaIncludesParamsAndBody(t *testing.T) {
	lam := &Lambda{
		Params: []*Param{{Name: "x"}},
		Body:   &Identifier{Name: "x"},
	}

	out := Print(lam)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, "Lambda", decoded["node"])

	params, ok := decoded["params"].([]interface{})
	require.True(t, ok)
	require.Len(t, params, 1)

	body, ok := decoded["body"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Identifier", body["node"])
	assert.Equal(t, "x", body["name"])
}

func TestPrintLetIncludesAnnotationWhenPresent(t *testing.T) {
	withAnnotation := &Let{
		Name:       "x",
		Annotation: types.NewPrimitiveType("Int"),
		Value:      &Literal{Kind: IntLiteral, Value: 1},
		Body:       &Identifier{Name: "x"},
	}
	withoutAnnotation := &Let{
		Name:  "x",
		Value: &Literal{Kind: IntLiteral, Value: 1},
		Body:  &Identifier{Name: "x"},
	}

	var withDecoded, withoutDecoded map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(Print(withAnnotation)), &withDecoded))
	require.NoError(t, json.Unmarshal([]byte(Print(withoutAnnotation)), &withoutDecoded))

	assert.Equal(t, "Int", withDecoded["annotation"])
	assert.NotContains(t, withoutDecoded, "annotation")
}

func TestPrintTupleListsEachElement(t *testing.T) {
	tup := &Tuple{Elements: []Expr{
		&Literal{Kind: IntLiteral, Value: 1},
		&Literal{Kind: BoolLiteral, Value: true},
	}}

	out := Print(tup)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	elems, ok := decoded["elements"].([]interface{})
	require.True(t, ok)
	assert.Len(t, elems, 2)
}

func TestPrintParamIncludesAnnotationWhenPresent(t *testing.T) {
	withAnnotation := &Param{Name: "x", Annotation: types.NewPrimitiveType("Int")}
	withoutAnnotation := &Param{Name: "x"}

	var withDecoded, withoutDecoded map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(Print(withAnnotation)), &withDecoded))
	require.NoError(t, json.Unmarshal([]byte(Print(withoutAnnotation)), &withoutDecoded))

	assert.Equal(t, "Int", withDecoded["annotation"])
	assert.NotContains(t, withoutDecoded, "annotation")
}
