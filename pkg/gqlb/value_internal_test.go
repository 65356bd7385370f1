package gqlb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vektah/gqlparser/v2/ast"
)

func TestEncodeValue_Scalars(t *testing.T) {
	cases := []struct {
		name         string
		input        any
		inferredType string
		kind         ast.ValueKind
		raw          string
	}{
		{"nil", nil, "NullValue", ast.NullValue, "null"},
		{"null sentinel", Null, "NullValue", ast.NullValue, "null"},
		{"int", 19, "Integer", ast.IntValue, "19"},
		{"int64", int64(-7), "Integer", ast.IntValue, "-7"},
		{"uint", uint16(3), "Integer", ast.IntValue, "3"},
		{"float", 1.5, "Float", ast.FloatValue, "1.5"},
		{"whole float", 3.0, "Float", ast.FloatValue, "3.0"},
		{"bool", true, "Boolean", ast.BooleanValue, "true"},
		{"string", "hello", "String", ast.StringValue, "hello"},
		{"variable", "$userId", "", ast.Variable, "userId"},
		{"enum", Enum("ASC"), "", ast.EnumValue, "ASC"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			inferred, val, err := encodeValue(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.inferredType, inferred)
			assert.Equal(t, tc.kind, val.Kind)
			assert.Equal(t, tc.raw, val.Raw)
		})
	}
}

func TestEncodeValue_List(t *testing.T) {
	inferred, val, err := encodeValue([]any{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, "[Integer!]", inferred)
	require.Equal(t, ast.ListValue, val.Kind)
	require.Len(t, val.Children, 3)
	assert.Equal(t, "2", val.Children[1].Value.Raw)
}

func TestEncodeValue_MixedListHasNoInferredType(t *testing.T) {
	inferred, val, err := encodeValue([]any{1, "two"})
	require.NoError(t, err)
	assert.Empty(t, inferred)
	assert.Equal(t, ast.ListValue, val.Kind)
}

func TestEncodeValue_EmptyListHasNoInferredType(t *testing.T) {
	inferred, val, err := encodeValue([]int{})
	require.NoError(t, err)
	assert.Empty(t, inferred)
	assert.Equal(t, ast.ListValue, val.Kind)
	assert.Empty(t, val.Children)
}

func TestEncodeValue_TypedSlice(t *testing.T) {
	inferred, val, err := encodeValue([]string{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, "[String!]", inferred)
	require.Len(t, val.Children, 2)
	assert.Equal(t, ast.StringValue, val.Children[0].Value.Kind)
}

func TestEncodeValue_MapSortsFields(t *testing.T) {
	_, val, err := encodeValue(map[string]any{"zebra": 1, "apple": 2})
	require.NoError(t, err)
	require.Equal(t, ast.ObjectValue, val.Kind)
	require.Len(t, val.Children, 2)
	assert.Equal(t, "apple", val.Children[0].Name)
	assert.Equal(t, "zebra", val.Children[1].Name)
}

func TestEncodeValue_ArgsKeepOrder(t *testing.T) {
	_, val, err := encodeValue(Args{{Name: "zebra", Value: 1}, {Name: "apple", Value: 2}})
	require.NoError(t, err)
	require.Equal(t, ast.ObjectValue, val.Kind)
	assert.Equal(t, "zebra", val.Children[0].Name)
	assert.Equal(t, "apple", val.Children[1].Name)
}

func TestEncodeValue_NestedVariableInList(t *testing.T) {
	_, val, err := encodeValue([]any{"$a", "$b"})
	require.NoError(t, err)
	require.Len(t, val.Children, 2)
	assert.Equal(t, ast.Variable, val.Children[0].Value.Kind)
	assert.Equal(t, "a", val.Children[0].Value.Raw)
}

func TestEncodeValue_PassThroughValueNode(t *testing.T) {
	node := &ast.Value{Kind: ast.IntValue, Raw: "42"}
	_, val, err := encodeValue(node)
	require.NoError(t, err)
	assert.Same(t, node, val)
}

func TestEncodeValue_Unsupported(t *testing.T) {
	_, _, err := encodeValue(struct{ X int }{1})
	assert.Error(t, err)

	_, _, err = encodeValue(map[int]any{1: "x"})
	assert.Error(t, err)
}

func TestArgsFromMap_Sorted(t *testing.T) {
	args := ArgsFromMap(map[string]any{"b": 2, "a": 1, "c": 3})
	require.Len(t, args, 3)
	assert.Equal(t, "a", args[0].Name)
	assert.Equal(t, "b", args[1].Name)
	assert.Equal(t, "c", args[2].Name)
}
