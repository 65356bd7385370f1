package gqlb

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/vektah/gqlparser/v2/ast"
)

// Enum marks a string as a GraphQL enum identifier so it encodes without
// quotes: Enum("ASC") becomes the enum value ASC rather than the string "ASC".
type Enum string

type nullValue struct{}

// Null is the explicit null sentinel. It encodes to the GraphQL null literal,
// as does a plain nil.
var Null = nullValue{}

// Arg is one named argument value. Values are host values and are encoded
// when the argument reaches a document.
type Arg struct {
	Name  string
	Value any
}

// Args is an ordered argument list.
type Args []Arg

// ArgsFromMap returns the map's entries as an argument list sorted by name.
func ArgsFromMap(m map[string]any) Args {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	out := make(Args, 0, len(m))
	for _, name := range names {
		out = append(out, Arg{Name: name, Value: m[name]})
	}
	return out
}

// EncodeValue lifts a host value into a GraphQL value node. Strings starting
// with "$" become variable references; Enum values become enum literals; maps
// become object values with fields sorted by name; Args keep their order.
func EncodeValue(v any) (*ast.Value, error) {
	_, val, err := encodeValue(v)
	return val, err
}

// encodeValue also reports the inferred GraphQL type name, which only the
// variable declaration path consumes when the caller omits a type.
func encodeValue(v any) (string, *ast.Value, error) {
	switch x := v.(type) {
	case nil:
		return "NullValue", &ast.Value{Kind: ast.NullValue, Raw: "null"}, nil
	case nullValue:
		return "NullValue", &ast.Value{Kind: ast.NullValue, Raw: "null"}, nil
	case *ast.Value:
		return "", x, nil
	case Enum:
		return "", &ast.Value{Kind: ast.EnumValue, Raw: string(x)}, nil
	case bool:
		return "Boolean", &ast.Value{Kind: ast.BooleanValue, Raw: strconv.FormatBool(x)}, nil
	case string:
		if strings.HasPrefix(x, "$") {
			return "", &ast.Value{Kind: ast.Variable, Raw: x[1:]}, nil
		}
		return "String", &ast.Value{Kind: ast.StringValue, Raw: x}, nil
	case float32:
		return "Float", floatValue(float64(x)), nil
	case float64:
		return "Float", floatValue(x), nil
	case Args:
		val, err := encodeObject(x)
		return "", val, err
	case map[string]any:
		val, err := encodeObject(ArgsFromMap(x))
		return "", val, err
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return "Integer", &ast.Value{Kind: ast.IntValue, Raw: strconv.FormatInt(rv.Int(), 10)}, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "Integer", &ast.Value{Kind: ast.IntValue, Raw: strconv.FormatUint(rv.Uint(), 10)}, nil
	case reflect.Slice, reflect.Array:
		return encodeList(rv)
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return "", nil, fmt.Errorf("cannot encode %T as a GraphQL value: map keys must be strings", v)
		}
		args := make(Args, 0, rv.Len())
		for _, key := range rv.MapKeys() {
			args = append(args, Arg{Name: key.String(), Value: rv.MapIndex(key).Interface()})
		}
		sort.Slice(args, func(i, j int) bool { return args[i].Name < args[j].Name })
		val, err := encodeObject(args)
		return "", val, err
	}
	return "", nil, fmt.Errorf("cannot encode %T as a GraphQL value", v)
}

func floatValue(f float64) *ast.Value {
	raw := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(raw, ".") {
		raw += ".0"
	}
	return &ast.Value{Kind: ast.FloatValue, Raw: raw}
}

// encodeList infers "[T!]" when every element infers the same type T.
func encodeList(rv reflect.Value) (string, *ast.Value, error) {
	out := &ast.Value{Kind: ast.ListValue}
	elemType := ""
	uniform := true
	for i := 0; i < rv.Len(); i++ {
		t, val, err := encodeValue(rv.Index(i).Interface())
		if err != nil {
			return "", nil, err
		}
		if i == 0 {
			elemType = t
		} else if t != elemType {
			uniform = false
		}
		out.Children = append(out.Children, &ast.ChildValue{Value: val})
	}
	if !uniform || elemType == "" {
		return "", out, nil
	}
	return "[" + elemType + "!]", out, nil
}

func encodeObject(args Args) (*ast.Value, error) {
	out := &ast.Value{Kind: ast.ObjectValue}
	for _, arg := range args {
		val, err := EncodeValue(arg.Value)
		if err != nil {
			return nil, err
		}
		out.Children = append(out.Children, &ast.ChildValue{Name: arg.Name, Value: val})
	}
	return out, nil
}

// encodeArguments encodes an ordered argument list into AST arguments.
func encodeArguments(args Args) (ast.ArgumentList, error) {
	if len(args) == 0 {
		return nil, nil
	}
	out := make(ast.ArgumentList, 0, len(args))
	for _, arg := range args {
		val, err := EncodeValue(arg.Value)
		if err != nil {
			return nil, fmt.Errorf("argument %q: %w", arg.Name, err)
		}
		out = append(out, &ast.Argument{Name: arg.Name, Value: val})
	}
	return out, nil
}
