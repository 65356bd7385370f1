package gqlb

import (
	"github.com/vektah/gqlparser/v2/ast"
)

// AddArgument appends an argument to the field at path, creating the field
// and any missing intermediates first.
func AddArgument(doc *ast.QueryDocument, name string, path Path, value any) (*ast.QueryDocument, error) {
	val, err := EncodeValue(value)
	if err != nil {
		return nil, err
	}
	return updateField(doc, path, true, func(field *ast.Field) (*ast.Field, error) {
		args := copyArguments(field.Arguments)
		field.Arguments = append(args, &ast.Argument{Name: name, Value: val})
		return field, nil
	})
}

// RemoveArgument removes arguments named name from the field at path. A
// missing field or argument is a silent no-op.
func RemoveArgument(doc *ast.QueryDocument, name string, path Path) (*ast.QueryDocument, error) {
	return updateField(doc, path, false, func(field *ast.Field) (*ast.Field, error) {
		field.Arguments = dropArgument(field.Arguments, name)
		return field, nil
	})
}

// ReplaceArgument removes arguments named name from the field at path and
// appends the new value at the end of the list.
func ReplaceArgument(doc *ast.QueryDocument, name string, path Path, value any) (*ast.QueryDocument, error) {
	val, err := EncodeValue(value)
	if err != nil {
		return nil, err
	}
	return updateField(doc, path, false, func(field *ast.Field) (*ast.Field, error) {
		args := dropArgument(field.Arguments, name)
		field.Arguments = append(args, &ast.Argument{Name: name, Value: val})
		return field, nil
	})
}

func dropArgument(args ast.ArgumentList, name string) ast.ArgumentList {
	var out ast.ArgumentList
	for _, arg := range args {
		if arg.Name != name {
			out = append(out, arg)
		}
	}
	return out
}
