package gqlb

import (
	"github.com/vektah/gqlparser/v2/ast"
)

// AddDirective appends a directive to the field at path. With an empty path
// the directive is appended to every operation definition instead.
func AddDirective(doc *ast.QueryDocument, name string, path Path, args Args) (*ast.QueryDocument, error) {
	encoded, err := encodeArguments(args)
	if err != nil {
		return nil, err
	}
	if len(path) == 0 {
		out := *doc
		ops := make(ast.OperationList, len(doc.Operations))
		for i, op := range doc.Operations {
			cp := *op
			cp.Directives = append(copyDirectives(op.Directives), &ast.Directive{Name: name, Arguments: encoded})
			ops[i] = &cp
		}
		out.Operations = ops
		return &out, nil
	}
	return updateField(doc, path, true, func(field *ast.Field) (*ast.Field, error) {
		field.Directives = append(copyDirectives(field.Directives), &ast.Directive{Name: name, Arguments: encoded})
		return field, nil
	})
}
