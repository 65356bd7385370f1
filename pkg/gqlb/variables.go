package gqlb

import (
	"strings"

	"github.com/vektah/gqlparser/v2/ast"
)

// VariableOptions configures AddVariable.
type VariableOptions struct {
	// Type is the GraphQL type name. When empty, the type is inferred from
	// Default, falling back to String.
	Type string
	// Default becomes the variable's default value.
	Default any
	// Optional leaves the type nullable. Types are non-null otherwise.
	Optional bool
}

// AddVariable appends a variable definition to every operation. Operations
// without a name are named by capitalizing their kind.
func AddVariable(doc *ast.QueryDocument, name string, opts *VariableOptions) (*ast.QueryDocument, error) {
	if opts == nil {
		opts = &VariableOptions{}
	}
	typeName := opts.Type
	var defaultValue *ast.Value
	if opts.Default != nil {
		inferred, val, err := encodeValue(opts.Default)
		if err != nil {
			return nil, err
		}
		defaultValue = val
		if typeName == "" {
			typeName = inferred
		}
	}
	if typeName == "" {
		typeName = "String"
	}

	// A trailing "!" in an explicit type already means non-null; never
	// produce a non-null wrapping a non-null.
	nonNull := !opts.Optional
	if strings.HasSuffix(typeName, "!") {
		typeName = strings.TrimSuffix(typeName, "!")
		nonNull = true
	}
	var varType *ast.Type
	if nonNull {
		varType = ast.NonNullNamedType(typeName, nil)
	} else {
		varType = ast.NamedType(typeName, nil)
	}

	out := *doc
	ops := make(ast.OperationList, len(doc.Operations))
	for i, op := range doc.Operations {
		cp := *op
		if cp.Name == "" {
			cp.Name = capitalize(string(cp.Operation))
		}
		cp.VariableDefinitions = append(copyVariableDefinitions(op.VariableDefinitions), &ast.VariableDefinition{
			Variable:     name,
			Type:         varType,
			DefaultValue: defaultValue,
		})
		ops[i] = &cp
	}
	out.Operations = ops
	return &out, nil
}

// RemoveVariable drops variable definitions named name from every operation.
func RemoveVariable(doc *ast.QueryDocument, name string) *ast.QueryDocument {
	out := *doc
	ops := make(ast.OperationList, len(doc.Operations))
	for i, op := range doc.Operations {
		cp := *op
		cp.VariableDefinitions = dropVariableDefinition(op.VariableDefinitions, name)
		ops[i] = &cp
	}
	out.Operations = ops
	return &out
}

// SetOperationType sets the operation kind of every operation definition.
func SetOperationType(doc *ast.QueryDocument, kind ast.Operation) *ast.QueryDocument {
	out := *doc
	ops := make(ast.OperationList, len(doc.Operations))
	for i, op := range doc.Operations {
		cp := *op
		cp.Operation = kind
		ops[i] = &cp
	}
	out.Operations = ops
	return &out
}

// SetOperationName sets the name of every operation definition.
func SetOperationName(doc *ast.QueryDocument, name string) *ast.QueryDocument {
	out := *doc
	ops := make(ast.OperationList, len(doc.Operations))
	for i, op := range doc.Operations {
		cp := *op
		cp.Name = name
		ops[i] = &cp
	}
	out.Operations = ops
	return &out
}

func dropVariableDefinition(list ast.VariableDefinitionList, name string) ast.VariableDefinitionList {
	var out ast.VariableDefinitionList
	for _, def := range list {
		if def.Variable != name {
			out = append(out, def)
		}
	}
	return out
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
