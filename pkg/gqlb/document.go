package gqlb

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/formatter"
	"github.com/vektah/gqlparser/v2/parser"
)

// ErrUnknownOperation is returned by Build when an operation name does not
// resolve to anything in the registry.
var ErrUnknownOperation = errors.New("unknown builder operation")

// ErrInvalidSpec is returned when a field spec is malformed, such as a
// subfield spec that carries its own path.
var ErrInvalidSpec = errors.New("invalid field spec")

// Parse returns the document for src. Strings and byte slices go through the
// GraphQL parser; a *ast.QueryDocument passes through unchanged. Parser
// errors are returned verbatim.
func Parse(src any) (*ast.QueryDocument, error) {
	switch v := src.(type) {
	case *ast.QueryDocument:
		return v, nil
	case string:
		return parser.ParseQuery(&ast.Source{Input: v, Name: "document"})
	case []byte:
		return parser.ParseQuery(&ast.Source{Input: string(v), Name: "document"})
	default:
		return nil, fmt.Errorf("cannot parse %T as a GraphQL document", src)
	}
}

// MustParse is Parse for sources known to be valid, such as test fixtures.
// It panics on parse errors.
func MustParse(src string) *ast.QueryDocument {
	doc, err := Parse(src)
	if err != nil {
		panic(err)
	}
	return doc
}

// New returns a fresh document holding a single unnamed query operation.
func New() *ast.QueryDocument {
	return &ast.QueryDocument{
		Operations: ast.OperationList{{Operation: ast.Query}},
	}
}

// Format serializes the document to canonical GraphQL text.
func Format(doc *ast.QueryDocument) string {
	var buf bytes.Buffer
	formatter.NewFormatter(&buf).FormatQueryDocument(doc)
	return buf.String()
}

// fieldIdentity returns the alias when one is set, otherwise the field name.
// The parser writes Alias == Name for fields without an explicit alias, so
// both conventions resolve to the same identity.
func fieldIdentity(f *ast.Field) string {
	if f.Alias != "" {
		return f.Alias
	}
	return f.Name
}

func copySelections(set ast.SelectionSet) ast.SelectionSet {
	if set == nil {
		return nil
	}
	out := make(ast.SelectionSet, len(set))
	copy(out, set)
	return out
}

func replaceSelection(set ast.SelectionSet, i int, sel ast.Selection) ast.SelectionSet {
	out := copySelections(set)
	out[i] = sel
	return out
}

func copyArguments(args ast.ArgumentList) ast.ArgumentList {
	if args == nil {
		return nil
	}
	out := make(ast.ArgumentList, len(args))
	copy(out, args)
	return out
}

func copyDirectives(list ast.DirectiveList) ast.DirectiveList {
	if list == nil {
		return nil
	}
	out := make(ast.DirectiveList, len(list))
	copy(out, list)
	return out
}

func copyVariableDefinitions(list ast.VariableDefinitionList) ast.VariableDefinitionList {
	if list == nil {
		return nil
	}
	out := make(ast.VariableDefinitionList, len(list))
	copy(out, list)
	return out
}
