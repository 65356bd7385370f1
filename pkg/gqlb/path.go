package gqlb

import (
	"fmt"

	"github.com/vektah/gqlparser/v2/ast"
)

// PathElement selects one level of nesting into a selection set.
//
// A field element (Inline false) targets the field whose identity equals
// Name; on write, a missing field is created with the element's name, alias
// and arguments. An inline element (Inline true) targets the inline fragment
// whose type condition equals Type and is never created implicitly.
type PathElement struct {
	Name   string
	Alias  string
	Args   Args
	Type   string
	Inline bool
}

// Step returns a field element for name.
func Step(name string) PathElement {
	return PathElement{Name: name}
}

// On returns an inline-fragment element for the given type condition.
// On("") targets an inline fragment without a type condition.
func On(typeCondition string) PathElement {
	return PathElement{Type: typeCondition, Inline: true}
}

// Path addresses a selection set inside a document. If the first element
// names an existing fragment definition, the path descends into that
// fragment; otherwise it descends through every operation.
type Path []PathElement

// PathOf builds a path from strings, PathElements and Paths. Strings become
// field elements. Any other element type is a programming error.
func PathOf(elems ...any) Path {
	out := make(Path, 0, len(elems))
	for _, e := range elems {
		switch x := e.(type) {
		case string:
			out = append(out, PathElement{Name: x})
		case PathElement:
			out = append(out, x)
		case Path:
			out = append(out, x...)
		default:
			panic(fmt.Sprintf("gqlb: cannot use %T as a path element", e))
		}
	}
	return out
}

// matches reports whether the selection is the one this element addresses.
func (e PathElement) matches(sel ast.Selection) bool {
	if e.Inline {
		inline, ok := sel.(*ast.InlineFragment)
		return ok && inline.TypeCondition == e.Type
	}
	field, ok := sel.(*ast.Field)
	return ok && fieldIdentity(field) == e.Name
}

// newField creates the field this element describes, for auto-vivification.
func (e PathElement) newField() (*ast.Field, error) {
	args, err := encodeArguments(e.Args)
	if err != nil {
		return nil, err
	}
	return &ast.Field{Name: e.Name, Alias: e.Alias, Arguments: args}, nil
}
