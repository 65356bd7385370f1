package gqlb

import (
	"fmt"

	"github.com/vektah/gqlparser/v2/ast"
)

// FieldOptions configures AddField and ReplaceField.
type FieldOptions struct {
	// Alias gives the field an alias. The alias becomes the field's identity.
	Alias string
	// Args are encoded into the field's argument list in order.
	Args Args
	// Path addresses the selection set the field is appended to. An empty
	// path targets the root selection set of every operation.
	Path Path
	// Fields are appended under the new field as subfields.
	Fields []FieldSpec
	// Spread appends fragment spreads under the new field.
	Spread []string
	// SpreadOn appends inline fragments with type conditions under the new
	// field.
	SpreadOn []InlineSpec
}

// FieldSpec describes a subfield. Subfield specs must not carry a path.
type FieldSpec struct {
	Name    string
	Options FieldOptions
}

// InlineSpec describes an inline fragment added under a new field.
type InlineSpec struct {
	Type   string
	Fields []FieldSpec
}

// AddField appends a field to the selection set at opts.Path, creating
// missing intermediate fields along the way.
func AddField(doc *ast.QueryDocument, name string, opts *FieldOptions) (*ast.QueryDocument, error) {
	if opts == nil {
		opts = &FieldOptions{}
	}
	field, err := buildField(name, opts)
	if err != nil {
		return nil, err
	}
	return updateSelections(doc, opts.Path, true, func(set ast.SelectionSet) (ast.SelectionSet, error) {
		out := make(ast.SelectionSet, len(set), len(set)+1)
		copy(out, set)
		return append(out, field), nil
	})
}

// RemoveField deletes the first selection at path whose identity matches
// name. A missing field is a silent no-op.
func RemoveField(doc *ast.QueryDocument, name string, path Path) (*ast.QueryDocument, error) {
	return updateSelections(doc, path, false, func(set ast.SelectionSet) (ast.SelectionSet, error) {
		for i, sel := range set {
			field, ok := sel.(*ast.Field)
			if !ok || fieldIdentity(field) != name {
				continue
			}
			out := make(ast.SelectionSet, 0, len(set)-1)
			out = append(out, set[:i]...)
			return append(out, set[i+1:]...), nil
		}
		return set, nil
	})
}

// ReplaceField substitutes the alias and arguments of the field at path
// whose identity matches name, keeping its selection set. A missing field is
// a silent no-op.
func ReplaceField(doc *ast.QueryDocument, name string, opts *FieldOptions) (*ast.QueryDocument, error) {
	if opts == nil {
		opts = &FieldOptions{}
	}
	args, err := encodeArguments(opts.Args)
	if err != nil {
		return nil, err
	}
	return updateSelections(doc, opts.Path, false, func(set ast.SelectionSet) (ast.SelectionSet, error) {
		for i, sel := range set {
			field, ok := sel.(*ast.Field)
			if !ok || fieldIdentity(field) != name {
				continue
			}
			cp := *field
			cp.Alias = opts.Alias
			cp.Arguments = args
			return replaceSelection(set, i, &cp), nil
		}
		return set, nil
	})
}

// buildField constructs a field and its subtree from options. Paths are only
// meaningful at the top level, so any nested spec carrying one is rejected.
func buildField(name string, opts *FieldOptions) (*ast.Field, error) {
	args, err := encodeArguments(opts.Args)
	if err != nil {
		return nil, fmt.Errorf("field %q: %w", name, err)
	}
	field := &ast.Field{Name: name, Alias: opts.Alias, Arguments: args}

	set, err := buildSelections(opts.Fields, opts.Spread, opts.SpreadOn)
	if err != nil {
		return nil, fmt.Errorf("field %q: %w", name, err)
	}
	field.SelectionSet = set
	return field, nil
}

func buildSelections(fields []FieldSpec, spread []string, spreadOn []InlineSpec) (ast.SelectionSet, error) {
	var set ast.SelectionSet
	for _, spec := range fields {
		if len(spec.Options.Path) > 0 {
			return nil, fmt.Errorf("%w: subfield %q must not carry a path", ErrInvalidSpec, spec.Name)
		}
		sub, err := buildField(spec.Name, &spec.Options)
		if err != nil {
			return nil, err
		}
		set = append(set, sub)
	}
	for _, fragment := range spread {
		set = append(set, &ast.FragmentSpread{Name: fragment})
	}
	for _, inline := range spreadOn {
		sub, err := buildSelections(inline.Fields, nil, nil)
		if err != nil {
			return nil, err
		}
		set = append(set, &ast.InlineFragment{TypeCondition: inline.Type, SelectionSet: sub})
	}
	return set, nil
}
