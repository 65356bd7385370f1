package gqlb

import (
	"github.com/vektah/gqlparser/v2/ast"
)

// FragmentOptions configures DefineFragment and AddInlineFragment.
type FragmentOptions struct {
	Fields []FieldSpec
}

// DefineFragment appends a named fragment definition on the given type.
// opts.Fields populates its selection set with the usual subfield rules.
func DefineFragment(doc *ast.QueryDocument, name, onType string, opts *FragmentOptions) (*ast.QueryDocument, error) {
	if opts == nil {
		opts = &FragmentOptions{}
	}
	set, err := buildSelections(opts.Fields, nil, nil)
	if err != nil {
		return nil, err
	}
	out := *doc
	frags := make(ast.FragmentDefinitionList, len(doc.Fragments), len(doc.Fragments)+1)
	copy(frags, doc.Fragments)
	out.Fragments = append(frags, &ast.FragmentDefinition{
		Name:          name,
		TypeCondition: onType,
		SelectionSet:  set,
	})
	return &out, nil
}

// RemoveFragment drops the fragment definition with the given name.
func RemoveFragment(doc *ast.QueryDocument, name string) *ast.QueryDocument {
	out := *doc
	var frags ast.FragmentDefinitionList
	for _, frag := range doc.Fragments {
		if frag.Name != name {
			frags = append(frags, frag)
		}
	}
	out.Fragments = frags
	return &out
}

// AddInlineFragment appends an inline fragment with the given type condition
// to the selection set at path. Later edits address it with a path ending in
// On(typeCondition).
func AddInlineFragment(doc *ast.QueryDocument, typeCondition string, path Path, opts *FragmentOptions) (*ast.QueryDocument, error) {
	if opts == nil {
		opts = &FragmentOptions{}
	}
	set, err := buildSelections(opts.Fields, nil, nil)
	if err != nil {
		return nil, err
	}
	inline := &ast.InlineFragment{TypeCondition: typeCondition, SelectionSet: set}
	return updateSelections(doc, path, true, func(set ast.SelectionSet) (ast.SelectionSet, error) {
		out := make(ast.SelectionSet, len(set), len(set)+1)
		copy(out, set)
		return append(out, inline), nil
	})
}

// SpreadFragment appends a fragment spread at the selection set at path.
func SpreadFragment(doc *ast.QueryDocument, name string, path Path) (*ast.QueryDocument, error) {
	return updateSelections(doc, path, true, func(set ast.SelectionSet) (ast.SelectionSet, error) {
		out := make(ast.SelectionSet, len(set), len(set)+1)
		copy(out, set)
		return append(out, &ast.FragmentSpread{Name: name}), nil
	})
}

// InlineFragments replaces every resolvable fragment spread with the spread
// fragment's selections, flattening chained fragments, then drops all
// fragment definitions. Spreads that do not resolve, including spreads in a
// definition cycle, are left in place.
func InlineFragments(doc *ast.QueryDocument) *ast.QueryDocument {
	inliner := spreadInliner{fragments: doc.Fragments, active: map[string]bool{}}
	out := *doc
	ops := make(ast.OperationList, len(doc.Operations))
	for i, op := range doc.Operations {
		cp := *op
		cp.SelectionSet = inliner.inlineSet(op.SelectionSet)
		ops[i] = &cp
	}
	out.Operations = ops
	out.Fragments = nil
	return &out
}

type spreadInliner struct {
	fragments ast.FragmentDefinitionList
	active    map[string]bool
}

func (r spreadInliner) inlineSet(set ast.SelectionSet) ast.SelectionSet {
	var out ast.SelectionSet
	for _, sel := range set {
		switch s := sel.(type) {
		case *ast.FragmentSpread:
			frag := r.fragments.ForName(s.Name)
			if frag == nil || r.active[s.Name] {
				out = append(out, s)
				continue
			}
			r.active[s.Name] = true
			out = append(out, r.inlineSet(frag.SelectionSet)...)
			delete(r.active, s.Name)
		case *ast.Field:
			cp := *s
			cp.SelectionSet = r.inlineSet(s.SelectionSet)
			out = append(out, &cp)
		case *ast.InlineFragment:
			cp := *s
			cp.SelectionSet = r.inlineSet(s.SelectionSet)
			out = append(out, &cp)
		}
	}
	return out
}
