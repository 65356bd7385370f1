package gqlb

import (
	"github.com/vektah/gqlparser/v2/ast"
)

const typenameField = "__typename"

// InjectTypenames appends a __typename field to every selection set in the
// document that does not already contain one, including the root selection
// set of each operation and fragment definition. Fields without a selection
// set stay leaves.
func InjectTypenames(doc *ast.QueryDocument) *ast.QueryDocument {
	out := *doc
	ops := make(ast.OperationList, len(doc.Operations))
	for i, op := range doc.Operations {
		cp := *op
		cp.SelectionSet = injectTypename(op.SelectionSet, true)
		ops[i] = &cp
	}
	out.Operations = ops

	frags := make(ast.FragmentDefinitionList, len(doc.Fragments))
	for i, frag := range doc.Fragments {
		cp := *frag
		cp.SelectionSet = injectTypename(frag.SelectionSet, true)
		frags[i] = &cp
	}
	out.Fragments = frags
	return &out
}

// injectTypename rewrites one selection set. Root sets always exist even
// when empty; nested empty sets belong to leaf fields and stay absent.
func injectTypename(set ast.SelectionSet, root bool) ast.SelectionSet {
	if len(set) == 0 && !root {
		return set
	}
	out := make(ast.SelectionSet, 0, len(set)+1)
	present := false
	for _, sel := range set {
		switch s := sel.(type) {
		case *ast.Field:
			if s.Name == typenameField {
				present = true
				out = append(out, s)
				continue
			}
			cp := *s
			cp.SelectionSet = injectTypename(s.SelectionSet, false)
			out = append(out, &cp)
		case *ast.InlineFragment:
			cp := *s
			cp.SelectionSet = injectTypename(s.SelectionSet, false)
			out = append(out, &cp)
		default:
			out = append(out, sel)
		}
	}
	if !present {
		out = append(out, &ast.Field{Name: typenameField})
	}
	return out
}
