package gqlb

import (
	"github.com/vektah/gqlparser/v2/ast"
)

// selectionUpdater rewrites the selection set at a path endpoint.
type selectionUpdater func(ast.SelectionSet) (ast.SelectionSet, error)

// updateSelections applies fn to the selection set addressed by path and
// returns a new document, rebuilding parents along the touched spine.
//
// When vivify is true, missing fields along the path are created from their
// path elements. Inline elements never vivify: a failed inline match leaves
// the document unchanged.
func updateSelections(doc *ast.QueryDocument, path Path, vivify bool, fn selectionUpdater) (*ast.QueryDocument, error) {
	out := *doc

	// Fragment-first rule: a leading element that names a known fragment
	// definition scopes the edit to that fragment.
	if frag := fragmentTarget(doc, path); frag != nil {
		set, _, err := updateSet(frag.SelectionSet, path[1:], vivify, fn)
		if err != nil {
			return nil, err
		}
		frags := make(ast.FragmentDefinitionList, len(doc.Fragments))
		for i, f := range doc.Fragments {
			if f == frag {
				cp := *f
				cp.SelectionSet = set
				frags[i] = &cp
			} else {
				frags[i] = f
			}
		}
		out.Fragments = frags
		return &out, nil
	}

	ops := make(ast.OperationList, len(doc.Operations))
	for i, op := range doc.Operations {
		set, _, err := updateSet(op.SelectionSet, path, vivify, fn)
		if err != nil {
			return nil, err
		}
		cp := *op
		cp.SelectionSet = set
		ops[i] = &cp
	}
	out.Operations = ops
	return &out, nil
}

func fragmentTarget(doc *ast.QueryDocument, path Path) *ast.FragmentDefinition {
	if len(path) == 0 || path[0].Inline || path[0].Name == "" {
		return nil
	}
	return doc.Fragments.ForName(path[0].Name)
}

// updateSet folds the path into the set. The boolean result reports whether
// fn was reached; a failed inline match or a missing field without vivify
// returns the set unchanged.
func updateSet(set ast.SelectionSet, path Path, vivify bool, fn selectionUpdater) (ast.SelectionSet, bool, error) {
	if len(path) == 0 {
		out, err := fn(set)
		return out, true, err
	}
	head, rest := path[0], path[1:]

	for i, sel := range set {
		if !head.matches(sel) {
			continue
		}
		switch s := sel.(type) {
		case *ast.Field:
			child, ok, err := updateSet(s.SelectionSet, rest, vivify, fn)
			if err != nil || !ok {
				return set, ok, err
			}
			cp := *s
			cp.SelectionSet = child
			return replaceSelection(set, i, &cp), true, nil
		case *ast.InlineFragment:
			child, ok, err := updateSet(s.SelectionSet, rest, vivify, fn)
			if err != nil || !ok {
				return set, ok, err
			}
			cp := *s
			cp.SelectionSet = child
			return replaceSelection(set, i, &cp), true, nil
		}
	}

	if head.Inline || !vivify {
		return set, false, nil
	}

	field, err := head.newField()
	if err != nil {
		return nil, false, err
	}
	child, ok, err := updateSet(nil, rest, vivify, fn)
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return set, false, nil
	}
	field.SelectionSet = child
	out := make(ast.SelectionSet, len(set), len(set)+1)
	copy(out, set)
	return append(out, field), true, nil
}

// updateField applies fn to the field addressed by path. The field receives
// a fresh copy; fn may edit it in place and return it. An empty path or an
// inline endpoint is a no-op.
func updateField(doc *ast.QueryDocument, path Path, vivify bool, fn func(*ast.Field) (*ast.Field, error)) (*ast.QueryDocument, error) {
	if len(path) == 0 {
		return doc, nil
	}
	last := path[len(path)-1]
	if last.Inline {
		return doc, nil
	}
	return updateSelections(doc, path[:len(path)-1], vivify, func(set ast.SelectionSet) (ast.SelectionSet, error) {
		for i, sel := range set {
			if !last.matches(sel) {
				continue
			}
			cp := *(sel.(*ast.Field))
			replaced, err := fn(&cp)
			if err != nil {
				return nil, err
			}
			return replaceSelection(set, i, replaced), nil
		}
		if !vivify {
			return set, nil
		}
		field, err := last.newField()
		if err != nil {
			return nil, err
		}
		replaced, err := fn(field)
		if err != nil {
			return nil, err
		}
		out := make(ast.SelectionSet, len(set), len(set)+1)
		copy(out, set)
		return append(out, replaced), nil
	})
}
