package gqlb

import (
	"sort"
	"strconv"
	"strings"

	"github.com/vektah/gqlparser/v2/ast"
)

// Merge combines two documents into one. Operations are grouped by kind and
// each group is folded into a single definition: variable definitions are
// unioned by name (first occurrence wins) and selection sets are
// concatenated, then deduplicated recursively. Fragments are concatenated
// and deduplicated by name, first occurrence wins.
//
// Both inputs may be documents or GraphQL source text.
func Merge(a, b any) (*ast.QueryDocument, error) {
	docA, err := Parse(a)
	if err != nil {
		return nil, err
	}
	docB, err := Parse(b)
	if err != nil {
		return nil, err
	}

	out := &ast.QueryDocument{}
	byKind := map[ast.Operation]int{}
	for _, op := range concatOperations(docA.Operations, docB.Operations) {
		i, grouped := byKind[op.Operation]
		if !grouped {
			byKind[op.Operation] = len(out.Operations)
			cp := *op
			out.Operations = append(out.Operations, &cp)
			continue
		}
		base := out.Operations[i]
		cp := *base
		if cp.Name == "" {
			cp.Name = op.Name
		}
		cp.VariableDefinitions = unionVariableDefinitions(base.VariableDefinitions, op.VariableDefinitions)
		cp.Directives = unionDirectives(base.Directives, op.Directives)
		merged := make(ast.SelectionSet, 0, len(base.SelectionSet)+len(op.SelectionSet))
		merged = append(merged, base.SelectionSet...)
		cp.SelectionSet = append(merged, op.SelectionSet...)
		out.Operations[i] = &cp
	}
	for i, op := range out.Operations {
		cp := *op
		cp.SelectionSet = dedupeSelections(op.SelectionSet)
		out.Operations[i] = &cp
	}

	seen := map[string]bool{}
	for _, frag := range append(append(ast.FragmentDefinitionList{}, docA.Fragments...), docB.Fragments...) {
		if seen[frag.Name] {
			continue
		}
		seen[frag.Name] = true
		out.Fragments = append(out.Fragments, frag)
	}
	return out, nil
}

func concatOperations(a, b ast.OperationList) ast.OperationList {
	out := make(ast.OperationList, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}

// dedupeSelections merges fields sharing the same identity and canonical
// argument signature. The earlier occurrence keeps its position; its
// selection set becomes the deduplicated union of both. Spreads and inline
// fragments pass through untouched.
func dedupeSelections(set ast.SelectionSet) ast.SelectionSet {
	type identity struct {
		name string
		args string
	}
	seen := map[identity]int{}
	var out ast.SelectionSet
	for _, sel := range set {
		field, ok := sel.(*ast.Field)
		if !ok {
			out = append(out, sel)
			continue
		}
		key := identity{fieldIdentity(field), argumentSignature(field.Arguments)}
		if i, dup := seen[key]; dup {
			kept := out[i].(*ast.Field)
			cp := *kept
			union := make(ast.SelectionSet, 0, len(kept.SelectionSet)+len(field.SelectionSet))
			union = append(union, kept.SelectionSet...)
			union = append(union, field.SelectionSet...)
			cp.SelectionSet = dedupeSelections(union)
			out[i] = &cp
			continue
		}
		seen[key] = len(out)
		cp := *field
		cp.SelectionSet = dedupeSelections(field.SelectionSet)
		out = append(out, &cp)
	}
	return out
}

// argumentSignature renders an argument list to a stable textual form:
// arguments sorted by name, each value canonicalized.
func argumentSignature(args ast.ArgumentList) string {
	if len(args) == 0 {
		return ""
	}
	sorted := make(ast.ArgumentList, len(args))
	copy(sorted, args)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })
	parts := make([]string, len(sorted))
	for i, arg := range sorted {
		parts[i] = arg.Name + ":" + canonicalValue(arg.Value)
	}
	return strings.Join(parts, ",")
}

// canonicalValue is like ast.Value.String but sorts object fields by name at
// every depth, so values that differ only in field order compare equal.
func canonicalValue(v *ast.Value) string {
	if v == nil {
		return ""
	}
	switch v.Kind {
	case ast.Variable:
		return "$" + v.Raw
	case ast.StringValue, ast.BlockValue:
		return strconv.Quote(v.Raw)
	case ast.ListValue:
		parts := make([]string, len(v.Children))
		for i, child := range v.Children {
			parts[i] = canonicalValue(child.Value)
		}
		return "[" + strings.Join(parts, ",") + "]"
	case ast.ObjectValue:
		parts := make([]string, len(v.Children))
		for i, child := range v.Children {
			parts[i] = child.Name + ":" + canonicalValue(child.Value)
		}
		sort.Strings(parts)
		return "{" + strings.Join(parts, ",") + "}"
	default:
		return v.Raw
	}
}

func unionVariableDefinitions(a, b ast.VariableDefinitionList) ast.VariableDefinitionList {
	out := copyVariableDefinitions(a)
	for _, def := range b {
		if out.ForName(def.Variable) == nil {
			out = append(out, def)
		}
	}
	return out
}

func unionDirectives(a, b ast.DirectiveList) ast.DirectiveList {
	out := copyDirectives(a)
	for _, d := range b {
		if !containsDirective(out, d) {
			out = append(out, d)
		}
	}
	return out
}

func containsDirective(list ast.DirectiveList, d *ast.Directive) bool {
	for _, have := range list {
		if have.Name == d.Name && argumentSignature(have.Arguments) == argumentSignature(d.Arguments) {
			return true
		}
	}
	return false
}
