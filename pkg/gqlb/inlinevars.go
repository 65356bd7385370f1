package gqlb

import (
	"github.com/vektah/gqlparser/v2/ast"
)

// InlineVariables substitutes literals for variable references. For each
// name in vars, the matching variable definition is removed from every
// operation and every reference to $name, including references nested in
// list and object values and in directive arguments, is replaced by the
// encoded literal. Fragment definitions are rewritten too.
func InlineVariables(doc *ast.QueryDocument, vars map[string]any) (*ast.QueryDocument, error) {
	if len(vars) == 0 {
		return doc, nil
	}
	encoded := make(map[string]*ast.Value, len(vars))
	for name, v := range vars {
		val, err := EncodeValue(v)
		if err != nil {
			return nil, err
		}
		encoded[name] = val
	}

	out := *doc
	ops := make(ast.OperationList, len(doc.Operations))
	for i, op := range doc.Operations {
		cp := *op
		var defs ast.VariableDefinitionList
		for _, def := range op.VariableDefinitions {
			if _, inlined := encoded[def.Variable]; !inlined {
				defs = append(defs, def)
			}
		}
		cp.VariableDefinitions = defs
		cp.Directives = substituteDirectives(op.Directives, encoded)
		cp.SelectionSet = substituteSet(op.SelectionSet, encoded)
		ops[i] = &cp
	}
	out.Operations = ops

	frags := make(ast.FragmentDefinitionList, len(doc.Fragments))
	for i, frag := range doc.Fragments {
		cp := *frag
		cp.Directives = substituteDirectives(frag.Directives, encoded)
		cp.SelectionSet = substituteSet(frag.SelectionSet, encoded)
		frags[i] = &cp
	}
	out.Fragments = frags
	return &out, nil
}

func substituteSet(set ast.SelectionSet, vars map[string]*ast.Value) ast.SelectionSet {
	if set == nil {
		return nil
	}
	out := make(ast.SelectionSet, len(set))
	for i, sel := range set {
		switch s := sel.(type) {
		case *ast.Field:
			cp := *s
			cp.Arguments = substituteArguments(s.Arguments, vars)
			cp.Directives = substituteDirectives(s.Directives, vars)
			cp.SelectionSet = substituteSet(s.SelectionSet, vars)
			out[i] = &cp
		case *ast.FragmentSpread:
			cp := *s
			cp.Directives = substituteDirectives(s.Directives, vars)
			out[i] = &cp
		case *ast.InlineFragment:
			cp := *s
			cp.Directives = substituteDirectives(s.Directives, vars)
			cp.SelectionSet = substituteSet(s.SelectionSet, vars)
			out[i] = &cp
		default:
			out[i] = sel
		}
	}
	return out
}

func substituteArguments(args ast.ArgumentList, vars map[string]*ast.Value) ast.ArgumentList {
	if args == nil {
		return nil
	}
	out := make(ast.ArgumentList, len(args))
	for i, arg := range args {
		cp := *arg
		cp.Value = substituteValue(arg.Value, vars)
		out[i] = &cp
	}
	return out
}

func substituteDirectives(list ast.DirectiveList, vars map[string]*ast.Value) ast.DirectiveList {
	if list == nil {
		return nil
	}
	out := make(ast.DirectiveList, len(list))
	for i, d := range list {
		cp := *d
		cp.Arguments = substituteArguments(d.Arguments, vars)
		out[i] = &cp
	}
	return out
}

func substituteValue(v *ast.Value, vars map[string]*ast.Value) *ast.Value {
	if v == nil {
		return nil
	}
	switch v.Kind {
	case ast.Variable:
		if replacement, ok := vars[v.Raw]; ok {
			return replacement
		}
		return v
	case ast.ListValue, ast.ObjectValue:
		cp := *v
		children := make(ast.ChildValueList, len(v.Children))
		for i, child := range v.Children {
			ccp := *child
			ccp.Value = substituteValue(child.Value, vars)
			children[i] = &ccp
		}
		cp.Children = children
		return &cp
	default:
		return v
	}
}
