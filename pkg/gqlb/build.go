package gqlb

import (
	"fmt"

	"github.com/agnivade/levenshtein"
	"github.com/vektah/gqlparser/v2/ast"
)

// Op is one builder step: an operation name from the registry and its
// argument. The argument is normalized before dispatch: a []any becomes
// positional arguments (a trailing map[string]any becomes options), a
// map[string]any becomes options, anything else a single positional
// argument.
type Op struct {
	Name string
	Arg  any
}

// Build applies the operations in order to a fresh document holding one
// empty query operation. An unknown operation name is a configuration error.
func Build(ops ...Op) (*ast.QueryDocument, error) {
	doc := New()
	for _, op := range ops {
		apply, ok := registry[op.Name]
		if !ok {
			if suggestion := closestOperation(op.Name); suggestion != "" {
				return nil, fmt.Errorf("%w: %q, did you mean %q?", ErrUnknownOperation, op.Name, suggestion)
			}
			return nil, fmt.Errorf("%w: %q", ErrUnknownOperation, op.Name)
		}
		next, err := apply(doc, normalizeCall(op.Arg))
		if err != nil {
			return nil, fmt.Errorf("applying %q: %w", op.Name, err)
		}
		doc = next
	}
	return doc, nil
}

type call struct {
	pos  []any
	opts map[string]any
}

func normalizeCall(arg any) call {
	switch v := arg.(type) {
	case nil:
		return call{}
	case map[string]any:
		return call{opts: v}
	case []any:
		c := call{pos: v}
		if n := len(v); n > 0 {
			if m, ok := v[n-1].(map[string]any); ok {
				c.pos, c.opts = v[:n-1], m
			}
		}
		return c
	default:
		return call{pos: []any{arg}}
	}
}

func (c call) str(i int, what string) (string, error) {
	if i >= len(c.pos) {
		return "", fmt.Errorf("missing %s", what)
	}
	s, ok := c.pos[i].(string)
	if !ok {
		return "", fmt.Errorf("%s must be a string, got %T", what, c.pos[i])
	}
	return s, nil
}

func (c call) optStr(i int) string {
	if i < len(c.pos) {
		if s, ok := c.pos[i].(string); ok {
			return s
		}
	}
	return ""
}

func (c call) value(i int, key string) (any, bool) {
	if i < len(c.pos) {
		return c.pos[i], true
	}
	v, ok := c.opts[key]
	return v, ok
}

type applyFunc func(*ast.QueryDocument, call) (*ast.QueryDocument, error)

var registry = map[string]applyFunc{
	"field": func(doc *ast.QueryDocument, c call) (*ast.QueryDocument, error) {
		name, err := c.str(0, "field name")
		if err != nil {
			return nil, err
		}
		opts, err := decodeFieldOptions(c.opts)
		if err != nil {
			return nil, err
		}
		return AddField(doc, name, opts)
	},
	"remove_field": func(doc *ast.QueryDocument, c call) (*ast.QueryDocument, error) {
		name, err := c.str(0, "field name")
		if err != nil {
			return nil, err
		}
		path, err := decodePath(c.opts["path"])
		if err != nil {
			return nil, err
		}
		return RemoveField(doc, name, path)
	},
	"replace_field": func(doc *ast.QueryDocument, c call) (*ast.QueryDocument, error) {
		name, err := c.str(0, "field name")
		if err != nil {
			return nil, err
		}
		opts, err := decodeFieldOptions(c.opts)
		if err != nil {
			return nil, err
		}
		return ReplaceField(doc, name, opts)
	},
	"argument": func(doc *ast.QueryDocument, c call) (*ast.QueryDocument, error) {
		name, err := c.str(0, "argument name")
		if err != nil {
			return nil, err
		}
		path, err := decodePath(c.opts["path"])
		if err != nil {
			return nil, err
		}
		value, _ := c.value(1, "value")
		return AddArgument(doc, name, path, value)
	},
	"remove_argument": func(doc *ast.QueryDocument, c call) (*ast.QueryDocument, error) {
		name, err := c.str(0, "argument name")
		if err != nil {
			return nil, err
		}
		path, err := decodePath(c.opts["path"])
		if err != nil {
			return nil, err
		}
		return RemoveArgument(doc, name, path)
	},
	"replace_argument": func(doc *ast.QueryDocument, c call) (*ast.QueryDocument, error) {
		name, err := c.str(0, "argument name")
		if err != nil {
			return nil, err
		}
		path, err := decodePath(c.opts["path"])
		if err != nil {
			return nil, err
		}
		value, _ := c.value(1, "value")
		return ReplaceArgument(doc, name, path, value)
	},
	"directive": func(doc *ast.QueryDocument, c call) (*ast.QueryDocument, error) {
		name, err := c.str(0, "directive name")
		if err != nil {
			return nil, err
		}
		path, err := decodePath(c.opts["path"])
		if err != nil {
			return nil, err
		}
		args, err := decodeArgs(c.opts["args"])
		if err != nil {
			return nil, err
		}
		return AddDirective(doc, name, path, args)
	},
	"variable": func(doc *ast.QueryDocument, c call) (*ast.QueryDocument, error) {
		name, err := c.str(0, "variable name")
		if err != nil {
			return nil, err
		}
		opts := &VariableOptions{Default: c.opts["default"]}
		if t, ok := c.opts["type"].(string); ok {
			opts.Type = t
		}
		if optional, ok := c.opts["optional"].(bool); ok {
			opts.Optional = optional
		}
		return AddVariable(doc, name, opts)
	},
	"remove_variable": func(doc *ast.QueryDocument, c call) (*ast.QueryDocument, error) {
		name, err := c.str(0, "variable name")
		if err != nil {
			return nil, err
		}
		return RemoveVariable(doc, name), nil
	},
	"type": func(doc *ast.QueryDocument, c call) (*ast.QueryDocument, error) {
		kind, err := c.str(0, "operation type")
		if err != nil {
			return nil, err
		}
		switch ast.Operation(kind) {
		case ast.Query, ast.Mutation, ast.Subscription:
			return SetOperationType(doc, ast.Operation(kind)), nil
		}
		return nil, fmt.Errorf("invalid operation type %q", kind)
	},
	"name": func(doc *ast.QueryDocument, c call) (*ast.QueryDocument, error) {
		name, err := c.str(0, "operation name")
		if err != nil {
			return nil, err
		}
		return SetOperationName(doc, name), nil
	},
	"fragment": func(doc *ast.QueryDocument, c call) (*ast.QueryDocument, error) {
		name, err := c.str(0, "fragment name")
		if err != nil {
			return nil, err
		}
		onType := c.optStr(1)
		if onType == "" {
			if t, ok := c.opts["on"].(string); ok {
				onType = t
			}
		}
		fields, err := decodeFieldSpecs(c.opts["fields"])
		if err != nil {
			return nil, err
		}
		return DefineFragment(doc, name, onType, &FragmentOptions{Fields: fields})
	},
	"remove_fragment": func(doc *ast.QueryDocument, c call) (*ast.QueryDocument, error) {
		name, err := c.str(0, "fragment name")
		if err != nil {
			return nil, err
		}
		return RemoveFragment(doc, name), nil
	},
	"inline_fragment": func(doc *ast.QueryDocument, c call) (*ast.QueryDocument, error) {
		onType := c.optStr(0)
		if onType == "" {
			if t, ok := c.opts["type"].(string); ok {
				onType = t
			}
		}
		path, err := decodePath(c.opts["path"])
		if err != nil {
			return nil, err
		}
		fields, err := decodeFieldSpecs(c.opts["fields"])
		if err != nil {
			return nil, err
		}
		return AddInlineFragment(doc, onType, path, &FragmentOptions{Fields: fields})
	},
	"spread": func(doc *ast.QueryDocument, c call) (*ast.QueryDocument, error) {
		name, err := c.str(0, "fragment name")
		if err != nil {
			return nil, err
		}
		path, err := decodePath(c.opts["path"])
		if err != nil {
			return nil, err
		}
		return SpreadFragment(doc, name, path)
	},
	"inline_fragments": func(doc *ast.QueryDocument, c call) (*ast.QueryDocument, error) {
		return InlineFragments(doc), nil
	},
	"merge": func(doc *ast.QueryDocument, c call) (*ast.QueryDocument, error) {
		if len(c.pos) != 1 {
			return nil, fmt.Errorf("merge takes one document")
		}
		return Merge(doc, c.pos[0])
	},
	"inject_typenames": func(doc *ast.QueryDocument, c call) (*ast.QueryDocument, error) {
		return InjectTypenames(doc), nil
	},
	"inline_variables": func(doc *ast.QueryDocument, c call) (*ast.QueryDocument, error) {
		return InlineVariables(doc, c.opts)
	},
}

const maxSuggestionDistance = 5

// closestOperation suggests a registry name for a mistyped one.
func closestOperation(input string) string {
	minDist := -1
	closest := ""
	for name := range registry {
		dist := levenshtein.ComputeDistance(input, name)
		if minDist == -1 || dist < minDist {
			minDist = dist
			closest = name
		}
	}
	if minDist > maxSuggestionDistance {
		return ""
	}
	return closest
}
