package gqlb

import (
	"fmt"
)

// Decoders turn the loosely typed option values accepted by Build into the
// typed forms the operations consume.

func decodePath(v any) (Path, error) {
	switch x := v.(type) {
	case nil:
		return nil, nil
	case Path:
		return x, nil
	case PathElement:
		return Path{x}, nil
	case string:
		return Path{{Name: x}}, nil
	case []string:
		out := make(Path, len(x))
		for i, name := range x {
			out[i] = PathElement{Name: name}
		}
		return out, nil
	case []any:
		out := make(Path, 0, len(x))
		for _, elem := range x {
			decoded, err := decodePathElement(elem)
			if err != nil {
				return nil, err
			}
			out = append(out, decoded)
		}
		return out, nil
	}
	return nil, fmt.Errorf("cannot use %T as a path", v)
}

func decodePathElement(v any) (PathElement, error) {
	switch x := v.(type) {
	case nil:
		return PathElement{Inline: true}, nil
	case string:
		return PathElement{Name: x}, nil
	case PathElement:
		return x, nil
	case map[string]any:
		elem := PathElement{}
		for key, value := range x {
			switch key {
			case "name":
				elem.Name, _ = value.(string)
			case "alias":
				elem.Alias, _ = value.(string)
			case "type":
				elem.Type, _ = value.(string)
			case "args":
				args, err := decodeArgs(value)
				if err != nil {
					return PathElement{}, err
				}
				elem.Args = args
			default:
				return PathElement{}, fmt.Errorf("unknown path element option %q", key)
			}
		}
		// No name means an inline-fragment element.
		elem.Inline = elem.Name == ""
		return elem, nil
	}
	return PathElement{}, fmt.Errorf("cannot use %T as a path element", v)
}

func decodeArgs(v any) (Args, error) {
	switch x := v.(type) {
	case nil:
		return nil, nil
	case Args:
		return x, nil
	case map[string]any:
		return ArgsFromMap(x), nil
	}
	return nil, fmt.Errorf("cannot use %T as arguments", v)
}

func decodeFieldOptions(m map[string]any) (*FieldOptions, error) {
	opts := &FieldOptions{}
	for key, value := range m {
		switch key {
		case "alias":
			alias, ok := value.(string)
			if !ok {
				return nil, fmt.Errorf("alias must be a string, got %T", value)
			}
			opts.Alias = alias
		case "args":
			args, err := decodeArgs(value)
			if err != nil {
				return nil, err
			}
			opts.Args = args
		case "path":
			path, err := decodePath(value)
			if err != nil {
				return nil, err
			}
			opts.Path = path
		case "fields":
			fields, err := decodeFieldSpecs(value)
			if err != nil {
				return nil, err
			}
			opts.Fields = fields
		case "spread":
			spread, err := decodeStrings(value)
			if err != nil {
				return nil, fmt.Errorf("spread: %w", err)
			}
			opts.Spread = spread
		case "spread_on":
			specs, err := decodeInlineSpecs(value)
			if err != nil {
				return nil, err
			}
			opts.SpreadOn = specs
		default:
			return nil, fmt.Errorf("unknown field option %q", key)
		}
	}
	return opts, nil
}

func decodeFieldSpecs(v any) ([]FieldSpec, error) {
	switch x := v.(type) {
	case nil:
		return nil, nil
	case []FieldSpec:
		return x, nil
	case []string:
		out := make([]FieldSpec, len(x))
		for i, name := range x {
			out[i] = FieldSpec{Name: name}
		}
		return out, nil
	case []any:
		out := make([]FieldSpec, 0, len(x))
		for _, elem := range x {
			spec, err := decodeFieldSpec(elem)
			if err != nil {
				return nil, err
			}
			out = append(out, spec)
		}
		return out, nil
	}
	return nil, fmt.Errorf("cannot use %T as field specs", v)
}

func decodeFieldSpec(v any) (FieldSpec, error) {
	switch x := v.(type) {
	case string:
		return FieldSpec{Name: x}, nil
	case FieldSpec:
		return x, nil
	case []any:
		if len(x) != 2 {
			return FieldSpec{}, fmt.Errorf("field spec pair must be (name, options), got %d elements", len(x))
		}
		name, ok := x[0].(string)
		if !ok {
			return FieldSpec{}, fmt.Errorf("field spec name must be a string, got %T", x[0])
		}
		m, ok := x[1].(map[string]any)
		if !ok {
			return FieldSpec{}, fmt.Errorf("field spec options must be a map, got %T", x[1])
		}
		opts, err := decodeFieldOptions(m)
		if err != nil {
			return FieldSpec{}, err
		}
		return FieldSpec{Name: name, Options: *opts}, nil
	}
	return FieldSpec{}, fmt.Errorf("cannot use %T as a field spec", v)
}

func decodeInlineSpecs(v any) ([]InlineSpec, error) {
	switch x := v.(type) {
	case nil:
		return nil, nil
	case []InlineSpec:
		return x, nil
	case []any:
		out := make([]InlineSpec, 0, len(x))
		for _, elem := range x {
			spec, err := decodeInlineSpec(elem)
			if err != nil {
				return nil, err
			}
			out = append(out, spec)
		}
		return out, nil
	}
	return nil, fmt.Errorf("cannot use %T as inline fragment specs", v)
}

func decodeInlineSpec(v any) (InlineSpec, error) {
	switch x := v.(type) {
	case string:
		return InlineSpec{Type: x}, nil
	case InlineSpec:
		return x, nil
	case []any:
		if len(x) != 2 {
			return InlineSpec{}, fmt.Errorf("inline fragment spec pair must be (type, options), got %d elements", len(x))
		}
		onType, ok := x[0].(string)
		if !ok {
			return InlineSpec{}, fmt.Errorf("inline fragment type must be a string, got %T", x[0])
		}
		m, ok := x[1].(map[string]any)
		if !ok {
			return InlineSpec{}, fmt.Errorf("inline fragment options must be a map, got %T", x[1])
		}
		fields, err := decodeFieldSpecs(m["fields"])
		if err != nil {
			return InlineSpec{}, err
		}
		return InlineSpec{Type: onType, Fields: fields}, nil
	}
	return InlineSpec{}, fmt.Errorf("cannot use %T as an inline fragment spec", v)
}

func decodeStrings(v any) ([]string, error) {
	switch x := v.(type) {
	case nil:
		return nil, nil
	case string:
		return []string{x}, nil
	case []string:
		return x, nil
	case []any:
		out := make([]string, 0, len(x))
		for _, elem := range x {
			s, ok := elem.(string)
			if !ok {
				return nil, fmt.Errorf("expected a string, got %T", elem)
			}
			out = append(out, s)
		}
		return out, nil
	}
	return nil, fmt.Errorf("expected strings, got %T", v)
}
