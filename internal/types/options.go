package types

import (
	"fmt"
	"maps"
	"slices"

	"gopkg.in/yaml.v3"
)

type (
	// Option is a single rendering option. Value is a string, a bool, or a
	// nested Options group.
	Option struct {
		Key   string
		Value any
	}

	// Options is an ordered set of rendering options. Order is load-bearing:
	// it fixes the emitted line order, which keeps regeneration byte-stable.
	Options []Option
)

// Get returns the value for key and whether it is present.
func (o Options) Get(key string) (any, bool) {
	for _, opt := range o {
		if opt.Key == key {
			return opt.Value, true
		}
	}
	return nil, false
}

// Merge returns a copy of o with overrides applied shallowly: keys already
// present keep their position and take the override value whole, new keys
// append in override order. Nested groups are replaced, never deep-merged.
func (o Options) Merge(overrides Options) Options {
	merged := slices.Clone(o)
	for _, ov := range overrides {
		replaced := false
		for i := range merged {
			if merged[i].Key == ov.Key {
				merged[i].Value = ov.Value
				replaced = true
				break
			}
		}
		if !replaced {
			merged = append(merged, ov)
		}
	}
	return merged
}

// UnmarshalYAML decodes a YAML mapping into ordered pairs, preserving the
// author's key order. Nested mappings become nested Options.
func (o *Options) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("options must be a mapping (line %d)", value.Line)
	}
	opts := make(Options, 0, len(value.Content)/2)
	for i := 0; i+1 < len(value.Content); i += 2 {
		keyNode, valNode := value.Content[i], value.Content[i+1]
		var key string
		if err := keyNode.Decode(&key); err != nil {
			return fmt.Errorf("invalid option key: %w", err)
		}
		val, err := decodeOptionValue(valNode)
		if err != nil {
			return fmt.Errorf("option %q: %w", key, err)
		}
		opts = append(opts, Option{Key: key, Value: val})
	}
	*o = opts
	return nil
}

func decodeOptionValue(node *yaml.Node) (any, error) {
	switch node.Kind {
	case yaml.MappingNode:
		var nested Options
		if err := nested.UnmarshalYAML(node); err != nil {
			return nil, err
		}
		return nested, nil
	case yaml.ScalarNode:
		var v any
		if err := node.Decode(&v); err != nil {
			return nil, err
		}
		return v, nil
	default:
		return nil, fmt.Errorf("unsupported value kind (line %d): values are strings, bools, or mappings", node.Line)
	}
}

// OptionsFromMap converts an unordered map into Options with sorted keys, so
// callers that cannot express order still produce deterministic output.
// Values of type map[string]any become nested Options.
func OptionsFromMap(m map[string]any) Options {
	keys := slices.Sorted(maps.Keys(m))
	opts := make(Options, 0, len(keys))
	for _, k := range keys {
		v := m[k]
		if nested, ok := v.(map[string]any); ok {
			v = OptionsFromMap(nested)
		}
		opts = append(opts, Option{Key: k, Value: v})
	}
	return opts
}
