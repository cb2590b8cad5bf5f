package vartext

import (
	"context"
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/samber/lo"
)

// MapResolver resolves dot-notation paths (e.g. "user.profile.name") in
// nested maps. Lists render only for spread references, joined with
// DefaultListSeparator; other values render only for plain and default
// references.
type MapResolver map[string]any

// Resolve implements NameResolver.
func (m MapResolver) Resolve(_ context.Context, name string, kind VariableKind) (string, error) {
	return resolveValue(map[string]any(m), name, kind, DefaultListSeparator)
}

// Names returns every leaf path in sorted order.
func (m MapResolver) Names() []string {
	return leafPaths(map[string]any(m))
}

// ValueResolver is a MapResolver with a configurable list separator.
type ValueResolver struct {
	values    map[string]any
	separator string
}

// NewValueResolver creates a resolver over values. An empty separator uses
// DefaultListSeparator.
func NewValueResolver(values map[string]any, separator string) *ValueResolver {
	if values == nil {
		values = make(map[string]any)
	}
	if separator == "" {
		separator = DefaultListSeparator
	}
	return &ValueResolver{values: values, separator: separator}
}

// NewStructResolver creates a resolver over the exported fields of a struct
// (or pointer to struct). Nested structs are decoded as they are reached.
// Field names match case-insensitively, so {{ user.name }} finds User.Name.
func NewStructResolver(v any) (*ValueResolver, error) {
	values := make(map[string]any)
	if err := mapstructure.Decode(v, &values); err != nil {
		return nil, NewResolverError(ErrMsgStructDecode, err)
	}
	return NewValueResolver(values, ""), nil
}

// Resolve implements NameResolver.
func (r *ValueResolver) Resolve(_ context.Context, name string, kind VariableKind) (string, error) {
	return resolveValue(r.values, name, kind, r.separator)
}

// Names returns every leaf path in sorted order.
func (r *ValueResolver) Names() []string {
	return leafPaths(r.values)
}

func resolveValue(values map[string]any, name string, kind VariableKind, separator string) (string, error) {
	value, ok := lookupPath(values, name)
	if !ok {
		return "", ErrNameNotFound
	}
	return formatValue(name, value, kind, separator)
}

// lookupPath walks a dot-notation path through nested maps and structs
func lookupPath(values map[string]any, path string) (any, bool) {
	if path == "" {
		return nil, false
	}

	var current any = values
	for _, part := range strings.Split(path, PathSeparator) {
		m, ok := asMap(current)
		if !ok {
			return nil, false
		}
		val, ok := lookupKey(m, part)
		if !ok {
			return nil, false
		}
		current = val
	}
	return current, true
}

// lookupKey finds key exactly, then case-insensitively in sorted key order
func lookupKey(m map[string]any, key string) (any, bool) {
	if val, ok := m[key]; ok {
		return val, true
	}
	keys := lo.Keys(m)
	sort.Strings(keys)
	for _, k := range keys {
		if strings.EqualFold(k, key) {
			return m[k], true
		}
	}
	return nil, false
}

// asMap converts the map shapes produced by Go literals and the JSON, YAML
// and TOML decoders, and structs, to map[string]any
func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case MapResolver:
		return map[string]any(m), true
	case map[string]string:
		return lo.MapValues(m, func(s string, _ string) any { return s }), true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			out[fmt.Sprint(k)] = val
		}
		return out, true
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer && !rv.IsNil() {
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil, false
	}
	out := make(map[string]any)
	if err := mapstructure.Decode(rv.Interface(), &out); err != nil {
		return nil, false
	}
	return out, true
}

// asList returns the elements of slice and array values, except []byte
func asList(v any) ([]any, bool) {
	if v == nil {
		return nil, false
	}
	if _, isBytes := v.([]byte); isBytes {
		return nil, false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	items := make([]any, rv.Len())
	for i := range items {
		items[i] = rv.Index(i).Interface()
	}
	return items, true
}

func formatValue(name string, value any, kind VariableKind, separator string) (string, error) {
	items, isList := asList(value)
	if kind == KindSpread {
		if !isList {
			return "", NewKindMismatchError(name, kind, ErrMsgNotAScalar)
		}
		parts := make([]string, 0, len(items))
		for _, item := range items {
			s, err := formatScalar(name, item, kind)
			if err != nil {
				return "", err
			}
			parts = append(parts, s)
		}
		return strings.Join(parts, separator), nil
	}
	if isList {
		return "", NewKindMismatchError(name, kind, ErrMsgNotAList)
	}
	return formatScalar(name, value, kind)
}

func formatScalar(name string, value any, kind VariableKind) (string, error) {
	switch v := value.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	case bool:
		return strconv.FormatBool(v), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32), nil
	case fmt.Stringer:
		return v.String(), nil
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10), nil
	case reflect.String:
		return rv.String(), nil
	case reflect.Map, reflect.Struct, reflect.Slice, reflect.Array:
		return "", NewKindMismatchError(name, kind, ErrMsgUnsupportedValue)
	default:
		return fmt.Sprint(value), nil
	}
}

// leafPaths lists the dot-notation path of every non-map value
func leafPaths(values map[string]any) []string {
	var paths []string
	var walk func(prefix string, m map[string]any)
	walk = func(prefix string, m map[string]any) {
		for k, v := range m {
			path := k
			if prefix != "" {
				path = prefix + PathSeparator + k
			}
			if nested, ok := v.(map[string]any); ok {
				walk(path, nested)
				continue
			}
			paths = append(paths, path)
		}
	}
	walk("", values)
	sort.Strings(paths)
	return paths
}
