package graph

import (
	"fmt"
	"sort"

	"github.com/oasgraph/oasgraph/oaserrors"
)

// Node is implemented by every object in the graph. A node carries its type
// descriptor and an explicit, ordered manifest of its public fields; the
// manifest drives flattening so that serialization order never depends on
// runtime introspection.
type Node interface {
	// Type returns the node's type descriptor.
	Type() *NodeType

	fields() []field
}

// NodeType describes one node kind: its name, key-casing convention, alias
// table, and raw-mapping constructor. Types are declared once as package
// variables and shared by every instance.
type NodeType struct {
	// Name identifies the type in error messages.
	Name string
	// Camelback selects camelCase conversion of internal snake_case field
	// names on output.
	Camelback bool
	// Aliases maps an external-facing key to the internal field name it
	// represents. The table is consulted in both directions: raw-mapping
	// input renames external keys to internal names before construction,
	// and flattening renames internal names back to their external keys.
	Aliases map[string]string
	// New constructs a node from a raw mapping whose alias keys have
	// already been resolved.
	New func(raw map[string]any) (Node, error)
}

// Coerce converts a raw value into a canonical node of this type.
//
// Three input shapes are accepted: an already-canonical node of this exact
// type is returned unchanged, while a node of any other type fails with a
// TypeMismatchError so that a typed container can never hold a foreign
// node; a map[string]any has its alias keys resolved and is handed to the
// type's constructor; anything else fails with a TypeMismatchError.
// Construction failures are logged and wrapped in a ConstructionError that
// preserves the underlying cause.
func (t *NodeType) Coerce(value any) (Node, error) {
	switch v := value.(type) {
	case Node:
		if v.Type() != t {
			return nil, &oaserrors.TypeMismatchError{
				Value:    value,
				Actual:   v.Type().Name,
				Expected: t.Name,
			}
		}
		return v, nil
	case map[string]any:
		raw := make(map[string]any, len(v))
		for k, val := range v {
			raw[k] = val
		}
		for ext, internal := range t.Aliases {
			if aliased, ok := raw[ext]; ok {
				delete(raw, ext)
				raw[internal] = aliased
			}
		}
		n, err := t.New(raw)
		if err != nil {
			pkgLogger.Error("node construction failed",
				"type", t.Name, "input", fmt.Sprintf("%v", v), "error", err)
			return nil, &oaserrors.ConstructionError{TypeName: t.Name, Input: v, Cause: err}
		}
		return n, nil
	default:
		return nil, &oaserrors.TypeMismatchError{
			Value:    value,
			Actual:   fmt.Sprintf("%T", value),
			Expected: t.Name,
		}
	}
}

// coerceAs coerces value through t and asserts the concrete node type.
// An already-canonical node of a different type is rejected rather than
// stored in a slot it does not belong in.
func coerceAs[T Node](t *NodeType, value any) (T, error) {
	var zero T
	n, err := t.Coerce(value)
	if err != nil {
		return zero, err
	}
	typed, ok := n.(T)
	if !ok {
		return zero, &oaserrors.TypeMismatchError{
			Value:    value,
			Actual:   fmt.Sprintf("%T", n),
			Expected: t.Name,
		}
	}
	return typed, nil
}

// rawFields wraps a raw input mapping with typed, consuming accessors.
// Every accessor removes the key it reads so that leftover keys can be
// rejected once construction is complete.
type rawFields struct {
	typeName string
	m        map[string]any
}

func newRawFields(typeName string, raw map[string]any) *rawFields {
	return &rawFields{typeName: typeName, m: raw}
}

func (r *rawFields) fieldError(key, expected string, value any) error {
	return &oaserrors.TypeMismatchError{
		Value:    value,
		Actual:   fmt.Sprintf("%T", value),
		Expected: expected,
		Message:  fmt.Sprintf("field %q of %s", key, r.typeName),
	}
}

// str pops a string field; absent fields yield "".
func (r *rawFields) str(key string) (string, error) {
	v, ok := r.m[key]
	if !ok {
		return "", nil
	}
	delete(r.m, key)
	s, ok := v.(string)
	if !ok {
		return "", r.fieldError(key, "string", v)
	}
	return s, nil
}

// boolean pops a bool field; absent fields yield false.
func (r *rawFields) boolean(key string) (bool, error) {
	v, ok := r.m[key]
	if !ok {
		return false, nil
	}
	delete(r.m, key)
	b, ok := v.(bool)
	if !ok {
		return false, r.fieldError(key, "bool", v)
	}
	return b, nil
}

// integer pops an int field, reporting presence separately so required
// fields can be distinguished from zero values.
func (r *rawFields) integer(key string) (int, bool, error) {
	v, ok := r.m[key]
	if !ok {
		return 0, false, nil
	}
	delete(r.m, key)
	switch n := v.(type) {
	case int:
		return n, true, nil
	case int64:
		return int(n), true, nil
	case float64:
		if n == float64(int(n)) {
			return int(n), true, nil
		}
	}
	return 0, false, r.fieldError(key, "int", v)
}

// anyValue pops a field of any shape; absent fields yield nil.
func (r *rawFields) anyValue(key string) any {
	v, ok := r.m[key]
	if !ok {
		return nil
	}
	delete(r.m, key)
	return v
}

// anyMap pops a map[string]any field; absent fields yield nil.
func (r *rawFields) anyMap(key string) (map[string]any, error) {
	v, ok := r.m[key]
	if !ok {
		return nil, nil
	}
	delete(r.m, key)
	m, ok := v.(map[string]any)
	if !ok {
		return nil, r.fieldError(key, "map[string]any", v)
	}
	return m, nil
}

// strMap pops a map of string to string, accepting either a typed map or a
// map[string]any whose values are all strings.
func (r *rawFields) strMap(key string) (map[string]string, error) {
	v, ok := r.m[key]
	if !ok {
		return nil, nil
	}
	delete(r.m, key)
	switch m := v.(type) {
	case map[string]string:
		return m, nil
	case map[string]any:
		out := make(map[string]string, len(m))
		for k, val := range m {
			s, ok := val.(string)
			if !ok {
				return nil, r.fieldError(key, "map[string]string", v)
			}
			out[k] = s
		}
		return out, nil
	}
	return nil, r.fieldError(key, "map[string]string", v)
}

// strSlice pops a slice of strings, accepting either a typed slice or an
// []any whose elements are all strings.
func (r *rawFields) strSlice(key string) ([]string, error) {
	v, ok := r.m[key]
	if !ok {
		return nil, nil
	}
	delete(r.m, key)
	switch s := v.(type) {
	case []string:
		return s, nil
	case []any:
		out := make([]string, 0, len(s))
		for _, item := range s {
			str, ok := item.(string)
			if !ok {
				return nil, r.fieldError(key, "[]string", v)
			}
			out = append(out, str)
		}
		return out, nil
	}
	return nil, r.fieldError(key, "[]string", v)
}

// finish rejects any keys the constructor did not consume.
func (r *rawFields) finish() error {
	if len(r.m) == 0 {
		return nil
	}
	keys := make([]string, 0, len(r.m))
	for k := range r.m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return &oaserrors.InvariantViolationError{
		TypeName: r.typeName,
		Message:  fmt.Sprintf("unknown fields %v", keys),
	}
}

// missingField builds the invariant error for a required field that was
// absent from a raw mapping.
func missingField(typeName, field string) error {
	return &oaserrors.InvariantViolationError{
		TypeName: typeName,
		Field:    field,
		Message:  "required field is missing",
	}
}
