package graph

import (
	"sort"

	"github.com/oasgraph/oasgraph/oaserrors"
)

// field is one entry of a node's ordered serialization manifest.
type field struct {
	name  string
	value any
	// emitEmpty forces emission even when the value is empty or zero.
	// Used for booleans whose false value is meaningful on the wire.
	emitEmpty bool
}

func newField(name string, value any) field {
	return field{name: name, value: value}
}

func keepField(name string, value any) field {
	return field{name: name, value: value, emitEmpty: true}
}

// NodeList is an ordered sequence of coerced nodes of one declared element
// type. Every appended value passes through the coercion protocol before it
// is stored; iteration order equals append order.
type NodeList struct {
	elem  *NodeType
	items []Node
}

func newNodeList(elem *NodeType) *NodeList {
	return &NodeList{elem: elem}
}

// Append coerces value and stores the resulting node. Appending to a list
// with no declared element type fails with a TypeMismatchError: lists must
// always be obtained from the node that declares them, never built bare.
func (l *NodeList) Append(value any) error {
	if l == nil || l.elem == nil {
		return &oaserrors.TypeMismatchError{
			Value:   value,
			Message: "list has no declared element type",
		}
	}
	n, err := l.elem.Coerce(value)
	if err != nil {
		return err
	}
	l.items = append(l.items, n)
	return nil
}

// Len returns the number of elements. nil safe.
func (l *NodeList) Len() int {
	if l == nil {
		return 0
	}
	return len(l.items)
}

// Items returns the elements in append order. nil safe.
func (l *NodeList) Items() []Node {
	if l == nil {
		return nil
	}
	return l.items
}

// NodeMap is a keyed collection of coerced nodes of one declared element
// type ("map mode"). Entries accumulate incrementally via Set or are
// replaced wholesale via Replace; both paths coerce every value.
// Keys iterates in lexicographic order, which for status-code keys is the
// ascending numeric order the response map requires.
type NodeMap struct {
	elem *NodeType
	m    map[string]Node
}

func newNodeMap(elem *NodeType) *NodeMap {
	return &NodeMap{elem: elem, m: make(map[string]Node)}
}

// Set coerces value and stores it under key without disturbing other
// entries. An existing entry under the same key is overwritten; Set is the
// only operation that may do so.
func (m *NodeMap) Set(key string, value any) error {
	if m == nil || m.elem == nil {
		return &oaserrors.TypeMismatchError{
			Value:   value,
			Message: "map has no declared element type",
		}
	}
	n, err := m.elem.Coerce(value)
	if err != nil {
		return err
	}
	if m.m == nil {
		m.m = make(map[string]Node)
	}
	m.m[key] = n
	return nil
}

// Replace discards the current entries and coerces every value of the
// supplied mapping, preserving its keys.
func (m *NodeMap) Replace(values map[string]any) error {
	if m == nil || m.elem == nil {
		return &oaserrors.TypeMismatchError{
			Value:   values,
			Message: "map has no declared element type",
		}
	}
	next := make(map[string]Node, len(values))
	for key, value := range values {
		n, err := m.elem.Coerce(value)
		if err != nil {
			return err
		}
		next[key] = n
	}
	m.m = next
	return nil
}

// Get returns the node stored under key. nil safe.
func (m *NodeMap) Get(key string) (Node, bool) {
	if m == nil {
		return nil, false
	}
	n, ok := m.m[key]
	return n, ok
}

// Len returns the number of entries. nil safe.
func (m *NodeMap) Len() int {
	if m == nil {
		return 0
	}
	return len(m.m)
}

// Keys returns the keys in lexicographic order. nil safe.
func (m *NodeMap) Keys() []string {
	if m == nil || len(m.m) == 0 {
		return nil
	}
	keys := make([]string, 0, len(m.m))
	for k := range m.m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
