package graph

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"

	"go.yaml.in/yaml/v4"

	"github.com/oasgraph/oasgraph/oaserrors"
)

// wrapped is implemented by node types whose flattened body nests one level
// under a key of their own (a Content node nests under its content type).
type wrapped interface {
	wrapKey() string
}

// Flatten converts a node and its descendants into an ordered mapping,
// represented as a *yaml.Node mapping tree. Fields appear in each type's
// declared order; empty values are omitted unless the field is marked for
// emission; internal field names become external keys via ToExternalKey and
// the node type's alias table.
//
// Flatten is pure: it never mutates the node and repeated calls yield
// structurally equal trees.
func Flatten(n Node) (*yaml.Node, error) {
	if isNilValue(n) {
		return nil, &oaserrors.TypeMismatchError{Message: "cannot flatten nil node"}
	}
	body, err := flattenFields(n)
	if err != nil {
		return nil, err
	}
	if w, ok := n.(wrapped); ok {
		return mappingNode(scalarNode("!!str", w.wrapKey()), body), nil
	}
	return body, nil
}

func flattenFields(n Node) (*yaml.Node, error) {
	t := n.Type()
	out := mappingNode()
	for _, f := range n.fields() {
		if isEmptyValue(f.value) {
			if !f.emitEmpty {
				continue
			}
			if isNilValue(f.value) {
				continue
			}
		}
		valNode, err := valueNode(f.value)
		if err != nil {
			return nil, err
		}
		out.Content = append(out.Content, scalarNode("!!str", externalKey(t, f.name)), valNode)
	}
	return out, nil
}

// externalKey resolves the output key for an internal field name: an alias
// table entry wins, otherwise the key transform applies.
func externalKey(t *NodeType, name string) string {
	for ext, internal := range t.Aliases {
		if internal == name {
			return ext
		}
	}
	return ToExternalKey(name, t.Camelback)
}

// valueNode converts a field value to a yaml.Node, recursing through child
// nodes and containers. Keyed containers and raw maps emit their keys in
// sorted order for determinism.
func valueNode(v any) (*yaml.Node, error) {
	switch val := v.(type) {
	case nil:
		return scalarNode("!!null", "null"), nil
	case bool:
		return scalarNode("!!bool", strconv.FormatBool(val)), nil
	case int:
		return scalarNode("!!int", strconv.Itoa(val)), nil
	case int64:
		return scalarNode("!!int", strconv.FormatInt(val, 10)), nil
	case float64:
		return scalarNode("!!float", strconv.FormatFloat(val, 'f', -1, 64)), nil
	case string:
		return scalarNode("!!str", val), nil
	case []string:
		node := sequenceNode(len(val))
		for _, item := range val {
			node.Content = append(node.Content, scalarNode("!!str", item))
		}
		return node, nil
	case []any:
		node := sequenceNode(len(val))
		for _, item := range val {
			child, err := valueNode(item)
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content, child)
		}
		return node, nil
	case map[string]string:
		node := mappingNode()
		for _, k := range sortedKeys(val) {
			node.Content = append(node.Content, scalarNode("!!str", k), scalarNode("!!str", val[k]))
		}
		return node, nil
	case map[string]any:
		node := mappingNode()
		for _, k := range sortedKeys(val) {
			child, err := valueNode(val[k])
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content, scalarNode("!!str", k), child)
		}
		return node, nil
	case *NodeList:
		node := sequenceNode(val.Len())
		for _, item := range val.Items() {
			child, err := Flatten(item)
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content, child)
		}
		return node, nil
	case *NodeMap:
		node := mappingNode()
		for _, k := range val.Keys() {
			item, _ := val.Get(k)
			child, err := Flatten(item)
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content, scalarNode("!!str", k), child)
		}
		return node, nil
	case *yaml.Node:
		return val, nil
	case Node:
		return Flatten(val)
	default:
		return nil, fmt.Errorf("graph: cannot flatten value of type %T", v)
	}
}

// isEmptyValue reports values the omission rule drops from the output:
// empty strings, false, zero numbers, nil, and empty containers.
func isEmptyValue(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return val == ""
	case bool:
		return !val
	case int:
		return val == 0
	case int64:
		return val == 0
	case float64:
		return val == 0
	case []string:
		return len(val) == 0
	case []any:
		return len(val) == 0
	case map[string]string:
		return len(val) == 0
	case map[string]any:
		return len(val) == 0
	case *NodeList:
		return val.Len() == 0
	case *NodeMap:
		return val.Len() == 0
	default:
		return isNilValue(v)
	}
}

// isNilValue reports whether v is nil or a typed nil pointer boxed in an
// interface, which a plain nil comparison cannot see.
func isNilValue(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func scalarNode(tag, value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}
}

func mappingNode(content ...*yaml.Node) *yaml.Node {
	return &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map", Content: content}
}

func sequenceNode(capacity int) *yaml.Node {
	return &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq", Content: make([]*yaml.Node, 0, capacity)}
}
