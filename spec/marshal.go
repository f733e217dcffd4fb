package spec

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v4"
)

// outputFileMode is the permission used for written document files.
const outputFileMode = 0o600

// MarshalYAML serializes the document as YAML, preserving the insertion
// order of paths and the construction order of every mapping. Any assembly
// error accumulated during construction fails the call.
func (s *Spec) MarshalYAML() ([]byte, error) {
	if err := s.checkErrors(); err != nil {
		return nil, err
	}
	doc, err := s.document()
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(doc)
}

// MarshalJSON serializes the document as indented JSON with the same field
// order as the YAML form.
func (s *Spec) MarshalJSON() ([]byte, error) {
	if err := s.checkErrors(); err != nil {
		return nil, err
	}
	doc, err := s.document()
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := nodeJSON(&buf, doc); err != nil {
		return nil, err
	}
	var out bytes.Buffer
	if err := json.Indent(&out, buf.Bytes(), "", "  "); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// WriteFile writes the document to path, choosing the format from the file
// extension. A .json extension produces JSON; .yaml, .yml, and anything
// else produce YAML.
func (s *Spec) WriteFile(path string) error {
	var (
		data []byte
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		data, err = s.MarshalJSON()
	default:
		data, err = s.MarshalYAML()
	}
	if err != nil {
		return fmt.Errorf("marshaling document for %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, outputFileMode); err != nil {
		return fmt.Errorf("writing document to %s: %w", path, err)
	}
	return nil
}

// nodeJSON writes a yaml.Node to buf as compact JSON, preserving the key
// order of mapping nodes.
func nodeJSON(buf *bytes.Buffer, node *yaml.Node) error {
	if node == nil {
		buf.WriteString("null")
		return nil
	}

	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) > 0 {
			return nodeJSON(buf, node.Content[0])
		}
		buf.WriteString("null")
		return nil

	case yaml.MappingNode:
		buf.WriteByte('{')
		for i := 0; i+1 < len(node.Content); i += 2 {
			if i > 0 {
				buf.WriteByte(',')
			}
			key, err := json.Marshal(node.Content[i].Value)
			if err != nil {
				return err
			}
			buf.Write(key)
			buf.WriteByte(':')
			if err := nodeJSON(buf, node.Content[i+1]); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
		return nil

	case yaml.SequenceNode:
		buf.WriteByte('[')
		for i, item := range node.Content {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := nodeJSON(buf, item); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
		return nil

	case yaml.ScalarNode:
		return scalarJSON(buf, node)

	case yaml.AliasNode:
		return nodeJSON(buf, node.Alias)

	default:
		return fmt.Errorf("unsupported yaml node kind: %d", node.Kind)
	}
}

// scalarJSON writes a scalar node using its resolved tag so numbers and
// booleans stay unquoted.
func scalarJSON(buf *bytes.Buffer, node *yaml.Node) error {
	switch node.Tag {
	case "!!int", "!!float", "!!bool":
		buf.WriteString(node.Value)
		return nil
	case "!!null":
		buf.WriteString("null")
		return nil
	default:
		data, err := json.Marshal(node.Value)
		if err != nil {
			return err
		}
		buf.Write(data)
		return nil
	}
}
