package graph

import (
	"fmt"

	"github.com/oasgraph/oasgraph/internal/httputil"
	"github.com/oasgraph/oasgraph/oaserrors"
)

const defaultContentType = "application/json"

// TypeContent describes the Content node type.
var TypeContent = &NodeType{
	Name:      "Content",
	Camelback: true,
}

func init() {
	TypeContent.New = contentFromRaw
}

// Content models a single media type body. When flattened inside a parent
// node it nests under its content type, producing the OpenAPI shape
//
//	content:
//	  application/json:
//	    schema: ...
type Content struct {
	ContentType string
	Description string
	Schema      string
	Example     any
	Examples    map[string]any
}

type contentConfig struct {
	contentType string
	description string
	examples    map[string]any
}

// ContentOption configures a media type body.
type ContentOption func(*contentConfig)

// WithContentType overrides the media type, which defaults to
// application/json.
func WithContentType(contentType string) ContentOption {
	return func(cfg *contentConfig) {
		cfg.contentType = contentType
	}
}

// WithContentDescription sets the content description.
func WithContentDescription(desc string) ContentOption {
	return func(cfg *contentConfig) {
		cfg.description = desc
	}
}

// WithContentExamples sets the named examples map.
func WithContentExamples(examples map[string]any) ContentOption {
	return func(cfg *contentConfig) {
		cfg.examples = examples
	}
}

// NewContent creates a media type body from a schema reference and an
// example value. The schema may be a string or any value implementing
// NamedSchema.
func NewContent(schema, example any, opts ...ContentOption) (*Content, error) {
	cfg := &contentConfig{contentType: defaultContentType}
	for _, opt := range opts {
		opt(cfg)
	}

	name, err := SchemaName(schema)
	if err != nil {
		return nil, err
	}
	if !httputil.IsValidMediaType(cfg.contentType) {
		return nil, &oaserrors.InvariantViolationError{
			TypeName: TypeContent.Name,
			Field:    "content_type",
			Message:  "invalid media type: " + cfg.contentType,
		}
	}

	return &Content{
		ContentType: cfg.contentType,
		Description: cfg.description,
		Schema:      name,
		Example:     example,
		Examples:    cfg.examples,
	}, nil
}

// wrapKey nests the flattened mapping under the media type.
func (c *Content) wrapKey() string {
	return c.ContentType
}

// Type implements Node.
func (c *Content) Type() *NodeType { return TypeContent }

func (c *Content) fields() []field {
	return []field{
		newField("description", c.Description),
		newField("schema", c.Schema),
		newField("example", c.Example),
		newField("examples", c.Examples),
	}
}

func contentFromRaw(raw map[string]any) (Node, error) {
	rf := newRawFields(TypeContent.Name, raw)

	contentType, err := rf.str("content_type")
	if err != nil {
		return nil, err
	}
	desc, err := rf.str("description")
	if err != nil {
		return nil, err
	}
	schema, err := rf.str("schema")
	if err != nil {
		return nil, err
	}
	example := rf.anyValue("example")
	examples, err := rf.anyMap("examples")
	if err != nil {
		return nil, err
	}
	if err := rf.finish(); err != nil {
		return nil, err
	}

	opts := []ContentOption{
		WithContentDescription(desc),
		WithContentExamples(examples),
	}
	if contentType != "" {
		opts = append(opts, WithContentType(contentType))
	}
	return NewContent(schema, example, opts...)
}

// NamedSchema is implemented by values that can supply a schema reference by
// name. Passing one anywhere a schema is accepted uses its Name result.
type NamedSchema interface {
	Name() string
}

// SchemaName resolves a schema reference from v. A nil value yields the
// empty string, a string passes through unchanged, and a NamedSchema
// contributes its Name. Anything else is rejected.
func SchemaName(v any) (string, error) {
	switch s := v.(type) {
	case nil:
		return "", nil
	case string:
		return s, nil
	case NamedSchema:
		return s.Name(), nil
	default:
		return "", &oaserrors.TypeMismatchError{
			Value:    v,
			Actual:   fmt.Sprintf("%T", v),
			Expected: "string or NamedSchema",
		}
	}
}
