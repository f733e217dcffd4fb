package graph

import (
	"github.com/oasgraph/oasgraph/oaserrors"
)

// Parameter locations defined by the OpenAPI specification.
const (
	InQuery  = "query"
	InHeader = "header"
	InPath   = "path"
	InCookie = "cookie"
)

// TypeParameter describes the Parameter node type. The location field is
// stored as parameter_in internally and serialized as "in".
var TypeParameter = &NodeType{
	Name:      "Parameter",
	Camelback: true,
	Aliases:   map[string]string{"in": "parameter_in"},
}

func init() {
	TypeParameter.New = parameterFromRaw
}

// Parameter models an OpenAPI Parameter Object.
type Parameter struct {
	Name        string
	In          string
	Description string
	Required    bool
	Deprecated  bool
	Schema      string
	Example     any
}

type paramConfig struct {
	description string
	required    bool
	deprecated  bool
	schema      any
	example     any
	in          string
}

// ParamOption configures a parameter.
type ParamOption func(*paramConfig)

// WithParamDescription sets the parameter description.
func WithParamDescription(desc string) ParamOption {
	return func(cfg *paramConfig) {
		cfg.description = desc
	}
}

// WithParamRequired sets whether the parameter is required.
func WithParamRequired(required bool) ParamOption {
	return func(cfg *paramConfig) {
		cfg.required = required
	}
}

// WithParamDeprecated marks the parameter as deprecated.
func WithParamDeprecated(deprecated bool) ParamOption {
	return func(cfg *paramConfig) {
		cfg.deprecated = deprecated
	}
}

// WithParamSchema sets the parameter schema reference. Accepts a string or
// any value implementing NamedSchema.
func WithParamSchema(schema any) ParamOption {
	return func(cfg *paramConfig) {
		cfg.schema = schema
	}
}

// WithParamExample sets the parameter example value.
func WithParamExample(example any) ParamOption {
	return func(cfg *paramConfig) {
		cfg.example = example
	}
}

// WithParamIn overrides the parameter location.
func WithParamIn(in string) ParamOption {
	return func(cfg *paramConfig) {
		cfg.in = in
	}
}

// NewParameter creates a parameter with the given name and location. Path
// parameters are always required regardless of the requested setting.
func NewParameter(name, in string, opts ...ParamOption) (*Parameter, error) {
	cfg := &paramConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.in != "" {
		in = cfg.in
	}

	schema, err := SchemaName(cfg.schema)
	if err != nil {
		return nil, err
	}

	p := &Parameter{
		Name:        name,
		In:          in,
		Description: cfg.description,
		Required:    cfg.required,
		Deprecated:  cfg.deprecated,
		Schema:      schema,
		Example:     cfg.example,
	}
	if err := p.normalize(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Parameter) normalize() error {
	if p.Name == "" {
		return missingField(TypeParameter.Name, "name")
	}
	switch p.In {
	case InQuery, InHeader, InPath, InCookie:
	default:
		return &oaserrors.InvariantViolationError{
			TypeName: TypeParameter.Name,
			Field:    "parameter_in",
			Message:  "must be one of query, header, path, cookie",
		}
	}
	if p.In == InPath {
		p.Required = true
	}
	return nil
}

// Type implements Node.
func (p *Parameter) Type() *NodeType { return TypeParameter }

func (p *Parameter) fields() []field {
	return []field{
		newField("name", p.Name),
		newField("parameter_in", p.In),
		newField("description", p.Description),
		keepField("required", p.Required),
		newField("deprecated", p.Deprecated),
		newField("schema", p.Schema),
		newField("example", p.Example),
	}
}

func parameterFromRaw(raw map[string]any) (Node, error) {
	rf := newRawFields(TypeParameter.Name, raw)

	name, err := rf.str("name")
	if err != nil {
		return nil, err
	}
	in, err := rf.str("parameter_in")
	if err != nil {
		return nil, err
	}
	desc, err := rf.str("description")
	if err != nil {
		return nil, err
	}
	required, err := rf.boolean("required")
	if err != nil {
		return nil, err
	}
	deprecated, err := rf.boolean("deprecated")
	if err != nil {
		return nil, err
	}
	schema, err := rf.str("schema")
	if err != nil {
		return nil, err
	}
	example := rf.anyValue("example")
	if err := rf.finish(); err != nil {
		return nil, err
	}
	if in == "" {
		return nil, missingField(TypeParameter.Name, "parameter_in")
	}

	return NewParameter(name, in,
		WithParamDescription(desc),
		WithParamRequired(required),
		WithParamDeprecated(deprecated),
		WithParamSchema(schema),
		WithParamExample(example),
	)
}
