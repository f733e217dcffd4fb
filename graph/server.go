package graph

// TypeServer describes the Server node type.
var TypeServer = &NodeType{
	Name:      "Server",
	Camelback: true,
}

func init() {
	TypeServer.New = serverFromRaw
	TypeServerVariable.New = serverVariableFromRaw
}

// Server models an OpenAPI Server Object with a keyed map of substitution
// variables.
type Server struct {
	URL         string
	Description string

	variables *NodeMap
}

type serverConfig struct {
	description string
	variables   map[string]any
}

// ServerOption configures a server.
type ServerOption func(*serverConfig)

// WithServerDescription sets the server description.
func WithServerDescription(desc string) ServerOption {
	return func(cfg *serverConfig) {
		cfg.description = desc
	}
}

// WithServerVariable adds a named substitution variable. Accepts a
// *ServerVariable or its raw mapping.
func WithServerVariable(name string, value any) ServerOption {
	return func(cfg *serverConfig) {
		if cfg.variables == nil {
			cfg.variables = make(map[string]any)
		}
		cfg.variables[name] = value
	}
}

// NewServer creates a server with the given URL.
func NewServer(url string, opts ...ServerOption) (*Server, error) {
	if url == "" {
		return nil, missingField(TypeServer.Name, "url")
	}
	cfg := &serverConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	s := &Server{
		URL:         url,
		Description: cfg.description,
		variables:   newNodeMap(TypeServerVariable),
	}
	for name, value := range cfg.variables {
		if err := s.variables.Set(name, value); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// SetVariable adds or replaces a named substitution variable.
func (s *Server) SetVariable(name string, value any) error {
	return s.variables.Set(name, value)
}

// Variables returns the keyed variable map.
func (s *Server) Variables() *NodeMap {
	return s.variables
}

// Type implements Node.
func (s *Server) Type() *NodeType { return TypeServer }

func (s *Server) fields() []field {
	return []field{
		newField("url", s.URL),
		newField("description", s.Description),
		newField("variables", s.variables),
	}
}

func serverFromRaw(raw map[string]any) (Node, error) {
	rf := newRawFields(TypeServer.Name, raw)

	url, err := rf.str("url")
	if err != nil {
		return nil, err
	}
	desc, err := rf.str("description")
	if err != nil {
		return nil, err
	}
	variables, err := rf.anyMap("variables")
	if err != nil {
		return nil, err
	}
	if err := rf.finish(); err != nil {
		return nil, err
	}

	s, err := NewServer(url, WithServerDescription(desc))
	if err != nil {
		return nil, err
	}
	if len(variables) > 0 {
		if err := s.variables.Replace(variables); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// TypeServerVariable describes the ServerVariable node type.
var TypeServerVariable = &NodeType{
	Name:      "ServerVariable",
	Camelback: true,
}

// ServerVariable models an OpenAPI Server Variable Object.
type ServerVariable struct {
	Enum        []string
	Default     string
	Description string
}

type serverVariableConfig struct {
	enum        []string
	description string
}

// VariableOption configures a server variable.
type VariableOption func(*serverVariableConfig)

// WithVariableEnum restricts the variable to the given values.
func WithVariableEnum(values ...string) VariableOption {
	return func(cfg *serverVariableConfig) {
		cfg.enum = values
	}
}

// WithVariableDescription sets the variable description.
func WithVariableDescription(desc string) VariableOption {
	return func(cfg *serverVariableConfig) {
		cfg.description = desc
	}
}

// NewServerVariable creates a server variable with the given default value.
func NewServerVariable(defaultValue string, opts ...VariableOption) (*ServerVariable, error) {
	if defaultValue == "" {
		return nil, missingField(TypeServerVariable.Name, "default")
	}
	cfg := &serverVariableConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	return &ServerVariable{
		Enum:        cfg.enum,
		Default:     defaultValue,
		Description: cfg.description,
	}, nil
}

// Type implements Node.
func (v *ServerVariable) Type() *NodeType { return TypeServerVariable }

func (v *ServerVariable) fields() []field {
	return []field{
		newField("enum", v.Enum),
		newField("default", v.Default),
		newField("description", v.Description),
	}
}

func serverVariableFromRaw(raw map[string]any) (Node, error) {
	rf := newRawFields(TypeServerVariable.Name, raw)

	enum, err := rf.strSlice("enum")
	if err != nil {
		return nil, err
	}
	defaultValue, err := rf.str("default")
	if err != nil {
		return nil, err
	}
	desc, err := rf.str("description")
	if err != nil {
		return nil, err
	}
	if err := rf.finish(); err != nil {
		return nil, err
	}

	return NewServerVariable(defaultValue,
		WithVariableEnum(enum...),
		WithVariableDescription(desc),
	)
}
