package graph

// TypeLink describes the Link node type.
var TypeLink = &NodeType{
	Name:      "Link",
	Camelback: true,
}

func init() {
	TypeLink.New = linkFromRaw
}

// Link models an OpenAPI Link Object, relating a response to another
// operation either by reference or by ID.
type Link struct {
	OperationRef string
	OperationID  string
	Parameters   map[string]any
	RequestBody  any
	Description  string
}

type linkConfig struct {
	operationRef string
	operationID  string
	parameters   map[string]any
	requestBody  any
	description  string
}

// LinkOption configures a link.
type LinkOption func(*linkConfig)

// WithLinkOperationRef sets the target operation reference.
func WithLinkOperationRef(ref string) LinkOption {
	return func(cfg *linkConfig) {
		cfg.operationRef = ref
	}
}

// WithLinkOperationID sets the target operation ID.
func WithLinkOperationID(id string) LinkOption {
	return func(cfg *linkConfig) {
		cfg.operationID = id
	}
}

// WithLinkParameters sets the parameters to pass to the target operation.
func WithLinkParameters(params map[string]any) LinkOption {
	return func(cfg *linkConfig) {
		cfg.parameters = params
	}
}

// WithLinkRequestBody sets the request body to pass to the target operation.
func WithLinkRequestBody(body any) LinkOption {
	return func(cfg *linkConfig) {
		cfg.requestBody = body
	}
}

// WithLinkDescription sets the link description.
func WithLinkDescription(desc string) LinkOption {
	return func(cfg *linkConfig) {
		cfg.description = desc
	}
}

// NewLink creates a link.
func NewLink(opts ...LinkOption) *Link {
	cfg := &linkConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	return &Link{
		OperationRef: cfg.operationRef,
		OperationID:  cfg.operationID,
		Parameters:   cfg.parameters,
		RequestBody:  cfg.requestBody,
		Description:  cfg.description,
	}
}

// Type implements Node.
func (l *Link) Type() *NodeType { return TypeLink }

func (l *Link) fields() []field {
	return []field{
		newField("operation_ref", l.OperationRef),
		newField("operation_id", l.OperationID),
		newField("parameters", l.Parameters),
		newField("request_body", l.RequestBody),
		newField("description", l.Description),
	}
}

func linkFromRaw(raw map[string]any) (Node, error) {
	rf := newRawFields(TypeLink.Name, raw)

	operationRef, err := rf.str("operation_ref")
	if err != nil {
		return nil, err
	}
	operationID, err := rf.str("operation_id")
	if err != nil {
		return nil, err
	}
	params, err := rf.anyMap("parameters")
	if err != nil {
		return nil, err
	}
	requestBody := rf.anyValue("request_body")
	desc, err := rf.str("description")
	if err != nil {
		return nil, err
	}
	if err := rf.finish(); err != nil {
		return nil, err
	}

	return NewLink(
		WithLinkOperationRef(operationRef),
		WithLinkOperationID(operationID),
		WithLinkParameters(params),
		WithLinkRequestBody(requestBody),
		WithLinkDescription(desc),
	), nil
}
