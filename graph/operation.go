package graph

// TypeOperation describes the Operation node type.
var TypeOperation = &NodeType{
	Name:      "Operation",
	Camelback: true,
}

func init() {
	TypeOperation.New = operationFromRaw
	TypeRequestBody.New = requestBodyFromRaw
}

// Operation models an OpenAPI Operation Object: at most one request body, a
// keyed map of responses addressed by decimal status-code string, and an
// ordered list of parameters.
type Operation struct {
	Tags        []string
	Summary     string
	Description string
	OperationID string
	Deprecated  bool

	parameters  *NodeList
	requestBody *RequestBody
	responses   *NodeMap
}

type operationConfig struct {
	tags        []string
	summary     string
	operationID string
	deprecated  bool
}

// OperationOption configures an operation.
type OperationOption func(*operationConfig)

// WithOperationTags sets the operation tags.
func WithOperationTags(tags ...string) OperationOption {
	return func(cfg *operationConfig) {
		cfg.tags = tags
	}
}

// WithOperationSummary sets the operation summary.
func WithOperationSummary(summary string) OperationOption {
	return func(cfg *operationConfig) {
		cfg.summary = summary
	}
}

// WithOperationID sets the operation ID.
func WithOperationID(id string) OperationOption {
	return func(cfg *operationConfig) {
		cfg.operationID = id
	}
}

// WithOperationDeprecated marks the operation as deprecated.
func WithOperationDeprecated(deprecated bool) OperationOption {
	return func(cfg *operationConfig) {
		cfg.deprecated = deprecated
	}
}

// NewOperation creates an operation with the given description.
func NewOperation(description string, opts ...OperationOption) *Operation {
	cfg := &operationConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	return &Operation{
		Tags:        cfg.tags,
		Summary:     cfg.summary,
		Description: description,
		OperationID: cfg.operationID,
		Deprecated:  cfg.deprecated,
		parameters:  newNodeList(TypeParameter),
		responses:   newNodeMap(TypeResponse),
	}
}

// SetRequestBody coerces value (a *RequestBody or its raw mapping) and
// stores it as the operation's single request body.
func (o *Operation) SetRequestBody(value any) error {
	rb, err := coerceAs[*RequestBody](TypeRequestBody, value)
	if err != nil {
		return err
	}
	o.requestBody = rb
	return nil
}

// RequestBody returns the attached request body, or nil.
func (o *Operation) RequestBody() *RequestBody {
	return o.requestBody
}

// AddParameter appends a parameter built from a schema reference and a name.
// Location defaults to path and required defaults to true; both can be
// overridden through options.
func (o *Operation) AddParameter(schema any, name string, opts ...ParamOption) error {
	merged := append([]ParamOption{
		WithParamRequired(true),
		WithParamSchema(schema),
	}, opts...)
	p, err := NewParameter(name, InPath, merged...)
	if err != nil {
		return err
	}
	return o.parameters.Append(p)
}

// Parameters returns the ordered parameter list.
func (o *Operation) Parameters() *NodeList {
	return o.parameters
}

// UpsertResponses merges responses into the keyed response map, addressed by
// the decimal string of each status code. Existing entries win over new ones
// with the same key; iteration over the map is always sorted by key, so the
// accumulated map stays in ascending status-code order after every merge.
func (o *Operation) UpsertResponses(responses []*Response) error {
	for _, r := range responses {
		if r == nil {
			continue
		}
		key := r.Key()
		if _, exists := o.responses.Get(key); exists {
			continue
		}
		if err := o.responses.Set(key, r); err != nil {
			return err
		}
	}
	return nil
}

// Responses returns the keyed response map.
func (o *Operation) Responses() *NodeMap {
	return o.responses
}

// Type implements Node.
func (o *Operation) Type() *NodeType { return TypeOperation }

func (o *Operation) fields() []field {
	return []field{
		newField("tags", o.Tags),
		newField("summary", o.Summary),
		newField("description", o.Description),
		newField("operation_id", o.OperationID),
		newField("parameters", o.parameters),
		newField("request_body", o.requestBody),
		newField("responses", o.responses),
		newField("deprecated", o.Deprecated),
	}
}

func operationFromRaw(raw map[string]any) (Node, error) {
	rf := newRawFields(TypeOperation.Name, raw)

	tags, err := rf.strSlice("tags")
	if err != nil {
		return nil, err
	}
	summary, err := rf.str("summary")
	if err != nil {
		return nil, err
	}
	desc, err := rf.str("description")
	if err != nil {
		return nil, err
	}
	opID, err := rf.str("operation_id")
	if err != nil {
		return nil, err
	}
	deprecated, err := rf.boolean("deprecated")
	if err != nil {
		return nil, err
	}
	params := rf.anyValue("parameters")
	requestBody := rf.anyValue("request_body")
	responses, err := rf.anyMap("responses")
	if err != nil {
		return nil, err
	}
	if err := rf.finish(); err != nil {
		return nil, err
	}

	o := NewOperation(desc,
		WithOperationTags(tags...),
		WithOperationSummary(summary),
		WithOperationID(opID),
		WithOperationDeprecated(deprecated),
	)
	if params != nil {
		items, ok := params.([]any)
		if !ok {
			return nil, rf.fieldError("parameters", "[]any", params)
		}
		for _, item := range items {
			if err := o.parameters.Append(item); err != nil {
				return nil, err
			}
		}
	}
	if requestBody != nil {
		if err := o.SetRequestBody(requestBody); err != nil {
			return nil, err
		}
	}
	if len(responses) > 0 {
		if err := o.responses.Replace(responses); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// TypeRequestBody describes the RequestBody node type.
var TypeRequestBody = &NodeType{
	Name:      "RequestBody",
	Camelback: true,
}

// RequestBody models an OpenAPI Request Body Object.
type RequestBody struct {
	Description string
	Required    bool

	content *Content
}

type requestBodyConfig struct {
	description string
	required    bool
}

// RequestBodyOption configures a request body.
type RequestBodyOption func(*requestBodyConfig)

// WithRequestBodyDescription sets the request body description.
func WithRequestBodyDescription(desc string) RequestBodyOption {
	return func(cfg *requestBodyConfig) {
		cfg.description = desc
	}
}

// WithRequestBodyRequired marks the request body as required.
func WithRequestBodyRequired(required bool) RequestBodyOption {
	return func(cfg *requestBodyConfig) {
		cfg.required = required
	}
}

// NewRequestBody creates a request body.
func NewRequestBody(opts ...RequestBodyOption) *RequestBody {
	cfg := &requestBodyConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	return &RequestBody{
		Description: cfg.description,
		Required:    cfg.required,
	}
}

// SetContent attaches a media type body built from a schema reference and an
// example.
func (rb *RequestBody) SetContent(schema, example any, opts ...ContentOption) error {
	c, err := NewContent(schema, example, opts...)
	if err != nil {
		return err
	}
	rb.content = c
	return nil
}

// SetContentObject coerces value (a *Content or its raw mapping) and stores
// it as the request body's content.
func (rb *RequestBody) SetContentObject(value any) error {
	c, err := coerceAs[*Content](TypeContent, value)
	if err != nil {
		return err
	}
	rb.content = c
	return nil
}

// Content returns the attached media type body, or nil.
func (rb *RequestBody) Content() *Content {
	return rb.content
}

// Type implements Node.
func (rb *RequestBody) Type() *NodeType { return TypeRequestBody }

func (rb *RequestBody) fields() []field {
	return []field{
		newField("description", rb.Description),
		newField("required", rb.Required),
		newField("content", rb.content),
	}
}

func requestBodyFromRaw(raw map[string]any) (Node, error) {
	rf := newRawFields(TypeRequestBody.Name, raw)

	desc, err := rf.str("description")
	if err != nil {
		return nil, err
	}
	required, err := rf.boolean("required")
	if err != nil {
		return nil, err
	}
	content := rf.anyValue("content")
	if err := rf.finish(); err != nil {
		return nil, err
	}

	rb := NewRequestBody(
		WithRequestBodyDescription(desc),
		WithRequestBodyRequired(required),
	)
	if content != nil {
		if err := rb.SetContentObject(content); err != nil {
			return nil, err
		}
	}
	return rb, nil
}
