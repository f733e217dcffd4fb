package graph

import (
	"strconv"

	"github.com/oasgraph/oasgraph/internal/httputil"
	"github.com/oasgraph/oasgraph/oaserrors"
)

// TypeResponse describes the Response node type.
// Responses keep their raw snake_case keys on output: the response family
// matches the wire format of status codes and header names verbatim.
var TypeResponse = &NodeType{
	Name:      "Response",
	Camelback: false,
}

// Response models an OpenAPI Response Object. The status code addresses the
// response inside an operation's keyed response map and never appears in the
// flattened output itself.
type Response struct {
	StatusCode  int
	Description string

	headers *NodeMap
	content *Content
	links   *NodeMap
}

type responseConfig struct {
	description string
}

// ResponseOption configures a response.
type ResponseOption func(*responseConfig)

// WithResponseDescription sets the response description. When omitted, the
// description defaults to the standard HTTP reason phrase for the status code.
func WithResponseDescription(desc string) ResponseOption {
	return func(cfg *responseConfig) {
		cfg.description = desc
	}
}

// NewResponse creates a response for the given status code. A missing
// description defaults to the code's HTTP reason phrase; codes with no
// registered phrase fail with UnknownStatusCodeError.
func NewResponse(statusCode int, opts ...ResponseOption) (*Response, error) {
	cfg := &responseConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	r := &Response{
		StatusCode:  statusCode,
		Description: cfg.description,
		headers:     newNodeMap(TypeHeader),
		links:       newNodeMap(TypeLink),
	}
	if r.Description == "" {
		phrase, ok := httputil.ReasonPhrase(statusCode)
		if !ok {
			return nil, &oaserrors.UnknownStatusCodeError{StatusCode: statusCode}
		}
		r.Description = phrase
	}
	return r, nil
}

// DefaultResponses returns one defaulted response per recognized HTTP status
// found in statusCodes, each carrying the code's reason phrase as its
// description. Results are in ascending numeric order; unrecognized codes
// are skipped.
func DefaultResponses(statusCodes []int) []*Response {
	want := make(map[int]bool, len(statusCodes))
	for _, code := range statusCodes {
		want[code] = true
	}

	var out []*Response
	for _, code := range httputil.StandardStatusCodes {
		if !want[code] {
			continue
		}
		r, err := NewResponse(code)
		if err != nil {
			continue
		}
		out = append(out, r)
	}
	return out
}

// Key returns the decimal string form of the status code, the key under
// which this response lives in an operation's response map.
func (r *Response) Key() string {
	return strconv.Itoa(r.StatusCode)
}

// SetContent attaches a media type body built from a schema reference and an
// example. The schema may be a plain name or any value exposing Name().
func (r *Response) SetContent(schema, example any, opts ...ContentOption) error {
	c, err := NewContent(schema, example, opts...)
	if err != nil {
		return err
	}
	r.content = c
	return nil
}

// SetContentObject coerces value (a *Content or its raw mapping) and stores
// it as the response body.
func (r *Response) SetContentObject(value any) error {
	c, err := coerceAs[*Content](TypeContent, value)
	if err != nil {
		return err
	}
	r.content = c
	return nil
}

// Content returns the attached media type body, or nil.
func (r *Response) Content() *Content {
	return r.content
}

// AppendHeader adds a named header without disturbing existing entries.
func (r *Response) AppendHeader(name, description string, schema any) error {
	h, err := NewHeader(description, schema)
	if err != nil {
		return err
	}
	return r.headers.Set(name, h)
}

// Headers returns the keyed header map.
func (r *Response) Headers() *NodeMap {
	return r.headers
}

// SetLink coerces value (a *Link or its raw mapping) and stores it under name.
func (r *Response) SetLink(name string, value any) error {
	return r.links.Set(name, value)
}

// Links returns the keyed link map.
func (r *Response) Links() *NodeMap {
	return r.links
}

// Type implements Node.
func (r *Response) Type() *NodeType { return TypeResponse }

func (r *Response) fields() []field {
	return []field{
		newField("description", r.Description),
		newField("headers", r.headers),
		newField("content", r.content),
		newField("links", r.links),
	}
}

func responseFromRaw(raw map[string]any) (Node, error) {
	rf := newRawFields(TypeResponse.Name, raw)

	code, ok, err := rf.integer("status_code")
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, missingField(TypeResponse.Name, "status_code")
	}
	desc, err := rf.str("description")
	if err != nil {
		return nil, err
	}
	headers, err := rf.anyMap("headers")
	if err != nil {
		return nil, err
	}
	content := rf.anyValue("content")
	links, err := rf.anyMap("links")
	if err != nil {
		return nil, err
	}
	if err := rf.finish(); err != nil {
		return nil, err
	}

	r, err := NewResponse(code, WithResponseDescription(desc))
	if err != nil {
		return nil, err
	}
	if len(headers) > 0 {
		if err := r.headers.Replace(headers); err != nil {
			return nil, err
		}
	}
	if content != nil {
		if err := r.SetContentObject(content); err != nil {
			return nil, err
		}
	}
	if len(links) > 0 {
		if err := r.links.Replace(links); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// TypeHeader describes the Header node type.
var TypeHeader = &NodeType{
	Name:      "Header",
	Camelback: true,
}

// Constructors are wired here rather than in the type literals: the
// constructor bodies refer back to their type variables, which would form an
// initialization cycle.
func init() {
	TypeResponse.New = responseFromRaw
	TypeHeader.New = headerFromRaw
}

// Header models a response header entry: a description plus a schema name
// reference.
type Header struct {
	Description string
	Required    bool
	Schema      string
}

// NewHeader creates a header. The schema may be a plain name or any value
// exposing Name().
func NewHeader(description string, schema any) (*Header, error) {
	name, err := SchemaName(schema)
	if err != nil {
		return nil, err
	}
	return &Header{Description: description, Schema: name}, nil
}

// Type implements Node.
func (h *Header) Type() *NodeType { return TypeHeader }

func (h *Header) fields() []field {
	return []field{
		newField("description", h.Description),
		newField("required", h.Required),
		newField("schema", h.Schema),
	}
}

func headerFromRaw(raw map[string]any) (Node, error) {
	rf := newRawFields(TypeHeader.Name, raw)

	desc, err := rf.str("description")
	if err != nil {
		return nil, err
	}
	required, err := rf.boolean("required")
	if err != nil {
		return nil, err
	}
	schema, err := rf.str("schema")
	if err != nil {
		return nil, err
	}
	if err := rf.finish(); err != nil {
		return nil, err
	}

	return &Header{Description: desc, Required: required, Schema: schema}, nil
}
