package graph

import (
	"github.com/oasgraph/oasgraph/oaserrors"
)

// Security scheme types defined by the OpenAPI specification.
const (
	SchemeAPIKey        = "apiKey"
	SchemeHTTP          = "http"
	SchemeOAuth2        = "oauth2"
	SchemeOpenIDConnect = "openIdConnect"
)

// TypeSecurityScheme describes the SecurityScheme node type. The API key
// location is stored as key_in internally and serialized as "in".
var TypeSecurityScheme = &NodeType{
	Name:      "SecurityScheme",
	Camelback: true,
	Aliases:   map[string]string{"in": "key_in"},
}

func init() {
	TypeSecurityScheme.New = securitySchemeFromRaw
	TypeOAuthFlows.New = oauthFlowsFromRaw
	TypeOAuthFlow.New = oauthFlowFromRaw
}

// SecurityScheme models an OpenAPI Security Scheme Object. Each scheme type
// requires its own set of fields, checked at construction:
//
//   - apiKey needs a name and a key location
//   - http needs a scheme
//   - oauth2 needs flows
//   - openIdConnect needs its discovery URL
type SecurityScheme struct {
	SchemeType       string
	Description      string
	Name             string
	KeyIn            string
	Scheme           string
	BearerFormat     string
	OpenIDConnectURL string

	flows *OAuthFlows
}

type securitySchemeConfig struct {
	description      string
	name             string
	keyIn            string
	scheme           string
	bearerFormat     string
	openIDConnectURL string
	flows            any
}

// SchemeOption configures a security scheme.
type SchemeOption func(*securitySchemeConfig)

// WithSchemeDescription sets the scheme description.
func WithSchemeDescription(desc string) SchemeOption {
	return func(cfg *securitySchemeConfig) {
		cfg.description = desc
	}
}

// WithSchemeName sets the header, query, or cookie name of an apiKey scheme.
func WithSchemeName(name string) SchemeOption {
	return func(cfg *securitySchemeConfig) {
		cfg.name = name
	}
}

// WithSchemeKeyIn sets the location of an apiKey scheme.
func WithSchemeKeyIn(in string) SchemeOption {
	return func(cfg *securitySchemeConfig) {
		cfg.keyIn = in
	}
}

// WithHTTPScheme sets the authorization scheme of an http scheme, such as
// basic or bearer.
func WithHTTPScheme(scheme string) SchemeOption {
	return func(cfg *securitySchemeConfig) {
		cfg.scheme = scheme
	}
}

// WithBearerFormat sets the bearer token format hint of an http scheme.
func WithBearerFormat(format string) SchemeOption {
	return func(cfg *securitySchemeConfig) {
		cfg.bearerFormat = format
	}
}

// WithFlows attaches the flows of an oauth2 scheme. Accepts an *OAuthFlows
// or its raw mapping.
func WithFlows(flows any) SchemeOption {
	return func(cfg *securitySchemeConfig) {
		cfg.flows = flows
	}
}

// WithOpenIDConnectURL sets the discovery URL of an openIdConnect scheme.
func WithOpenIDConnectURL(url string) SchemeOption {
	return func(cfg *securitySchemeConfig) {
		cfg.openIDConnectURL = url
	}
}

// NewSecurityScheme creates a security scheme of the given type.
func NewSecurityScheme(schemeType string, opts ...SchemeOption) (*SecurityScheme, error) {
	cfg := &securitySchemeConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	s := &SecurityScheme{
		SchemeType:       schemeType,
		Description:      cfg.description,
		Name:             cfg.name,
		KeyIn:            cfg.keyIn,
		Scheme:           cfg.scheme,
		BearerFormat:     cfg.bearerFormat,
		OpenIDConnectURL: cfg.openIDConnectURL,
	}
	if cfg.flows != nil {
		flows, err := coerceAs[*OAuthFlows](TypeOAuthFlows, cfg.flows)
		if err != nil {
			return nil, err
		}
		s.flows = flows
	}
	if err := s.check(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *SecurityScheme) check() error {
	invariant := func(field, msg string) error {
		return &oaserrors.InvariantViolationError{
			TypeName: TypeSecurityScheme.Name,
			Field:    field,
			Message:  msg,
		}
	}
	switch s.SchemeType {
	case SchemeAPIKey:
		if s.Name == "" {
			return missingField(TypeSecurityScheme.Name, "name")
		}
		switch s.KeyIn {
		case InQuery, InHeader, InCookie:
		default:
			return invariant("key_in", "must be one of query, header, cookie")
		}
	case SchemeHTTP:
		if s.Scheme == "" {
			return missingField(TypeSecurityScheme.Name, "scheme")
		}
	case SchemeOAuth2:
		if s.flows == nil {
			return missingField(TypeSecurityScheme.Name, "flows")
		}
	case SchemeOpenIDConnect:
		if s.OpenIDConnectURL == "" {
			return missingField(TypeSecurityScheme.Name, "open_id_connect_url")
		}
	default:
		return invariant("type", "must be one of apiKey, http, oauth2, openIdConnect")
	}
	return nil
}

// Flows returns the oauth2 flows, or nil.
func (s *SecurityScheme) Flows() *OAuthFlows {
	return s.flows
}

// Type implements Node.
func (s *SecurityScheme) Type() *NodeType { return TypeSecurityScheme }

func (s *SecurityScheme) fields() []field {
	return []field{
		newField("type", s.SchemeType),
		newField("description", s.Description),
		newField("name", s.Name),
		newField("key_in", s.KeyIn),
		newField("scheme", s.Scheme),
		newField("bearer_format", s.BearerFormat),
		newField("flows", s.flows),
		newField("open_id_connect_url", s.OpenIDConnectURL),
	}
}

func securitySchemeFromRaw(raw map[string]any) (Node, error) {
	rf := newRawFields(TypeSecurityScheme.Name, raw)

	schemeType, err := rf.str("type")
	if err != nil {
		return nil, err
	}
	desc, err := rf.str("description")
	if err != nil {
		return nil, err
	}
	name, err := rf.str("name")
	if err != nil {
		return nil, err
	}
	keyIn, err := rf.str("key_in")
	if err != nil {
		return nil, err
	}
	scheme, err := rf.str("scheme")
	if err != nil {
		return nil, err
	}
	bearerFormat, err := rf.str("bearer_format")
	if err != nil {
		return nil, err
	}
	flows := rf.anyValue("flows")
	openIDConnectURL, err := rf.str("open_id_connect_url")
	if err != nil {
		return nil, err
	}
	if err := rf.finish(); err != nil {
		return nil, err
	}

	opts := []SchemeOption{
		WithSchemeDescription(desc),
		WithSchemeName(name),
		WithSchemeKeyIn(keyIn),
		WithHTTPScheme(scheme),
		WithBearerFormat(bearerFormat),
		WithOpenIDConnectURL(openIDConnectURL),
	}
	if flows != nil {
		opts = append(opts, WithFlows(flows))
	}
	return NewSecurityScheme(schemeType, opts...)
}

// TypeOAuthFlows describes the OAuthFlows node type.
var TypeOAuthFlows = &NodeType{
	Name:      "OAuthFlows",
	Camelback: true,
}

// OAuthFlows models an OpenAPI OAuth Flows Object, holding one configuration
// per supported flow.
type OAuthFlows struct {
	implicit          *OAuthFlow
	password          *OAuthFlow
	clientCredentials *OAuthFlow
	authorizationCode *OAuthFlow
}

type oauthFlowsConfig struct {
	implicit          any
	password          any
	clientCredentials any
	authorizationCode any
}

// FlowsOption configures an OAuthFlows node.
type FlowsOption func(*oauthFlowsConfig)

// WithImplicit sets the implicit flow. Accepts an *OAuthFlow or its raw
// mapping.
func WithImplicit(flow any) FlowsOption {
	return func(cfg *oauthFlowsConfig) {
		cfg.implicit = flow
	}
}

// WithPassword sets the resource owner password flow.
func WithPassword(flow any) FlowsOption {
	return func(cfg *oauthFlowsConfig) {
		cfg.password = flow
	}
}

// WithClientCredentials sets the client credentials flow.
func WithClientCredentials(flow any) FlowsOption {
	return func(cfg *oauthFlowsConfig) {
		cfg.clientCredentials = flow
	}
}

// WithAuthorizationCode sets the authorization code flow.
func WithAuthorizationCode(flow any) FlowsOption {
	return func(cfg *oauthFlowsConfig) {
		cfg.authorizationCode = flow
	}
}

// NewOAuthFlows creates a flows node. Each configured flow must carry the
// URLs its grant type requires.
func NewOAuthFlows(opts ...FlowsOption) (*OAuthFlows, error) {
	cfg := &oauthFlowsConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	f := &OAuthFlows{}
	coerceFlow := func(v any) (*OAuthFlow, error) {
		if v == nil {
			return nil, nil
		}
		return coerceAs[*OAuthFlow](TypeOAuthFlow, v)
	}
	var err error
	if f.implicit, err = coerceFlow(cfg.implicit); err != nil {
		return nil, err
	}
	if f.password, err = coerceFlow(cfg.password); err != nil {
		return nil, err
	}
	if f.clientCredentials, err = coerceFlow(cfg.clientCredentials); err != nil {
		return nil, err
	}
	if f.authorizationCode, err = coerceFlow(cfg.authorizationCode); err != nil {
		return nil, err
	}
	if err := f.check(); err != nil {
		return nil, err
	}
	return f, nil
}

func (f *OAuthFlows) check() error {
	missing := func(field string) error {
		return missingField(TypeOAuthFlows.Name, field)
	}
	if f.implicit != nil && f.implicit.AuthorizationURL == "" {
		return missing("implicit.authorization_url")
	}
	if f.password != nil && f.password.TokenURL == "" {
		return missing("password.token_url")
	}
	if f.clientCredentials != nil && f.clientCredentials.TokenURL == "" {
		return missing("client_credentials.token_url")
	}
	if f.authorizationCode != nil {
		if f.authorizationCode.AuthorizationURL == "" {
			return missing("authorization_code.authorization_url")
		}
		if f.authorizationCode.TokenURL == "" {
			return missing("authorization_code.token_url")
		}
	}
	return nil
}

// Implicit returns the implicit flow, or nil.
func (f *OAuthFlows) Implicit() *OAuthFlow { return f.implicit }

// Password returns the password flow, or nil.
func (f *OAuthFlows) Password() *OAuthFlow { return f.password }

// ClientCredentials returns the client credentials flow, or nil.
func (f *OAuthFlows) ClientCredentials() *OAuthFlow { return f.clientCredentials }

// AuthorizationCode returns the authorization code flow, or nil.
func (f *OAuthFlows) AuthorizationCode() *OAuthFlow { return f.authorizationCode }

// Type implements Node.
func (f *OAuthFlows) Type() *NodeType { return TypeOAuthFlows }

func (f *OAuthFlows) fields() []field {
	return []field{
		newField("implicit", f.implicit),
		newField("password", f.password),
		newField("client_credentials", f.clientCredentials),
		newField("authorization_code", f.authorizationCode),
	}
}

func oauthFlowsFromRaw(raw map[string]any) (Node, error) {
	rf := newRawFields(TypeOAuthFlows.Name, raw)

	implicit := rf.anyValue("implicit")
	password := rf.anyValue("password")
	clientCredentials := rf.anyValue("client_credentials")
	authorizationCode := rf.anyValue("authorization_code")
	if err := rf.finish(); err != nil {
		return nil, err
	}

	return NewOAuthFlows(
		WithImplicit(implicit),
		WithPassword(password),
		WithClientCredentials(clientCredentials),
		WithAuthorizationCode(authorizationCode),
	)
}

// TypeOAuthFlow describes the OAuthFlow node type.
var TypeOAuthFlow = &NodeType{
	Name:      "OAuthFlow",
	Camelback: true,
}

// OAuthFlow models a single OpenAPI OAuth Flow Object.
type OAuthFlow struct {
	AuthorizationURL string
	TokenURL         string
	RefreshURL       string
	Scopes           map[string]string
}

type oauthFlowConfig struct {
	authorizationURL string
	tokenURL         string
	refreshURL       string
	scopes           map[string]string
}

// FlowOption configures an OAuth flow.
type FlowOption func(*oauthFlowConfig)

// WithAuthorizationURL sets the authorization endpoint.
func WithAuthorizationURL(url string) FlowOption {
	return func(cfg *oauthFlowConfig) {
		cfg.authorizationURL = url
	}
}

// WithTokenURL sets the token endpoint.
func WithTokenURL(url string) FlowOption {
	return func(cfg *oauthFlowConfig) {
		cfg.tokenURL = url
	}
}

// WithRefreshURL sets the refresh endpoint.
func WithRefreshURL(url string) FlowOption {
	return func(cfg *oauthFlowConfig) {
		cfg.refreshURL = url
	}
}

// WithScopes sets the available scopes with their descriptions.
func WithScopes(scopes map[string]string) FlowOption {
	return func(cfg *oauthFlowConfig) {
		cfg.scopes = scopes
	}
}

// NewOAuthFlow creates an OAuth flow.
func NewOAuthFlow(opts ...FlowOption) *OAuthFlow {
	cfg := &oauthFlowConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	return &OAuthFlow{
		AuthorizationURL: cfg.authorizationURL,
		TokenURL:         cfg.tokenURL,
		RefreshURL:       cfg.refreshURL,
		Scopes:           cfg.scopes,
	}
}

// Type implements Node.
func (f *OAuthFlow) Type() *NodeType { return TypeOAuthFlow }

func (f *OAuthFlow) fields() []field {
	return []field{
		newField("authorization_url", f.AuthorizationURL),
		newField("token_url", f.TokenURL),
		newField("refresh_url", f.RefreshURL),
		newField("scopes", f.Scopes),
	}
}

func oauthFlowFromRaw(raw map[string]any) (Node, error) {
	rf := newRawFields(TypeOAuthFlow.Name, raw)

	authorizationURL, err := rf.str("authorization_url")
	if err != nil {
		return nil, err
	}
	tokenURL, err := rf.str("token_url")
	if err != nil {
		return nil, err
	}
	refreshURL, err := rf.str("refresh_url")
	if err != nil {
		return nil, err
	}
	scopes, err := rf.strMap("scopes")
	if err != nil {
		return nil, err
	}
	if err := rf.finish(); err != nil {
		return nil, err
	}

	return NewOAuthFlow(
		WithAuthorizationURL(authorizationURL),
		WithTokenURL(tokenURL),
		WithRefreshURL(refreshURL),
		WithScopes(scopes),
	), nil
}
