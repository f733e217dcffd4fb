// Package spec assembles OpenAPI 3.x documents from flattened graph nodes
// and writes them as YAML or JSON with field order preserved.
package spec

import (
	"errors"
	"fmt"
	"sort"

	"go.yaml.in/yaml/v4"

	"github.com/oasgraph/oasgraph/graph"
)

// defaultOpenAPIVersion is emitted when no version override is given.
const defaultOpenAPIVersion = "3.0.1"

// methodOrder fixes the serialization order of operations within a path.
var methodOrder = []string{"get", "put", "post", "delete", "options", "head", "patch", "trace"}

// Info models the OpenAPI Info Object.
type Info struct {
	Title       string
	Description string
	Version     string
}

// Components collects reusable objects referenced from the rest of the
// document.
type Components struct {
	securitySchemes map[string]*yaml.Node
}

// AddSecurityScheme flattens scheme and registers it under name.
func (c *Components) AddSecurityScheme(name string, scheme *graph.SecurityScheme) error {
	node, err := graph.Flatten(scheme)
	if err != nil {
		return err
	}
	if c.securitySchemes == nil {
		c.securitySchemes = make(map[string]*yaml.Node)
	}
	c.securitySchemes[name] = node
	return nil
}

// SecuritySchemes returns the registered schemes as flattened mappings,
// keyed by scheme name.
func (c *Components) SecuritySchemes() map[string]*yaml.Node {
	return c.securitySchemes
}

type pathEntry struct {
	path       string
	operations *yaml.Node
}

// Spec accumulates an OpenAPI document. Paths keep insertion order and
// operations within a path serialize in conventional method order.
// Option and assembly failures accumulate on the Spec and surface from the
// marshaling calls.
type Spec struct {
	openapi    string
	info       Info
	servers    []*graph.Server
	security   []map[string][]string
	paths      []pathEntry
	components Components
	errs       []error
}

type specConfig struct {
	openapi     string
	description string
	servers     []*graph.Server
	security    []map[string][]string
	errs        []error
}

// Option configures a document.
type Option func(*specConfig)

// WithOpenAPIVersion overrides the emitted openapi version, which defaults
// to 3.0.1.
func WithOpenAPIVersion(version string) Option {
	return func(cfg *specConfig) {
		cfg.openapi = version
	}
}

// WithDescription sets the document description.
func WithDescription(desc string) Option {
	return func(cfg *specConfig) {
		cfg.description = desc
	}
}

// WithServer appends a server with the given URL and description. An
// invalid server is recorded as an assembly error and surfaces from the
// marshaling calls.
func WithServer(url, description string) Option {
	return func(cfg *specConfig) {
		srv, err := graph.NewServer(url, graph.WithServerDescription(description))
		if err != nil {
			cfg.errs = append(cfg.errs, fmt.Errorf("spec: invalid server %q: %w", url, err))
			return
		}
		cfg.servers = append(cfg.servers, srv)
	}
}

// WithSecurityRequirement appends a document-level security requirement
// naming a scheme and the scopes it needs.
func WithSecurityRequirement(name string, scopes ...string) Option {
	return func(cfg *specConfig) {
		if scopes == nil {
			scopes = []string{}
		}
		cfg.security = append(cfg.security, map[string][]string{name: scopes})
	}
}

// New creates a document with the given title and version.
func New(title, version string, opts ...Option) *Spec {
	cfg := &specConfig{openapi: defaultOpenAPIVersion}
	for _, opt := range opts {
		opt(cfg)
	}
	return &Spec{
		openapi: cfg.openapi,
		info: Info{
			Title:       title,
			Description: cfg.description,
			Version:     version,
		},
		servers:  cfg.servers,
		security: cfg.security,
		errs:     cfg.errs,
	}
}

// checkErrors surfaces accumulated assembly errors.
func (s *Spec) checkErrors() error {
	if len(s.errs) == 0 {
		return nil
	}
	return errors.Join(s.errs...)
}

// Components returns the reusable components section.
func (s *Spec) Components() *Components {
	return &s.components
}

// AddServer appends a server to the document.
func (s *Spec) AddServer(srv *graph.Server) *Spec {
	if srv != nil {
		s.servers = append(s.servers, srv)
	}
	return s
}

// Path registers pre-flattened operations under a path. Methods serialize
// in conventional order regardless of map iteration, and repeated calls
// keep their insertion order in the document.
func (s *Spec) Path(path string, operations map[string]*yaml.Node) *Spec {
	node := newMappingNode()
	for _, method := range methodOrder {
		if op, ok := operations[method]; ok && op != nil {
			node.Content = append(node.Content, newScalarNode(method), op)
		}
	}
	s.paths = append(s.paths, pathEntry{path: path, operations: node})
	return s
}

// AddPath flattens graph operations and registers them under a path.
func (s *Spec) AddPath(path string, operations map[string]*graph.Operation) error {
	flattened := make(map[string]*yaml.Node, len(operations))
	for method, op := range operations {
		if op == nil {
			continue
		}
		node, err := graph.Flatten(op)
		if err != nil {
			return err
		}
		flattened[method] = node
	}
	s.Path(path, flattened)
	return nil
}

// document assembles the full document as an ordered mapping node.
func (s *Spec) document() (*yaml.Node, error) {
	doc := newMappingNode()
	appendEntry(doc, "openapi", newScalarNode(s.openapi))

	info := newMappingNode()
	appendEntry(info, "title", newScalarNode(s.info.Title))
	if s.info.Description != "" {
		appendEntry(info, "description", newScalarNode(s.info.Description))
	}
	appendEntry(info, "version", newScalarNode(s.info.Version))
	appendEntry(doc, "info", info)

	if len(s.servers) > 0 {
		servers := newSequenceNode()
		for _, srv := range s.servers {
			node, err := graph.Flatten(srv)
			if err != nil {
				return nil, fmt.Errorf("spec: flattening server %q: %w", srv.URL, err)
			}
			servers.Content = append(servers.Content, node)
		}
		appendEntry(doc, "servers", servers)
	}

	if len(s.security) > 0 {
		security := newSequenceNode()
		for _, req := range s.security {
			entry := newMappingNode()
			for _, name := range sortedKeys(req) {
				scopes := newSequenceNode()
				for _, scope := range req[name] {
					scopes.Content = append(scopes.Content, newScalarNode(scope))
				}
				scopes.Style = yaml.FlowStyle
				appendEntry(entry, name, scopes)
			}
			security.Content = append(security.Content, entry)
		}
		appendEntry(doc, "security", security)
	}

	paths := newMappingNode()
	for _, entry := range s.paths {
		appendEntry(paths, entry.path, entry.operations)
	}
	appendEntry(doc, "paths", paths)

	if len(s.components.securitySchemes) > 0 {
		schemes := newMappingNode()
		for _, name := range sortedKeys(s.components.securitySchemes) {
			appendEntry(schemes, name, s.components.securitySchemes[name])
		}
		components := newMappingNode()
		appendEntry(components, "securitySchemes", schemes)
		appendEntry(doc, "components", components)
	}

	return doc, nil
}

func appendEntry(m *yaml.Node, key string, value *yaml.Node) {
	m.Content = append(m.Content, newScalarNode(key), value)
}

func newScalarNode(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}
}

func newMappingNode() *yaml.Node {
	return &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
}

func newSequenceNode() *yaml.Node {
	return &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
