// Package graph provides typed construction of OpenAPI 3.x object graphs.
//
// The package models the OpenAPI object vocabulary (responses, operations,
// parameters, media-type content, servers, security schemes, OAuth flows,
// links, headers) as node types. Callers build leaf nodes, attach them to
// container nodes, and flatten the whole reachable graph into an ordered
// mapping suitable for document rendering.
//
// # Quick Start
//
//	resp, err := graph.NewResponse(200)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := resp.SetContent("UserFeed", example); err != nil {
//		log.Fatal(err)
//	}
//
//	op := graph.NewOperation("Retrieve a user feed",
//		graph.WithOperationTags("Feed"),
//	)
//	if err := op.UpsertResponses([]*graph.Response{resp}); err != nil {
//		log.Fatal(err)
//	}
//
//	node, err := graph.Flatten(op)
//	if err != nil {
//		log.Fatal(err)
//	}
//	data, _ := yaml.Marshal(node)
//
// # Coercion
//
// Every typed attribute accepts three input shapes: an already-typed node,
// which passes through unchanged; a raw map[string]any, which is coerced
// into the expected node type after alias resolution; and nothing else.
// Unacceptable values fail with oaserrors.TypeMismatchError, and mappings
// that cannot be constructed fail with oaserrors.ConstructionError. Once an
// attribute is set it holds only canonical nodes; flattening never coerces.
//
// # Flattening
//
// Flatten returns a *yaml.Node mapping tree whose key order follows each
// node type's declared field order. Empty and zero values are omitted from
// the output, with the exception of fields a node type explicitly marks for
// emission (a parameter's required flag). Internal snake_case field names
// are converted to camelCase external keys for node types that declare it,
// and node-specific aliases rename reserved-word collisions (a parameter's
// "in", a security scheme's "in").
//
// Concurrency: nodes are not safe for concurrent use. Each root node and
// its descendants form an isolated tree; independent graphs may be built
// from separate goroutines.
package graph
