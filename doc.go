// Package oasgraph builds OpenAPI 3.x documents programmatically as typed
// object graphs.
//
// oasgraph offers two primary packages for constructing and serializing
// OpenAPI documents:
//
//   - graph: Typed nodes for operations, responses, parameters, content,
//     servers, security schemes, and links, with coercion from raw mappings
//     and ordered flattening into YAML node trees
//   - spec: Document assembly, collecting paths and components into a
//     complete OpenAPI document and writing it as YAML or JSON
//
// Supporting packages:
//
//   - oaserrors: Structured error types shared across the library
//
// # Installation
//
// Install the library using go get:
//
//	go get github.com/oasgraph/oasgraph
//
// # Quick Start
//
// Build an operation with a default set of responses:
//
//	import "github.com/oasgraph/oasgraph/graph"
//
//	op := graph.NewOperation("List the widgets",
//		graph.WithOperationID("listWidgets"),
//	)
//	if err := op.UpsertResponses(graph.DefaultResponses([]int{200, 404})); err != nil {
//		log.Fatal(err)
//	}
//	node, err := graph.Flatten(op)
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Assemble and write a document:
//
//	import "github.com/oasgraph/oasgraph/spec"
//
//	doc := spec.New("Widget API", "1.0.0",
//		spec.WithServer("https://api.example.com", "production"),
//	)
//	doc.Path("/widgets", map[string]*yaml.Node{"get": node})
//	if err := doc.WriteFile("openapi.yaml"); err != nil {
//		log.Fatal(err)
//	}
//
// # Error Handling
//
// All construction and coercion failures return structured errors from the
// oaserrors package, which can be inspected with errors.Is and errors.As:
//
//	if errors.Is(err, oaserrors.ErrUnknownStatusCode) {
//		// the status code has no registered reason phrase
//	}
package oasgraph
