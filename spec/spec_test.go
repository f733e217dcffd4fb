package spec

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v4"

	"github.com/oasgraph/oasgraph/graph"
	"github.com/oasgraph/oasgraph/oaserrors"
)

// buildTestSpec assembles a small document exercising servers, security,
// paths, and components.
func buildTestSpec(t *testing.T) *Spec {
	t.Helper()

	doc := New("Widget API", "1.0.0",
		WithDescription("Manage the widget inventory"),
		WithServer("https://api.example.com", "production"),
		WithSecurityRequirement("apiKey"),
	)

	list := graph.NewOperation("List the widgets", graph.WithOperationID("listWidgets"))
	require.NoError(t, list.UpsertResponses(graph.DefaultResponses([]int{200, 400})))

	get := graph.NewOperation("Get a widget", graph.WithOperationID("getWidget"))
	require.NoError(t, get.AddParameter("WidgetID", "widgetId"))
	require.NoError(t, get.UpsertResponses(graph.DefaultResponses([]int{200, 404})))

	require.NoError(t, doc.AddPath("/widgets", map[string]*graph.Operation{"get": list}))
	require.NoError(t, doc.AddPath("/widgets/{widgetId}", map[string]*graph.Operation{"get": get}))

	scheme, err := graph.NewSecurityScheme(graph.SchemeAPIKey,
		graph.WithSchemeName("X-API-Key"),
		graph.WithSchemeKeyIn(graph.InHeader),
	)
	require.NoError(t, err)
	require.NoError(t, doc.Components().AddSecurityScheme("apiKey", scheme))

	return doc
}

// TestMarshalYAML verifies the document shape after a YAML round trip.
func TestMarshalYAML(t *testing.T) {
	doc := buildTestSpec(t)

	data, err := doc.MarshalYAML()
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, yaml.Unmarshal(data, &got))

	assert.Equal(t, "3.0.1", got["openapi"])

	info, ok := got["info"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Widget API", info["title"])
	assert.Equal(t, "1.0.0", info["version"])

	paths, ok := got["paths"].(map[string]any)
	require.True(t, ok)
	require.Contains(t, paths, "/widgets")
	require.Contains(t, paths, "/widgets/{widgetId}")

	widgets, ok := paths["/widgets"].(map[string]any)
	require.True(t, ok)
	getOp, ok := widgets["get"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "listWidgets", getOp["operationId"])

	responses, ok := getOp["responses"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, responses, "200")
	assert.Contains(t, responses, "400")
}

// TestMarshalYAMLPreservesPathOrder verifies paths keep insertion order.
func TestMarshalYAMLPreservesPathOrder(t *testing.T) {
	doc := New("Ordered API", "1.0.0")
	doc.Path("/zebras", nil)
	doc.Path("/aardvarks", nil)

	node, err := doc.document()
	require.NoError(t, err)
	var paths *yaml.Node
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == "paths" {
			paths = node.Content[i+1]
		}
	}
	require.NotNil(t, paths)
	require.Len(t, paths.Content, 4)
	assert.Equal(t, "/zebras", paths.Content[0].Value)
	assert.Equal(t, "/aardvarks", paths.Content[2].Value)
}

// TestPathOrdersMethods verifies conventional method order within a path.
func TestPathOrdersMethods(t *testing.T) {
	doc := New("Widget API", "1.0.0")

	ops := make(map[string]*graph.Operation)
	for _, method := range []string{"delete", "get", "post"} {
		op := graph.NewOperation("widget " + method)
		require.NoError(t, op.UpsertResponses(graph.DefaultResponses([]int{200})))
		ops[method] = op
	}
	require.NoError(t, doc.AddPath("/widgets/{widgetId}", ops))

	node, err := doc.document()
	require.NoError(t, err)
	var paths *yaml.Node
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == "paths" {
			paths = node.Content[i+1]
		}
	}
	require.NotNil(t, paths)
	operations := paths.Content[1]

	var methods []string
	for i := 0; i+1 < len(operations.Content); i += 2 {
		methods = append(methods, operations.Content[i].Value)
	}
	assert.Equal(t, []string{"get", "post", "delete"}, methods)
}

// TestMarshalJSON verifies the JSON form parses and matches the YAML shape.
func TestMarshalJSON(t *testing.T) {
	doc := buildTestSpec(t)

	data, err := doc.MarshalJSON()
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(data, &got))

	assert.Equal(t, "3.0.1", got["openapi"])

	components, ok := got["components"].(map[string]any)
	require.True(t, ok)
	schemes, ok := components["securitySchemes"].(map[string]any)
	require.True(t, ok)
	apiKey, ok := schemes["apiKey"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "header", apiKey["in"])

	security, ok := got["security"].([]any)
	require.True(t, ok)
	require.Len(t, security, 1)
}

// TestWriteFile verifies format selection by extension.
func TestWriteFile(t *testing.T) {
	doc := buildTestSpec(t)
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "openapi.yaml")
	require.NoError(t, doc.WriteFile(yamlPath))
	yamlData, err := os.ReadFile(yamlPath)
	require.NoError(t, err)
	var fromYAML map[string]any
	require.NoError(t, yaml.Unmarshal(yamlData, &fromYAML))
	assert.Equal(t, "3.0.1", fromYAML["openapi"])

	jsonPath := filepath.Join(dir, "openapi.json")
	require.NoError(t, doc.WriteFile(jsonPath))
	jsonData, err := os.ReadFile(jsonPath)
	require.NoError(t, err)
	var fromJSON map[string]any
	require.NoError(t, json.Unmarshal(jsonData, &fromJSON))
	assert.Equal(t, "3.0.1", fromJSON["openapi"])
}

// TestInvalidServerFailsMarshal verifies that a bad server option is not
// silently dropped: the error accumulates and fails every marshaling call.
func TestInvalidServerFailsMarshal(t *testing.T) {
	doc := New("Widget API", "1.0.0", WithServer("", "misconfigured"))

	_, err := doc.MarshalYAML()
	require.Error(t, err)
	assert.ErrorIs(t, err, oaserrors.ErrInvariant)
	assert.ErrorContains(t, err, "invalid server")

	_, err = doc.MarshalJSON()
	require.Error(t, err)

	err = doc.WriteFile(filepath.Join(t.TempDir(), "openapi.yaml"))
	require.Error(t, err)
}

// TestSecuritySchemesAccessor verifies the readable components surface.
func TestSecuritySchemesAccessor(t *testing.T) {
	doc := New("Widget API", "1.0.0")
	assert.Empty(t, doc.Components().SecuritySchemes())

	scheme, err := graph.NewSecurityScheme(graph.SchemeHTTP, graph.WithHTTPScheme("bearer"))
	require.NoError(t, err)
	require.NoError(t, doc.Components().AddSecurityScheme("bearerAuth", scheme))

	schemes := doc.Components().SecuritySchemes()
	require.Len(t, schemes, 1)
	require.Contains(t, schemes, "bearerAuth")
	assert.NotNil(t, schemes["bearerAuth"])
}

// TestWithOpenAPIVersion verifies the version override.
func TestWithOpenAPIVersion(t *testing.T) {
	doc := New("Widget API", "1.0.0", WithOpenAPIVersion("3.1.0"))

	data, err := doc.MarshalYAML()
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, yaml.Unmarshal(data, &got))
	assert.Equal(t, "3.1.0", got["openapi"])
}
