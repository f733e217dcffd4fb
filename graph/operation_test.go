package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oasgraph/oasgraph/oaserrors"
)

// TestUpsertResponsesExistingWins verifies the merge precedence rule.
func TestUpsertResponsesExistingWins(t *testing.T) {
	op := NewOperation("Create a widget")

	custom, err := NewResponse(201, WithResponseDescription("widget created"))
	require.NoError(t, err)
	require.NoError(t, op.UpsertResponses([]*Response{custom}))

	// Merging defaults afterwards must not displace the custom 201.
	require.NoError(t, op.UpsertResponses(DefaultResponses([]int{200, 201})))

	assert.Equal(t, []string{"200", "201"}, op.Responses().Keys())

	got, ok := op.Responses().Get("201")
	require.True(t, ok)
	r, ok := got.(*Response)
	require.True(t, ok)
	assert.Equal(t, "widget created", r.Description)
}

// TestUpsertResponsesSkipsNil verifies that nil entries are ignored.
func TestUpsertResponsesSkipsNil(t *testing.T) {
	op := NewOperation("List widgets")

	r, err := NewResponse(200)
	require.NoError(t, err)
	require.NoError(t, op.UpsertResponses([]*Response{nil, r, nil}))

	assert.Equal(t, 1, op.Responses().Len())
}

// TestUpsertResponsesKeepsAscendingOrder verifies sorted key iteration
// across repeated merges.
func TestUpsertResponsesKeepsAscendingOrder(t *testing.T) {
	op := NewOperation("List widgets")

	require.NoError(t, op.UpsertResponses(DefaultResponses([]int{500})))
	require.NoError(t, op.UpsertResponses(DefaultResponses([]int{200, 404})))
	require.NoError(t, op.UpsertResponses(DefaultResponses([]int{400})))

	assert.Equal(t, []string{"200", "400", "404", "500"}, op.Responses().Keys())
}

// TestAddParameterDefaults verifies the path-and-required defaults.
func TestAddParameterDefaults(t *testing.T) {
	op := NewOperation("Get a widget")
	require.NoError(t, op.AddParameter("WidgetID", "widgetId"))

	require.Equal(t, 1, op.Parameters().Len())
	p, ok := op.Parameters().Items()[0].(*Parameter)
	require.True(t, ok)
	assert.Equal(t, "widgetId", p.Name)
	assert.Equal(t, InPath, p.In)
	assert.True(t, p.Required)
	assert.Equal(t, "WidgetID", p.Schema)
}

// TestAddParameterOverrides verifies location and required overrides.
func TestAddParameterOverrides(t *testing.T) {
	op := NewOperation("List widgets")
	require.NoError(t, op.AddParameter("PageLimit", "limit",
		WithParamIn(InQuery),
		WithParamRequired(false),
		WithParamDescription("maximum results per page"),
	))

	p, ok := op.Parameters().Items()[0].(*Parameter)
	require.True(t, ok)
	assert.Equal(t, InQuery, p.In)
	assert.False(t, p.Required)
}

// TestSetRequestBody verifies both canonical and raw request bodies.
func TestSetRequestBody(t *testing.T) {
	op := NewOperation("Create a widget")

	rb := NewRequestBody(
		WithRequestBodyDescription("the widget to create"),
		WithRequestBodyRequired(true),
	)
	require.NoError(t, rb.SetContent("NewWidget", nil))
	require.NoError(t, op.SetRequestBody(rb))
	assert.Same(t, rb, op.RequestBody())

	require.NoError(t, op.SetRequestBody(map[string]any{
		"description": "replacement body",
		"required":    true,
		"content": map[string]any{
			"schema": "NewWidget",
		},
	}))
	require.NotNil(t, op.RequestBody())
	assert.Equal(t, "replacement body", op.RequestBody().Description)
	require.NotNil(t, op.RequestBody().Content())
	assert.Equal(t, "application/json", op.RequestBody().Content().ContentType)
}

// TestSetRequestBodyRejectsBadValue verifies the coercion failure mode.
func TestSetRequestBodyRejectsBadValue(t *testing.T) {
	op := NewOperation("Create a widget")
	err := op.SetRequestBody("not a request body")
	require.Error(t, err)
	assert.ErrorIs(t, err, oaserrors.ErrTypeMismatch)
}

// TestParametersRejectUntypedAppend verifies list element typing.
func TestParametersRejectUntypedAppend(t *testing.T) {
	op := NewOperation("List widgets")
	err := op.Parameters().Append(42)
	require.Error(t, err)
	assert.ErrorIs(t, err, oaserrors.ErrTypeMismatch)
}

// TestOperationFromRaw verifies full coercion of an operation mapping.
func TestOperationFromRaw(t *testing.T) {
	got, err := TypeOperation.Coerce(map[string]any{
		"description":  "List the widgets",
		"operation_id": "listWidgets",
		"tags":         []any{"widgets"},
		"parameters": []any{
			map[string]any{"name": "limit", "in": "query", "schema": "PageLimit"},
		},
		"responses": map[string]any{
			"200": map[string]any{"status_code": 200},
		},
	})
	require.NoError(t, err)

	op, ok := got.(*Operation)
	require.True(t, ok)
	assert.Equal(t, "listWidgets", op.OperationID)
	assert.Equal(t, []string{"widgets"}, op.Tags)
	assert.Equal(t, 1, op.Parameters().Len())
	assert.Equal(t, []string{"200"}, op.Responses().Keys())
}
