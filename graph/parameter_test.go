package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oasgraph/oasgraph/oaserrors"
)

// TestNewParameterPathForcesRequired verifies the path location rule.
func TestNewParameterPathForcesRequired(t *testing.T) {
	p, err := NewParameter("widgetId", InPath, WithParamRequired(false))
	require.NoError(t, err)
	assert.True(t, p.Required)
}

// TestNewParameterLocations tests acceptance of each declared location.
func TestNewParameterLocations(t *testing.T) {
	tests := []struct {
		in      string
		wantErr bool
	}{
		{InQuery, false},
		{InHeader, false},
		{InPath, false},
		{InCookie, false},
		{"body", true},
		{"", true},
		{"PATH", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			_, err := NewParameter("x", tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, oaserrors.ErrInvariant)
				return
			}
			require.NoError(t, err)
		})
	}
}

// TestNewParameterRequiresName verifies the name invariant.
func TestNewParameterRequiresName(t *testing.T) {
	_, err := NewParameter("", InQuery)
	require.Error(t, err)
	assert.ErrorIs(t, err, oaserrors.ErrInvariant)
}

// TestNewParameterSchemaFromNamedSchema verifies schema extraction from a
// value exposing Name().
func TestNewParameterSchemaFromNamedSchema(t *testing.T) {
	p, err := NewParameter("widgetId", InPath, WithParamSchema(namedSchema("WidgetID")))
	require.NoError(t, err)
	assert.Equal(t, "WidgetID", p.Schema)
}

// TestParameterFlattenShape verifies the external key set of a flattened
// parameter.
func TestParameterFlattenShape(t *testing.T) {
	p, err := NewParameter("limit", InQuery,
		WithParamDescription("maximum results per page"),
		WithParamSchema("PageLimit"),
		WithParamExample(25),
	)
	require.NoError(t, err)

	node, err := Flatten(p)
	require.NoError(t, err)

	want := []string{"name", "in", "description", "required", "schema", "example"}
	assert.Equal(t, want, mappingKeys(t, node))

	got := decodeNode(t, node)
	assert.Equal(t, false, got["required"])
	assert.Equal(t, 25, got["example"])
}

// TestParameterFromRawRequiresLocation verifies that a raw mapping must
// carry a location under either its external or internal key.
func TestParameterFromRawRequiresLocation(t *testing.T) {
	_, err := TypeParameter.Coerce(map[string]any{"name": "limit"})
	require.Error(t, err)
	assert.ErrorIs(t, err, oaserrors.ErrConstruction)

	got, err := TypeParameter.Coerce(map[string]any{
		"name":         "limit",
		"parameter_in": "query",
	})
	require.NoError(t, err)
	assert.Equal(t, InQuery, got.(*Parameter).In)
}
