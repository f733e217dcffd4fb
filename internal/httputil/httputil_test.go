package httputil

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestReasonPhrase tests phrase lookup across the valid range.
func TestReasonPhrase(t *testing.T) {
	tests := []struct {
		name string
		code int
		want string
		ok   bool
	}{
		{"ok", 200, "OK", true},
		{"created", 201, "Created", true},
		{"not found", 404, "Not Found", true},
		{"server error", 500, "Internal Server Error", true},
		{"unassigned in range", 599, "", false},
		{"below range", 99, "", false},
		{"above range", 600, "", false},
		{"negative", -1, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ReasonPhrase(tt.code)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestStandardStatusCodesAreAscending verifies the enumeration order that
// defaulted response generation depends on.
func TestStandardStatusCodesAreAscending(t *testing.T) {
	require.NotEmpty(t, StandardStatusCodes)
	assert.True(t, sort.IntsAreSorted(StandardStatusCodes))
}

// TestStandardStatusCodesHavePhrases verifies every listed code resolves.
func TestStandardStatusCodesHavePhrases(t *testing.T) {
	for _, code := range StandardStatusCodes {
		assert.True(t, IsStandardStatusCode(code), "code %d has no reason phrase", code)
	}
}

// TestIsValidMediaType tests media type validation including wildcards.
func TestIsValidMediaType(t *testing.T) {
	tests := []struct {
		mediaType string
		want      bool
	}{
		{"application/json", true},
		{"text/plain", true},
		{"application/vnd.api+json", true},
		{"multipart/form-data", true},
		{"*/*", true},
		{"application/*", true},
		{"image/*", true},
		{"*/json", false},
		{"/*", false},
		{"application", false},
		{"not a media type", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.mediaType, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidMediaType(tt.mediaType))
		})
	}
}
