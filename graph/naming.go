package graph

import "strings"

// ToExternalKey converts an internal snake_case field name to its external
// document key. When camelback is true, every underscore followed by a
// lowercase letter is removed and that letter is upper-cased
// ("parameter_in" -> "parameterIn"); otherwise the name passes through
// unchanged.
//
// Node-specific alias renames (e.g. "key_in" -> "in") are not handled here;
// they are applied by each node's flattening step because the alias target
// is node-specific.
func ToExternalKey(name string, camelback bool) string {
	if !camelback {
		return name
	}
	return snakeToCamelback(name)
}

// snakeToCamelback converts snake_case to camelCase.
// Example: "open_id_connect_url" -> "openIdConnectUrl"
func snakeToCamelback(s string) string {
	if !strings.ContainsRune(s, '_') {
		return s
	}

	var result strings.Builder
	result.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '_' && i+1 < len(s) && s[i+1] >= 'a' && s[i+1] <= 'z' {
			result.WriteByte(s[i+1] - 'a' + 'A')
			i++
			continue
		}
		result.WriteByte(s[i])
	}
	return result.String()
}
