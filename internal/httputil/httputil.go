// Package httputil provides HTTP-related validation utilities and constants.
package httputil

import (
	"mime"
	"net/http"
	"strings"
)

// HTTP Status Code Constants
const (
	MinStatusCode = 100 // Minimum valid HTTP status code
	MaxStatusCode = 599 // Maximum valid HTTP status code
)

// StandardStatusCodes contains RFC 9110 officially defined HTTP status codes
// in ascending order. Iteration over this slice is the enumeration order used
// when generating defaulted responses from a status list.
var StandardStatusCodes = []int{
	// 1xx Informational
	100, 101, 102, 103,
	// 2xx Success
	200, 201, 202, 203, 204, 205, 206, 207, 208, 226,
	// 3xx Redirection
	300, 301, 302, 303, 304, 305, 307, 308,
	// 4xx Client Error
	400, 401, 402, 403, 404, 405, 406, 407, 408, 409, 410, 411,
	412, 413, 414, 415, 416, 417, 418, 421, 422, 423, 424, 425,
	426, 428, 429, 431, 451,
	// 5xx Server Error
	500, 501, 502, 503, 504, 505, 506, 507, 508, 510, 511,
}

// ReasonPhrase returns the standard HTTP reason phrase for a status code.
// The second return value is false when the code has no registered phrase.
func ReasonPhrase(code int) (string, bool) {
	if code < MinStatusCode || code > MaxStatusCode {
		return "", false
	}
	text := http.StatusText(code)
	return text, text != ""
}

// IsStandardStatusCode checks if a status code is a well-defined standard HTTP code.
func IsStandardStatusCode(code int) bool {
	_, ok := ReasonPhrase(code)
	return ok
}

// IsValidMediaType validates a media type string according to RFC 2045/2046.
// Handles wildcards (*/* and type/*) and prevents invalid combinations (*/subtype).
func IsValidMediaType(mediaType string) bool {
	if mediaType == "*/*" {
		return true
	}

	if strings.HasSuffix(mediaType, "/*") {
		// Check format: type/* (e.g., application/*)
		parts := strings.Split(mediaType, "/")
		if len(parts) == 2 && parts[0] != "" && parts[0] != "*" {
			return true
		}
		return false
	}

	// Use standard MIME type parser for regular types
	_, _, err := mime.ParseMediaType(mediaType)
	return err == nil
}
