package client

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// APIError represents a non-2xx HTTP response from the API. Fields holds
// per-field validation messages when the server returned a field-error map.
type APIError struct {
	StatusCode int
	Message    string
	Fields     map[string][]string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message)
	}
	if len(e.Fields) > 0 {
		return fmt.Sprintf("HTTP %d: %s", e.StatusCode, flattenFields(e.Fields))
	}
	return fmt.Sprintf("HTTP %d", e.StatusCode)
}

// IsStatus returns true if err (or any wrapped error) is an APIError with the given status code.
func IsStatus(err error, code int) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == code
	}
	return false
}

// IsAuthError reports whether err is a 401 or 403 response.
func IsAuthError(err error) bool {
	return IsStatus(err, http.StatusUnauthorized) || IsStatus(err, http.StatusForbidden)
}

// IsNotFound reports whether err is a 404 response. Single-resource views
// treat this as a "not found" presentation state, not a failure.
func IsNotFound(err error) bool {
	return IsStatus(err, http.StatusNotFound)
}

// IsValidation reports whether err is a 4xx response carrying field messages.
func IsValidation(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode >= 400 && apiErr.StatusCode < 500 && len(apiErr.Fields) > 0
	}
	return false
}

// FieldErrors returns the per-field validation map from err, nil when
// err carries none. Forms use it to attach messages to their inputs.
func FieldErrors(err error) map[string][]string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && len(apiErr.Fields) > 0 {
		return apiErr.Fields
	}
	return nil
}

// Humanize converts any error from the client into a single message fit
// for an error banner. Field-error maps are flattened; unrecognized
// shapes fall back to a generic message.
func Humanize(err error) string {
	if err == nil {
		return ""
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		if len(apiErr.Fields) > 0 {
			return flattenFields(apiErr.Fields)
		}
		if apiErr.Message != "" {
			return apiErr.Message
		}
	}
	return "Request failed. Please try again."
}

// flattenFields joins a field-error map into one line, keys sorted for
// stable output.
func flattenFields(fields map[string][]string) string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		msg := strings.Join(fields[k], " ")
		if k == "non_field_errors" || k == "detail" {
			parts = append(parts, msg)
			continue
		}
		parts = append(parts, k+": "+msg)
	}
	return strings.Join(parts, "; ")
}
