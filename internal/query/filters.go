// Package query implements the two list strategies the views build on:
// a remote paginated engine with last-request-wins fetch tagging, and a
// local filter over small, fully fetched collections.
package query

import "net/url"

// Canonical job filter keys. One dashboard draft of the web client used
// misspelled variants; these names are the only ones sent on the wire.
const (
	KeyCategory   = "category"
	KeyLocation   = "location"
	KeyExperience = "experience_level"
	KeySearch     = "search"
)

// Filters maps filter keys to values. An absent key and an empty value
// mean the same thing: no constraint.
type Filters map[string]string

// Merge overlays non-empty values of other onto f and returns the
// result. Empty values in other delete the key. Neither input is
// mutated.
func (f Filters) Merge(other Filters) Filters {
	out := make(Filters, len(f)+len(other))
	for k, v := range f {
		if v != "" {
			out[k] = v
		}
	}
	for k, v := range other {
		if v == "" {
			delete(out, k)
			continue
		}
		out[k] = v
	}
	return out
}

// IsActive reports whether at least one key holds a non-empty value.
func (f Filters) IsActive() bool {
	return f.ActiveCount() > 0
}

// ActiveCount returns the number of non-empty filter values, driving
// the "N active filters" badge.
func (f Filters) ActiveCount() int {
	n := 0
	for _, v := range f {
		if v != "" {
			n++
		}
	}
	return n
}

// Get returns the value for key, empty when unset.
func (f Filters) Get(key string) string {
	return f[key]
}

// Equal reports whether two filter sets constrain identically: same
// non-empty key/value pairs, key order irrelevant.
func (f Filters) Equal(other Filters) bool {
	if f.ActiveCount() != other.ActiveCount() {
		return false
	}
	for k, v := range f {
		if v != "" && other[k] != v {
			return false
		}
	}
	return true
}

// Params converts the filter set into query parameters, dropping empty
// values.
func (f Filters) Params() url.Values {
	params := url.Values{}
	for k, v := range f {
		if v != "" {
			params.Set(k, v)
		}
	}
	return params
}
