package query

import "strings"

// Local filters an already-fetched bounded collection in memory. This is
// a deliberately separate strategy from Engine: no pagination, no
// network, suited to small sets like available candidates.
type Local[T any] struct {
	all     []T
	match   func(item T, filters Filters) bool
	filters Filters
}

// NewLocal returns a local list using match to test items against the
// active filter set.
func NewLocal[T any](match func(item T, filters Filters) bool) *Local[T] {
	return &Local[T]{match: match, filters: Filters{}}
}

// SetItems replaces the backing collection, keeping the active filters.
func (l *Local[T]) SetItems(items []T) {
	l.all = items
}

// ApplyFilters replaces the active filter set.
func (l *Local[T]) ApplyFilters(f Filters) {
	if f == nil {
		f = Filters{}
	}
	l.filters = f
}

// ClearFilters drops every constraint.
func (l *Local[T]) ClearFilters() {
	l.filters = Filters{}
}

// Filters returns the active filter set.
func (l *Local[T]) Filters() Filters {
	return l.filters
}

// Total returns the size of the unfiltered collection.
func (l *Local[T]) Total() int {
	return len(l.all)
}

// Items returns the items passing the active filters, in input order.
func (l *Local[T]) Items() []T {
	if !l.filters.IsActive() {
		return l.all
	}
	out := make([]T, 0, len(l.all))
	for _, item := range l.all {
		if l.match(item, l.filters) {
			out = append(out, item)
		}
	}
	return out
}

// ContainsFold is a case-insensitive substring test for match functions.
func ContainsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
