package query

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jobdeck/jobdeck/pkg/client"
)

// Page is one fetched page of a remote collection.
type Page[T any] struct {
	Items       []T
	TotalCount  int
	HasNext     bool
	HasPrevious bool
}

// FetchFunc performs the actual paginated GET for the collection.
type FetchFunc[T any] func(ctx context.Context, page int, filters Filters) (Page[T], error)

// Ticket identifies one issued fetch: which generation it belongs to and
// the page/filters it was issued for. Results are applied only when
// their ticket is still the newest one, so a slow reply from an old
// filter set can never overwrite newer data.
type Ticket struct {
	Gen     uuid.UUID
	Page    int
	Filters Filters
}

// Result is the outcome of running one ticket.
type Result[T any] struct {
	Ticket Ticket
	Page   Page[T]
	Err    error
}

// Engine tracks the view state of one remote paginated collection:
// items, page position, loading/error flags, and the active filter set.
// One engine per collection type; never shared across types.
type Engine[T any] struct {
	fetch FetchFunc[T]

	items       []T
	page        int
	totalCount  int
	hasNext     bool
	hasPrevious bool
	loading     bool
	err         string
	filters     Filters

	gen uuid.UUID // newest issued ticket
}

// NewEngine returns an engine around fetch with no filters applied.
func NewEngine[T any](fetch FetchFunc[T]) *Engine[T] {
	return &Engine[T]{fetch: fetch, page: 1, filters: Filters{}}
}

// StartFetch marks a load in progress and returns the ticket for it.
// Pages below 1 are rejected before any I/O happens.
func (e *Engine[T]) StartFetch(page int) (Ticket, error) {
	if page < 1 {
		return Ticket{}, fmt.Errorf("invalid page %d", page)
	}
	e.loading = true
	e.err = ""
	e.gen = uuid.New()
	return Ticket{Gen: e.gen, Page: page, Filters: e.filters}, nil
}

// Run executes the fetch for a ticket. It never touches engine state,
// so it is safe to call from a bubbletea command goroutine.
func (e *Engine[T]) Run(ctx context.Context, t Ticket) Result[T] {
	page, err := e.fetch(ctx, t.Page, t.Filters)
	return Result[T]{Ticket: t, Page: page, Err: err}
}

// Apply folds a result into the engine. Results from superseded tickets
// are discarded and Apply reports false. On error the previous items
// stay visible and only the error message changes.
func (e *Engine[T]) Apply(r Result[T]) bool {
	if r.Ticket.Gen != e.gen {
		return false
	}
	e.loading = false
	if r.Err != nil {
		e.err = client.Humanize(r.Err)
		return true
	}
	e.err = ""
	e.items = r.Page.Items
	e.totalCount = r.Page.TotalCount
	e.hasNext = r.Page.HasNext
	e.hasPrevious = r.Page.HasPrevious
	e.page = r.Ticket.Page
	return true
}

// ApplyFilters replaces the filter set and issues a fetch for page 1.
// Filter changes always restart pagination.
func (e *Engine[T]) ApplyFilters(f Filters) (Ticket, error) {
	if f == nil {
		f = Filters{}
	}
	e.filters = f
	return e.StartFetch(1)
}

// ClearFilters drops every constraint and refetches page 1.
func (e *Engine[T]) ClearFilters() (Ticket, error) {
	return e.ApplyFilters(Filters{})
}

func (e *Engine[T]) Items() []T        { return e.items }
func (e *Engine[T]) CurrentPage() int  { return e.page }
func (e *Engine[T]) TotalCount() int   { return e.totalCount }
func (e *Engine[T]) HasNext() bool     { return e.hasNext }
func (e *Engine[T]) HasPrevious() bool { return e.hasPrevious }
func (e *Engine[T]) Loading() bool     { return e.loading }
func (e *Engine[T]) Err() string       { return e.err }
func (e *Engine[T]) Filters() Filters  { return e.filters }
