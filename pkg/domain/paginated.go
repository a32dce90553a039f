package domain

// Paginated is the backend's page envelope for list endpoints.
// Next and Previous are the server-provided page URLs, nil on the
// first/last page.
type Paginated[T any] struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}

// HasNext reports whether the server advertised a following page.
func (p Paginated[T]) HasNext() bool { return p.Next != nil }

// HasPrevious reports whether the server advertised a preceding page.
func (p Paginated[T]) HasPrevious() bool { return p.Previous != nil }
