package domain

type Page[T any] struct {
	Items []T
	Total int64
}

// PageInfo is the pagination envelope of the upstream catalog. Next and Prev
// are nil on the last and first page respectively.
type PageInfo struct {
	Count int     `json:"count"`
	Pages int     `json:"pages"`
	Next  *string `json:"next"`
	Prev  *string `json:"prev"`
}

type PaginationLinks struct {
	First string `json:"first,omitempty"`
	Last  string `json:"last,omitempty"`
	Prev  string `json:"prev,omitempty"`
	Next  string `json:"next,omitempty"`
}

type PaginatedResponse struct {
	Version string          `json:"version"`
	Links   PaginationLinks `json:"links"`
}
