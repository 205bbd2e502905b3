package models

// PlaceSearchResponse is the Graph API place search result: the ordered list
// of place references within the requested radius, capped by the API's own
// result limit.
type PlaceSearchResponse struct {
	Data   []PlaceRef `json:"data"`
	Paging *Paging    `json:"paging,omitempty"`
}

// PlaceRef carries the opaque place identifier only (fields=id).
type PlaceRef struct {
	ID string `json:"id"`
}

type Paging struct {
	Next string `json:"next,omitempty"`
}
