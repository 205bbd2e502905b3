package models

import "ebl-server/models/venue"

// EventResult is one flattened venue+event record. The JSON keys follow the
// original events-by-location wire format.
type EventResult struct {
	VenueID          string          `json:"venueId"`
	VenueName        string          `json:"venueName"`
	Cover            *venue.Cover    `json:"cover"`
	VenueLocation    *venue.Location `json:"venueLocation"`
	EventID          string          `json:"eventId"`
	EventName        string          `json:"eventName"`
	EventDescription string          `json:"eventDescription,omitempty"`
	EventStarttime   string          `json:"eventStarttime"`
	// EventDistance is meters from the query point, rounded to the nearest
	// integer.
	EventDistance int `json:"eventDistance"`
	// EventTimeFromNow is signed seconds between the request's reference
	// timestamp and the event start; negative means the event already began.
	EventTimeFromNow float64    `json:"eventTimeFromNow"`
	EventStats       EventStats `json:"eventStats"`
}

type EventStats struct {
	AttendingCount int `json:"attendingCount"`
	DeclinedCount  int `json:"declinedCount"`
	MaybeCount     int `json:"maybeCount"`
	NoreplyCount   int `json:"noreplyCount"`
}

// SearchMetadata summarizes one search: places found at the lookup stage,
// how many of them carried at least one event, and total events emitted.
type SearchMetadata struct {
	Venues           int `json:"venues"`
	VenuesWithEvents int `json:"venuesWithEvents"`
	Events           int `json:"events"`
}

// EventSearchResponse is the envelope returned by GET /events.
type EventSearchResponse struct {
	Events   []EventResult  `json:"events"`
	Metadata SearchMetadata `json:"metadata"`
}
