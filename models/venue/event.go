package venue

// Event is a raw upcoming event as returned inside a venue's events list.
// start_time is an ISO-8601 string and may lie in the past relative to the
// query; the attendance counts are non-negative.
type Event struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Cover          *Cover `json:"cover,omitempty"`
	Description    string `json:"description,omitempty"`
	StartTime      string `json:"start_time"`
	AttendingCount int    `json:"attending_count"`
	DeclinedCount  int    `json:"declined_count"`
	MaybeCount     int    `json:"maybe_count"`
	NoreplyCount   int    `json:"noreply_count"`
}
