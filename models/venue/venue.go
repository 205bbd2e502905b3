package venue

// Venue is one entry of a batched /?ids= Graph API response: place metadata
// plus the place's upcoming events. Ephemeral, discarded after flattening.
type Venue struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Cover    *Cover     `json:"cover,omitempty"`
	Picture  *Picture   `json:"picture,omitempty"`
	Location *Location  `json:"location,omitempty"`
	Events   *EventList `json:"events,omitempty"`
}

// Cover is a cover image reference, also used for event covers.
type Cover struct {
	ID     string `json:"id"`
	Source string `json:"source"`
}

type Picture struct {
	Data *PictureData `json:"data,omitempty"`
}

type PictureData struct {
	URL string `json:"url"`
}

type Location struct {
	City      string  `json:"city,omitempty"`
	Country   string  `json:"country,omitempty"`
	Street    string  `json:"street,omitempty"`
	Zip       string  `json:"zip,omitempty"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// EventList wraps the Graph API's nested {"data": [...]} event array.
type EventList struct {
	Data []Event `json:"data"`
}
