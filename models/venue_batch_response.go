package models

import "ebl-server/models/venue"

// VenueBatchResponse is one batched /?ids= Graph API response, keyed by the
// requested place ids.
type VenueBatchResponse map[string]venue.Venue
