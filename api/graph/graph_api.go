package graph

import (
	"ebl-server/models"
)

// GraphAPI defines the interface for interacting with the Graph API
type GraphAPI interface {
	// SearchPlaceIDs finds place ids within the given radius (meters, Graph
	// API units) around a coordinate.
	SearchPlaceIDs(lat, lng float64, distance, accessToken string) (*models.PlaceSearchResponse, error)
	// GetVenuesWithEvents fetches venue metadata plus each venue's events
	// starting at or after the since timestamp, for up to 50 place ids.
	GetVenuesWithEvents(placeIDs []string, since int64, accessToken string) (models.VenueBatchResponse, error)
}
