package graph

import (
	"fmt"

	"ebl-server/config"
	"ebl-server/models"
	"ebl-server/util"
)

// GraphApiClientMock serves canned Graph API responses from the resources
// directory, for local runs and tests without a real access token.
type GraphApiClientMock struct {
}

// NewGraphApiClientMock creates a new instance of GraphApiClientMock
func NewGraphApiClientMock() *GraphApiClientMock {
	return &GraphApiClientMock{}
}

// SearchPlaceIDs returns the canned place search response.
func (c *GraphApiClientMock) SearchPlaceIDs(lat, lng float64, distance, accessToken string) (*models.PlaceSearchResponse, error) {
	response, err := util.ReadPlaceSearchResponseFromJSON(config.GetResourcePath(config.PLACE_SEARCH_RESPONSE_RESOURCE))
	if err != nil {
		fmt.Println("Could not read place search response from json")
		return nil, err
	}

	return response, nil
}

// GetVenuesWithEvents returns the canned venue batch response regardless of
// the requested ids.
func (c *GraphApiClientMock) GetVenuesWithEvents(placeIDs []string, since int64, accessToken string) (models.VenueBatchResponse, error) {
	response, err := util.ReadVenueBatchResponseFromJSON(config.GetResourcePath(config.VENUE_BATCH_RESPONSE_RESOURCE))
	if err != nil {
		fmt.Println("Could not read venue batch response from json")
		return nil, err
	}

	return response, nil
}
