package graph

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"ebl-server/api"
	"ebl-server/config"
	"ebl-server/models"
)

// eventFieldsFormat nests the per-event fields under each venue's events
// edge; %d is the "since" unix timestamp filter.
const eventFieldsFormat = "id,name,cover.fields(id,source),picture,location," +
	"events.fields(id,name,cover.fields(id,source),description,start_time," +
	"attending_count,declined_count,maybe_count,noreply_count).since(%d)"

// GraphApiClient embeds the common HTTPClient
type GraphApiClient struct {
	*api.HTTPClient // Embed HTTPClient to reuse its methods and properties
}

// NewGraphApiClient creates a new instance of GraphApiClient
func NewGraphApiClient(httpClient *api.HTTPClient) *GraphApiClient {
	return &GraphApiClient{
		HTTPClient: httpClient,
	}
}

// SearchPlaceIDs queries the place search edge for ids around the center.
// The distance value is passed through raw, in the Graph API's own units.
func (c *GraphApiClient) SearchPlaceIDs(lat, lng float64, distance, accessToken string) (*models.PlaceSearchResponse, error) {
	query := url.Values{}
	query.Set("type", "place")
	query.Set("q", "*")
	query.Set("center", formatFloat(lat)+","+formatFloat(lng))
	query.Set("distance", distance)
	query.Set("limit", strconv.Itoa(config.PLACE_SEARCH_RESULT_LIMIT))
	query.Set("fields", "id")
	query.Set("access_token", accessToken)

	var response models.PlaceSearchResponse
	err := c.GetJSON("/"+config.GRAPH_API_VERSION+"/search", query, &response)
	if err != nil {
		return nil, err
	}
	return &response, nil
}

// GetVenuesWithEvents issues one batched /?ids= call for the given place ids.
func (c *GraphApiClient) GetVenuesWithEvents(placeIDs []string, since int64, accessToken string) (models.VenueBatchResponse, error) {
	query := url.Values{}
	query.Set("ids", strings.Join(placeIDs, ","))
	query.Set("fields", fmt.Sprintf(eventFieldsFormat, since))
	query.Set("access_token", accessToken)

	var response models.VenueBatchResponse
	err := c.GetJSON("/"+config.GRAPH_API_VERSION+"/", query, &response)
	if err != nil {
		return nil, err
	}
	return response, nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
