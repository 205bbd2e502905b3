package util

import (
	"encoding/json"
	"fmt"
	"io/ioutil"

	"ebl-server/models"
)

// ReadPlaceSearchResponseFromJSON loads a PlaceSearchResponse from JSON on disk.
func ReadPlaceSearchResponseFromJSON(filePath string) (*models.PlaceSearchResponse, error) {
	data, err := ioutil.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var resp models.PlaceSearchResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal PlaceSearchResponse: %w", err)
	}
	return &resp, nil
}

// ReadVenueBatchResponseFromJSON loads a VenueBatchResponse from JSON on disk.
func ReadVenueBatchResponseFromJSON(filePath string) (models.VenueBatchResponse, error) {
	data, err := ioutil.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var resp models.VenueBatchResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal VenueBatchResponse: %w", err)
	}
	return resp, nil
}

// PrintEventSearchResponsePartially prints key fields of an EventSearchResponse.
func PrintEventSearchResponsePartially(resp *models.EventSearchResponse) {
	fmt.Printf("Venues: %d\n", resp.Metadata.Venues)
	fmt.Printf("Venues with events: %d\n", resp.Metadata.VenuesWithEvents)
	fmt.Printf("Events: %d\n", resp.Metadata.Events)
	if len(resp.Events) > 0 {
		e := resp.Events[0]
		fmt.Printf("First event: %s at %s (%dm away, starts in %.0fs)\n",
			e.EventName, e.VenueName, e.EventDistance, e.EventTimeFromNow)
	}
}
