package services

import (
	"fmt"
	"log"
	"math"
	"sort"
	"strings"
	"sync"
	"time"

	"ebl-server/api/graph"
	"ebl-server/config"
	"ebl-server/models"
	"ebl-server/util"
)

const SORT_BY_TIME = "time"
const SORT_BY_DISTANCE = "distance"
const SORT_BY_VENUE = "venue"

// SearchParams carries one event search request through the pipeline.
type SearchParams struct {
	Lat         float64
	Lng         float64
	Distance    string
	AccessToken string
	Sort        string
}

// EventSearchService runs the aggregation pipeline: place lookup, batch
// partition, parallel venue-detail fan-out, flatten/enrich, optional sort.
// It is stateless across calls; all working data is request-local.
type EventSearchService struct {
	graphAPI graph.GraphAPI
	now      func() time.Time
}

// NewEventSearchService constructs a new EventSearchService with the Graph
// API dependency injected.
func NewEventSearchService(graphAPI graph.GraphAPI) *EventSearchService {
	return &EventSearchService{
		graphAPI: graphAPI,
		now:      time.Now,
	}
}

// SearchEvents returns the flattened, optionally sorted list of upcoming
// events near the given coordinate, plus summary counts. Any stage failure
// aborts the whole search; there are no retries and no partial results.
func (s *EventSearchService) SearchEvents(params SearchParams) (*models.EventSearchResponse, error) {
	currentTimestamp := s.now().Unix()

	// 1) Place lookup
	placeResp, err := s.graphAPI.SearchPlaceIDs(params.Lat, params.Lng, params.Distance, params.AccessToken)
	if err != nil {
		return nil, fmt.Errorf("place search failed: %w", err)
	}

	ids := make([]string, len(placeResp.Data))
	for i, place := range placeResp.Data {
		ids[i] = place.ID
	}
	venuesCount := len(ids)
	log.Printf("[EventSearchService] Place search found %d places", venuesCount)

	// 2) Partition into /?ids= sized batches
	batches := partitionPlaceIDs(ids, config.GRAPH_API_IDS_PER_CALL)

	// 3) Venue-detail fan-out, one request per batch
	batchResults, err := s.fetchVenueBatches(batches, currentTimestamp, params.AccessToken)
	if err != nil {
		return nil, err
	}

	// 4) Flatten and enrich
	events, venuesWithEvents := s.flattenEvents(batches, batchResults, params.Lat, params.Lng, currentTimestamp)

	// 5) Optional sort
	sortEvents(events, params.Sort)

	return &models.EventSearchResponse{
		Events: events,
		Metadata: models.SearchMetadata{
			Venues:           venuesCount,
			VenuesWithEvents: venuesWithEvents,
			Events:           len(events),
		},
	}, nil
}

// partitionPlaceIDs splits ids into ordered batches of at most batchSize.
// The trailing partial batch is flushed; an exact multiple leaves no empty
// batch behind.
func partitionPlaceIDs(ids []string, batchSize int) [][]string {
	var batches [][]string
	var current []string

	for _, id := range ids {
		current = append(current, id)
		if len(current) == batchSize {
			batches = append(batches, current)
			current = nil
		}
	}
	if len(current) > 0 {
		batches = append(batches, current)
	}

	return batches
}

// fetchVenueBatches issues every batch request concurrently and joins on all
// of them. The first recorded failure fails the whole stage; results from
// the other batches are discarded.
func (s *EventSearchService) fetchVenueBatches(batches [][]string, since int64, accessToken string) ([]models.VenueBatchResponse, error) {
	results := make([]models.VenueBatchResponse, len(batches))
	errCh := make(chan error, len(batches))
	var wg sync.WaitGroup

	for i, ids := range batches {
		wg.Add(1)
		go func(i int, ids []string) {
			defer wg.Done()
			resp, err := s.graphAPI.GetVenuesWithEvents(ids, since, accessToken)
			if err != nil {
				errCh <- fmt.Errorf("venue batch %d of %d failed: %w", i+1, len(batches), err)
				return
			}
			results[i] = resp
		}(i, ids)
	}

	wg.Wait()
	close(errCh)
	if err := <-errCh; err != nil {
		return nil, err
	}

	return results, nil
}

// flattenEvents merges all batch responses into one flat event list with
// derived distance and time-from-now fields. Venues are visited in batch
// order, then in the order their ids were requested, so the emission order
// is deterministic. Venues with zero events are skipped and not counted as
// having events.
func (s *EventSearchService) flattenEvents(
	batches [][]string,
	batchResults []models.VenueBatchResponse,
	lat, lng float64,
	currentTimestamp int64,
) ([]models.EventResult, int) {
	events := make([]models.EventResult, 0)
	venuesWithEvents := 0

	for batchIdx, ids := range batches {
		result := batchResults[batchIdx]
		for _, venueID := range ids {
			v, found := result[venueID]
			if !found || v.Events == nil || len(v.Events.Data) == 0 {
				continue
			}
			venuesWithEvents++

			distance := 0
			if v.Location != nil {
				km := util.HaversineDistance(v.Location.Latitude, v.Location.Longitude, lat, lng, false)
				distance = int(math.Round(km * 1000))
			} else {
				log.Printf("[EventSearchService] Venue %s has no location, distance defaults to 0", venueID)
			}

			for _, event := range v.Events.Data {
				timeFromNow, err := util.StarttimeDifference(currentTimestamp, event.StartTime)
				if err != nil {
					log.Printf("[EventSearchService] Event %s: %v, timeFromNow defaults to 0", event.ID, err)
				}

				events = append(events, models.EventResult{
					VenueID:          venueID,
					VenueName:        v.Name,
					Cover:            v.Cover,
					VenueLocation:    v.Location,
					EventID:          event.ID,
					EventName:        event.Name,
					EventDescription: event.Description,
					EventStarttime:   event.StartTime,
					EventDistance:    distance,
					EventTimeFromNow: timeFromNow,
					EventStats: models.EventStats{
						AttendingCount: event.AttendingCount,
						DeclinedCount:  event.DeclinedCount,
						MaybeCount:     event.MaybeCount,
						NoreplyCount:   event.NoreplyCount,
					},
				})
			}
		}
	}

	return events, venuesWithEvents
}

func compareVenue(a, b models.EventResult) bool {
	return a.VenueName < b.VenueName
}

func compareTimeFromNow(a, b models.EventResult) bool {
	return a.EventTimeFromNow < b.EventTimeFromNow
}

func compareDistance(a, b models.EventResult) bool {
	return a.EventDistance < b.EventDistance
}

// sortEvents reorders events in place by the requested key. Unknown or empty
// keys leave the emission order untouched. The sort is stable so equal keys
// keep their relative order.
func sortEvents(events []models.EventResult, sortKey string) {
	var less func(a, b models.EventResult) bool

	switch strings.ToLower(sortKey) {
	case SORT_BY_TIME:
		less = compareTimeFromNow
	case SORT_BY_DISTANCE:
		less = compareDistance
	case SORT_BY_VENUE:
		less = compareVenue
	default:
		return
	}

	sort.SliceStable(events, func(i, j int) bool {
		return less(events[i], events[j])
	})
}
