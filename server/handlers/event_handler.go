package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"ebl-server/config"
	services "ebl-server/service"
)

const (
	LAT_QUERY_ARG          = "lat"
	LNG_QUERY_ARG          = "lng"
	DISTANCE_QUERY_ARG     = "distance"
	ACCESS_TOKEN_QUERY_ARG = "access_token"
	SORT_QUERY_ARG         = "sort"
)

// MISSING_PARAMS_MESSAGE matches the original events-by-location wire format.
const MISSING_PARAMS_MESSAGE = "Please specify the lat, lng, distance and access_token query parameters"

type EventHandler struct {
	eventSearchService *services.EventSearchService
	cfg                *config.Config
}

func NewEventHandler(eventSearchService *services.EventSearchService, cfg *config.Config) *EventHandler {
	return &EventHandler{
		eventSearchService: eventSearchService,
		cfg:                cfg,
	}
}

// SearchEvents handles GET /events.
func (h *EventHandler) SearchEvents(w http.ResponseWriter, r *http.Request) {
	// 1) Parse query args
	params, ok := h.parseArgs(r.URL.Query(), w)
	if !ok {
		return // error already written
	}

	// 2) Run the aggregation pipeline
	response, err := h.eventSearchService.SearchEvents(params)
	if err != nil {
		log.Println("[EventHandler] Event search failed:", err)
		writeError(w, err.Error())
		return
	}

	// 3) Write JSON
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Println("[EventHandler] Error encoding response:", err)
	}
}

func (h *EventHandler) parseArgs(vals url.Values, w http.ResponseWriter) (services.SearchParams, bool) {
	var params services.SearchParams
	var err error

	params.Lat, err = parseArgFloat64(vals, LAT_QUERY_ARG)
	if err != nil {
		writeError(w, MISSING_PARAMS_MESSAGE)
		return params, false
	}
	params.Lng, err = parseArgFloat64(vals, LNG_QUERY_ARG)
	if err != nil {
		writeError(w, MISSING_PARAMS_MESSAGE)
		return params, false
	}

	params.Distance = vals.Get(DISTANCE_QUERY_ARG)
	if params.Distance == "" {
		writeError(w, MISSING_PARAMS_MESSAGE)
		return params, false
	}

	// The query parameter wins over the FEBL_ACCESS_TOKEN fallback.
	params.AccessToken = vals.Get(ACCESS_TOKEN_QUERY_ARG)
	if params.AccessToken == "" {
		params.AccessToken = h.cfg.AccessToken
	}
	if params.AccessToken == "" {
		writeError(w, MISSING_PARAMS_MESSAGE)
		return params, false
	}

	params.Sort = vals.Get(SORT_QUERY_ARG)
	return params, true
}

// writeError writes the {"error": ...} body. The original service answered
// 500 even for client input errors; kept for wire compatibility.
func writeError(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

func parseArgFloat64(vals url.Values, name string) (float64, error) {
	s := vals.Get(name)
	return strconv.ParseFloat(s, 64)
}

// Health handles GET /health
func (h *EventHandler) Health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}
