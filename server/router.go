package server

import (
	"net/http"

	"github.com/gorilla/mux"
)

// EventHandler is what the router needs from the handler layer.
type EventHandler interface {
	SearchEvents(w http.ResponseWriter, r *http.Request)
	Health(w http.ResponseWriter, r *http.Request)
}

type Router struct {
	eventHandler EventHandler
	router       *mux.Router
}

// NewRouter creates a router with the app's routes.
func NewRouter(
	eventHandler EventHandler,
	router *mux.Router) *Router {
	return &Router{
		eventHandler: eventHandler,
		router:       router,
	}
}

func (r *Router) RegisterRoutes() {
	// expects ?lat={latitude(float)}&lng={longitude(float)}&distance={radius}&access_token={token}&sort={time|distance|venue}
	r.router.HandleFunc("/events", r.eventHandler.SearchEvents).Methods("GET")

	r.router.HandleFunc("/health", r.eventHandler.Health).Methods("GET")
}
