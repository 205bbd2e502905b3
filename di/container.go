package di

import (
	"log"

	"github.com/gorilla/mux"

	"ebl-server/api"
	"ebl-server/api/graph"
	"ebl-server/config"
	"ebl-server/server"
	"ebl-server/server/handlers"
	services "ebl-server/service"
)

// Container holds all application dependencies.
type Container struct {
	GraphAPI           graph.GraphAPI
	EventSearchService *services.EventSearchService
	EventHandler       *handlers.EventHandler
	MuxRouter          *mux.Router
	Router             *server.Router
	EblHttpServer      *server.EblHttpServer
}

// NewContainer initializes and wires up all dependencies.
func NewContainer(cfg *config.Config) *Container {
	log.Printf("initializing container - env: %s", cfg.Env)

	// Initialize the Graph API client - mock outside of prod
	var graphApiClient graph.GraphAPI
	if cfg.Env != "prod" {
		graphApiClient = graph.NewGraphApiClientMock()
		log.Printf("Using mock graph api")
	} else {
		log.Printf("Using prod graph api")
		httpClient := api.NewHTTPClient(config.GRAPH_API_ENDPOINT_BASE)
		graphApiClient = graph.NewGraphApiClient(httpClient)
	}

	// Initialize the event search pipeline
	eventSearchService := services.NewEventSearchService(graphApiClient)

	// Initialize event handler
	eventHandler := handlers.NewEventHandler(eventSearchService, cfg)

	// Initialize mux router
	muxRouter := mux.NewRouter()

	// Initialize router
	router := server.NewRouter(eventHandler, muxRouter)

	// initialize the events-by-location server
	eblHttpServer := server.NewEblHttpServer(router, muxRouter, cfg)

	return &Container{
		GraphAPI:           graphApiClient,
		EventSearchService: eventSearchService,
		EventHandler:       eventHandler,
		MuxRouter:          muxRouter,
		Router:             router,
		EblHttpServer:      eblHttpServer,
	}
}
