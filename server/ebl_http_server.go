package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"ebl-server/config"
)

type EblHttpServer struct {
	router    *Router
	muxRouter *mux.Router
	cfg       *config.Config
}

func NewEblHttpServer(router *Router, muxRouter *mux.Router, cfg *config.Config) *EblHttpServer {
	return &EblHttpServer{
		router:    router,
		muxRouter: muxRouter,
		cfg:       cfg,
	}
}

// corsMiddleware allows the whitelisted origins, or every origin when no
// whitelist is configured (original FEBL_CORS_WHITELIST behavior).
func (s *EblHttpServer) corsMiddleware(next http.Handler) http.Handler {
	allowed := []string{"*"}
	if s.cfg.CorsWhitelist != "" {
		allowed = strings.Split(s.cfg.CorsWhitelist, ",")
		log.Printf("[EblHttpServer] Using CORS whitelist of %v", allowed)
	}
	return handlers.CORS(handlers.AllowedOrigins(allowed))(next)
}

func (s *EblHttpServer) Start() {
	s.router.RegisterRoutes()

	// Apache combined access logs, like the original's morgan("combined").
	handler := handlers.CombinedLoggingHandler(os.Stdout, s.corsMiddleware(s.muxRouter))

	srv := &http.Server{
		Addr:    s.cfg.Addr(),
		Handler: handler,
	}

	// Channel to listen for interrupt or termination signals
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// Start the server in a goroutine so it doesn't block
	go func() {
		fmt.Println("Starting server on " + s.cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()

	// Wait for a signal to shut down
	<-stop
	fmt.Println("\nShutting down the server...")

	// Create a deadline for the shutdown (e.g., 5 seconds)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Attempt graceful shutdown
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	fmt.Println("Server exiting")
}
