package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Domenick1991/skyward/api"
	"github.com/Domenick1991/skyward/config"
	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Auth     *api.AuthHandler
	Flights  *api.FlightHandler
	Bookings *api.BookingHandler
	Journeys *api.JourneyHandler
}

// Run starts the HTTP server and blocks until the context is canceled or
// the server fails.
func Run(ctx context.Context, cfg *config.Config, handlers Handlers) error {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	handlers.Auth.Register(router.Group("/api/auth"))
	handlers.Flights.Register(router.Group("/api/flights"))
	handlers.Bookings.Register(router.Group("/api/bookings"))
	if handlers.Journeys != nil {
		handlers.Journeys.Register(router.Group("/api/journeys"))
	}

	httpSrv := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- httpSrv.ListenAndServe() }()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}
