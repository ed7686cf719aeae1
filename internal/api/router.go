package api

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rgehrsitz/mcfolio/internal/api/handlers"
	"github.com/rgehrsitz/mcfolio/internal/api/middleware"
	"github.com/rgehrsitz/mcfolio/internal/calculation"
	"github.com/rgehrsitz/mcfolio/internal/config"
	"github.com/rgehrsitz/mcfolio/internal/output"
)

// NewRouter wires middleware and routes for the forecast API
func NewRouter(cfg config.ServerConfig, engine *calculation.Engine) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	router.Use(middleware.CORS(cfg.AllowedOrigins))
	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler())

	currency := cfg.Currency
	if currency == "" {
		currency = output.DefaultCurrency
	}

	parser := config.NewInputParser()
	simulationHandler := handlers.NewSimulationHandler(engine, parser, currency)
	paramsHandler := handlers.NewParamsHandler(engine, parser.Ranges)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	{
		api.POST("/simulate", simulationHandler.Simulate)
		api.POST("/compare", simulationHandler.Compare)
		api.GET("/params", paramsHandler.Params)
		api.GET("/ranges", paramsHandler.Ranges)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": gin.H{"code": "NOT_FOUND", "message": "Not found"}})
	})

	return router
}

// Serve runs the API until ctx is cancelled, then shuts down gracefully
func Serve(ctx context.Context, cfg config.ServerConfig, engine *calculation.Engine) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Port),
		Handler:           NewRouter(cfg, engine),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Starting API server on %s (%s)", srv.Addr, cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	return <-errCh
}
