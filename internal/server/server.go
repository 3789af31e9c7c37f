package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/abhisek/scorecast/internal/prediction"
)

// Config holds HTTP server settings.
type Config struct {
	Addr             string
	AllowOrigins     []string
	BatchConcurrency int
	MaxBatch         int
	ShutdownTimeout  time.Duration
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		Addr:             ":8080",
		BatchConcurrency: prediction.DefaultBatchConcurrency,
		MaxBatch:         100,
		ShutdownTimeout:  10 * time.Second,
	}
}

// NewRouter wires the prediction API.
func NewRouter(svc *prediction.Service, log zerolog.Logger, cfg Config) *gin.Engine {
	log = log.With().Str("component", "http").Logger()

	maxBatch := cfg.MaxBatch
	if maxBatch < 1 {
		maxBatch = DefaultConfig().MaxBatch
	}
	h := &handlers{svc: svc, batchConcurrency: cfg.BatchConcurrency, maxBatch: maxBatch}

	r := gin.New()
	r.Use(AttachRequestContext())
	r.Use(RequestLogger(log))
	r.Use(Recovery(log))
	r.Use(CORS(cfg.AllowOrigins))

	r.GET("/healthz", h.health)

	v1 := r.Group("/v1")
	{
		v1.POST("/predictions", h.predict)
		v1.POST("/predictions/batch", h.predictBatch)
	}
	return r
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func Run(ctx context.Context, handler http.Handler, log zerolog.Logger, cfg Config) error {
	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.Addr).Msg("http server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	timeout := cfg.ShutdownTimeout
	if timeout <= 0 {
		timeout = DefaultConfig().ShutdownTimeout
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	log.Info().Msg("http server shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}
