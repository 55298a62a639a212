package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/riskibarqy/soccer-tracker/external/apisports"
	"github.com/riskibarqy/soccer-tracker/internal/config"
	"github.com/riskibarqy/soccer-tracker/internal/domain/league"
	"github.com/riskibarqy/soccer-tracker/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/soccer-tracker/internal/interfaces/httpapi"
	"github.com/riskibarqy/soccer-tracker/internal/platform/logging"
	"github.com/riskibarqy/soccer-tracker/internal/platform/metrics"
	"github.com/riskibarqy/soccer-tracker/internal/platform/resilience"
	"github.com/riskibarqy/soccer-tracker/internal/usecase"
)

// Server bundles the HTTP server with the session store it prunes.
type Server struct {
	HTTP        *http.Server
	Sessions    *memory.SessionRepository
	Metrics     *metrics.Manager
	idleTimeout time.Duration
	logger      *logging.Logger
}

// NewFootballClient builds the provider client from config. observer may be nil.
func NewFootballClient(cfg config.Config, logger *logging.Logger, observer apisports.RequestObserver) *apisports.Client {
	return apisports.NewClient(apisports.ClientConfig{
		BaseURL:  cfg.FootballAPIBaseURL,
		APIKey:   cfg.FootballAPIKey,
		Host:     cfg.FootballAPIHost,
		Timeout:  cfg.FootballAPITimeout,
		Logger:   logger,
		Observer: observer,
		CircuitBreaker: resilience.BreakerConfig{
			Enabled:          cfg.FootballAPICircuitEnabled,
			FailureThreshold: cfg.FootballAPICircuitFailures,
			OpenTimeout:      cfg.FootballAPICircuitOpenTime,
			HalfOpenMaxReq:   cfg.FootballAPICircuitHalfOpenRq,
		},
	})
}

// NewTracker wires the default league catalog to the football provider.
func NewTracker(cfg config.Config, logger *logging.Logger, observer apisports.RequestObserver) *usecase.TrackerService {
	client := NewFootballClient(cfg, logger, observer)
	return usecase.NewTrackerService(league.DefaultCatalog(), client, logger)
}

func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*Server, error) {
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}
	if logger == nil {
		logger = logging.Default()
	}

	sessions := memory.NewSessionRepository()
	metricsManager := metrics.NewManager(
		metrics.WithRuntimeCollectors(),
		metrics.WithSessionCount(func() float64 { return float64(sessions.Len()) }),
	)

	tracker := NewTracker(cfg, logger, metricsManager)
	handler := httpapi.NewHandler(tracker, sessions, cfg.OverviewWorkers, logger)
	router := httpapi.NewRouter(handler, httpapi.RouterConfig{
		Logger:             logger,
		Observer:           metricsManager,
		MetricsHandler:     metricsManager.Handler(),
		SwaggerEnabled:     cfg.SwaggerEnabled,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
	})

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return &Server{
		HTTP:        server,
		Sessions:    sessions,
		Metrics:     metricsManager,
		idleTimeout: cfg.SessionIdleTimeout,
		logger:      logger,
	}, nil
}

// RunSessionJanitor drops idle sessions until ctx is done. A non-positive idle timeout
// keeps sessions for the life of the process.
func (s *Server) RunSessionJanitor(ctx context.Context) {
	if s.idleTimeout <= 0 {
		return
	}

	interval := s.idleTimeout / 4
	if interval < time.Second {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if removed := s.Sessions.PruneIdle(s.idleTimeout); removed > 0 {
				s.logger.InfoContext(ctx, "pruned idle sessions", "removed", removed, "remaining", s.Sessions.Len())
			}
		}
	}
}
