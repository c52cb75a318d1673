package trafficdash

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/theoremus-urban-solutions/ratp-traffic-dashboard/config"
	"github.com/theoremus-urban-solutions/ratp-traffic-dashboard/formatter"
	"github.com/theoremus-urban-solutions/ratp-traffic-dashboard/geocode"
	"github.com/theoremus-urban-solutions/ratp-traffic-dashboard/ridership"
)

// Tables is what the server reads from. TableCache implements it.
type Tables interface {
	LoadRidership() (*ridership.Table, error)
	LoadGeocode() (*geocode.Table, error)
}

type jsonBuilder interface {
	BuildJSON(v any) ([]byte, error)
}

// Server exposes the dashboard views as a JSON API.
type Server struct {
	cfg    config.AppConfig
	tables Tables
	log    *zap.SugaredLogger
	rb     jsonBuilder
	http   *http.Server
}

func NewServer(cfg config.AppConfig, tables Tables, log *zap.SugaredLogger) *Server {
	return &Server{
		cfg:    cfg,
		tables: tables,
		log:    log,
		rb:     formatter.NewResponseBuilder(),
	}
}

// Router builds the HTTP routes.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", s.handleHealth)
		r.Get("/networks", s.handleNetworks)
		r.Get("/summary", s.handleSummary)
		r.Get("/charts/traffic-share", s.handleTrafficShare)
		r.Get("/charts/top-correspondences", s.handleTopCorrespondences)
		r.Get("/arrondissements", s.handleArrondissements)
		r.Get("/stations", s.handleStations)
		r.Get("/stations.csv", s.handleStationsCSV)
		r.Get("/map", s.handleMap)
	})
	return r
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		if r.URL.Path != "/api/health" {
			s.log.Infow("request", "method", r.Method, "path", r.URL.Path,
				"status", ww.Status(), "duration", time.Since(start))
		}
	})
}

// Start listens in the background.
func (s *Server) Start() {
	addr := fmt.Sprintf(":%d", s.cfg.Server.Port)
	s.http = &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	go func() {
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log.Fatalw("server error", "error", err)
		}
	}()
	s.log.Infow("server listening", "addr", addr)
}

// Shutdown stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}

// HandleGracefulShutdown blocks until SIGINT or SIGTERM, then shuts the
// server down.
func (s *Server) HandleGracefulShutdown() {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	s.log.Infow("shutdown signal received")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.Shutdown(ctx); err != nil {
		s.log.Errorw("server shutdown error", "error", err)
	} else {
		s.log.Infow("server shut down successfully")
	}
}
