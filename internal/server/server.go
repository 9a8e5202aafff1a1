// Package server exposes identity generation over HTTP.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/zarlcorp/zident/internal/config"
	"github.com/zarlcorp/zident/internal/identity"
	"github.com/zarlcorp/zident/internal/registry"
)

const (
	routeGenerate = "/v1/identities"
	routeBatch    = "/v1/identities/batch"

	maxBodyBytes    = 1 << 16
	shutdownTimeout = 10 * time.Second
)

// Server serves the identity API.
type Server struct {
	log      *slog.Logger
	metrics  *Metrics
	gatherer prometheus.Gatherer
	country  registry.Code
	maxBatch int
	genOpts  []identity.Option
}

// New builds a server from cfg. Collectors are registered with reg; a nil
// reg gets a fresh registry.
func New(cfg config.Config, log *slog.Logger, reg *prometheus.Registry) *Server {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	return &Server{
		log:      log,
		metrics:  NewMetrics(reg),
		gatherer: reg,
		country:  cfg.Country(),
		maxBatch: cfg.MaxBatch,
		genOpts:  cfg.GeneratorOptions(),
	}
}

// Handler returns the routed API.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.observe)

	r.Post(routeGenerate, s.handleGenerate)
	r.Post(routeBatch, s.handleBatch)
	r.Get("/v1/countries", s.handleCountries)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	return r
}

// Run serves on addr until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.log.Info("listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		if err != nil {
			return fmt.Errorf("serve %s: %w", addr, err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	s.log.Info("stopped")
	return nil
}

// observe logs each request and records its latency by route pattern.
func (s *Server) observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rc := chi.RouteContext(r.Context()); rc != nil && rc.RoutePattern() != "" {
			route = rc.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		elapsed := time.Since(start)

		s.metrics.ObserveRequest(route, strconv.Itoa(status), elapsed)
		s.log.Debug("request",
			"method", r.Method,
			"route", route,
			"status", status,
			"duration", elapsed,
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if !s.decode(w, r, routeGenerate, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		s.reject(w, routeGenerate, err)
		return
	}

	opts := req.options(s.country)
	id := identity.New(s.genOpts...).Generate(opts)
	s.metrics.AddGenerated(string(id.Country), 1)
	writeJSON(w, http.StatusOK, id)
}

type batchResponse struct {
	Count      int                 `json:"count"`
	Identities []identity.Identity `json:"identities"`
}

func (s *Server) handleBatch(w http.ResponseWriter, r *http.Request) {
	var req batchRequest
	if !s.decode(w, r, routeBatch, &req) {
		return
	}
	if err := req.validate(s.maxBatch); err != nil {
		s.reject(w, routeBatch, err)
		return
	}

	opts := req.options(s.country)
	ids, err := identity.New(s.genOpts...).GenerateMany(r.Context(), req.Count, opts)
	switch {
	case errors.Is(err, identity.ErrBatchTooLarge), errors.Is(err, identity.ErrInvalidCount):
		s.reject(w, routeBatch, err)
		return
	case err != nil:
		s.log.Warn("batch generation failed", "count", req.Count, "error", err)
		writeError(w, http.StatusServiceUnavailable, err.Error(), nil)
		return
	}

	if len(ids) > 0 {
		s.metrics.AddGenerated(string(ids[0].Country), len(ids))
	}
	writeJSON(w, http.StatusOK, batchResponse{Count: len(ids), Identities: ids})
}

type countryInfo struct {
	Code        registry.Code `json:"code"`
	Name        string        `json:"name"`
	Nationality string        `json:"nationality"`
	Regions     []regionInfo  `json:"regions"`
}

type regionInfo struct {
	Name  string `json:"name"`
	Latin string `json:"latin,omitempty"`
	Code  string `json:"code"`
}

func (s *Server) handleCountries(w http.ResponseWriter, _ *http.Request) {
	codes := registry.Codes()
	out := make([]countryInfo, 0, len(codes))
	for _, code := range codes {
		c := registry.Lookup(code)
		info := countryInfo{Code: c.Code, Name: c.Name, Nationality: c.Nationality}
		for _, r := range c.RegionList() {
			info.Regions = append(info.Regions, regionInfo{Name: r.Name, Latin: r.Latin, Code: r.Code})
		}
		out = append(out, info)
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, route string, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		s.metrics.IncValidationFailure(route)
		writeError(w, http.StatusBadRequest, "invalid request body", nil)
		return false
	}
	return true
}

// reject answers 400, listing per-field problems when err carries them.
func (s *Server) reject(w http.ResponseWriter, route string, err error) {
	s.metrics.IncValidationFailure(route)

	var fieldErrs validation.Errors
	if errors.As(err, &fieldErrs) {
		writeError(w, http.StatusBadRequest, "validation failed", fieldErrs)
		return
	}
	writeError(w, http.StatusBadRequest, err.Error(), nil)
}

type errorResponse struct {
	Error   string            `json:"error"`
	Details validation.Errors `json:"details,omitempty"`
}

func writeError(w http.ResponseWriter, status int, msg string, details validation.Errors) {
	writeJSON(w, status, errorResponse{Error: msg, Details: details})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
