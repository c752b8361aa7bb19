// Package server implements the fake metrics demo service.
package server

import (
	"context"
	"errors"
	"fmt"
	"html"
	"net"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/and161185/gw-transit/internal/config"
	"github.com/and161185/gw-transit/internal/demo"
	"github.com/and161185/gw-transit/internal/server/middleware"
	"github.com/and161185/gw-transit/model"
	"github.com/and161185/gw-transit/storage"
	chiMiddleware "github.com/go-chi/chi/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Storage is the sample store the service reads and writes.
type Storage = storage.Storage

// FileStore persists the store between runs.
type FileStore interface {
	SaveToFile(ctx context.Context, path string) error
	LoadFromFile(ctx context.Context, path string) error
}

type Server struct {
	Storage   Storage
	Config    *config.DemoConfig
	Demo      *demo.Generator
	FileStore FileStore
}

// NewServer wires the service. The store doubles as the file store when it can persist itself.
func NewServer(st Storage, cfg *config.DemoConfig, gen *demo.Generator) *Server {
	srv := &Server{Storage: st, Config: cfg, Demo: gen}
	if fs, ok := st.(FileStore); ok {
		srv.FileStore = fs
	}
	return srv
}

// Router builds the HTTP routes of the service.
func (srv *Server) Router() (http.Handler, error) {
	trusted, err := middleware.TrustedCIDR(srv.Config.TrustedSubnet)
	if err != nil {
		return nil, err
	}

	router := chi.NewRouter()
	router.Use(chiMiddleware.StripSlashes)
	router.Use(middleware.LogMiddleware(srv.logger()))
	router.Use(middleware.CompressMiddleware)
	router.Use(middleware.HashMiddleware(srv.Config.Key))

	router.Get("/", srv.ListResourcesHandler)
	router.Get("/hello", srv.HelloHandler)
	router.Get("/simple", srv.SimpleHandler)
	router.Get("/ping", srv.PingHandler)
	for _, ep := range demo.Endpoints {
		router.Get("/"+ep, srv.InstrumentedHandler(ep))
	}
	router.With(trusted).Handle("/metrics", promhttp.HandlerFor(srv.Demo.Registry(), promhttp.HandlerOpts{
		DisableCompression: true,
	}))

	return router, nil
}

// Run waits the configured startup delay, then serves until ctx is done. The store is
// restored from and saved to the configured file around the serving period.
func (srv *Server) Run(ctx context.Context) error {
	logger := srv.logger()

	if srv.Config.WaitFor > 0 {
		logger.Infof("waiting %ds before start", srv.Config.WaitFor)
		select {
		case <-ctx.Done():
			return nil
		case <-time.After(time.Duration(srv.Config.WaitFor) * time.Second):
		}
	}

	if srv.FileStore != nil && srv.Config.StoreFile != "" {
		if err := srv.FileStore.LoadFromFile(ctx, srv.Config.StoreFile); err != nil {
			logger.Errorf("failed to restore samples: %v", err)
		}
	}

	router, err := srv.Router()
	if err != nil {
		return err
	}

	ln, err := net.Listen("tcp", srv.Config.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", srv.Config.Addr, err)
	}
	httpSrv := &http.Server{Handler: router, ReadHeaderTimeout: 5 * time.Second}

	errCh := make(chan error, 1)
	go func() {
		if err := httpSrv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()
	logger.Infof("demo service listening on %s", ln.Addr())

	if srv.Config.GenerateInterval > 0 {
		rg := &demo.RequestGenerator{
			BaseURL:  "http://" + ln.Addr().String(),
			Interval: time.Duration(srv.Config.GenerateInterval) * time.Second,
			Logger:   logger,
		}
		go rg.Run(ctx)
	}

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("shutdown: %v", err)
	}

	if srv.FileStore != nil && srv.Config.StoreFile != "" {
		if err := srv.FileStore.SaveToFile(context.Background(), srv.Config.StoreFile); err != nil {
			logger.Errorf("failed to save samples: %v", err)
		}
	}
	return <-errCh
}

func (srv *Server) HelloHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if _, err := w.Write([]byte(demo.Hello())); err != nil {
		srv.logger().Errorf("failed to write hello: %v", err)
	}
}

func (srv *Server) SimpleHandler(w http.ResponseWriter, r *http.Request) {
	code, body := srv.Demo.Simple()
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(code)
	if _, err := w.Write([]byte(body)); err != nil {
		srv.logger().Errorf("failed to write simple metrics: %v", err)
	}
}

// InstrumentedHandler answers an instrumented endpoint: it refreshes every demo series
// and reports how long that took.
func (srv *Server) InstrumentedHandler(endpoint string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rep, err := srv.Demo.Instrument(r.Context(), endpoint)
		if err != nil {
			srv.logger().Errorf("failed to instrument %s: %v", endpoint, err)
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		if _, err := w.Write([]byte(rep.Message())); err != nil {
			srv.logger().Errorf("failed to write response for %s: %v", endpoint, err)
		}
	}
}

// ListResourcesHandler renders the latest stored values as an HTML list.
func (srv *Server) ListResourcesHandler(w http.ResponseWriter, r *http.Request) {
	all, err := srv.Storage.GetAll(r.Context())
	if err != nil {
		srv.logger().Errorf("failed to get all resources from storage: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	keys := make([]string, 0, len(all))
	for k := range all {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString("<html><body><ul>\n")
	for _, k := range keys {
		res := all[k]
		fmt.Fprintf(&b, "<li>%s (%s)%s</li>\n",
			html.EscapeString(k), html.EscapeString(string(res.Resource.Status)), values(res.Metrics))
	}
	b.WriteString("</ul></body></html>\n")

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(b.String())); err != nil {
		srv.logger().Errorf("failed to write resource list: %v", err)
	}
}

func (srv *Server) PingHandler(w http.ResponseWriter, r *http.Request) {
	if err := srv.Storage.Ping(r.Context()); err != nil {
		srv.logger().Errorf("ping failed: %v", err)
		http.Error(w, "storage unavailable", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (srv *Server) logger() *zap.SugaredLogger {
	if srv.Config != nil && srv.Config.Logger != nil {
		return srv.Config.Logger
	}
	return zap.NewNop().Sugar()
}

// values lists the Value samples of a resource as ": name=value, ...".
func values(samples []model.MetricSample) string {
	var parts []string
	for _, s := range samples {
		if s.SampleType != model.Value {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s=%v", html.EscapeString(s.MetricName), s.Value.Any()))
	}
	if len(parts) == 0 {
		return ""
	}
	return ": " + strings.Join(parts, ", ")
}
