// Package server assembles the HTTP surface of the registrod daemon:
// routing, middleware, metrics, optional TLS, and lifecycle.
package server

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/registrolabs/registro/internal/api"
	"github.com/registrolabs/registro/internal/config"
	"github.com/registrolabs/registro/pkg/registry"
	"github.com/registrolabs/registro/pkg/schema"
)

// Server wraps the HTTP server serving the registry API.
type Server struct {
	cfg  *config.Config
	http *http.Server
}

// New builds a server around the given registry service. With
// cfg.SelfSignedTLS set, a throwaway certificate is generated and the
// server speaks HTTPS.
func New(cfg *config.Config, svc registry.Service, logger *slog.Logger, version string) (*Server, error) {
	gin.SetMode(gin.ReleaseMode)

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      NewRouter(svc, logger, version),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	if cfg.SelfSignedTLS {
		cert, err := GenerateSelfSignedCert()
		if err != nil {
			return nil, fmt.Errorf("generate TLS certificate: %w", err)
		}
		srv.TLSConfig = &tls.Config{Certificates: []tls.Certificate{cert}}
	}

	return &Server{cfg: cfg, http: srv}, nil
}

// NewRouter assembles the gin engine with all middleware and routes. It is
// exported so tests and the SDK test harness can serve the exact
// production routing in-process.
func NewRouter(svc registry.Service, logger *slog.Logger, version string) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}

	r.Use(gin.Recovery())
	r.Use(RequestID())
	r.Use(RequestLogger(logger))
	r.Use(Metrics())
	r.Use(cors.New(corsCfg))

	h := &api.Handler{Service: svc, Version: version, Started: time.Now()}

	r.GET("/", h.Home)
	r.GET("/health", h.Health)
	r.GET("/status", h.Status)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	res := r.Group("/resources")
	{
		res.GET("", h.List)
		res.POST("", h.Create)
		res.GET("/:id", h.GetByID)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, schema.Envelope{Success: false, Error: "route not found"})
	})
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, schema.Envelope{Success: false, Error: "method not allowed"})
	})

	return r
}

// Run serves until the context is cancelled, then shuts down gracefully
// within the configured timeout.
func (s *Server) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		if s.http.TLSConfig != nil {
			err = s.http.ListenAndServeTLS("", "")
		} else {
			err = s.http.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
		defer cancel()
		return s.http.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
