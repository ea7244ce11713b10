// Package server serves the portfolio page and its JSON endpoints over gin.
package server

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/tharunr07/folio/internal/content"
	"github.com/tharunr07/folio/internal/site"
	"github.com/tharunr07/folio/web"
)

const shutdownTimeout = 5 * time.Second

type Config struct {
	Addr   string
	Site   *content.Site
	Page   site.Options
	Logger *log.Logger
}

type Server struct {
	cfg    Config
	log    *log.Logger
	engine *gin.Engine
}

func New(cfg Config) *Server {
	if cfg.Site == nil {
		cfg.Site = content.Default()
	}
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}
	if cfg.Page == (site.Options{}) {
		cfg.Page = site.DefaultOptions()
	}
	s := &Server{cfg: cfg, log: cfg.Logger}

	r := gin.New()
	r.Use(gin.Recovery(), requestID(), requestLogger(s.log))
	s.setupRoutes(r)
	s.engine = r
	return s
}

func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) setupRoutes(r *gin.Engine) {
	r.StaticFS("/static", http.FS(web.Static()))

	// Home page route
	r.GET("/", s.handleIndex)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	api.GET("/content", func(c *gin.Context) {
		c.JSON(http.StatusOK, s.cfg.Site)
	})
	api.GET("/field", s.handleField)
}

func (s *Server) handleIndex(c *gin.Context) {
	opts := s.cfg.Page
	// ?static=1 renders every section already revealed, for crawlers and print.
	if c.Query("static") == "1" {
		opts.Reveal = false
	}

	var buf bytes.Buffer
	if err := site.Render(&buf, s.cfg.Site, opts); err != nil {
		s.log.Error("render page", "err", err, "request_id", c.GetString(requestIDKey))
		c.String(http.StatusInternalServerError, "Sorry, the page could not be rendered.")
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

// Run listens on the configured address until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	addr := s.cfg.Addr
	if addr == "" {
		addr = ":8080"
	}
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.log.Info("serving portfolio", "addr", ln.Addr().String())
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		s.log.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
