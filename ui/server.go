package ui

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"winery/internal/logging"
)

// ServerConfig holds static server settings
type ServerConfig struct {
	Addr string
	Root string
}

// Server serves the site directory over plain HTTP
type Server struct {
	router *chi.Mux
	config ServerConfig
	log    zerolog.Logger
}

// NewServer creates a static file server for config.Root
func NewServer(config ServerConfig) *Server {
	if config.Root == "" {
		config.Root = "."
	}
	s := &Server{
		router: chi.NewRouter(),
		config: config,
		log:    logging.Component("server"),
	}
	s.setupMiddleware()
	s.setupRoutes()
	return s
}

// Handler exposes the router, mostly for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) setupRoutes() {
	files := newStaticHandler(http.Dir(s.config.Root))
	s.router.Get("/*", files.ServeHTTP)
	s.router.Head("/*", files.ServeHTTP)
}

// Start listens on config.Addr and serves until the listener fails or ctx
// is cancelled. Cancelling ctx closes the listener; in-flight requests are
// not drained.
func (s *Server) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.config.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve is Start on an existing listener
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{Handler: s.router}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.log.Info().
			Str("addr", ln.Addr().String()).
			Str("root", s.config.Root).
			Msg("serving site")
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		return srv.Close()
	})

	err := g.Wait()
	if ctx.Err() != nil {
		s.log.Info().Msg("server stopped")
		return nil
	}
	return err
}
