// Package server hosts the HTTP API. Plugins registered on a Server can attach
// named values to the toolkit that every request handler receives through its
// context.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
)

var ErrPluginRegistered = errors.New("plugin already registered")

// Plugin extends a Server during startup.
type Plugin interface {
	Name() string
	Register(ctx context.Context, srv *Server) error
}

type Server struct {
	router  *mux.Router
	toolkit *Toolkit

	mu      sync.Mutex
	plugins map[string]struct{}
}

func New() *Server {
	s := &Server{
		router:  mux.NewRouter(),
		toolkit: newToolkit(),
		plugins: make(map[string]struct{}),
	}
	s.router.Use(s.toolkitMiddleware)

	return s
}

// Register runs each plugin once, in order. It stops at the first failure.
func (s *Server) Register(ctx context.Context, plugins ...Plugin) error {
	for _, p := range plugins {
		name := p.Name()

		s.mu.Lock()
		if _, ok := s.plugins[name]; ok {
			s.mu.Unlock()
			return fmt.Errorf("%w: %s", ErrPluginRegistered, name)
		}
		s.plugins[name] = struct{}{}
		s.mu.Unlock()

		if err := p.Register(ctx, s); err != nil {
			s.mu.Lock()
			delete(s.plugins, name)
			s.mu.Unlock()
			return fmt.Errorf("registering plugin %s: %w", name, err)
		}

		log.Ctx(ctx).Info().Str("plugin", name).Msg("Plugin registered")
	}

	return nil
}

// Registered reports whether a plugin with the given name has been registered.
func (s *Server) Registered(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.plugins[name]
	return ok
}

// Decorate makes value available to every handler under name.
func (s *Server) Decorate(name string, value any) error {
	return s.toolkit.set(name, value)
}

// Router exposes the underlying router for mounting routes.
func (s *Server) Router() *mux.Router {
	return s.router
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) toolkitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(withToolkit(r.Context(), s.toolkit)))
	})
}
