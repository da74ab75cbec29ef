package server

import (
	"github.com/sirupsen/logrus"
	"github.com/viant/odoo-relay/bridge"
)

// Option is a function that configures the server.
type Option func(s *Server) error

// WithBridge sets the session bridge serving the API endpoints.
func WithBridge(b *bridge.Bridge) Option {
	return func(s *Server) error {
		s.bridge = b
		return nil
	}
}

// WithAPIKey sets the shared secret callers must present via X-API-Key.
func WithAPIKey(apiKey string) Option {
	return func(s *Server) error {
		s.apiKey = apiKey
		return nil
	}
}

// WithAddr sets the default listen address.
func WithAddr(addr string) Option {
	return func(s *Server) error {
		s.addr = addr
		return nil
	}
}

// WithCORS adds a new CORS handler to the server.
func WithCORS(cors *Cors) Option {
	return func(s *Server) error {
		s.corsConfig = cors
		handler := &corsHandler{Cors: cors}
		s.corsHandler = handler.Middleware
		return nil
	}
}

// WithLogger sets the server logger.
func WithLogger(logger *logrus.Logger) Option {
	return func(s *Server) error {
		s.logger = logger
		return nil
	}
}
