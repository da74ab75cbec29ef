// Package server exposes the relay's HTTP surface: the shared-secret access
// guard, CORS and Origin validation for browser callers, and the login and
// forwarded-call endpoints backed by the session bridge.
package server

import (
	"errors"

	"github.com/sirupsen/logrus"
	"github.com/viant/odoo-relay/bridge"
)

// Server represents the relay HTTP facade.
type Server struct {
	bridge      *bridge.Bridge
	apiKey      string
	addr        string
	corsConfig  *Cors
	corsHandler Middleware
	logger      *logrus.Logger
}

// New creates a new Server instance
func New(options ...Option) (*Server, error) {
	s := &Server{
		logger: logrus.StandardLogger(),
	}
	for _, option := range options {
		if err := option(s); err != nil {
			return nil, err
		}
	}
	if s.bridge == nil {
		return nil, errors.New("no bridge specified")
	}
	if s.apiKey == "" {
		return nil, errors.New("no api key specified")
	}
	if s.corsConfig == nil {
		s.corsConfig = defaultCors()
	}
	if s.corsHandler == nil {
		handler := &corsHandler{Cors: s.corsConfig}
		s.corsHandler = handler.Middleware
	}
	return s, nil
}
