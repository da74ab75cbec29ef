package server

import (
	"context"
	"net/http"
)

// HTTP creates and returns an HTTP server with the API endpoints mounted
// behind the access guard, CORS and Origin validation middleware.
func (s *Server) HTTP(_ context.Context, addr string) *http.Server {
	if addr == "" {
		addr = s.addr
	}
	if addr == "" {
		// Default bind only to localhost to reduce exposure of the relay
		addr = "127.0.0.1:3000"
	}

	api := http.NewServeMux()
	api.HandleFunc("POST /api/login", s.handleLogin)
	api.HandleFunc("POST /api/odoo", s.handleCall)

	// CORS runs outermost so browser preflights are answered before the
	// guard; Origin validation precedes the key check.
	middlewareHandlers := []Middleware{s.corsHandler}
	if s.corsConfig != nil {
		middlewareHandlers = append(middlewareHandlers, originValidationMiddleware(s.corsConfig.AllowOrigins))
	}
	middlewareHandlers = append(middlewareHandlers, s.apiKeyMiddleware)
	apiChain := ChainMiddlewareHandlers(api, middlewareHandlers...)

	mux := http.NewServeMux()
	mux.Handle("/api/", apiChain)
	mux.HandleFunc("GET /{$}", s.handleRoot)
	mux.HandleFunc("GET /healthz", s.handleHealth)

	server := &http.Server{
		Addr:    addr,
		Handler: mux,
	}
	return server
}

// Handler returns the fully wired HTTP handler, mainly for testing.
func (s *Server) Handler() http.Handler {
	return s.HTTP(context.Background(), ":0").Handler
}
