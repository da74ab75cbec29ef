package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/viant/odoo-relay/bridge"
	"github.com/viant/odoo-relay/schema"
)

func (s *Server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"service": "odoo-relay",
		"endpoints": []string{
			"POST /api/login",
			"POST /api/odoo",
		},
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	request := &schema.LoginRequest{}
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	uid, err := s.bridge.Login(r.Context(), request.OdooConfig, request.Id)
	if err != nil {
		s.writeBridgeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, schema.LoginResponse{Result: uid})
}

func (s *Server) handleCall(w http.ResponseWriter, r *http.Request) {
	request := &schema.CallRequest{}
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	body, err := s.bridge.Call(r.Context(), request)
	if err != nil {
		s.writeBridgeError(w, err)
		return
	}
	// The upstream JSON-RPC envelope is relayed untouched.
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

func (s *Server) writeBridgeError(w http.ResponseWriter, err error) {
	var bridgeErr *bridge.Error
	if errors.As(err, &bridgeErr) {
		s.writeError(w, bridgeErr.HTTPStatus(), bridgeErr.Message, bridgeErr.Details)
		return
	}
	s.writeError(w, http.StatusInternalServerError, "internal error", err.Error())
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string, details interface{}) {
	s.writeJSON(w, status, schema.ErrorResponse{Error: message, Details: details})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Warnf("failed to write response: %v", err)
	}
}
