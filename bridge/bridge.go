// Package bridge implements the session-bridging core of the relay: it
// performs the upstream login handshake, captures the session cookie issued
// by the Odoo server and attaches it to every forwarded call.
package bridge

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/viant/jsonrpc"
	"github.com/viant/odoo-relay/schema"
	"github.com/viant/odoo-relay/session"
	"github.com/viant/odoo-relay/upstream"
)

// IDGenerator produces correlation ids for upstream envelopes.
type IDGenerator func() uint32

// Bridge orchestrates the login handshake and forwarded calls against a
// single upstream server, sharing one session cookie process-wide.
type Bridge struct {
	upstream *upstream.Client
	sessions session.Store
	baseURL  string
	nextID   IDGenerator
	logger   *logrus.Logger
}

// New creates a Bridge backed by the supplied upstream client and session
// store.
func New(client *upstream.Client, store session.Store, options ...Option) *Bridge {
	b := &Bridge{
		upstream: client,
		sessions: store,
		nextID:   func() uint32 { return uuid.New().ID() },
		logger:   logrus.StandardLogger(),
	}
	for _, option := range options {
		option(b)
	}
	return b
}

// Login authenticates against the upstream server and stores the normalized
// session cookie, unconditionally replacing any prior one. It returns the
// upstream user identifier.
func (b *Bridge) Login(ctx context.Context, config *schema.OdooConfig, id interface{}) (interface{}, error) {
	if config == nil || config.DB == "" || config.Username == "" || config.Password == "" {
		return nil, NewInvalidInput("odooConfig with db, username and password is required")
	}
	baseURL, err := b.resolveURL(config.URL)
	if err != nil {
		return nil, err
	}
	request, err := b.newRequest(schema.AuthenticateParams{
		DB:       config.DB,
		Login:    config.Username,
		Password: config.Password,
	}, id)
	if err != nil {
		return nil, err
	}
	result, callErr := b.upstream.Call(ctx, baseURL+schema.URIAuthenticate, request, nil)
	if callErr != nil {
		b.logger.WithField("url", baseURL).Warnf("upstream login failed: %v", callErr)
		return nil, NewUpstreamUnavailable("failed to reach upstream login endpoint", callErr.Error())
	}
	if result.StatusCode < 200 || result.StatusCode > 299 {
		return nil, NewUpstreamRejected(result.StatusCode, "upstream login failed", bodyDetail(result.Body))
	}
	if result.Response != nil && result.Response.Error != nil {
		var details interface{}
		if len(result.Response.Error.Data) > 0 {
			details = result.Response.Error.Data
		}
		return nil, NewUpstreamRejected(http.StatusUnauthorized, "authentication failed: "+result.Response.Error.Message, details)
	}
	auth := &schema.AuthenticateResult{}
	if result.Response == nil || json.Unmarshal(result.Response.Result, auth) != nil {
		return nil, NewUpstreamUnavailable("upstream login returned an unexpected payload", bodyDetail(result.Body))
	}
	if !auth.ValidUID() {
		return nil, NewUpstreamRejected(http.StatusUnauthorized, "authentication failed: invalid credentials", nil)
	}
	if token := upstream.PrimaryCookies(result.Header.Values("Set-Cookie")); token != "" {
		b.sessions.Set(token)
		b.logger.WithFields(logrus.Fields{"url": baseURL, "db": config.DB}).Info("upstream session established")
	} else {
		// Forwarded calls will go out without a credential and the upstream
		// will report that at call time.
		b.logger.WithField("url", baseURL).Warn("upstream login response carried no session cookie")
	}
	return auth.UID, nil
}

// Call relays a model/method invocation verbatim, attaching the stored
// session cookie. A caller with no active session is rejected before any
// upstream traffic; the raw upstream body is returned unmodified otherwise.
func (b *Bridge) Call(ctx context.Context, call *schema.CallRequest) ([]byte, error) {
	if call == nil || call.Model == "" || call.Method == "" {
		return nil, NewInvalidInput("model and method are required")
	}
	var requestURL string
	if call.OdooConfig != nil {
		requestURL = call.OdooConfig.URL
	}
	baseURL, err := b.resolveURL(requestURL)
	if err != nil {
		return nil, err
	}
	token, ok := b.sessions.Get()
	if !ok {
		return nil, NewNoActiveSession()
	}
	params := schema.CallKwParams{
		Model:  call.Model,
		Method: call.Method,
		Args:   call.Args,
		Kwargs: call.Kwargs,
	}
	if params.Args == nil {
		params.Args = []interface{}{}
	}
	if params.Kwargs == nil {
		params.Kwargs = map[string]interface{}{}
	}
	request, err := b.newRequest(params, call.Id)
	if err != nil {
		return nil, err
	}
	header := http.Header{}
	header.Set("Cookie", token)
	result, callErr := b.upstream.Call(ctx, baseURL+schema.URICallKw, request, header)
	if callErr != nil {
		b.logger.WithFields(logrus.Fields{"url": baseURL, "model": call.Model, "method": call.Method}).
			Warnf("forwarded call failed: %v", callErr)
		return nil, NewUpstreamUnavailable("failed to reach upstream call endpoint", callErr.Error())
	}
	if result.StatusCode < 200 || result.StatusCode > 299 {
		return nil, NewUpstreamRejected(result.StatusCode, "upstream rejected forwarded call", bodyDetail(result.Body))
	}
	return result.Body, nil
}

// resolveURL yields the effective upstream base URL, preferring the
// per-request value over the process-wide one.
func (b *Bridge) resolveURL(requestURL string) (string, error) {
	candidate := requestURL
	if candidate == "" {
		candidate = b.baseURL
	}
	if candidate == "" {
		return "", NewMisconfigured("no upstream URL: supply odooConfig.url or set ODOO_URL")
	}
	return strings.TrimRight(candidate, "/"), nil
}

func (b *Bridge) newRequest(params interface{}, id interface{}) (*jsonrpc.Request, error) {
	data, err := json.Marshal(params)
	if err != nil {
		return nil, NewInvalidInput("failed to encode params: " + err.Error())
	}
	if id == nil {
		id = b.nextID()
	}
	return &jsonrpc.Request{Jsonrpc: jsonrpc.Version, Method: schema.MethodCall, Params: data, Id: id}, nil
}

// bodyDetail exposes an upstream reply body as an error detail, preserving
// JSON payloads and falling back to plain text.
func bodyDetail(body []byte) interface{} {
	if len(body) == 0 {
		return nil
	}
	if json.Valid(body) {
		return json.RawMessage(body)
	}
	return string(body)
}
