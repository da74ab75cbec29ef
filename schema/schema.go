// Package schema defines the wire shapes exchanged with the upstream Odoo
// server and the request/response contract of the relay's own API surface.
package schema

const (
	// MethodCall is the only JSON-RPC method the Odoo web dialect accepts.
	MethodCall = "call"

	// URIAuthenticate is the upstream login endpoint, relative to the base URL.
	URIAuthenticate = "/web/session/authenticate"
	// URICallKw is the upstream generic model invocation endpoint.
	URICallKw = "/web/dataset/call_kw"
)

// AuthenticateParams is the params payload POSTed to URIAuthenticate.
type AuthenticateParams struct {
	DB       string `json:"db"`
	Login    string `json:"login"`
	Password string `json:"password"`
}

// CallKwParams is the params payload POSTed to URICallKw.
type CallKwParams struct {
	Model  string                 `json:"model"`
	Method string                 `json:"method"`
	Args   []interface{}          `json:"args"`
	Kwargs map[string]interface{} `json:"kwargs"`
}

// AuthenticateResult is the subset of the upstream login result the relay
// inspects. Odoo reports a failed login either as an error envelope or as a
// false/absent uid, depending on version.
type AuthenticateResult struct {
	UID interface{} `json:"uid"`
}

// ValidUID reports whether the login result carries a usable user identifier.
func (r *AuthenticateResult) ValidUID() bool {
	if r == nil || r.UID == nil {
		return false
	}
	if flag, ok := r.UID.(bool); ok {
		return flag
	}
	return true
}
