package schema

// OdooConfig identifies the upstream endpoint and login identity. It arrives
// in request bodies; the URL may instead come from process configuration.
type OdooConfig struct {
	DB       string `json:"db"`
	Username string `json:"username"`
	Password string `json:"password"`
	URL      string `json:"url,omitempty"`
}

// LoginRequest is the body of POST /api/login.
type LoginRequest struct {
	OdooConfig *OdooConfig `json:"odooConfig"`
	Id         interface{} `json:"id,omitempty"`
}

// LoginResponse is the success body of POST /api/login.
type LoginResponse struct {
	Result interface{} `json:"result"`
}

// CallRequest is the body of POST /api/odoo. UID is accepted for
// compatibility with callers that echo the login result but is not required;
// the relay keys forwarded calls on the stored session cookie alone.
type CallRequest struct {
	Model      string                 `json:"model"`
	Method     string                 `json:"method"`
	Args       []interface{}          `json:"args,omitempty"`
	Kwargs     map[string]interface{} `json:"kwargs,omitempty"`
	UID        interface{}            `json:"uid,omitempty"`
	OdooConfig *OdooConfig            `json:"odooConfig,omitempty"`
	Id         interface{}            `json:"id,omitempty"`
}

// ErrorResponse is the body of every non-2xx relay response.
type ErrorResponse struct {
	Error   string      `json:"error"`
	Details interface{} `json:"details,omitempty"`
}
