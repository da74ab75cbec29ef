// Package upstream issues outbound JSON-RPC calls to the Odoo server.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/viant/jsonrpc"
)

// DefaultTimeout bounds every upstream call; there is no retry.
const DefaultTimeout = 10 * time.Second

var (
	// ErrTransport marks failures before a response was received: timeout,
	// DNS resolution, connection refused.
	ErrTransport = fmt.Errorf("upstream transport failure")
	// ErrDecode marks a successful exchange whose body is not a JSON-RPC
	// envelope.
	ErrDecode = fmt.Errorf("upstream malformed response")
)

// Result carries a raw upstream reply together with its parsed envelope.
// Response is only populated for 2xx replies; for other statuses callers
// inspect StatusCode and Body directly.
type Result struct {
	StatusCode int
	Header     http.Header
	Body       []byte
	Response   *jsonrpc.Response
}

// Client posts JSON-RPC envelopes to Odoo endpoints with a fixed timeout.
type Client struct {
	httpClient *http.Client
}

// New creates a Client; a zero timeout selects DefaultTimeout.
func New(timeout time.Duration) *Client {
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	return &Client{httpClient: &http.Client{Timeout: timeout}}
}

// Call POSTs request to endpoint, merging extra headers into the outbound
// request. Any HTTP status counts as a successful transport outcome;
// transport and decode failures are surfaced as distinct error kinds.
func (c *Client) Call(ctx context.Context, endpoint string, request *jsonrpc.Request, header http.Header) (*Result, error) {
	data, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}
	httpRequest, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	httpRequest.Header.Set("Content-Type", "application/json")
	for key, values := range header {
		for _, value := range values {
			httpRequest.Header.Add(key, value)
		}
	}
	httpResponse, err := c.httpClient.Do(httpRequest)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer httpResponse.Body.Close()
	body, err := io.ReadAll(httpResponse.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	result := &Result{
		StatusCode: httpResponse.StatusCode,
		Header:     httpResponse.Header,
		Body:       body,
	}
	if result.StatusCode >= 200 && result.StatusCode <= 299 && len(body) > 0 {
		response := &jsonrpc.Response{}
		if err := json.Unmarshal(body, response); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDecode, err)
		}
		result.Response = response
	}
	return result, nil
}
