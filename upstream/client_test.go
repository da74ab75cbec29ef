package upstream

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/viant/jsonrpc"
)

func newCallRequest(t *testing.T, params interface{}) *jsonrpc.Request {
	data, err := json.Marshal(params)
	assert.NoError(t, err)
	return &jsonrpc.Request{Jsonrpc: jsonrpc.Version, Method: "call", Params: data, Id: 1}
}

func TestClientCall(t *testing.T) {
	var received *http.Request
	testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		received = r.Clone(context.Background())
		w.Header().Set("Set-Cookie", "session_id=abc; Path=/")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"jsonrpc":"2.0","id":1,"result":{"uid":7}}`))
	}))
	defer testServer.Close()

	client := New(0)
	header := http.Header{}
	header.Set("Cookie", "session_id=prior")
	result, err := client.Call(context.Background(), testServer.URL+"/web/session/authenticate", newCallRequest(t, map[string]string{"db": "demo"}), header)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, result.StatusCode)
	assert.NotNil(t, result.Response)
	assert.Nil(t, result.Response.Error)
	assert.Equal(t, "session_id=abc; Path=/", result.Header.Get("Set-Cookie"))
	assert.JSONEq(t, `{"jsonrpc":"2.0","id":1,"result":{"uid":7}}`, string(result.Body))

	assert.Equal(t, "application/json", received.Header.Get("Content-Type"))
	assert.Equal(t, "session_id=prior", received.Header.Get("Cookie"))
}

func TestClientCallNonSuccessStatus(t *testing.T) {
	testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer testServer.Close()

	client := New(0)
	result, err := client.Call(context.Background(), testServer.URL, newCallRequest(t, nil), nil)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, result.StatusCode)
	// non-2xx bodies are kept raw, never parsed as envelopes
	assert.Nil(t, result.Response)
}

func TestClientCallTransportFailure(t *testing.T) {
	testServer := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	testServer.Close()

	client := New(0)
	result, err := client.Call(context.Background(), testServer.URL, newCallRequest(t, nil), nil)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrTransport)
}

func TestClientCallTimeout(t *testing.T) {
	testServer := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer testServer.Close()

	client := New(20 * time.Millisecond)
	result, err := client.Call(context.Background(), testServer.URL, newCallRequest(t, nil), nil)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrTransport)
}

func TestClientCallMalformedBody(t *testing.T) {
	testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("<html>not json</html>"))
	}))
	defer testServer.Close()

	client := New(0)
	result, err := client.Call(context.Background(), testServer.URL, newCallRequest(t, nil), nil)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrDecode)
}
