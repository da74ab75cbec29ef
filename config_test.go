package relay

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	location := filepath.Join(t.TempDir(), "relay.yaml")
	err := os.WriteFile(location, []byte(`
Cors:
  AllowOrigins:
    - https://app.example.com
TimeoutMs: 5000
`), 0o644)
	assert.NoError(t, err)

	config, err := LoadConfig(context.Background(), location)
	assert.NoError(t, err)
	assert.NotNil(t, config.Cors)
	assert.Equal(t, []string{"https://app.example.com"}, config.Cors.AllowOrigins)
	assert.Equal(t, 5000, config.TimeoutMs)
}

func TestLoadConfigInvalid(t *testing.T) {
	location := filepath.Join(t.TempDir(), "relay.yaml")
	assert.NoError(t, os.WriteFile(location, []byte("Cors: ["), 0o644))
	_, err := LoadConfig(context.Background(), location)
	assert.Error(t, err)
}

func TestNew(t *testing.T) {
	srv, err := New(&Options{APIKey: "secret", URL: "http://localhost:8069"}, &Config{})
	assert.NoError(t, err)
	assert.NotNil(t, srv)

	_, err = New(&Options{}, &Config{})
	assert.Error(t, err)
}
