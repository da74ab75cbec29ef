package relay

import (
	"context"
	"fmt"

	"github.com/viant/afs"
	"github.com/viant/odoo-relay/server"
	"gopkg.in/yaml.v3"
)

// Config is the optional file-based configuration; it covers the concerns
// that do not fit a single flag: the browser caller allow-list and the
// upstream call timeout.
type Config struct {
	Cors      *server.Cors `yaml:"Cors,omitempty"`
	TimeoutMs int          `yaml:"TimeoutMs,omitempty"`
}

// LoadConfig reads a YAML config from any afs-supported URL.
func LoadConfig(ctx context.Context, URL string) (*Config, error) {
	fs := afs.New()
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to load config %v: %w", URL, err)
	}
	config := &Config{}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("invalid config %v: %w", URL, err)
	}
	return config, nil
}
