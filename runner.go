package relay

import (
	"context"
	"fmt"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/sirupsen/logrus"
	"github.com/viant/odoo-relay/bridge"
	"github.com/viant/odoo-relay/server"
	"github.com/viant/odoo-relay/session"
	"github.com/viant/odoo-relay/upstream"
)

// Run parses args, assembles the relay and serves HTTP until the server
// stops.
func Run(args []string) error {
	options := &Options{}
	if _, err := flags.ParseArgs(options, args); err != nil {
		return err
	}
	ctx := context.Background()
	config := &Config{}
	if options.ConfigURL != "" {
		loaded, err := LoadConfig(ctx, options.ConfigURL)
		if err != nil {
			return err
		}
		config = loaded
	}
	srv, err := New(options, config)
	if err != nil {
		return err
	}
	httpServer := srv.HTTP(ctx, fmt.Sprintf(":%d", options.Port))
	logrus.WithField("addr", httpServer.Addr).Info("odoo-relay listening")
	return httpServer.ListenAndServe()
}

// New assembles the relay server from resolved options and config.
func New(options *Options, config *Config) (*server.Server, error) {
	client := upstream.New(time.Duration(config.TimeoutMs) * time.Millisecond)
	b := bridge.New(client, session.NewMemoryStore(), bridge.WithBaseURL(options.URL))
	serverOptions := []server.Option{
		server.WithBridge(b),
		server.WithAPIKey(options.APIKey),
	}
	if config.Cors != nil {
		serverOptions = append(serverOptions, server.WithCORS(config.Cors))
	}
	return server.New(serverOptions...)
}
