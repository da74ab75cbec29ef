package relay

// Options are the CLI and environment options of the relay process.
type Options struct {
	URL       string `short:"u" long:"url" env:"ODOO_URL" description:"upstream odoo base url; optional when every request supplies its own"`
	APIKey    string `short:"k" long:"api-key" env:"API_KEY" required:"true" description:"shared secret callers must present via X-API-Key"`
	Port      int    `short:"p" long:"port" env:"PORT" default:"3000" description:"listen port"`
	ConfigURL string `short:"c" long:"config" description:"relay config file (cors allow-list, upstream timeout)"`
}
