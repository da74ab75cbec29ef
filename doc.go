// Package relay implements a credential-gated HTTP relay for the Odoo
// JSON-RPC web dialect.
//
// The relay sits between browser clients and an Odoo server: it
// authenticates inbound callers with a static shared secret, performs the
// upstream login handshake at /web/session/authenticate, captures the
// session cookie the upstream issues and replays it on every call it
// forwards to /web/dataset/call_kw, so the browser never handles upstream
// session mechanics directly.
//
// The package exposes Run as the single entry point; it parses CLI flags and
// environment options, assembles the session bridge and serves HTTP:
//
//	if err := relay.Run(os.Args[1:]); err != nil {
//		log.Fatal(err)
//	}
//
// The relay is deliberately single-session: one upstream credential is
// shared process-wide and a new login replaces it. See the session package
// for the substitution point when per-caller isolation is needed.
package relay
