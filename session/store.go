// Package session holds the upstream session credential shared by all
// forwarded calls.
package session

// Store holds at most one session token. The relay is deliberately
// single-session: a new successful login unconditionally replaces the prior
// token. Callers needing per-caller isolation can substitute a keyed
// implementation behind the same interface.
type Store interface {
	// Set replaces the stored token.
	Set(token string)
	// Get returns the stored token, if any.
	Get() (string, bool)
	// Clear discards the stored token.
	Clear()
}
