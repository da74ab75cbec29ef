package upstream

import "strings"

// PrimaryCookies extracts the leading name=value pair from each Set-Cookie
// header value, discarding attributes such as Expires, Path or HttpOnly, and
// joins the pairs with "; ". The result is suitable for a Cookie request
// header; an empty string means no usable cookie was present.
func PrimaryCookies(setCookie []string) string {
	var pairs []string
	for _, raw := range setCookie {
		first, _, _ := strings.Cut(raw, ";")
		first = strings.TrimSpace(first)
		if name, value, ok := strings.Cut(first, "="); !ok || strings.TrimSpace(name) == "" || value == "" {
			continue
		}
		pairs = append(pairs, first)
	}
	return strings.Join(pairs, "; ")
}
