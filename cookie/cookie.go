// Package cookie implements an RFC 6265 cookie store: parsing Set-Cookie
// header values, domain and path matching, and an in-memory jar that
// decides which stored cookies accompany a request.
package cookie

import "time"

// SameSite attribute values. The empty string means the attribute was
// absent from the Set-Cookie header.
type SameSite string

// The SameSite values a Set-Cookie header may carry.
const (
	SameSiteStrict SameSite = "strict"
	SameSiteLax    SameSite = "lax"
	SameSiteNone   SameSite = "none"
)

// Cookie is a single stored cookie. A Cookie is immutable once built,
// the jar replaces whole entries instead of mutating them.
type Cookie struct {
	Name  string
	Value string

	// Domain is the normalized host suffix (lowercase, no leading dot)
	// the cookie is scoped to. Empty means host-only: the cookie is only
	// sent back to the exact host that set it.
	Domain string

	// Path the cookie is scoped to, derived from the setting request
	// path when the attribute is absent.
	Path string

	Secure   bool
	HttpOnly bool

	// Expires is the absolute expiry time. The zero time marks a session
	// cookie, which lives for the lifetime of the jar.
	Expires time.Time

	// SameSite is recorded for callers but never consulted while
	// matching, the store has no navigation context to enforce it.
	SameSite SameSite
}

// String returns the name=value pair as it appears in a Cookie header.
func (c Cookie) String() string {
	return c.Name + "=" + c.Value
}

// Expired reports whether the cookie is expired at now.
// Session cookies never expire.
func (c Cookie) Expired(now time.Time) bool {
	return !c.Expires.IsZero() && !c.Expires.After(now)
}
