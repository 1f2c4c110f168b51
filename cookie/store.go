package cookie

import (
	"net/http"
	"net/url"
	"sync"
	"time"
)

// Store manages storage and retrieval of cookies for an HTTP client.
// It satisfies http.CookieJar, so a Store can be installed directly as
// an http.Client Jar. Implementations of Store must be safe for
// concurrent use by multiple goroutines.
type Store interface {
	http.CookieJar

	// SetCookieString handles the receipt of one Set-Cookie header value
	// in a reply from u. Malformed values are dropped.
	SetCookieString(u *url.URL, value string)

	// CookieString returns the Cookie header value for a request to u,
	// empty when no stored cookie matches.
	CookieString(u *url.URL) string

	// SetCookie stores a session cookie visible to domain and all of its
	// subdomains on every path.
	SetCookie(name, value, domain string)

	// All returns a flat name to value view of every stored cookie.
	All() map[string]string

	// DeleteCookie removes the cookies stored for u.
	DeleteCookie(u *url.URL)

	// Clear removes every stored cookie.
	Clear()

	// Len returns the number of stored cookies.
	Len() int
}

// NewStore returns an in-memory Store, a Jar behind one mutex.
func NewStore() Store {
	return &memoryStore{jar: NewJar()}
}

type memoryStore struct {
	mu  sync.Mutex
	jar *Jar
}

// SetCookies implements http.CookieJar.
func (s *memoryStore) SetCookies(u *url.URL, cookies []*http.Cookie) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range cookies {
		s.jar.Set(u, fromHTTP(c))
	}
}

// Cookies implements http.CookieJar.
func (s *memoryStore) Cookies(u *url.URL) []*http.Cookie {
	s.mu.Lock()
	defer s.mu.Unlock()
	matched := s.jar.Cookies(u)
	cookies := make([]*http.Cookie, len(matched))
	for i, c := range matched {
		cookies[i] = toHTTP(c)
	}
	return cookies
}

func (s *memoryStore) SetCookieString(u *url.URL, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jar.SetCookieString(u, value)
}

func (s *memoryStore) CookieString(u *url.URL) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.jar.CookieString(u)
}

func (s *memoryStore) SetCookie(name, value, domain string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jar.SetCookie(name, value, domain)
}

func (s *memoryStore) All() map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.jar.All()
}

func (s *memoryStore) DeleteCookie(u *url.URL) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jar.Remove(u)
}

func (s *memoryStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jar.Clear()
}

func (s *memoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.jar.Len()
}

// fromHTTP converts an http.Cookie already split into attributes by
// net/http. The reader merged Expires and Max-Age, so source order is
// gone, a non-zero MaxAge wins here. The string path through
// ParseSetCookie keeps full source order semantics.
func fromHTTP(c *http.Cookie) Cookie {
	cookie := Cookie{
		Name:     c.Name,
		Value:    c.Value,
		Domain:   canonicalDomain(c.Domain),
		Path:     c.Path,
		Secure:   c.Secure,
		HttpOnly: c.HttpOnly,
		Expires:  c.Expires,
	}
	switch {
	case c.MaxAge > 0:
		cookie.Expires = time.Now().Add(time.Duration(c.MaxAge) * time.Second)
	case c.MaxAge < 0:
		cookie.Expires = time.Now().Add(-time.Second)
	}
	switch c.SameSite {
	case http.SameSiteStrictMode:
		cookie.SameSite = SameSiteStrict
	case http.SameSiteLaxMode:
		cookie.SameSite = SameSiteLax
	case http.SameSiteNoneMode:
		cookie.SameSite = SameSiteNone
	}
	return cookie
}

func toHTTP(c Cookie) *http.Cookie {
	cookie := &http.Cookie{
		Name:     c.Name,
		Value:    c.Value,
		Domain:   c.Domain,
		Path:     c.Path,
		Secure:   c.Secure,
		HttpOnly: c.HttpOnly,
		Expires:  c.Expires,
	}
	switch c.SameSite {
	case SameSiteStrict:
		cookie.SameSite = http.SameSiteStrictMode
	case SameSiteLax:
		cookie.SameSite = http.SameSiteLaxMode
	case SameSiteNone:
		cookie.SameSite = http.SameSiteNoneMode
	}
	return cookie
}
