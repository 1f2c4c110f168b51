package cookie

import (
	"net/url"
	"strings"
	"time"

	"golang.org/x/exp/slices"
)

// Jar is an in-memory cookie store keyed by (name, domain, path).
// Setting an existing key overwrites it, setting an already expired
// cookie deletes it, this is how servers evict cookies.
//
// A Jar is not synchronized. Parsing and matching are pure computation
// and every operation completes immediately, but an embedder sharing a
// Jar across goroutines must serialize access itself. Store wraps a Jar
// with the one mutex that contract asks for.
type Jar struct {
	entries map[string]Cookie
}

// NewJar creates an empty Jar.
func NewJar() *Jar {
	return &Jar{entries: make(map[string]Cookie)}
}

func key(name, domain, path string) string {
	return name + "|" + domain + "|" + path
}

// Set stores c received from u. The stored domain is the cookie's own
// Domain when it covers the host of u, otherwise the host itself, so a
// cookie can never claim a foreign domain. A cookie already expired at
// store time is not stored and deletes any entry under the same key.
func (j *Jar) Set(u *url.URL, c Cookie) {
	host := canonicalHost(u)
	if c.Domain == "" || !DomainMatches(host, c.Domain) {
		c.Domain = host
	}
	if c.Path == "" {
		c.Path = defaultPath(u.Path)
	}

	k := key(c.Name, c.Domain, c.Path)
	if c.Expired(time.Now()) {
		delete(j.entries, k)
		return
	}
	j.entries[k] = c
}

// SetCookieString parses one Set-Cookie header value received from u
// and stores the result. Malformed values are dropped.
func (j *Jar) SetCookieString(u *url.URL, value string) {
	if c := ParseSetCookie(value, u); c != nil {
		j.Set(u, *c)
	}
}

// SetCookie stores a session cookie visible to domain and all of its
// subdomains on every path, bypassing the parser.
func (j *Jar) SetCookie(name, value, domain string) {
	c := Cookie{
		Name:   name,
		Value:  value,
		Domain: canonicalDomain(domain),
		Path:   "/",
	}
	j.entries[key(c.Name, c.Domain, c.Path)] = c
}

// Cookies returns the stored cookies a request to u should carry: not
// expired, secure only over https, domain and path covering u. Cookies
// with the most specific path come first, the order of cookies with
// equal path lengths is unspecified. Expiry is judged against a single
// time sample taken at the start of the call.
func (j *Jar) Cookies(u *url.URL) []Cookie {
	now := time.Now()
	host := canonicalHost(u)
	https := u.Scheme == "https"
	path := u.Path
	if path == "" {
		path = "/"
	}

	var matched []Cookie
	for _, c := range j.entries {
		if c.Expired(now) {
			continue
		}
		if c.Secure && !https {
			continue
		}
		if !DomainMatches(host, c.Domain) {
			continue
		}
		if !PathMatches(path, c.Path) {
			continue
		}
		matched = append(matched, c)
	}

	slices.SortStableFunc(matched, func(a, b Cookie) bool {
		return len(a.Path) > len(b.Path)
	})
	return matched
}

// CookieString returns the Cookie header value for a request to u,
// name=value pairs joined by "; " in Cookies order. Empty means no
// stored cookie matches and the header should be omitted.
func (j *Jar) CookieString(u *url.URL) string {
	cookies := j.Cookies(u)
	if len(cookies) == 0 {
		return ""
	}
	pairs := make([]string, len(cookies))
	for i, c := range cookies {
		pairs[i] = c.String()
	}
	return strings.Join(pairs, "; ")
}

// All returns a flat name to value view of every stored cookie,
// ignoring domain and path scope. Same-named cookies from different
// scopes collide in map iteration order, use Cookies to build request
// headers.
func (j *Jar) All() map[string]string {
	all := make(map[string]string, len(j.entries))
	for _, c := range j.entries {
		all[c.Name] = c.Value
	}
	return all
}

// Remove deletes every cookie a request to u could receive, regardless
// of path and expiry.
func (j *Jar) Remove(u *url.URL) {
	host := canonicalHost(u)
	for k, c := range j.entries {
		if DomainMatches(host, c.Domain) {
			delete(j.entries, k)
		}
	}
}

// Clear removes every stored cookie.
func (j *Jar) Clear() {
	j.entries = make(map[string]Cookie)
}

// Len returns the number of stored cookies.
func (j *Jar) Len() int {
	return len(j.entries)
}
