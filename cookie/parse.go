package cookie

import (
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Set-Cookie expiry date layouts, RFC 1123 plus the legacy dashed
// variant still common on the wire.
var expiresLayouts = []string{
	time.RFC1123,
	"Mon, 02-Jan-2006 15:04:05 MST",
}

// ParseSetCookie parses one Set-Cookie header value received from u into
// a Cookie, or nil when the value is malformed. Malformed headers are
// common on the wire and must never abort response handling, so there is
// no error to inspect.
//
// The Domain attribute is kept only when it covers the host of u,
// otherwise it is dropped and the cookie stays host-only. A missing Path
// attribute is defaulted from the path of u. When Expires and Max-Age
// both appear, whichever comes later in the header wins.
func ParseSetCookie(value string, u *url.URL) *Cookie {
	parts := strings.Split(value, ";")
	name, val, ok := strings.Cut(strings.TrimSpace(parts[0]), "=")
	if !ok || name == "" {
		return nil
	}

	now := time.Now()
	host := canonicalHost(u)
	c := &Cookie{Name: name, Value: unquote(val)}

	for _, part := range parts[1:] {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		attr, val, _ := strings.Cut(part, "=")
		val = unquote(val)

		switch strings.ToLower(attr) {
		case "domain":
			if domain := canonicalDomain(val); domain != "" && DomainMatches(host, domain) {
				c.Domain = domain
			}
		case "path":
			if val != "" {
				c.Path = val
			}
		case "secure":
			c.Secure = true
		case "httponly":
			c.HttpOnly = true
		case "max-age":
			secs, err := strconv.Atoi(val)
			if err != nil {
				continue
			}
			c.Expires = now.Add(time.Duration(secs) * time.Second)
		case "expires":
			for _, layout := range expiresLayouts {
				if t, err := time.Parse(layout, val); err == nil {
					c.Expires = t.UTC()
					break
				}
			}
		case "samesite":
			switch SameSite(strings.ToLower(val)) {
			case SameSiteStrict:
				c.SameSite = SameSiteStrict
			case SameSiteLax:
				c.SameSite = SameSiteLax
			case SameSiteNone:
				c.SameSite = SameSiteNone
			}
		}
	}

	if c.Path == "" {
		c.Path = defaultPath(u.Path)
	}
	return c
}

// canonicalHost is the lowercased hostname of u, without port or
// brackets.
func canonicalHost(u *url.URL) string {
	return strings.ToLower(u.Hostname())
}

// canonicalDomain normalizes a Domain attribute value, lowercased with
// at most one leading dot removed.
func canonicalDomain(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, "."))
}

// unquote strips one pair of surrounding double quotes, servers quote
// cookie and attribute values at will.
func unquote(s string) string {
	if len(s) > 1 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}
