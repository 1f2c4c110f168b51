package cookie

import (
	"strings"

	"github.com/dlclark/regexp2"
)

// Dotted quad IPv4 hosts never suffix-match, neither does anything
// containing a colon (IPv6).
var reIPv4 = regexp2.MustCompile(`^(\d{1,3}\.){3}\d{1,3}$`, regexp2.None)

// DomainMatches reports whether the request host is covered by the
// cookie domain: an exact match, or host ends with ".domain" while
// domain is not an IP literal. The separating dot keeps evilexample.com
// away from example.com, the IP rule keeps numeric hosts from being
// claimed by suffix.
func DomainMatches(host, domain string) bool {
	if host == domain {
		return true
	}
	if isIPLiteral(domain) {
		return false
	}
	return strings.HasSuffix(host, domain) &&
		len(host) > len(domain) &&
		host[len(host)-len(domain)-1] == '.'
}

// PathMatches reports whether the request path is covered by the cookie
// path: an exact match, or a prefix match that ends on a path boundary.
// /apiext is not covered by /api.
func PathMatches(requestPath, cookiePath string) bool {
	if requestPath == cookiePath {
		return true
	}
	if !strings.HasPrefix(requestPath, cookiePath) {
		return false
	}
	return strings.HasSuffix(cookiePath, "/") ||
		requestPath[len(cookiePath)] == '/'
}

func isIPLiteral(s string) bool {
	if strings.Contains(s, ":") {
		return true
	}
	ok, _ := reIPv4.MatchString(s)
	return ok
}

// defaultPath derives the cookie path from the setting request path when
// the Path attribute is absent: the request path up to but excluding its
// last slash, or / when the path is empty, relative, or has no slash
// past the first byte.
func defaultPath(requestPath string) string {
	if requestPath == "" || !strings.HasPrefix(requestPath, "/") {
		return "/"
	}
	i := strings.LastIndex(requestPath[:len(requestPath)-1], "/")
	if i <= 0 {
		return "/"
	}
	return requestPath[:i]
}
