package fetch

import (
	"net/http"
	"net/url"
	"sync/atomic"

	"github.com/yuniko/biscuit/lib/logger"
)

type roundRobinProxy struct {
	proxyURLs []*url.URL
	index     uint32
}

// getProxy returns a proxy URL for the given http.Request
func (r *roundRobinProxy) getProxy(*http.Request) (*url.URL, error) {
	index := atomic.AddUint32(&r.index, 1) - 1
	return r.proxyURLs[index%uint32(len(r.proxyURLs))], nil
}

// RoundRobinProxy creates a proxy switcher function which rotates the
// given urls on each request. The proxy type is determined by the URL
// scheme. "http", "https" and "socks5" are supported. If the scheme is
// empty, "http" is assumed. Invalid urls are skipped.
func RoundRobinProxy(proxyURLs ...string) func(*http.Request) (*url.URL, error) {
	parsed := make([]*url.URL, 0, len(proxyURLs))
	for _, pu := range proxyURLs {
		u, err := url.Parse(pu)
		if err != nil {
			logger.Errorf("proxy url %s error %s", pu, err)
			continue
		}
		parsed = append(parsed, u)
	}
	if len(parsed) == 0 {
		return http.ProxyFromEnvironment
	}

	return (&roundRobinProxy{parsed, 0}).getProxy
}
