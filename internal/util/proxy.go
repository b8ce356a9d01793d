package util

import (
	"net/http"
	"net/url"
	"strings"
)

// NewProxyFunc creates a proxy function for translation HTTP clients.
// If no proxy URLs are provided, falls back to environment variables.
// Hosts listed in noProxy (comma-separated, matched against the request
// host and its parent domains) bypass the proxy.
func NewProxyFunc(httpProxy, httpsProxy, noProxy string) func(*http.Request) (*url.URL, error) {
	if httpProxy == "" && httpsProxy == "" {
		return http.ProxyFromEnvironment
	}

	var skipHosts []string
	for _, h := range strings.Split(noProxy, ",") {
		if h = strings.TrimSpace(h); h != "" {
			skipHosts = append(skipHosts, strings.ToLower(h))
		}
	}

	return func(req *http.Request) (*url.URL, error) {
		if hostMatches(req.URL.Hostname(), skipHosts) {
			return nil, nil
		}
		if req.URL.Scheme == "https" && httpsProxy != "" {
			return url.Parse(httpsProxy)
		}
		if httpProxy != "" {
			return url.Parse(httpProxy)
		}
		return http.ProxyFromEnvironment(req)
	}
}

func hostMatches(host string, skipHosts []string) bool {
	host = strings.ToLower(host)
	for _, skip := range skipHosts {
		if host == skip || strings.HasSuffix(host, "."+strings.TrimPrefix(skip, ".")) {
			return true
		}
	}
	return false
}
