package virtual

import "strings"

// normalizeHost strips the www. prefix and default ports off, so "www.example.com:80" and
// "example.com" are the same host.
func normalizeHost(host string) string {
	host = strings.TrimPrefix(host, "www.")
	if name, port, found := cutPort(host); found && (port == "80" || port == "443") {
		return name
	}

	return host
}

func cutPort(host string) (name, port string, found bool) {
	colon := strings.LastIndexByte(host, ':')
	// IPv6 literals are enclosed into brackets, which must be closed before the port
	if colon == -1 || strings.IndexByte(host[colon:], ']') != -1 {
		return host, "", false
	}

	return host[:colon], host[colon+1:], true
}

func trimPort(host string) string {
	name, _, _ := cutPort(host)
	return name
}
