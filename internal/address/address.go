package address

import "strings"

const (
	DefaultAddr = "127.0.0.1:8080"
	// DefaultHost is used when only the port is given.
	DefaultHost = "0.0.0.0"
)

// Normalize fills in the missing parts of the listen address. An empty address results
// in DefaultAddr, a port-only one (":8080") is bound to all interfaces.
func Normalize(addr string) string {
	switch {
	case len(addr) == 0:
		return DefaultAddr
	case len(stripPort(addr)) == 0:
		return DefaultHost + addr
	default:
		return addr
	}
}

func stripPort(addr string) string {
	colon := strings.LastIndexByte(addr, ':')
	if colon != -1 {
		return addr[:colon]
	}

	return addr
}
