package http

import (
	"net/url"
	"strings"

	"github.com/indigo-web/lattice/http/method"
	"github.com/indigo-web/lattice/http/mime"
	"github.com/indigo-web/lattice/http/proto"
	"github.com/indigo-web/lattice/kv"
)

type (
	Headers = *kv.Storage
	Header  = kv.Pair
	Vars    = *kv.Storage
)

// Keys of the well-known Env entries, set by the server for every connection.
const (
	EnvRemoteAddr = "remote_addr"
	EnvConnID     = "conn_id"
)

// Request represents HTTP request. All the fields except Vars and Env must be considered
// read-only inside of handlers.
type Request struct {
	// Method is an enum representing the request method. Unsupported methods are
	// represented by method.Unknown.
	Method method.Method
	// Path is the request target with the query stripped. It isn't decoded.
	Path string
	// Params is the raw query string, without the leading question mark. Empty if the
	// request target contained none.
	Params string
	// Protocol is the enum of the protocol version the request was made with.
	Protocol proto.Protocol
	// Headers holds non-normalized header pairs, even though lookup is case-insensitive.
	// Repeated headers override each other, so there's at most one value per key.
	Headers Headers
	// Body is the raw remainder after the headers section. Empty body means there was none.
	Body string
	// Vars are dynamic routing segments.
	Vars Vars
	// Env is an extensible side-map for connection metadata.
	Env *kv.Storage
	query *kv.Storage
}

// NewRequest returns an empty request with all the storages initialized.
func NewRequest() *Request {
	return NewRequestPrealloc(0, 0)
}

// NewRequestPrealloc does the same as NewRequest, but with the headers and vars storages
// having the initial capacity.
func NewRequestPrealloc(headers, vars int) *Request {
	return &Request{
		Method:   method.Unknown,
		Protocol: proto.Unknown,
		Headers:  kv.NewPrealloc(headers),
		Vars:     kv.NewPrealloc(vars),
		Env:      kv.NewPrealloc(2),
	}
}

// DefaultRequest is what gets served when the incoming data doesn't look like
// HTTP at all.
func DefaultRequest() *Request {
	request := NewRequest()
	request.Method = method.GET
	request.Path = "/"
	request.Protocol = proto.HTTP11
	request.Headers.Set("Content-Type", mime.HTML)

	return request
}

// Query lazily decodes Params into key-value pairs. Malformed escape sequences are kept
// as-is. The result is cached, so repeated calls are cheap.
func (r *Request) Query() *kv.Storage {
	if r.query != nil {
		return r.query
	}

	r.query = kv.New()

	for pair := range strings.SplitSeq(r.Params, "&") {
		if len(pair) == 0 {
			continue
		}

		key, value, _ := strings.Cut(pair, "=")
		r.query.Add(unescape(key), unescape(value))
	}

	return r.query
}

func unescape(str string) string {
	decoded, err := url.QueryUnescape(str)
	if err != nil {
		return str
	}

	return decoded
}

// Remote returns the peer address of the connection the request came from.
func (r *Request) Remote() string {
	return r.Env.Value(EnvRemoteAddr)
}

// ConnID returns a random identifier of the connection, useful for log correlation.
func (r *Request) ConnID() string {
	return r.Env.Value(EnvConnID)
}
