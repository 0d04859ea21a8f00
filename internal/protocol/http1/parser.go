package http1

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/indigo-web/lattice/config"
	"github.com/indigo-web/lattice/http"
	"github.com/indigo-web/lattice/http/method"
	"github.com/indigo-web/lattice/http/proto"
	"github.com/indigo-web/lattice/http/status"
	"github.com/indigo-web/utils/uf"
)

var httpMarker = []byte("HTTP/")

// Parser constructs requests with storages preallocated accordingly to the config.
type Parser struct {
	headersPrealloc int
	varsPrealloc    int
}

func NewParser(cfg *config.Config) Parser {
	return Parser{
		headersPrealloc: cfg.Headers.Prealloc,
		varsPrealloc:    cfg.URI.VarsPrealloc,
	}
}

var defaultParser = NewParser(config.Default())

// Parse is a shorthand for parsing with the default config.
func Parse(data []byte) (*http.Request, error) {
	return defaultParser.Parse(data)
}

// Parse turns a whole request read from the connection into the Request. The parser is
// tolerant: data without a single "HTTP/" occurrence results in http.DefaultRequest()
// instead of an error. Only malformed request line or header lines are rejected.
//
// The data is NOT copied, so it must not be modified for as long as the request is in use.
func (p Parser) Parse(data []byte) (*http.Request, error) {
	if !bytes.Contains(data, httpMarker) {
		return http.DefaultRequest(), nil
	}

	lines := newLineIter(uf.B2S(data))
	requestLine, _ := lines.Next()
	request := http.NewRequestPrealloc(p.headersPrealloc, p.varsPrealloc)

	if err := parseRequestLine(request, requestLine); err != nil {
		return nil, err
	}

	for {
		line, ok := lines.Next()
		if !ok {
			return request, nil
		}

		if len(line) == 0 {
			break
		}

		key, value, found := strings.Cut(line, ":")
		if !found {
			return nil, fmt.Errorf("%w: %q", status.ErrBadHeader, line)
		}

		request.Headers.Set(key, strings.TrimSpace(value))
	}

	request.Body = parseBody(lines)

	return request, nil
}

func parseRequestLine(request *http.Request, line string) error {
	tokens := strings.Fields(line)
	if len(tokens) < 3 {
		return fmt.Errorf("%w: %q", status.ErrBadRequestLine, line)
	}

	request.Method = method.Parse(tokens[0])
	request.Path, request.Params, _ = strings.Cut(tokens[1], "?")
	request.Protocol = proto.Parse(tokens[2])

	return nil
}

// parseBody concatenates all the remaining non-empty lines without any separator.
func parseBody(lines *lineIter) string {
	var body strings.Builder

	for {
		line, ok := lines.Next()
		if !ok {
			return body.String()
		}

		body.WriteString(line)
	}
}

// lineIter splits the text by LF, stripping a trailing CR off every line. A terminating
// line break doesn't produce an empty line at the end.
type lineIter struct {
	text string
}

func newLineIter(text string) *lineIter {
	return &lineIter{text: text}
}

func (l *lineIter) Next() (line string, ok bool) {
	if len(l.text) == 0 {
		return "", false
	}

	line, l.text, _ = strings.Cut(l.text, "\n")

	return strings.TrimSuffix(line, "\r"), true
}
