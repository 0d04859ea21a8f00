package http1

import (
	"strconv"

	"github.com/indigo-web/lattice/http"
	"github.com/indigo-web/lattice/http/status"
)

const responseProto = "HTTP/1.1 "

// Serialize appends the wire representation of the response to the buffer. Nothing is
// added implicitly: the status line, response headers in their order, an empty line and
// the body as-is. The connection is closed after every response, so the body is delimited
// by the connection close if no Content-Length was set by a handler.
func Serialize(buff []byte, response *http.Response) []byte {
	fields := response.Reveal()

	buff = append(buff, responseProto...)
	buff = strconv.AppendUint(buff, uint64(fields.Code), 10)
	buff = append(buff, ' ')
	if len(fields.Status) > 0 {
		buff = append(buff, fields.Status...)
	} else {
		buff = append(buff, status.Text(fields.Code)...)
	}
	buff = crlf(buff)

	for key, value := range fields.Headers.Pairs() {
		buff = append(buff, key...)
		buff = append(buff, ':', ' ')
		buff = append(buff, value...)
		buff = crlf(buff)
	}

	return append(crlf(buff), fields.Body...)
}

func crlf(b []byte) []byte {
	return append(b, '\r', '\n')
}
