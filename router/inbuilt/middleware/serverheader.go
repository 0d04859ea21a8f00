package middleware

import (
	"strings"

	"github.com/indigo-web/lattice/http"
	"github.com/indigo-web/lattice/router/inbuilt"
)

const DefaultServerHeader = "lattice"

// ServerHeader sets the Server header after the handler is done.
func ServerHeader(customHeaders ...string) inbuilt.Middleware {
	value := strings.Join(customHeaders, " ")
	if len(value) == 0 {
		value = DefaultServerHeader
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(request *http.Request, response *http.Response) {
			next.Handle(request, response)
			response.Header("Server", value)
		})
	}
}
