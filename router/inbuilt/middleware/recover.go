package middleware

import (
	"github.com/indigo-web/lattice/http"
	"github.com/indigo-web/lattice/http/status"
	"github.com/indigo-web/lattice/logging"
	"github.com/indigo-web/lattice/router/inbuilt"
)

// Recover catches any panics and responds with 500 Internal Server Error instead. Response
// headers and body are discarded, so no half-cooked response is sent.
func Recover(loggers ...logging.Logger) inbuilt.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(request *http.Request, response *http.Response) {
			defer func() {
				if r := recover(); r != nil {
					for _, logger := range loggers {
						logger.Printf("recovered from panic in %s %s: %v", request.Method, request.Path, r)
					}

					response.Reveal().Headers.Clear()
					response.
						Bytes(nil).
						Status("").
						Error(status.ErrInternalServerError)
				}
			}()

			next.Handle(request, response)
		})
	}
}
