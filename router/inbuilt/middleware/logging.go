package middleware

import (
	"github.com/indigo-web/lattice/http"
	"github.com/indigo-web/lattice/logging"
	"github.com/indigo-web/lattice/router/inbuilt"
)

// LogRequests logs the method, path and resulting status code of every request. If no
// loggers are passed, the default one is used.
func LogRequests(loggers ...logging.Logger) inbuilt.Middleware {
	if len(loggers) == 0 {
		loggers = append(loggers, logging.Default())
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(request *http.Request, response *http.Response) {
			next.Handle(request, response)

			for _, logger := range loggers {
				logger.Printf("%s %s %d", request.Method, request.Path, response.Reveal().Code)
			}
		})
	}
}
