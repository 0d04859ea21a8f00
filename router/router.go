package router

import (
	"github.com/indigo-web/lattice/http"
)

// Router resolves requests into handlers. After OnStart is called, Resolve may be invoked
// concurrently from any number of goroutines.
type Router interface {
	// OnStart is called once before the server starts accepting connections.
	OnStart() error
	// Resolve returns a handler for the request. Failures are expected to be
	// status.HTTPError, so their code can be sent to the client.
	Resolve(request *http.Request) (http.Handler, error)
}
