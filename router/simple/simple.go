// Package simple provides a router, resolving every request into the same handler.
package simple

import (
	"github.com/indigo-web/lattice/http"
	"github.com/indigo-web/lattice/router"
)

var _ router.Router = Router{}

type Router struct {
	handler http.Handler
}

func New(handler http.Handler) Router {
	return Router{handler: handler}
}

func (Router) OnStart() error {
	return nil
}

func (r Router) Resolve(*http.Request) (http.Handler, error) {
	return r.handler, nil
}
