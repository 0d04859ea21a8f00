package inbuilt

import (
	"github.com/indigo-web/lattice/http"
)

// Middleware wraps the next handler in the chain.
type Middleware func(next http.Handler) http.Handler

// Use adds middlewares to the router. They apply to every route of the router and its
// groups, no matter whether the route was registered before or after the call.
func (r *Router) Use(middlewares ...Middleware) *Router {
	if r.root.frozen {
		panic(ErrFrozen)
	}

	r.middlewares = append(r.middlewares, middlewares...)

	return r
}

// compose makes a single handler out of a chain of middlewares. The first middleware is
// the outermost one.
func compose(handler http.Handler, middlewares []Middleware) http.Handler {
	for i := len(middlewares) - 1; i >= 0; i-- {
		handler = middlewares[i](handler)
	}

	return handler
}
