package inbuilt

import (
	"fmt"
	"path"

	"github.com/indigo-web/lattice/http"
	"github.com/indigo-web/lattice/http/method"
)

// RouteHandler is a complete route definition, as accepted by AddRoute.
type RouteHandler struct {
	Method  method.Method
	Path    string
	Handler http.Handler
}

type route struct {
	// handler is what Resolve returns. Until OnStart it's just the raw one.
	handler     http.Handler
	raw         http.Handler
	middlewares []Middleware
	group       *Router
}

// compose wraps the raw handler with the middlewares. The outermost are those of the root
// router, then of every nested group and finally of the route itself.
func (rt *route) compose() {
	var chain []Middleware
	for g := rt.group; g != nil; g = g.parent {
		chain = append(g.middlewares[:len(g.middlewares):len(g.middlewares)], chain...)
	}

	chain = append(chain, rt.middlewares...)
	rt.handler = compose(rt.raw, chain)
}

// Route is a base method for registering handlers. It panics on unknown methods, nil
// handlers, malformed paths and if the router is already frozen.
func (r *Router) Route(
	m method.Method, path string, handler http.Handler, middlewares ...Middleware,
) *Router {
	root := r.root
	if root.frozen {
		panic(ErrFrozen)
	}

	if m == method.Unknown || m > method.Count {
		panic(fmt.Errorf("cannot register route %s: unknown method", path))
	}

	if handler == nil {
		panic(fmt.Errorf("cannot register route %s %s: nil handler", m, path))
	}

	rt := &route{
		handler:     handler,
		raw:         handler,
		middlewares: middlewares,
		group:       r,
	}

	err := root.tree.Upsert(r.join(path), func(methods *methodsMap) {
		methods[m] = rt
	})
	if err != nil {
		panic(err)
	}

	root.routes = append(root.routes, rt)

	return r
}

// AddRoute registers a ready route definition.
func (r *Router) AddRoute(rh RouteHandler, middlewares ...Middleware) *Router {
	return r.Route(rh.Method, rh.Path, rh.Handler, middlewares...)
}

func (r *Router) join(p string) string {
	if len(r.prefix) == 0 {
		return p
	}

	return path.Join(r.prefix, p)
}
