package inbuilt

import (
	"github.com/indigo-web/lattice/http"
	"github.com/indigo-web/lattice/http/method"
)

// Get is a shortcut for registering GET-requests
func (r *Router) Get(path string, handler http.Handler, middlewares ...Middleware) *Router {
	return r.Route(method.GET, path, handler, middlewares...)
}

// Post is a shortcut for registering POST-requests
func (r *Router) Post(path string, handler http.Handler, middlewares ...Middleware) *Router {
	return r.Route(method.POST, path, handler, middlewares...)
}

// Put is a shortcut for registering PUT-requests
func (r *Router) Put(path string, handler http.Handler, middlewares ...Middleware) *Router {
	return r.Route(method.PUT, path, handler, middlewares...)
}

// Delete is a shortcut for registering DELETE-requests
func (r *Router) Delete(path string, handler http.Handler, middlewares ...Middleware) *Router {
	return r.Route(method.DELETE, path, handler, middlewares...)
}
