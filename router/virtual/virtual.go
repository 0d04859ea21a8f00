// Package virtual implements name-based virtual hosting: requests are dispatched to
// different routers depending on the Host header.
package virtual

import (
	"errors"

	"github.com/indigo-web/lattice/http"
	"github.com/indigo-web/lattice/http/status"
	"github.com/indigo-web/lattice/router"
	"github.com/indigo-web/utils/strcomp"
)

var _ router.Router = new(Router)

var ErrNoHost = status.NewError(status.BadRequest, "missing Host header")

type virtualRouter struct {
	Host   string
	Router router.Router
}

type Router struct {
	routers       []virtualRouter
	defaultRouter router.Router
}

// New returns a new instance of the virtual Router
func New() *Router {
	return &Router{}
}

// Host adds a new virtual router. If 0.0.0.0 is passed, the router will be set as the
// default one.
func (r *Router) Host(host string, other router.Router) *Router {
	host = normalizeHost(host)
	if trimPort(host) == "0.0.0.0" {
		return r.Default(other)
	}

	r.routers = append(r.routers, virtualRouter{
		Host:   host,
		Router: other,
	})

	return r
}

// Default sets the router for requests, Host header value of which isn't matched by any
// other router, or is missing at all.
func (r *Router) Default(def router.Router) *Router {
	r.defaultRouter = def
	return r
}

// OnStart starts every router, including the default one.
func (r *Router) OnStart() error {
	var errs []error
	for _, virt := range r.routers {
		errs = append(errs, virt.Router.OnStart())
	}

	if r.defaultRouter != nil {
		errs = append(errs, r.defaultRouter.OnStart())
	}

	return errors.Join(errs...)
}

func (r *Router) Resolve(request *http.Request) (http.Handler, error) {
	virt, err := r.getRouter(request)
	if err != nil {
		return nil, err
	}

	return virt.Resolve(request)
}

// getRouter looks up for the matching router, according to the Host header value. In case
// nothing matches, the default router is returned, if set.
func (r *Router) getRouter(request *http.Request) (router.Router, error) {
	host, found := request.Headers.Get("Host")
	if !found {
		if r.defaultRouter == nil {
			return nil, ErrNoHost
		}

		return r.defaultRouter, nil
	}

	host = normalizeHost(host)
	for _, virt := range r.routers {
		if strcomp.EqualFold(virt.Host, host) {
			return virt.Router, nil
		}
	}

	if r.defaultRouter == nil {
		return nil, status.ErrMisdirectedRequest
	}

	return r.defaultRouter, nil
}
