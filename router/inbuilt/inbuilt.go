package inbuilt

import (
	"errors"
	"fmt"

	"github.com/indigo-web/lattice/http"
	"github.com/indigo-web/lattice/http/method"
	"github.com/indigo-web/lattice/http/status"
	"github.com/indigo-web/lattice/router"
	"github.com/indigo-web/lattice/router/inbuilt/internal/trie"
)

var _ router.Router = new(Router)

// ErrFrozen is the panic value for routes registered after the server has started.
var ErrFrozen = errors.New("router is frozen: routes can't be registered after the server started")

// methodsMap is a leaf payload. Index is the method, Unknown is never set.
type methodsMap [method.Count + 1]*route

// Router is a built-in implementation of router.Router interface that provides
// static and dynamic routing, groups and middlewares.
//
// Routes are registered into a single tree shared by the root router and all its groups.
// Registration isn't safe for concurrent use, but resolving is after OnStart.
type Router struct {
	root        *Router
	parent      *Router
	prefix      string
	middlewares []Middleware

	// fields below are used only by the root
	tree   *trie.Tree[methodsMap]
	routes []*route
	frozen bool
}

// New constructs a new instance of inbuilt router
func New() *Router {
	r := &Router{
		tree: trie.New[methodsMap](),
	}
	r.root = r

	return r
}

// OnStart composes all the registered handlers with middlewares and freezes the router.
// Calling it more than once makes no difference.
func (r *Router) OnStart() error {
	root := r.root
	if root.frozen {
		return nil
	}

	for _, rt := range root.routes {
		rt.compose()
	}

	root.frozen = true

	return nil
}

// Resolve looks up the handler for the request path and method. Wildcard values are
// stored into request.Vars. In case nothing matched, status.ErrNotFound-coded error is
// returned and vars are cleared.
func (r *Router) Resolve(request *http.Request) (http.Handler, error) {
	methods, found := r.root.tree.Lookup(request.Path, request.Vars)
	if found && int(request.Method) < len(methods) {
		if rt := methods[request.Method]; rt != nil {
			return rt.handler, nil
		}
	}

	request.Vars.Clear()

	return nil, status.NewError(
		status.NotFound, fmt.Sprintf("no %s handler for %s", request.Method, request.Path),
	)
}
