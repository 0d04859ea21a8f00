package lattice

import (
	"maps"
	"net"
	"slices"
	"sync"

	"github.com/indigo-web/lattice/config"
	"github.com/indigo-web/lattice/http"
	"github.com/indigo-web/lattice/internal/address"
	"github.com/indigo-web/lattice/internal/pool"
	httpserver "github.com/indigo-web/lattice/internal/server/http"
	"github.com/indigo-web/lattice/internal/server/tcp"
	"github.com/indigo-web/lattice/logging"
	"github.com/indigo-web/lattice/router"
	"github.com/indigo-web/lattice/router/inbuilt"
)

type hooks struct {
	OnStart, OnStop func()
}

// App is the entry point: it binds the address, accepts connections and dispatches every
// one of them onto the workers pool.
type App struct {
	addr     string
	cfg      *config.Config
	headers  []http.Header
	logger   logging.Logger
	hooks    hooks
	mu       sync.Mutex
	server   *tcp.Server
	stopping bool
}

// New returns a new App instance. Empty address is treated as 127.0.0.1:8080, and an
// address without a host (like ":8080") binds all the interfaces.
func New(addr string) *App {
	return &App{
		addr:   address.Normalize(addr),
		cfg:    config.Default(),
		logger: logging.Default(),
	}
}

// Tune replaces the default config.
func (a *App) Tune(cfg *config.Config) *App {
	a.cfg = cfg
	return a
}

// Header adds a default response header. Handlers may override it. Headers added this way
// take precedence over config.Headers.Default.
func (a *App) Header(key, value string) *App {
	a.headers = append(a.headers, http.Header{Key: key, Value: value})
	return a
}

// Logger replaces the default logger. Nil silences the app.
func (a *App) Logger(logger logging.Logger) *App {
	if logger == nil {
		logger = logging.Nop{}
	}

	a.logger = logger
	return a
}

// NotifyOnStart calls the callback at the moment the listener is bound and the accept
// loop is about to start.
func (a *App) NotifyOnStart(cb func()) *App {
	a.hooks.OnStart = cb
	return a
}

// NotifyOnStop calls the callback after the server stopped accepting connections and all
// the already accepted ones were served.
func (a *App) NotifyOnStop(cb func()) *App {
	a.hooks.OnStop = cb
	return a
}

// Serve starts the web-application and blocks until it's stopped. If nil is passed instead
// of a router, empty inbuilt will be used.
func (a *App) Serve(r router.Router) error {
	if r == nil {
		r = inbuilt.New()
	}

	if err := r.OnStart(); err != nil {
		return err
	}

	sock, err := net.Listen("tcp", a.addr)
	if err != nil {
		return err
	}

	workers := pool.New(a.cfg.Workers.Count, a.logger)
	defer workers.Close()

	httpServer := httpserver.NewServer(r, a.defaultResponse(), a.cfg, a.logger)
	tcpServer := tcp.NewServer(sock, func(conn net.Conn) {
		if err := workers.Submit(httpServer.Job(conn)); err != nil {
			a.logger.Printf("lattice: %s: %s", conn.RemoteAddr(), err)
			_ = conn.Close()
		}
	}, a.logger)

	if !a.register(tcpServer) {
		_ = sock.Close()
		return nil
	}

	callIfNotNil(a.hooks.OnStart)
	err = tcpServer.Start()
	workers.Close()
	callIfNotNil(a.hooks.OnStop)

	return err
}

// register publishes the server, so Stop can reach it. Returns false if the app was
// stopped before it even started.
func (a *App) register(server *tcp.Server) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.stopping {
		return false
	}

	a.server = server

	return true
}

func (a *App) defaultResponse() *http.Response {
	response := http.NewResponse()
	defaults := a.cfg.Headers.Default
	for _, key := range slices.Sorted(maps.Keys(defaults)) {
		response.Header(key, defaults[key])
	}

	for _, header := range a.headers {
		response.Header(header.Key, header.Value)
	}

	return response
}

// Stop closes the listener. Serve returns after every already accepted connection is
// served.
//
// NOTE: the call isn't blocking.
func (a *App) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.stopping {
		return
	}

	a.stopping = true
	if a.server != nil {
		if err := a.server.Stop(); err != nil {
			a.logger.Printf("lattice: stop: %s", err)
		}
	}
}

// Addr returns the bound address, or nil if the app isn't serving yet.
func (a *App) Addr() net.Addr {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.server == nil {
		return nil
	}

	return a.server.Addr()
}

func callIfNotNil(f func()) {
	if f != nil {
		f()
	}
}
