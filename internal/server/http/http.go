package http

import (
	"errors"
	"io"
	"net"

	"github.com/dchest/uniuri"
	"github.com/indigo-web/lattice/config"
	"github.com/indigo-web/lattice/http"
	"github.com/indigo-web/lattice/http/method"
	"github.com/indigo-web/lattice/http/status"
	"github.com/indigo-web/lattice/internal/pool"
	"github.com/indigo-web/lattice/internal/protocol/http1"
	"github.com/indigo-web/lattice/logging"
	"github.com/indigo-web/lattice/router"
)

// Server serves a single request per connection. It's stateless, so a single instance
// is shared by all the workers.
type Server struct {
	router       router.Router
	parser       http1.Parser
	defaults     *http.Response
	readBuffSize int
	respPrealloc int
	logger       logging.Logger
}

// NewServer creates the server. Defaults is a response template, every connection gets its
// own clone of it. It must not be modified afterward.
func NewServer(
	r router.Router, defaults *http.Response, cfg *config.Config, logger logging.Logger,
) *Server {
	if defaults == nil {
		defaults = http.NewResponse()
	}

	return &Server{
		router:       r,
		parser:       http1.NewParser(cfg),
		defaults:     defaults,
		readBuffSize: cfg.NET.ReadBufferSize,
		respPrealloc: cfg.NET.ResponseBufferPrealloc,
		logger:       logging.OrDefault(logger),
	}
}

// Job wraps the connection into a job, ready to be submitted into the pool.
func (s *Server) Job(conn net.Conn) pool.Job {
	return pool.JobFunc(func() {
		s.HandleConn(conn)
	})
}

// HandleConn reads the request, routes it, writes the response and closes the connection.
// The returned state is the last one reached before closing.
func (s *Server) HandleConn(conn net.Conn) State {
	defer func() {
		_ = conn.Close()
	}()

	data, err := readRequest(conn, s.readBuffSize)
	if err != nil && !errors.Is(err, io.EOF) {
		s.logger.Printf("http: %s: read: %s", conn.RemoteAddr(), err)
	}

	request, err := s.parser.Parse(data)
	if err != nil {
		s.logger.Printf("http: %s: %s", conn.RemoteAddr(), err)
		return ParseFailed
	}

	request.Env.
		Set(http.EnvRemoteAddr, conn.RemoteAddr().String()).
		Set(http.EnvConnID, uniuri.New())

	response, state := s.dispatch(request)

	buff := http1.Serialize(make([]byte, 0, s.respPrealloc), response)
	if _, err = conn.Write(buff); err != nil {
		s.logger.Printf("http: %s: write: %s", conn.RemoteAddr(), err)
		return WriteFailed
	}

	if state == RouteFailed {
		return state
	}

	return Written
}

func (s *Server) dispatch(request *http.Request) (*http.Response, State) {
	response := s.defaults.Clone()

	if request.Method == method.Unknown {
		s.logger.Printf("http: %s: unsupported method", request.ConnID())
		return response.Error(status.ErrMethodNotImplemented), RouteFailed
	}

	handler, err := s.router.Resolve(request)
	if err != nil {
		s.logger.Printf("http: %s: %s", request.ConnID(), err)
		return response.Error(err), RouteFailed
	}

	handler.Handle(request, response.Code(status.OK))

	return response, HandlerInvoked
}
