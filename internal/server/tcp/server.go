package tcp

import (
	"errors"
	"net"
	"sync/atomic"

	"github.com/indigo-web/lattice/logging"
)

type OnConnection func(net.Conn)

// Server is a single accept loop. Every accepted connection is passed to the callback
// synchronously, so the callback is expected to hand it over rather than serve it.
type Server struct {
	sock     net.Listener
	onConn   OnConnection
	logger   logging.Logger
	shutdown atomic.Bool
}

func NewServer(sock net.Listener, onConn OnConnection, logger logging.Logger) *Server {
	return &Server{
		sock:   sock,
		onConn: onConn,
		logger: logging.OrDefault(logger),
	}
}

// Start runs the accept loop. It returns nil after Stop, or the error that made further
// accepting impossible. Temporary accept failures are logged and skipped.
func (s *Server) Start() error {
	for {
		conn, err := s.sock.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				if s.shutdown.Load() {
					return nil
				}

				return err
			}

			s.logger.Printf("tcp: accept: %s", err)
			continue
		}

		s.onConn(conn)
	}
}

// Stop closes the listener, so Start returns. Connections already accepted aren't touched.
func (s *Server) Stop() error {
	s.shutdown.Store(true)

	return s.sock.Close()
}

func (s *Server) Addr() net.Addr {
	return s.sock.Addr()
}
