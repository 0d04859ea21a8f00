package http

import (
	"net"
)

// readRequest reads until a read returns fewer bytes than the buffer size, or nothing at
// all. A request being exactly a multiple of the buffer size will therefore block until
// the peer sends more or closes the connection. Read errors cut the data at what was
// received so far; the error is returned along with it.
func readRequest(conn net.Conn, buffSize int) ([]byte, error) {
	var (
		data []byte
		buff = make([]byte, buffSize)
	)

	for {
		n, err := conn.Read(buff)
		data = append(data, buff[:n]...)

		if err != nil {
			return data, err
		}

		if n < buffSize {
			return data, nil
		}
	}
}
