package proto

type Protocol uint8

const (
	// Unknown is used for every version token except the supported ones. Requests
	// carrying it are still served.
	Unknown Protocol = iota
	HTTP11
	HTTP20
)

func Parse(token string) Protocol {
	switch token {
	case "HTTP/1.1":
		return HTTP11
	case "HTTP/2.0":
		return HTTP20
	default:
		return Unknown
	}
}

func (p Protocol) String() string {
	switch p {
	case HTTP11:
		return "HTTP/1.1"
	case HTTP20:
		return "HTTP/2.0"
	default:
		return "unsupported"
	}
}
