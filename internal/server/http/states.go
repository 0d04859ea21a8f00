package http

// State is the stage a connection has finished at.
type State uint8

const (
	Accepted State = iota
	Reading
	Parsed
	ParseFailed
	Routed
	RouteFailed
	HandlerInvoked
	Written
	WriteFailed
	Closed
)

func (s State) String() string {
	switch s {
	case Accepted:
		return "accepted"
	case Reading:
		return "reading"
	case Parsed:
		return "parsed"
	case ParseFailed:
		return "parse failed"
	case Routed:
		return "routed"
	case RouteFailed:
		return "route failed"
	case HandlerInvoked:
		return "handler invoked"
	case Written:
		return "written"
	case WriteFailed:
		return "write failed"
	case Closed:
		return "closed"
	default:
		return "unknown"
	}
}
