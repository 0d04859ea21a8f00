package status

type (
	Code   uint16
	Status string
)

// The vocabulary understood by the serializer. Codes outside it are still written, but
// with the "Unknown Status Code" text unless a custom status is set on the response.
const (
	Continue           Code = 100
	SwitchingProtocols Code = 101

	OK        Code = 200
	Created   Code = 201
	Accepted  Code = 202
	NoContent Code = 204

	MovedPermanently  Code = 301
	Found             Code = 302
	SeeOther          Code = 303
	NotModified       Code = 304
	TemporaryRedirect Code = 307
	PermanentRedirect Code = 308

	BadRequest            Code = 400
	Unauthorized          Code = 401
	Forbidden             Code = 403
	NotFound              Code = 404
	MethodNotAllowed      Code = 405
	RequestTimeout        Code = 408
	Conflict              Code = 409
	Gone                  Code = 410
	RequestEntityTooLarge Code = 413
	UnsupportedMediaType  Code = 415
	Teapot                Code = 418
	MisdirectedRequest    Code = 421
	UnprocessableEntity   Code = 422
	TooManyRequests       Code = 429

	InternalServerError     Code = 500
	NotImplemented          Code = 501
	BadGateway              Code = 502
	ServiceUnavailable      Code = 503
	GatewayTimeout          Code = 504
	HTTPVersionNotSupported Code = 505
)

var KnownCodes = []Code{
	Continue, SwitchingProtocols,
	OK, Created, Accepted, NoContent,
	MovedPermanently, Found, SeeOther, NotModified, TemporaryRedirect, PermanentRedirect,
	BadRequest, Unauthorized, Forbidden, NotFound, MethodNotAllowed, RequestTimeout, Conflict,
	Gone, RequestEntityTooLarge, UnsupportedMediaType, Teapot, MisdirectedRequest,
	UnprocessableEntity, TooManyRequests,
	InternalServerError, NotImplemented, BadGateway, ServiceUnavailable, GatewayTimeout,
	HTTPVersionNotSupported,
}

// Text returns a text for the HTTP status code. Unknown codes result in
// "Unknown Status Code".
func Text(code Code) Status {
	switch code {
	case Continue:
		return "Continue"
	case SwitchingProtocols:
		return "Switching Protocols"
	case OK:
		return "OK"
	case Created:
		return "Created"
	case Accepted:
		return "Accepted"
	case NoContent:
		return "No Content"
	case MovedPermanently:
		return "Moved Permanently"
	case Found:
		return "Found"
	case SeeOther:
		return "See Other"
	case NotModified:
		return "Not Modified"
	case TemporaryRedirect:
		return "Temporary Redirect"
	case PermanentRedirect:
		return "Permanent Redirect"
	case BadRequest:
		return "Bad Request"
	case Unauthorized:
		return "Unauthorized"
	case Forbidden:
		return "Forbidden"
	case NotFound:
		return "Not Found"
	case MethodNotAllowed:
		return "Method Not Allowed"
	case RequestTimeout:
		return "Request Timeout"
	case Conflict:
		return "Conflict"
	case Gone:
		return "Gone"
	case RequestEntityTooLarge:
		return "Request Entity Too Large"
	case UnsupportedMediaType:
		return "Unsupported Media Type"
	case Teapot:
		return "I'm a teapot"
	case MisdirectedRequest:
		return "Misdirected Request"
	case UnprocessableEntity:
		return "Unprocessable Entity"
	case TooManyRequests:
		return "Too Many Requests"
	case InternalServerError:
		return "Internal Server Error"
	case NotImplemented:
		return "Not Implemented"
	case BadGateway:
		return "Bad Gateway"
	case ServiceUnavailable:
		return "Service Unavailable"
	case GatewayTimeout:
		return "Gateway Timeout"
	case HTTPVersionNotSupported:
		return "HTTP Version Not Supported"
	default:
		return "Unknown Status Code"
	}
}
