package status

import "errors"

type HTTPError struct {
	Message string
	Code    Code
}

func NewError(code Code, message string) error {
	return HTTPError{
		Code:    code,
		Message: message,
	}
}

func (h HTTPError) Error() string {
	return h.Message
}

// CodeOf extracts the code of the first HTTPError in the chain. Errors of any other kind
// are reported as InternalServerError.
func CodeOf(err error) Code {
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}

	return InternalServerError
}

var (
	ErrBadRequest           = NewError(BadRequest, "bad request")
	ErrBadRequestLine       = NewError(BadRequest, "malformed request line")
	ErrBadHeader            = NewError(BadRequest, "malformed header line")
	ErrNotFound             = NewError(NotFound, "not found")
	ErrMethodNotAllowed     = NewError(MethodNotAllowed, "method not allowed")
	ErrMisdirectedRequest   = NewError(MisdirectedRequest, "no server is configured for the host")
	ErrInternalServerError  = NewError(InternalServerError, "internal server error")
	ErrNotImplemented       = NewError(NotImplemented, "not implemented")
	ErrMethodNotImplemented = NewError(NotImplemented, "request method is not supported")
)
