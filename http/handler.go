package http

// Handler is a callable serving a matched route. Everything it wants to tell the client
// must be expressed by mutating the response.
type Handler interface {
	Handle(request *Request, response *Response)
}

// HandlerFunc adapts a plain function to the Handler interface.
type HandlerFunc func(request *Request, response *Response)

func (h HandlerFunc) Handle(request *Request, response *Response) {
	h(request, response)
}
