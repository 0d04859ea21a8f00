package http

import (
	"github.com/indigo-web/lattice/http/mime"
	"github.com/indigo-web/lattice/http/status"
	"github.com/indigo-web/lattice/kv"
	"github.com/indigo-web/utils/uf"
	json "github.com/json-iterator/go"
)

// preallocRespHeaders is the initial capacity of response headers storage.
const preallocRespHeaders = 7

// Fields are the raw response components, as they are going to be serialized.
type Fields struct {
	Code status.Code
	// Status is a custom status text. If empty, the default one for the code is used.
	Status  status.Status
	Headers *kv.Storage
	Body    []byte
}

type Response struct {
	fields Fields
}

// NewResponse returns a new instance of the Response object with status code set to 200 OK
// and no headers at all.
func NewResponse() *Response {
	return &Response{
		fields: Fields{
			Code:    status.OK,
			Headers: kv.NewPrealloc(preallocRespHeaders),
		},
	}
}

// Code sets a Response code.
func (r *Response) Code(code status.Code) *Response {
	r.fields.Code = code
	return r
}

// Status sets a custom status text. Usually ignored by clients, so there's rarely a reason
// to use it.
func (r *Response) Status(status status.Status) *Response {
	r.fields.Status = status
	return r
}

// Header sets the header value. Previous values of the same key (compared
// case-insensitively) are replaced.
func (r *Response) Header(key, value string) *Response {
	r.fields.Headers.Set(key, value)
	return r
}

// DiscardHeader removes all values of the key, including those inherited from the default
// headers.
func (r *Response) DiscardHeader(key string) *Response {
	r.fields.Headers.Delete(key)
	return r
}

// ContentType sets the Content-Type header value.
func (r *Response) ContentType(value mime.MIME) *Response {
	return r.Header("Content-Type", value)
}

// String sets the response's body to the passed string
func (r *Response) String(body string) *Response {
	return r.Bytes(uf.S2B(body))
}

// Bytes sets the response's body to passed slice WITHOUT COPYING. Changing
// the passed slice later will affect the response by itself
func (r *Response) Bytes(body []byte) *Response {
	r.fields.Body = body
	return r
}

// Write implements io.Writer interface. It always returns n=len(b) and err=nil
func (r *Response) Write(b []byte) (n int, err error) {
	r.fields.Body = append(r.fields.Body, b...)
	return len(b), nil
}

// TryJSON serializes the model into the body and sets the JSON content type. In case of
// an error, the body is left in an undefined state.
func (r *Response) TryJSON(model any) (*Response, error) {
	r.fields.Body = nil
	stream := json.ConfigDefault.BorrowStream(r)
	stream.WriteVal(model)
	err := stream.Flush()
	if err == nil {
		err = stream.Error
	}
	json.ConfigDefault.ReturnStream(stream)

	return r.ContentType(mime.JSON), err
}

// JSON does the same as TryJSON does, except returned error is being implicitly wrapped
// by Error
func (r *Response) JSON(model any) *Response {
	resp, err := r.TryJSON(model)
	if err != nil {
		return r.Error(err)
	}

	return resp
}

// Error sets the response code accordingly to the error. If passed err is nil, nothing
// will happen. For status.HTTPError only the code is set. Otherwise, the code defaults to
// status.InternalServerError (a custom one can be passed, only the first is used) and the
// error's text becomes the body.
func (r *Response) Error(err error, code ...status.Code) *Response {
	if err == nil {
		return r
	}

	if http, ok := err.(status.HTTPError); ok {
		return r.Code(http.Code)
	}

	c := status.InternalServerError
	if len(code) > 0 {
		c = code[0]
	}

	return r.
		Code(c).
		String(err.Error())
}

// Clone returns a deep copy of the response. Used to stamp out per-connection responses
// out of a shared template.
func (r *Response) Clone() *Response {
	clone := &Response{fields: r.fields}
	clone.fields.Headers = r.fields.Headers.Clone()
	if r.fields.Body != nil {
		clone.fields.Body = append([]byte(nil), r.fields.Body...)
	}

	return clone
}

// Reveal returns a struct with values, filled by builder. Used mostly in internal purposes
func (r *Response) Reveal() Fields {
	return r.fields
}
