package routa

import "net/http"

// Response is the normalized form every handler return value reduces to
// before serialization: a status code, optional headers, and a body whose
// dynamic type decides the wire encoding (see [Dispatcher]).
type Response struct {
	StatusCode int
	Header     http.Header
	Body       any
}

// Reply constructs a response around body with status 200 and no extra
// headers. Chain [Response.Status] and [Response.Set] to adjust.
func Reply(body any) *Response {
	return &Response{StatusCode: http.StatusOK, Header: http.Header{}, Body: body}
}

// Status sets the response status code and returns the response.
func (r *Response) Status(code int) *Response {
	r.StatusCode = code

	return r
}

// Set sets a response header and returns the response. Headers set here take
// precedence over anything the serializer would derive from the body type.
func (r *Response) Set(key, value string) *Response {
	if r.Header == nil {
		r.Header = http.Header{}
	}

	r.Header.Set(key, value)

	return r
}
