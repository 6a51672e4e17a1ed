package handler

import "net/http"

// Response is the canonical outcome of a dispatched request. The body type
// is intentionally open: string, []byte or a structured value. Encoding it
// onto the wire is the adapter's concern.
type Response struct {
	Status  int
	Headers map[string]string
	Body    any
}

// NewResponse constructs an empty response with the given status.
func NewResponse(status int) Response {
	if status == 0 {
		status = http.StatusOK
	}
	return Response{Status: status, Headers: make(map[string]string)}
}

// WithHeader returns a copy of the response with one header set.
func (r Response) WithHeader(key, value string) Response {
	headers := make(map[string]string, len(r.Headers)+1)
	for k, v := range r.Headers {
		headers[k] = v
	}
	headers[key] = value
	r.Headers = headers
	return r
}

// WithBody returns a copy of the response with the body replaced.
func (r Response) WithBody(body any) Response {
	r.Body = body
	return r
}
