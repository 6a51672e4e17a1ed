package response

import (
	"net/http"

	"github.com/trellisdev/trellis/core/handler"
)

// Coerce turns a handler or filter return value into a canonical response.
// A ready Response (value or pointer) passes through untouched; anything
// else is treated as a raw body and wrapped in a 200 response whose headers
// are copied from the request's then-current default response headers.
func Coerce(v any, req *handler.Request) handler.Response {
	switch r := v.(type) {
	case handler.Response:
		return r
	case *handler.Response:
		if r != nil {
			return *r
		}
	}

	resp := handler.Response{
		Status:  http.StatusOK,
		Headers: make(map[string]string, len(req.DefaultHeaders)),
		Body:    v,
	}
	for k, val := range req.DefaultHeaders {
		resp.Headers[k] = val
	}
	return resp
}

// OK creates a 200 response with the given body.
func OK(body any) handler.Response {
	return handler.NewResponse(http.StatusOK).WithBody(body)
}

// Created creates a 201 response with the given body.
func Created(body any) handler.Response {
	return handler.NewResponse(http.StatusCreated).WithBody(body)
}

// NoContent creates a 204 response.
func NoContent() handler.Response {
	return handler.NewResponse(http.StatusNoContent)
}

// Status creates an empty response with the given status code.
func Status(code int) handler.Response {
	return handler.NewResponse(code)
}

// WithStatus creates a response with a body and a custom status code.
func WithStatus(body any, code int) handler.Response {
	return handler.NewResponse(code).WithBody(body)
}

// Error creates a response from a typed request-time error.
func Error(err handler.Error) handler.Response {
	status := err.Status
	if status == 0 {
		status = http.StatusInternalServerError
	}
	return handler.NewResponse(status).WithBody(err)
}
