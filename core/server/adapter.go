package server

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/trellisdev/trellis/core/api"
	"github.com/trellisdev/trellis/core/handler"
	"github.com/trellisdev/trellis/core/router"
	"github.com/trellisdev/trellis/core/static"
	"github.com/trellisdev/trellis/pkg/logger"
)

// Adapter bridges net/http to the route tree. It converts each incoming
// request into the transport-independent form, dispatches it through the
// matched filter chain and writes the resulting response. Safe for
// concurrent use; the wrapped router is never mutated.
type Adapter[C any] struct {
	router *router.Router[C]
	comps  C
	files  *static.Files
	logger *slog.Logger
}

// AdapterOption configures an Adapter.
type AdapterOption[C any] func(*Adapter[C])

// WithStaticFiles sets the file server used for static route matches.
// Without it, static matches answer 404.
func WithStaticFiles[C any](files *static.Files) AdapterOption[C] {
	return func(a *Adapter[C]) {
		a.files = files
	}
}

// WithAdapterLogger sets the logger for adapter-level failures.
func WithAdapterLogger[C any](l *slog.Logger) AdapterOption[C] {
	return func(a *Adapter[C]) {
		if l != nil {
			a.logger = l
		}
	}
}

// NewAdapter creates an http.Handler dispatching into the given router.
// The comps value is passed to every handler and filter invocation.
func NewAdapter[C any](r *router.Router[C], comps C, opts ...AdapterOption[C]) *Adapter[C] {
	a := &Adapter[C]{
		router: r,
		comps:  comps,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *Adapter[C]) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	match, err := a.router.Match(api.Method(strings.ToUpper(r.Method)), r.URL.Path)
	if err != nil {
		if errors.Is(err, router.ErrNotFound) {
			a.writeResponse(w, notFoundResponse())
			return
		}
		a.logger.Error("route match failed", logger.Error(err), logger.Path(r.URL.Path))
		a.writeResponse(w, internalErrorResponse())
		return
	}

	if match.Static != nil {
		a.serveStatic(w, r, match)
		return
	}

	req := a.buildRequest(r)
	req.PathParams = match.Params
	a.writeResponse(w, match.Handler(a.comps, req))
}

func (a *Adapter[C]) serveStatic(w http.ResponseWriter, r *http.Request, match *router.RouteMatch[C]) {
	if a.files == nil {
		a.writeResponse(w, notFoundResponse())
		return
	}

	key := match.FilePath
	if key == "" {
		key = match.Static.IndexFile
	}

	resp, err := a.files.Serve(r.Context(), key)
	if err != nil {
		if errors.Is(err, static.ErrNotFound) {
			a.writeResponse(w, notFoundResponse())
			return
		}
		a.logger.Error("static serve failed", logger.Error(err), logger.Path(r.URL.Path))
		a.writeResponse(w, internalErrorResponse())
		return
	}
	a.writeResponse(w, resp)
}

// buildRequest converts an http.Request. Multi-valued headers and query
// parameters keep their first value only.
func (a *Adapter[C]) buildRequest(r *http.Request) *handler.Request {
	req := handler.NewRequest(r.Method, r.URL.Path)

	for k, vs := range r.Header {
		if len(vs) > 0 {
			req.Headers[k] = vs[0]
		}
	}
	for k, vs := range r.URL.Query() {
		if len(vs) > 0 {
			req.Query[k] = vs[0]
		}
	}
	req.Body = a.readBody(r, req)
	return req
}

func (a *Adapter[C]) readBody(r *http.Request, req *handler.Request) any {
	if r.Body == nil {
		return nil
	}
	data, err := io.ReadAll(r.Body)
	if err != nil {
		a.logger.Warn("request body read failed", logger.Error(err), logger.Path(r.URL.Path))
		return nil
	}
	if len(data) == 0 {
		return nil
	}

	if strings.HasPrefix(req.Header("Content-Type"), "application/json") {
		var decoded any
		if err := json.Unmarshal(data, &decoded); err == nil {
			return decoded
		}
		// malformed JSON stays available to handlers as raw bytes
	}
	return data
}

func (a *Adapter[C]) writeResponse(w http.ResponseWriter, resp handler.Response) {
	body, contentType := encodeBody(resp.Body)

	h := w.Header()
	for k, v := range resp.Headers {
		h.Set(k, v)
	}
	if contentType != "" && h.Get("Content-Type") == "" {
		h.Set("Content-Type", contentType)
	}

	status := resp.Status
	if status == 0 {
		status = http.StatusOK
	}
	w.WriteHeader(status)

	if len(body) > 0 {
		if _, err := w.Write(body); err != nil {
			a.logger.Warn("response write failed", logger.Error(err))
		}
	}
}

// encodeBody serializes a response body for the wire. Byte slices and
// strings pass through untouched; structured values are JSON encoded.
func encodeBody(body any) (data []byte, contentType string) {
	switch b := body.(type) {
	case nil:
		return nil, ""
	case []byte:
		return b, ""
	case string:
		return []byte(b), "text/plain; charset=utf-8"
	default:
		data, err := json.Marshal(b)
		if err != nil {
			fallback := []byte(`{"code":"INTERNAL_SERVER_ERROR","message":"Internal Server Error"}`)
			return fallback, "application/json; charset=utf-8"
		}
		return data, "application/json; charset=utf-8"
	}
}

func notFoundResponse() handler.Response {
	return handler.NewResponse(http.StatusNotFound).WithBody(handler.ErrNotFound)
}

func internalErrorResponse() handler.Response {
	return handler.NewResponse(http.StatusInternalServerError).WithBody(handler.ErrInternalServerError)
}
