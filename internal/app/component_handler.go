package app

import (
	"log/slog"
	"net/http"

	"github.com/a-h/templ"
)

const contentTypeHTML = "text/html; charset=utf-8"

type ComponentResponse struct {
	Error       error
	Message     string
	Code        int
	ContentType string
	Component   templ.Component
}

type ComponentHandler func(http.ResponseWriter, *http.Request) *ComponentResponse

// ServeHTTP serves without a fallback page; a render error yields plain text.
func (ch ComponentHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	Page{Handle: ch}.ServeHTTP(w, r)
}

// Page pairs a ComponentHandler with the component rendered as a 500 when
// the handler's own component fails to render.
type Page struct {
	Handle   ComponentHandler
	Fallback func() templ.Component
}

// ServeHTTP renders into a pooled buffer before writing headers.
func (p Page) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	resp := p.Handle(w, r)
	requestID := RequestIDFromContext(r.Context())

	if resp.Error != nil {
		slog.ErrorContext(r.Context(), "handler failed",
			"error", resp.Error, "message", resp.Message, "request_id", requestID)
	}

	buf := templ.GetBuffer()
	defer templ.ReleaseBuffer(buf)

	contentType := resp.ContentType
	if contentType == "" {
		contentType = contentTypeHTML
	}
	code := resp.Code
	if code == 0 {
		code = http.StatusOK
	}

	if err := resp.Component.Render(r.Context(), buf); err != nil {
		slog.ErrorContext(r.Context(), "templ: failed to render template", "error", err, "request_id", requestID)

		buf.Reset()
		if p.Fallback == nil {
			http.Error(w, "templ: failed to render template", http.StatusInternalServerError)
			return
		}
		if err := p.Fallback().Render(r.Context(), buf); err != nil {
			slog.ErrorContext(r.Context(), "templ: failed to render error page", "error", err, "request_id", requestID)
			http.Error(w, "templ: failed to render template", http.StatusInternalServerError)
			return
		}
		contentType = contentTypeHTML
		code = http.StatusInternalServerError
	}

	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(code)

	if r.Method == http.MethodHead {
		return
	}
	if _, err := buf.WriteTo(w); err != nil {
		slog.WarnContext(r.Context(), "writing response body", "error", err, "request_id", requestID)
	}
}
