package app

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/felixbrock/ragassistant/internal/assets"
)

type healthStatus struct {
	Status string `json:"status"`
}

func (a App) Routes() http.Handler {
	return a.router()
}

func (a App) router() *chi.Mux {
	limiter := newRateLimiter(a.Config.RateLimitRPS, a.Config.RateLimitBurst, visitorIdleTTL)

	r := chi.NewRouter()

	// Logging and metrics wrap Recoverer so a panic still shows up as a 500.
	r.Use(requestID)
	r.Use(logRequests)
	r.Use(a.Metrics.Middleware)
	r.Use(middleware.Recoverer)
	if a.Config.TrustProxyHeaders {
		r.Use(middleware.RealIP)
	}
	r.Use(demoGate(a.Config.DemoKey))
	r.Use(limiter.Middleware(a.page(a.errorPage(get429()))))
	r.Use(middleware.GetHead)

	r.NotFound(a.page(a.errorPage(get404())).ServeHTTP)
	r.MethodNotAllowed(a.page(a.errorPage(get405())).ServeHTTP)

	r.Method(http.MethodGet, "/", a.page(a.index))
	r.Method(http.MethodGet, "/health", JSONHandler(health))
	r.Method(http.MethodGet, "/static/*", http.StripPrefix("/static/", assets.Handler()))
	r.Method(http.MethodGet, "/metrics", a.Metrics.Handler())

	return r
}

// page attaches the 500 Error page as the render-failure fallback.
func (a App) page(h ComponentHandler) Page {
	return Page{Handle: h, Fallback: a.internalError}
}

func (a App) internalError() templ.Component {
	e := get500()
	return a.ComponentBuilder.Error(e.Code, e.Title, e.Msg)
}

func (a App) index(w http.ResponseWriter, r *http.Request) *ComponentResponse {
	return &ComponentResponse{Component: a.ComponentBuilder.Index(), Code: http.StatusOK, Message: "OK", ContentType: contentTypeHTML}
}

func (a App) errorPage(e errCtx) ComponentHandler {
	return func(w http.ResponseWriter, r *http.Request) *ComponentResponse {
		return &ComponentResponse{
			Component:   a.ComponentBuilder.Error(e.Code, e.Title, e.Msg),
			Code:        e.Code,
			Message:     e.Title,
			ContentType: contentTypeHTML,
		}
	}
}

func health(w http.ResponseWriter, r *http.Request) *JSONResponse {
	return &JSONResponse{Code: http.StatusOK, Body: healthStatus{Status: "ok"}}
}
