package app

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

type JSONResponse struct {
	Error error
	Code  int
	Body  any
}

// JSONHandler is the machine-facing counterpart of ComponentHandler.
type JSONHandler func(http.ResponseWriter, *http.Request) *JSONResponse

func (h JSONHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	resp := h(w, r)

	if resp.Error != nil {
		slog.ErrorContext(r.Context(), "handler failed",
			"error", resp.Error, "request_id", RequestIDFromContext(r.Context()))
	}

	body, err := json.Marshal(resp.Body)
	if err != nil {
		slog.ErrorContext(r.Context(), "encoding JSON response", "error", err)
		http.Error(w, `{"detail":"internal server error"}`, http.StatusInternalServerError)
		return
	}

	code := resp.Code
	if code == 0 {
		code = http.StatusOK
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := w.Write(body); err != nil {
		slog.WarnContext(r.Context(), "writing response body", "error", err)
	}
}

func writeJSONError(w http.ResponseWriter, r *http.Request, code int, detail string) {
	body := map[string]string{"detail": detail}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.WarnContext(r.Context(), "writing JSON error response",
			"error", err, "request_id", RequestIDFromContext(r.Context()))
	}
}
