package middleware

import (
	"encoding/json"
	"net/http"
	"runtime/debug"

	"github.com/adiii0209/Yatraa-sub000/internal/infrastructure/observability"
)

// Recovery turns a panicking handler into a 500 response
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sw := &statusWriter{ResponseWriter: w}

		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			observability.LoggerFromContext(r.Context()).Error().
				Interface("panic", rec).
				Bytes("stack", debug.Stack()).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Msg("Recovered from panic")

			if sw.wroteHeader() {
				return
			}
			w.Header().Del("Content-Encoding")
			w.Header().Del("ETag")
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]string{"error": "internal server error"})
		}()

		next.ServeHTTP(sw, r)
	})
}
