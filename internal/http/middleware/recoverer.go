package middleware

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/tuanvumaihuynh/supplier-catalog/internal/http/apierr"
	"github.com/tuanvumaihuynh/supplier-catalog/internal/http/metric"
)

// Recoverer turns a handler panic into a 500 internalServerError response.
// The panic is logged with its stack and counted.
func Recoverer(log *slog.Logger, m *metric.Metrics) func(http.Handler) http.Handler {
	body, err := json.Marshal(apierr.InternalServerErr)
	if err != nil {
		panic(err)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rvr := recover()
				if rvr == nil {
					return
				}
				// http.ErrAbortHandler must keep unwinding
				if rvr == http.ErrAbortHandler {
					panic(rvr)
				}

				m.PanicsTotal.Inc()
				log.ErrorContext(r.Context(), "panic recovered",
					slog.Any("recover", rvr),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.String("stack", string(debug.Stack())),
				)

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				//nolint:errcheck
				w.Write(body)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
