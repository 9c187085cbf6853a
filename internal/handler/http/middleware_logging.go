package http

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/dsmirnov/cryptodiary/internal/logger"
)

// responseWriter wraps http.ResponseWriter to record the response status
// and body size for the logging middleware.
type responseWriter struct {
	http.ResponseWriter
	status int
	size   int
}

func (w *responseWriter) WriteHeader(statusCode int) {
	w.status = statusCode
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *responseWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(b)
	w.size += n
	return n, err
}

// withLogging attaches a request-scoped logger (tagged with a request id)
// to the context and logs one summary line per completed request.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqLog := &logger.Logger{Logger: h.logger.With().Str("request_id", uuid.NewString()).Logger()}
		ctx := reqLog.WithContext(r.Context())

		start := time.Now()
		lw := &responseWriter{ResponseWriter: w}

		next.ServeHTTP(lw, r.WithContext(ctx))

		reqLog.Info().
			Str("uri", r.RequestURI).
			Str("method", r.Method).
			Int("status", lw.status).
			Dur("duration", time.Since(start)).
			Int("size", lw.size).
			Send()
	})
}
