package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/probe-doctor/internal/logger"
)

// withLogging writes one access line per request once the handler returns.
func withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		start := time.Now()
		rec := &accessRecorder{ResponseWriter: w}

		next.ServeHTTP(rec, r)

		log.Info().
			Str("uri", r.RequestURI).
			Str("method", r.Method).
			Str("remote", r.RemoteAddr).
			Int("status", rec.statusCode()).
			Dur("duration", time.Since(start)).
			Int("size", rec.bytes).
			Send()
	})
}

// accessRecorder remembers the status and body size of a response.
type accessRecorder struct {
	http.ResponseWriter

	status int
	bytes  int
}

// WriteHeader forwards only the first status.
func (rec *accessRecorder) WriteHeader(code int) {
	if rec.status != 0 {
		return
	}
	rec.status = code
	rec.ResponseWriter.WriteHeader(code)
}

func (rec *accessRecorder) Write(b []byte) (int, error) {
	rec.WriteHeader(http.StatusOK)
	n, err := rec.ResponseWriter.Write(b)
	rec.bytes += n
	return n, err
}

// statusCode reports 200 for handlers that never wrote anything.
func (rec *accessRecorder) statusCode() int {
	if rec.status == 0 {
		return http.StatusOK
	}
	return rec.status
}
