package middleware

import (
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"
)

// LogRequest logs every request once it has been served. Preflights are logged at trace only.
func LogRequest() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			begin := time.Now()
			resp := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(resp, r)

			entry := log.WithFields(log.Fields{
				"method":   r.Method,
				"route":    routeTemplate(r),
				"status":   resp.statusCode,
				"duration": time.Since(begin).String(),
			})
			switch {
			case r.Method == http.MethodOptions:
				entry.Trace("preflight served")
			case resp.statusCode >= http.StatusInternalServerError:
				entry.Warn("request failed")
			default:
				entry.Debug("request served")
			}
		})
	}
}
