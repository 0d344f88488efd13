package middlewares

import (
	"net/http"
	"time"
)

// RequestLogger writes a plain access-log line per request through the
// secondary logrus logger, separate from the structured zap stream.
func (m *Middlewares) RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		duration := time.Since(start)

		m.AccessLog.Printf("%s | %s | %s ==> %s | %s", time.Now().Format(time.RFC850), r.RemoteAddr, r.Method, r.RequestURI, duration)
	})
}
