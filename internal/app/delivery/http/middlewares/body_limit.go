package middlewares

import "net/http"

// BodyLimit caps request bodies at the configured megabyte limit.
// Oversized bodies surface as read errors inside the JSON decoders.
func (m *Middlewares) BodyLimit(next http.Handler) http.Handler {
	limitBytes := int64(m.InternalConfig.App.RequestBodyLimitInMegabyte) << 20
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, limitBytes)
		next.ServeHTTP(w, r)
	})
}
