package middleware

import "net/http"

// InternalAuth guards write routes with the X-Internal-Token header. An
// empty token leaves the routes open.
func InternalAuth(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if token == "" {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("X-Internal-Token") != token {
				w.Header().Set("Content-Type", "application/json; charset=utf-8")
				w.WriteHeader(http.StatusUnauthorized)
				w.Write([]byte(`{"error":"unauthorized","code":"UNAUTHORIZED"}`))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
