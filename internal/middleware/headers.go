package middleware

import "net/http"

// Headers returns middleware that stamps the access-control headers the API
// contract requires on every response, whether or not the request carries an
// Origin header. Full browser preflight negotiation is layered on top by the
// cors middleware in main.
func Headers(allowOrigin, allowMethods string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", allowOrigin)
			w.Header().Set("Access-Control-Allow-Methods", allowMethods)
			next.ServeHTTP(w, r)
		})
	}
}
