package middleware

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"
)

// BasicAuth guards admin endpoints with HTTP basic auth. There are no
// sessions or tokens; every request re-authenticates against the configured
// credentials. Both comparisons run in constant time.
func BasicAuth(username, password string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, pass, ok := r.BasicAuth()
			userMatch := subtle.ConstantTimeCompare([]byte(user), []byte(username)) == 1
			passMatch := subtle.ConstantTimeCompare([]byte(pass), []byte(password)) == 1
			if !ok || !userMatch || !passMatch {
				w.Header().Set("WWW-Authenticate", `Basic realm="admin"`)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(map[string]string{
					"detail": "Yanlış kullanıcı adı veya şifre",
				})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
