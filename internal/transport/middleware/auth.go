package middleware

import (
	"net/http"
	"strings"
)

// basicCredentials extracts HTTP Basic credentials. Missing or malformed
// headers yield ok=false. Values are returned as sent, without trimming.
func basicCredentials(r *http.Request) (username, password string, ok bool) {
	header := r.Header.Get("Authorization")
	if header == "" || !strings.HasPrefix(strings.ToLower(header), "basic ") {
		return "", "", false
	}
	return r.BasicAuth()
}
