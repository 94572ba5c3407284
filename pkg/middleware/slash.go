package middleware

import (
	"net/http"
	"strings"
)

// TrimSlash redirects requests with a trailing slash to the path without it.
// The root path "/" is preserved. Only safe methods are redirected; a POST to
// "/ImageProcessing/Upload/" is rewritten in place so the body is not lost.
func TrimSlash() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if len(r.URL.Path) <= 1 || !strings.HasSuffix(r.URL.Path, "/") {
				next.ServeHTTP(w, r)
				return
			}

			target := strings.TrimSuffix(r.URL.Path, "/")

			if r.Method != http.MethodGet && r.Method != http.MethodHead {
				r.URL.Path = target
				next.ServeHTTP(w, r)
				return
			}

			if r.URL.RawQuery != "" {
				target += "?" + r.URL.RawQuery
			}
			http.Redirect(w, r, target, http.StatusMovedPermanently)
		})
	}
}
