package controller

import (
	"net/http"
	"net/url"
	"slices"
)

// WithCORS returns a middleware that grants cross-origin access only to the
// listed origins. A matching Origin is echoed back, anything else gets no
// Access-Control-Allow-Origin header, so browsers keep responses from other
// sites' scripts. Unsafe methods from a foreign origin are refused with 403:
// simple POSTs skip preflight and would otherwise still reach the handler.
// Same-origin requests (Swagger UI) pass untouched.
//
// OPTIONS preflight requests are answered with 204 No Content. The download
// file name travels in Content-Disposition, so allowed origins may read it.
func WithCORS(allowedOrigins []string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Add("Vary", "Origin")

			origin := r.Header.Get("Origin")
			allowed := origin != "" && slices.Contains(allowedOrigins, origin)
			if allowed {
				h.Set("Access-Control-Allow-Origin", origin)
				h.Set("Access-Control-Allow-Headers", "Content-Type, Accept, X-Request-Id")
				h.Set("Access-Control-Allow-Methods", "GET, POST, PUT, OPTIONS")
				h.Set("Access-Control-Expose-Headers", "Content-Disposition, X-Request-Id")
			}

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)

				return
			}

			if origin != "" && !allowed && !safeMethod(r.Method) && !sameOrigin(r, origin) {
				h.Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusForbidden)
				_, _ = w.Write([]byte(`{"error":"origin not allowed","code":"BAD_REQUEST"}`))

				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func safeMethod(method string) bool {
	return method == http.MethodGet || method == http.MethodHead
}

// sameOrigin reports whether origin names the host the request was sent to.
func sameOrigin(r *http.Request, origin string) bool {
	u, err := url.Parse(origin)
	if err != nil {
		return false
	}

	return u.Host != "" && u.Host == r.Host
}

// WithNoStore marks every response as uncacheable.
func WithNoStore(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-store")
		next.ServeHTTP(w, r)
	})
}
