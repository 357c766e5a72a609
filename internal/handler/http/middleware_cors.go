package http

import (
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
)

const (
	corsAllowOrigin  = "*"
	corsAllowMethods = "GET,HEAD,PUT,POST,DELETE,PATCH"
)

// withCORS allows any origin. For preflight requests it also advertises the
// allowed methods and echoes the requested headers; the preflight itself is
// answered further down the chain by withPreflight, after access logging.
func withCORS(next http.Handler) http.Handler {
	next = corsPreflightHeaders(next)
	return middleware.SetHeader("Access-Control-Allow-Origin", corsAllowOrigin)(next)
}

func corsPreflightHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			header := w.Header()
			header.Set("Access-Control-Allow-Methods", corsAllowMethods)

			if requested := r.Header.Get("Access-Control-Request-Headers"); requested != "" {
				header.Set("Access-Control-Allow-Headers", requested)
				header.Add("Vary", "Access-Control-Request-Headers")
			}
		}

		next.ServeHTTP(w, r)
	})
}

// withPreflight answers OPTIONS requests with 204 and an empty body without
// dispatching them to the router.
func withPreflight(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			w.Header().Del("Content-Length")
			w.Header().Del("Content-Type")
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
