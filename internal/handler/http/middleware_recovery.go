package http

import (
	"net/http"
	"runtime/debug"
)

// withRecovery is the error boundary around route dispatch: a panic in any
// inner handler is converted into a [HandlerFault] and answered with 500.
// http.ErrAbortHandler is re-raised so net/http can abort the connection.
func (h *Handler) withRecovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rvr := recover()
			if rvr == nil {
				return
			}
			if rvr == http.ErrAbortHandler {
				panic(rvr)
			}

			h.writeError(w, r, faultFromPanic(rvr, debug.Stack()))
		}()

		next.ServeHTTP(w, r)
	})
}
