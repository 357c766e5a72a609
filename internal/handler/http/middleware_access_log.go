package http

import (
	"fmt"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/MKhiriev/go-simple-server/internal/logger"
)

// withAccessLog appends exactly one line per request to the access log and
// mirrors it as a structured entry in the process log.
//
// The line is appended right before the status line is sent. If the append
// fails, the handler's response is discarded and the failure is answered by
// the global error handler as a 500. A handler aborting before any status
// was sent still gets its line.
func (h *Handler) withAccessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		uri := r.RequestURI
		method := r.Method
		path := r.URL.Path

		written := false
		writeLine := func(status int) error {
			written = true
			return h.accessLog.Write(accessLogLine(method, path, status, time.Since(start)))
		}

		lw := &responseWriter{
			ResponseWriter: w,
			beforeCommit:   writeLine,
		}

		defer func() {
			log := logger.FromRequest(r)

			if !written {
				if err := writeLine(lw.statusCode()); err != nil {
					log.Error().Err(err).Str("access_log", h.accessLog.Path()).Msg("error writing access log")
				}
			}

			log.Info().
				Str("uri", uri).
				Str("method", method).
				Int("status", lw.statusCode()).
				Dur("duration", time.Since(start)).
				Int("size", lw.size).
				Send()
		}()

		next.ServeHTTP(lw, r)

		if !lw.headerWritten() {
			lw.WriteHeader(http.StatusOK)
		}
		if lw.commitErr != nil {
			h.writeError(lw.ResponseWriter, r, &HandlerFault{Err: lw.commitErr})
		}
	})
}

// accessLogLine renders a request as "--> GET /path 200 3ms".
func accessLogLine(method, path string, status int, elapsed time.Duration) string {
	return fmt.Sprintf("--> %s %s %d %s", method, path, status, formatElapsed(elapsed))
}

// formatElapsed renders durations under a second in milliseconds and longer
// ones in whole seconds.
func formatElapsed(d time.Duration) string {
	ms := d.Milliseconds()
	if ms < 1000 {
		return strconv.FormatInt(ms, 10) + "ms"
	}

	return strconv.FormatInt(int64(math.Round(float64(ms)/1000)), 10) + "s"
}
