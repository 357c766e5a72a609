package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-simple-server/internal/config"
	"github.com/MKhiriev/go-simple-server/internal/logger"
	"github.com/MKhiriev/go-simple-server/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// injectLogger puts zerolog.Logger into request context the same way
// withTraceID middleware does (via zerolog/log.Ctx).
func injectLogger(r *http.Request, buf *bytes.Buffer) *http.Request {
	l := zerolog.New(buf).With().Timestamp().Logger()
	return r.WithContext(l.WithContext(r.Context()))
}

func TestWithAccessLog_TableTest(t *testing.T) {
	tests := []struct {
		name             string
		method           string
		path             string
		handlerStatus    int
		handlerResponse  string
		wantLine         string
		checkLogContains []string
	}{
		{
			name:            "GET 200",
			method:          http.MethodGet,
			path:            "/test",
			handlerStatus:   http.StatusOK,
			handlerResponse: "OK",
			wantLine:        "--> GET /test 200 ",
			checkLogContains: []string{
				`"method":"GET"`,
				`"uri":"/test"`,
				`"status":200`,
				`"duration":`,
				`"size":2`,
			},
		},
		{
			name:          "POST 404",
			method:        http.MethodPost,
			path:          "/missing",
			handlerStatus: http.StatusNotFound,
			wantLine:      "--> POST /missing 404 ",
			checkLogContains: []string{
				`"method":"POST"`,
				`"status":404`,
			},
		},
		{
			name:            "query string is kept out of the access line",
			method:          http.MethodGet,
			path:            "/search?q=test",
			handlerStatus:   http.StatusOK,
			handlerResponse: "Results",
			wantLine:        "--> GET /search 200 ",
			checkLogContains: []string{
				`"uri":"/search?q=test"`,
			},
		},
		{
			name:          "500",
			method:        http.MethodGet,
			path:          "/error",
			handlerStatus: http.StatusInternalServerError,
			wantLine:      "--> GET /error 500 ",
			checkLogContains: []string{
				`"status":500`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(t, config.App{})
			var logBuf bytes.Buffer

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.handlerStatus)
				if tt.handlerResponse != "" {
					_, _ = w.Write([]byte(tt.handlerResponse))
				}
			})

			req := injectLogger(httptest.NewRequest(tt.method, tt.path, nil), &logBuf)
			rr := httptest.NewRecorder()
			h.withAccessLog(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.handlerStatus, rr.Code)

			lines := accessLogLines(t, h)
			require.Len(t, lines, 1)
			assert.Contains(t, lines[0], " - "+tt.wantLine)

			for _, expected := range tt.checkLogContains {
				assert.Contains(t, logBuf.String(), expected)
			}
		})
	}
}

func TestWithAccessLog_NoStatusWrittenLogs200(t *testing.T) {
	h := newTestHandler(t, config.App{})
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	h.withAccessLog(next).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	lines := accessLogLines(t, h)
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "--> GET / 200 ")
}

func TestWithAccessLog_WritesLineWhenHandlerAborts(t *testing.T) {
	h := newTestHandler(t, config.App{})
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic(http.ErrAbortHandler)
	})

	assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
		h.withAccessLog(next).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/abort", nil))
	})

	lines := accessLogLines(t, h)
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "--> GET /abort ")
}

func TestWithAccessLog_WriteFailureIsInternalError(t *testing.T) {
	tests := []struct {
		name        string
		environment string
		wantMessage string
	}{
		{name: "development exposes the cause", environment: "development", wantMessage: "error opening access log"},
		{name: "production hides the cause", environment: "production", wantMessage: "Something went wrong!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(t, config.App{Environment: tt.environment})
			// a directory cannot be opened for appending
			h.accessLog = logger.NewAccessLog(t.TempDir())

			var logBuf bytes.Buffer
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "text/plain")
				w.WriteHeader(http.StatusOK)
				_, err := w.Write([]byte("fine"))
				assert.NoError(t, err)
			})

			req := injectLogger(httptest.NewRequest(http.MethodGet, "/", nil), &logBuf)
			rr := httptest.NewRecorder()
			h.withAccessLog(next).ServeHTTP(rr, req)

			require.Equal(t, http.StatusInternalServerError, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			assert.NotContains(t, rr.Body.String(), "fine")

			var body models.ErrorResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
			assert.Equal(t, "Internal Server Error", body.Error)
			assert.Contains(t, body.Message, tt.wantMessage)

			assert.Contains(t, logBuf.String(), `"message":"Error"`)
			assert.Contains(t, logBuf.String(), `"status":500`)
		})
	}
}

func TestWithAccessLog_WriteFailureWithoutBody(t *testing.T) {
	h := newTestHandler(t, config.App{})
	h.accessLog = logger.NewAccessLog(t.TempDir())
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	rr := httptest.NewRecorder()
	h.withAccessLog(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestWithAccessLog_LineIsWrittenBeforeStatusIsSent(t *testing.T) {
	h := newTestHandler(t, config.App{})
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
		lines := accessLogLines(t, h)
		require.Len(t, lines, 1)
		assert.Contains(t, lines[0], "--> GET /early 202 ")
	})

	h.withAccessLog(next).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/early", nil))

	assert.Len(t, accessLogLines(t, h), 1)
}

func TestWithAccessLog_CreatesLogDirectory(t *testing.T) {
	h := newTestHandler(t, config.App{})
	path := filepath.Join(t.TempDir(), "a", "b", "server.log")
	h.accessLog = logger.NewAccessLog(path)

	h.withAccessLog(http.NotFoundHandler()).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(string(data), "\n"))
}

func TestAccessLogLine(t *testing.T) {
	assert.Equal(t, "--> GET /api/health 200 12ms", accessLogLine(http.MethodGet, "/api/health", 200, 12*time.Millisecond))
}

func TestFormatElapsed(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{0, "0ms"},
		{500 * time.Microsecond, "0ms"},
		{999 * time.Millisecond, "999ms"},
		{1000 * time.Millisecond, "1s"},
		{1499 * time.Millisecond, "1s"},
		{1500 * time.Millisecond, "2s"},
		{65 * time.Second, "65s"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, formatElapsed(tt.in))
		})
	}
}
