package http

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/flannelman48/whirly-rentals-website/internal/common/constants"
	"github.com/flannelman48/whirly-rentals-website/internal/common/logger"
)

type bodyRecorder struct {
	http.ResponseWriter
	status int
	body   bytes.Buffer
}

func (r *bodyRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *bodyRecorder) Write(b []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}
	if strings.HasPrefix(r.Header().Get("Content-Type"), "application/json") && r.body.Len() < constants.RequestLogMaxLength*4 {
		r.body.Write(b)
	}
	return r.ResponseWriter.Write(b)
}

func (r *bodyRecorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}

// RequestLogMiddleware writes one line per /api request with the status, latency
// and the start of the JSON response.
func RequestLogMiddleware(log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !strings.HasPrefix(r.URL.Path, "/api") {
				next.ServeHTTP(w, r)
				return
			}

			start := time.Now()
			rec := &bodyRecorder{ResponseWriter: w}
			next.ServeHTTP(rec, r)

			status := rec.status
			if status == 0 {
				status = http.StatusOK
			}
			log.Info(FormatRequestLine(r.Method, r.URL.Path, status, time.Since(start), rec.body.Bytes()))
		})
	}
}

func FormatRequestLine(method, path string, status int, elapsed time.Duration, body []byte) string {
	line := fmt.Sprintf("%s %s %d in %dms", method, path, status, elapsed.Milliseconds())
	if trimmed := bytes.TrimSpace(body); len(trimmed) > 0 {
		line += " :: " + string(trimmed)
	}
	return truncate(line, constants.RequestLogMaxLength)
}

func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max-1]) + "…"
}
