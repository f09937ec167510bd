package middleware

import (
	"net/http"
	"strings"
	"time"
)

// Logger интерфейс логгера, используемый middleware
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RequestLogger логирует запросы к /api и /webhook путям
// (метод, путь, статус, длительность, request id)
func RequestLogger(log Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !strings.HasPrefix(r.URL.Path, "/api") && !strings.HasPrefix(r.URL.Path, "/webhook") {
				next.ServeHTTP(w, r)
				return
			}

			start := time.Now()
			recorder := newStatusRecorder(w)

			next.ServeHTTP(recorder, r)

			requestID, _ := GetRequestID(r.Context())
			log.Info("%s %s %d in %s request_id=%s",
				r.Method, r.URL.Path, recorder.status, time.Since(start), requestID)
		})
	}
}
