package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/middleware"
	"github.com/sirupsen/logrus"
	"github.com/tomasen/realip"
)

// Logger logs requests with client's real ip.
func Logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		l := logrus.WithFields(logrus.Fields{
			"ip":       realip.FromRequest(r),
			"method":   r.Method,
			"uri":      r.RequestURI,
			"status":   ww.Status(),
			"size":     ww.BytesWritten(),
			"duration": time.Since(start),
		})

		if id := middleware.GetReqID(r.Context()); id != "" {
			l = l.WithField("request_id", id)
		}

		if ww.Status() >= http.StatusInternalServerError {
			l.Error("request failed")
			return
		}

		l.Debug("request served")
	})
}

// BodyLimiter limits size of request's body.
func BodyLimiter(size int64) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, size)
			next.ServeHTTP(w, r)
		})
	}
}
