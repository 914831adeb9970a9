// internal/middleware/logging.go

package middleware

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// LogMiddleware is an HTTP middleware that logs incoming requests using Logrus.
// Logs the method, path, and duration of each request.
func LogMiddleware(logger *logrus.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			path := r.URL.Path
			method := r.Method

			next.ServeHTTP(w, r)

			duration := time.Since(start)
			logger.WithFields(logrus.Fields{
				"method":   method,
				"path":     path,
				"duration": duration,
				"remote":   r.RemoteAddr,
			}).Info("HTTP Request")
		})
	}
}

// LogSubscribe logs a client attaching to a lobby's snapshot stream.
func LogSubscribe(logger *logrus.Logger, remoteAddr, lobbyID string) {
	logger.WithFields(logrus.Fields{
		"remote": remoteAddr,
		"lobby":  lobbyID,
	}).Info("snapshot stream opened")
}

// LogUnsubscribe logs a client detaching from a lobby's snapshot stream.
func LogUnsubscribe(logger *logrus.Logger, remoteAddr, lobbyID string, err error) {
	fields := logrus.Fields{
		"remote": remoteAddr,
		"lobby":  lobbyID,
	}
	if err != nil {
		fields["error"] = err
	}
	logger.WithFields(fields).Info("snapshot stream closed")
}
