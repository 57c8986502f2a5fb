package middleware

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"github.com/TheEightboys/hsehubfinal-sub002/pkg/composables"
	"github.com/TheEightboys/hsehubfinal-sub002/pkg/configuration"
)

// ProvidePool makes the database pool available to repositories via context.
func ProvidePool(pool *pgxpool.Pool) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(composables.WithPool(r.Context(), pool)))
		})
	}
}

// RequestID tags every request with the inbound request id header value or a
// fresh uuidv4.
func RequestID() mux.MiddlewareFunc {
	conf := configuration.Use()
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(conf.RequestIDHeader)
			if id == "" {
				id = uuid.New().String()
			}
			w.Header().Set(conf.RequestIDHeader, id)
			next.ServeHTTP(w, r.WithContext(composables.WithRequestID(r.Context(), id)))
		})
	}
}

// CompanyContext resolves the acting company and actor from trusted headers.
// Requests without a company id still pass through; controllers decide
// whether the company scope is required.
func CompanyContext() mux.MiddlewareFunc {
	conf := configuration.Use()
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			if raw := r.Header.Get(conf.CompanyIDHeader); raw != "" {
				if companyID, err := uuid.Parse(raw); err == nil {
					ctx = composables.WithCompanyID(ctx, companyID)
				}
			}
			if email := r.Header.Get("X-Actor-Email"); email != "" {
				ctx = composables.WithActor(ctx, composables.Actor{
					Email: email,
					Role:  r.Header.Get("X-Actor-Role"),
				})
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	if w.status == 0 {
		w.status = code
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Status() int {
	if w.status == 0 {
		return http.StatusOK
	}
	return w.status
}

// LogRequests attaches a request-scoped field logger and emits one access
// log line per request.
func LogRequests(logger *logrus.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			fields := logrus.Fields{
				"method":     r.Method,
				"path":       r.URL.Path,
				"request-id": composables.UseRequestID(r.Context()),
			}
			entry := logger.WithFields(fields)
			sw := &statusWriter{ResponseWriter: w}
			next.ServeHTTP(sw, r.WithContext(composables.WithLogger(r.Context(), entry)))
			entry.WithFields(logrus.Fields{
				"status":   sw.Status(),
				"duration": time.Since(start).String(),
			}).Info("request completed")
		})
	}
}
