package middleware

import (
	"net/http"

	"github.com/2beens/fitdash/internal/telemetry/tracing"
	"github.com/2beens/fitdash/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
)

// Admin holds the credentials allowed to trigger privileged actions.
type Admin struct {
	Username     string
	PasswordHash string
}

// AdminAuth guards a route with HTTP basic auth, checking the password against a bcrypt hash.
func AdminAuth(admin Admin) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, span := tracing.GlobalTracer.Start(r.Context(), "middleware.adminAuth")
			defer span.End()

			username, password, ok := r.BasicAuth()
			if !ok {
				w.Header().Set("WWW-Authenticate", `Basic realm="fitdash"`)
				http.Error(w, "no can do", http.StatusUnauthorized)
				span.SetStatus(codes.Error, "missing-credentials")
				return
			}

			if admin.Username == "" || username != admin.Username || !pkg.CheckPasswordHash(password, admin.PasswordHash) {
				log.Warnf("[admin auth] unauthorized [%s] => %s", username, r.URL.Path)
				http.Error(w, "no can do", http.StatusUnauthorized)
				span.SetStatus(codes.Error, "invalid-credentials")
				return
			}

			span.SetStatus(codes.Ok, "ok")
			next.ServeHTTP(w, r)
		})
	}
}
