package http

import (
	"log/slog"
	"net/http"

	"github.com/clemPerrousset/sondage-public-elysee/internal/core/ports"
)

// AdminKeyHeader carries the shared admin secret out-of-band, never in
// the request body.
const AdminKeyHeader = "X-Admin-Key"

// RequireAdminKey rejects the request before any body is read when the
// provided key does not match.
func RequireAdminKey(gate ports.AdminGate) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if err := gate.Authorize(r.Header.Get(AdminKeyHeader)); err != nil {
				slog.Warn("admin authorization failed", "remote", r.RemoteAddr, "path", r.URL.Path)
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
