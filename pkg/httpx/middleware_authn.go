package httpx

import (
	"net/http"
	"strings"

	"github.com/aussiebroadwan/democat/pkg/jwtx"
	"github.com/aussiebroadwan/democat/pkg/slogx"
)

// AuthnMiddleware requires a valid bearer token and stores its claims in the
// request context.
func AuthnMiddleware(v jwtx.Verifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			authz := r.Header.Get("Authorization")
			raw, ok := strings.CutPrefix(authz, "Bearer ")
			if !ok || strings.TrimSpace(raw) == "" {
				writeBearerError(w, "missing bearer token")
				return
			}

			claims, err := v.Verify(strings.TrimSpace(raw))
			if err != nil {
				slogx.FromContext(ctx).Warn("jwt verify failed", "err", err)
				writeBearerError(w, "token verification failed")
				return
			}

			ctx = ContextWithClaims(ctx, claims)
			ctx = slogx.WithAttrs(ctx, "user_id", claims.Subject, "role", claims.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RFC 6750 error response for bearer auth.
func writeBearerError(w http.ResponseWriter, desc string) {
	w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token", error_description="`+desc+`"`)
	WriteError(w, http.StatusUnauthorized, "invalid_token", desc)
}
