package middleware

import (
	"context"
	"net/http"
	"strings"

	"weddingplanner/internal/delivery/http/helpers"
	"weddingplanner/internal/domain"
)

type invitationKey struct{}

// WithInvitation returns ctx carrying the verified invitation claims.
func WithInvitation(ctx context.Context, claims *domain.InvitationClaims) context.Context {
	return context.WithValue(ctx, invitationKey{}, claims)
}

// InvitationFromContext returns the claims set by RequireInvitation.
func InvitationFromContext(ctx context.Context) (*domain.InvitationClaims, bool) {
	c, ok := ctx.Value(invitationKey{}).(*domain.InvitationClaims)
	return c, ok && c != nil
}

// RequireInvitation verifies the Bearer invitation token and stores its claims in the request context.
// Missing or invalid tokens get a 401 and next is not called.
func RequireInvitation(verifier domain.InvitationTokenVerifier) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			token, found := strings.CutPrefix(auth, "Bearer ")
			token = strings.TrimSpace(token)
			if !found || token == "" {
				helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "missing invitation token")
				return
			}
			claims, err := verifier.Verify(token)
			if err != nil {
				helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "invalid or expired invitation")
				return
			}
			next(w, r.WithContext(WithInvitation(r.Context(), claims)))
		}
	}
}
