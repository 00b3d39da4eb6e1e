package httpadapter

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

type callerKey struct{}

// CallerFromContext returns the authenticated caller account set by the
// auth middleware, or the empty string outside an authenticated request.
func CallerFromContext(ctx context.Context) string {
	caller, _ := ctx.Value(callerKey{}).(string)
	return caller
}

func withCaller(r *http.Request, caller string) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), callerKey{}, caller))
}

// HeaderAuth identifies the caller by a trusted header, for deployments
// behind a gateway that authenticates upstream.
func HeaderAuth(header string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			caller := strings.TrimSpace(r.Header.Get(header))
			if caller == "" {
				writeError(w, http.StatusUnauthorized, "unauthorized", "missing caller header")
				return
			}
			next.ServeHTTP(w, withCaller(r, caller))
		})
	}
}

// JWTAuth identifies the caller by the subject claim of an HS256 bearer
// token.
func JWTAuth(signingKey []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok {
				writeError(w, http.StatusUnauthorized, "unauthorized", "missing bearer token")
				return
			}
			claims := jwt.RegisteredClaims{}
			parsed, err := jwt.ParseWithClaims(raw, &claims, func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrTokenUnverifiable
				}
				return signingKey, nil
			})
			if err != nil || !parsed.Valid || claims.Subject == "" {
				writeError(w, http.StatusUnauthorized, "unauthorized", "invalid token")
				return
			}
			next.ServeHTTP(w, withCaller(r, claims.Subject))
		})
	}
}
