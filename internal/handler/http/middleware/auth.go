package middleware

import (
	"net/http"

	"github.com/cmlabs-hris/rostering-backend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/rostering-backend-go/internal/pkg/jwt"
	"github.com/go-chi/jwtauth/v5"
)

// AuthRequired rejects requests whose verified token is missing, is not an
// access token, or has been revoked. It runs after jwtauth.Verifier.
func AuthRequired(tokens jwt.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, claims, err := jwtauth.FromContext(r.Context())
			if err != nil {
				response.HandleError(w, err)
				return
			}

			if token == nil {
				response.HandleError(w, jwtauth.ErrNoTokenFound)
				return
			}

			tokenType, ok := claims["type"].(string)
			if tokenType != jwt.TokenTypeAccess || !ok {
				response.HandleError(w, jwt.ErrInvalidType)
				return
			}

			if tokens.IsTokenRevoked(jwtauth.TokenFromHeader(r)) {
				response.HandleError(w, jwt.ErrTokenRevoked)
				return
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}
