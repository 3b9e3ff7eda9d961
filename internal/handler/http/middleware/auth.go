package middleware

import (
	"context"
	"net/http"

	"github.com/dost-electric/workforce-backend-go/internal/domain/auth"
	"github.com/dost-electric/workforce-backend-go/internal/domain/user"
	"github.com/dost-electric/workforce-backend-go/internal/handler/http/response"
	"github.com/dost-electric/workforce-backend-go/internal/pkg/jwt"
	"github.com/go-chi/jwtauth/v5"
)

// AuthRequired rejects requests without a valid, non-revoked access
// token. Refresh tokens are never accepted here.
func AuthRequired(jwtService jwt.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, _, err := jwtauth.FromContext(r.Context())

			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}

			if token == nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			claims, err := token.AsMap(r.Context())
			if err != nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}
			tokenType, ok := claims["type"].(string)
			if !ok || tokenType != "access" {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			if jwtService.IsTokenRevoked(jwtauth.TokenFromHeader(r)) {
				response.HandleError(w, auth.ErrTokenRevoked)
				return
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}

// ActorFromContext rebuilds the caller identity from verified claims.
func ActorFromContext(ctx context.Context) (user.Actor, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return user.Actor{}, auth.ErrInvalidToken
	}

	actor := user.Actor{}
	if v, ok := claims["user_id"].(string); ok {
		actor.UserID = v
	}
	if v, ok := claims["email"].(string); ok {
		actor.Email = v
	}
	if v, ok := claims["name"].(string); ok {
		actor.Name = v
	}
	if v, ok := claims["role"].(string); ok {
		actor.Role = user.Role(v)
	}
	if v, ok := claims["employee_id"].(string); ok && v != "" {
		actor.EmployeeID = &v
	}

	if actor.UserID == "" || !user.ValidRole(string(actor.Role)) {
		return user.Actor{}, auth.ErrInvalidToken
	}

	return actor, nil
}
