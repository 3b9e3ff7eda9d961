package middleware

import (
	"net/http"

	"github.com/dost-electric/workforce-backend-go/internal/domain/user"
	"github.com/dost-electric/workforce-backend-go/internal/handler/http/response"
)

func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor, err := ActorFromContext(r.Context())
		if err != nil {
			response.HandleError(w, err)
			return
		}

		if !actor.IsAdmin() {
			response.HandleError(w, user.ErrAdminPrivilegeRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func SuperAdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor, err := ActorFromContext(r.Context())
		if err != nil {
			response.HandleError(w, err)
			return
		}

		if !actor.IsSuperAdmin() {
			response.HandleError(w, user.ErrSuperAdminPrivilegeRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
