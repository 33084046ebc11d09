package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/pkl-smk/pkl-backend-go/internal/domain/user"
	"github.com/pkl-smk/pkl-backend-go/internal/handler/http/response"
)

// RequireAdmin requires the ADMIN role
func RequireAdmin(next http.Handler) http.Handler {
	return requireRole(next, user.RoleAdmin, user.ErrAdminAccessRequired)
}

// RequireGuru requires the TEACHER role
func RequireGuru(next http.Handler) http.Handler {
	return requireRole(next, user.RoleGuru, user.ErrGuruAccessRequired)
}

// RequireSiswa requires the STUDENT role
func RequireSiswa(next http.Handler) http.Handler {
	return requireRole(next, user.RoleSiswa, user.ErrSiswaAccessRequired)
}

func requireRole(next http.Handler, required user.Role, accessErr error) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, accessErr)
			return
		}

		roleStr, ok := claims["role"].(string)
		if !ok {
			response.HandleError(w, accessErr)
			return
		}

		if user.Role(roleStr) != required {
			response.HandleError(w, accessErr)
			return
		}

		next.ServeHTTP(w, r)
	})
}
