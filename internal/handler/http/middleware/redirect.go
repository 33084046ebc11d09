package middleware

import (
	"net/http"
	"strings"

	"github.com/go-chi/jwtauth/v5"
	"github.com/pkl-smk/pkl-backend-go/internal/domain/user"
)

const loginPath = "/auth/login"

// RoleRedirect routes browser navigation to the dashboard matching the
// visitor's role. It never blocks API traffic; it only rewrites where the
// three page trees (/auth, /dashboard and public) may be entered from:
//
//   - an authenticated visitor on an /auth page is sent to their own
//     dashboard root
//   - an unauthenticated visitor on a /dashboard page is sent to the login
//     page
//   - an authenticated visitor inside another role's dashboard subtree is
//     sent back to their own root
//
// Everything else passes through untouched. Roles come from the verified
// access token; a missing or unknown role is treated as unauthenticated.
func RoleRedirect(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path

		isAuthPage := strings.HasPrefix(path, "/auth/")
		isDashboard := strings.HasPrefix(path, "/dashboard/")
		if !isAuthPage && !isDashboard {
			next.ServeHTTP(w, r)
			return
		}

		role, authenticated := roleFromRequest(r)
		home := user.DashboardPath(role)
		if home == loginPath {
			authenticated = false
		}

		switch {
		case authenticated && isAuthPage:
			http.Redirect(w, r, home, http.StatusSeeOther)
		case !authenticated && isDashboard:
			http.Redirect(w, r, loginPath, http.StatusSeeOther)
		case authenticated && isDashboard && !strings.HasPrefix(path, home):
			http.Redirect(w, r, home, http.StatusSeeOther)
		default:
			next.ServeHTTP(w, r)
		}
	})
}

func roleFromRequest(r *http.Request) (user.Role, bool) {
	token, claims, err := jwtauth.FromContext(r.Context())
	if err != nil || token == nil {
		return "", false
	}

	roleStr, ok := claims["role"].(string)
	if !ok {
		return "", false
	}
	return user.Role(roleStr), true
}
