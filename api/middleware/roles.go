package middleware

import (
	"net/http"

	"github.com/soundreel/admin-backend/api/responses"
	"github.com/soundreel/admin-backend/pkg/enums"
	pkgerrors "github.com/soundreel/admin-backend/pkg/errors"
	"github.com/soundreel/admin-backend/pkg/logger"
)

func RequireRole(role string, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if RoleFromContext(r.Context()) != role {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeForbidden, "role required"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireSuperAdmin guards admin account management.
func RequireSuperAdmin(logg *logger.Logger) func(http.Handler) http.Handler {
	return RequireRole(string(enums.AdminRoleSuperAdmin), logg)
}
