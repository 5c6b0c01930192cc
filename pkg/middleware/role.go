package middleware

import (
	"net/http"

	"github.com/ppcl2025/campaign-change-tracker/pkg/apiErrors"
	"github.com/sirupsen/logrus"
)

// Perfis aceitos na claim "role"
const (
	RoleAdmin    = "admin"
	RoleOperator = "operator"
	RoleViewer   = "viewer"
)

// RoleMiddleware restringe o acesso aos perfis informados
func RoleMiddleware(allowedRoles []string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userClaims, ok := ClaimsFromContext(r.Context())
			if !ok {
				logrus.Warning("Tentativa de acesso sem autenticação")
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
				return
			}

			isAllowed := false
			for _, role := range allowedRoles {
				if userClaims.Role == role {
					isAllowed = true
					break
				}
			}

			if !isAllowed {
				logrus.Warningf("Acesso negado para sub=%s, role=%s", userClaims.Subject, userClaims.Role)
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem permissão para acessar este recurso", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func AdminOnly() func(http.Handler) http.Handler {
	return RoleMiddleware([]string{RoleAdmin})
}

// AdminOrOperator libera as rotas que gravam snapshots ou changelog
func AdminOrOperator() func(http.Handler) http.Handler {
	return RoleMiddleware([]string{RoleAdmin, RoleOperator})
}

func AllRoles() func(http.Handler) http.Handler {
	return RoleMiddleware([]string{RoleAdmin, RoleOperator, RoleViewer})
}
