package http

import (
	"net/http"
	"strings"

	"github.com/fotosdotap/studio/internal/studio/service"
	"github.com/fotosdotap/studio/pkg/httpx"
	"github.com/fotosdotap/studio/pkg/slogx"
)

// requireAdmin verifies the bearer token on every protected admin call.
func requireAdmin(admin *service.AdminService) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authz := r.Header.Get("Authorization")
			if !strings.HasPrefix(authz, "Bearer ") {
				httpx.WriteJSON(w, http.StatusUnauthorized, ErroResponse{Erro: "Não autorizado"})
				return
			}

			token := strings.TrimSpace(strings.TrimPrefix(authz, "Bearer "))
			if err := admin.VerifyToken(token); err != nil {
				slogx.FromContext(r.Context()).Warn("admin token rejected", "error", err)
				httpx.WriteJSON(w, http.StatusUnauthorized, ErroResponse{Erro: "Não autorizado"})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
