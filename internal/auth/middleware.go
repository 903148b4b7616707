package auth

import (
	"context"
	"net/http"
	"strings"
)

type ctxKey string

const CtxUsuario ctxKey = "usuario"

// Rotas abertas sem token: login, recuperação de senha e a leitura das
// configurações (o tema carrega antes do login).
var rotasPublicas = map[string]bool{
	"/auth/login":            true,
	"/auth/esqueci-senha":    true,
	"/auth/reset-emergencia": true,
}

func ehPublica(r *http.Request) bool {
	if rotasPublicas[r.URL.Path] {
		return true
	}
	return r.URL.Path == "/configuracoes" && r.Method == http.MethodGet
}

// MiddlewareAutenticacao exige Bearer token válido em toda rota protegida.
func MiddlewareAutenticacao(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions || ehPublica(r) {
			next.ServeHTTP(w, r)
			return
		}
		h := r.Header.Get("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			http.Error(w, "Token ausente", http.StatusUnauthorized)
			return
		}
		claims, err := ValidarToken(strings.TrimPrefix(h, "Bearer "))
		if err != nil {
			http.Error(w, "Token inválido", http.StatusUnauthorized)
			return
		}
		ctx := context.WithValue(r.Context(), CtxUsuario, claims.Usuario)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
