package middleware

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

type gravadorStatus struct {
	http.ResponseWriter
	status int
}

func (g *gravadorStatus) WriteHeader(status int) {
	g.status = status
	g.ResponseWriter.WriteHeader(status)
}

// Logger registra método, caminho, status e duração de cada requisição.
func Logger(log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			inicio := time.Now()
			gravador := &gravadorStatus{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(gravador, r)
			log.Info("requisicao",
				zap.String("metodo", r.Method),
				zap.String("caminho", r.URL.Path),
				zap.Int("status", gravador.status),
				zap.Duration("duracao", time.Since(inicio)),
			)
		})
	}
}

// Recuperacao converte pânicos em 500 sem derrubar o processo.
func Recuperacao(log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					log.Error("panico na requisicao",
						zap.String("caminho", r.URL.Path),
						zap.Any("erro", rec),
					)
					http.Error(w, "Erro interno", http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
