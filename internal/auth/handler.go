package auth

import (
	"encoding/json"
	"net/http"
	"os"

	"github.com/AgenciaNexo/api-crm/internal/configuracao"
	"github.com/AgenciaNexo/api-crm/internal/utils"
)

// Código de recuperação usado quando MASTER_CODE não está no ambiente.
const codigoMestrePadrao = "MASTER-AGENCY-2025"

type Handler struct {
	Config *configuracao.Repository
}

func NewHandler(config *configuracao.Repository) *Handler {
	return &Handler{Config: config}
}

// POST /auth/login
// Compara usuário e senha com as credenciais guardadas nas configurações
// (criadas com o padrão admin/123 no primeiro acesso) e emite o token.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Usuario string `json:"usuario"`
		Senha   string `json:"senha"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}

	c, err := h.Config.Carregar()
	if err != nil {
		http.Error(w, "Erro ao carregar configurações", http.StatusInternalServerError)
		return
	}

	if in.Usuario != c.UsuarioAdmin || !utils.VerificarSenha(c.SenhaAdmin, in.Senha) {
		http.Error(w, "Credenciais inválidas", http.StatusUnauthorized)
		return
	}

	token, err := GerarToken(in.Usuario)
	if err != nil {
		http.Error(w, "Erro ao gerar token", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"token": token})
}

// POST /auth/esqueci-senha
// Redefine a senha do admin mediante o código mestre (MASTER_CODE no
// ambiente, com fallback fixo).
func (h *Handler) EsqueciSenha(w http.ResponseWriter, r *http.Request) {
	var in struct {
		CodigoMestre string `json:"codigoMestre"`
		NovaSenha    string `json:"novaSenha"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}

	codigo := os.Getenv("MASTER_CODE")
	if codigo == "" {
		codigo = codigoMestrePadrao
	}
	if in.CodigoMestre != codigo {
		http.Error(w, "Código de recuperação inválido", http.StatusUnauthorized)
		return
	}
	if in.NovaSenha == "" {
		http.Error(w, "Nova senha é obrigatória", http.StatusBadRequest)
		return
	}

	if err := h.Config.AtualizarSenha(in.NovaSenha); err != nil {
		http.Error(w, "Erro ao redefinir senha", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"message":"Senha redefinida com sucesso"}`))
}

// GET /auth/reset-emergencia
// Restaura usuário e senha para o padrão de fábrica (admin/123).
func (h *Handler) ResetEmergencia(w http.ResponseWriter, r *http.Request) {
	if err := h.Config.RedefinirCredenciais(); err != nil {
		http.Error(w, "Erro ao restaurar credenciais", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"message":"Credenciais restauradas para o padrão"}`))
}
