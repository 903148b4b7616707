package configuracao

import (
	"encoding/json"
	"net/http"

	"github.com/AgenciaNexo/api-crm/internal/utils"
)

type Handler struct {
	Repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{Repo: repo}
}

// DTO do PATCH /configuracoes: campos opcionais, só os enviados mudam.
type AtualizarDTO struct {
	NomeApp             *string `json:"nomeApp"`
	CorPrimaria         *string `json:"corPrimaria"`
	CorPrimariaTexto    *string `json:"corPrimariaTexto"`
	LogoURL             *string `json:"logoUrl"`
	FaviconURL          *string `json:"faviconUrl"`
	CorSuperficieClara  *string `json:"corSuperficieClara"`
	CorFundoClaro       *string `json:"corFundoClaro"`
	CorBordaClara       *string `json:"corBordaClara"`
	CorSuperficieEscura *string `json:"corSuperficieEscura"`
	CorFundoEscuro      *string `json:"corFundoEscuro"`
	CorBordaEscura      *string `json:"corBordaEscura"`
	UsuarioAdmin        *string `json:"usuarioAdmin"`
	NovaSenha           *string `json:"novaSenha"`
}

// GET /configuracoes
// Público: o tema precisa carregar antes do login. A senha nunca sai daqui
// (json:"-" no modelo).
func (h *Handler) Buscar(w http.ResponseWriter, r *http.Request) {
	c, err := h.Repo.Carregar()
	if err != nil {
		http.Error(w, "Erro ao carregar configurações", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(c)
}

// PATCH /configuracoes
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	var in AtualizarDTO
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}

	c, err := h.Repo.Carregar()
	if err != nil {
		http.Error(w, "Erro ao carregar configurações", http.StatusInternalServerError)
		return
	}

	aplicar := func(destino *string, origem *string) {
		if origem != nil {
			*destino = *origem
		}
	}
	aplicar(&c.NomeApp, in.NomeApp)
	aplicar(&c.CorPrimaria, in.CorPrimaria)
	aplicar(&c.CorPrimariaTexto, in.CorPrimariaTexto)
	aplicar(&c.LogoURL, in.LogoURL)
	aplicar(&c.FaviconURL, in.FaviconURL)
	aplicar(&c.CorSuperficieClara, in.CorSuperficieClara)
	aplicar(&c.CorFundoClaro, in.CorFundoClaro)
	aplicar(&c.CorBordaClara, in.CorBordaClara)
	aplicar(&c.CorSuperficieEscura, in.CorSuperficieEscura)
	aplicar(&c.CorFundoEscuro, in.CorFundoEscuro)
	aplicar(&c.CorBordaEscura, in.CorBordaEscura)
	aplicar(&c.UsuarioAdmin, in.UsuarioAdmin)

	if in.NovaSenha != nil && *in.NovaSenha != "" {
		hash, err := utils.HashSenha(*in.NovaSenha)
		if err != nil {
			http.Error(w, "Erro ao atualizar senha", http.StatusInternalServerError)
			return
		}
		c.SenhaAdmin = hash
	}

	if err := h.Repo.Atualizar(c); err != nil {
		http.Error(w, "Erro ao salvar configurações", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(c)
}
