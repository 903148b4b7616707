package vendedor

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

var validate = validator.New()

type Handler struct {
	Repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{Repo: repo}
}

type VendedorDTO struct {
	Nome     string `json:"nome" validate:"required"`
	Telefone string `json:"telefone"`
}

// POST /vendedores
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var in VendedorDTO
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(&in); err != nil {
		http.Error(w, "Nome do vendedor é obrigatório", http.StatusBadRequest)
		return
	}

	v := &Vendedor{Nome: in.Nome, Telefone: in.Telefone}
	if err := h.Repo.Criar(v); err != nil {
		http.Error(w, "Erro ao criar vendedor", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(v)
}

// GET /vendedores
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	resumos, err := h.Repo.ListarComResumo()
	if err != nil {
		http.Error(w, "Erro ao listar vendedores", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resumos)
}

// DELETE /vendedores/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID do vendedor inválido", http.StatusBadRequest)
		return
	}
	if err := h.Repo.Deletar(uint(id)); err != nil {
		switch {
		case errors.Is(err, ErrPossuiClientes):
			http.Error(w, "Vendedor possui clientes vinculados", http.StatusConflict)
		case errors.Is(err, gorm.ErrRecordNotFound):
			http.Error(w, "Vendedor não encontrado", http.StatusNotFound)
		default:
			http.Error(w, "Erro ao excluir vendedor", http.StatusInternalServerError)
		}
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
