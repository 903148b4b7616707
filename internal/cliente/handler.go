package cliente

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
	DB         *gorm.DB
	Repository Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db, Repository: NewRepository()}
}

// POST /clientes
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var in ClienteDTO
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(&in); err != nil {
		http.Error(w, "Dados do cliente inválidos: "+err.Error(), http.StatusBadRequest)
		return
	}
	in.AplicarVariante()

	c := &Cliente{
		Nome:               in.Nome,
		Origem:             in.Origem,
		Fechamento:         in.Fechamento,
		Email:              in.Email,
		Telefone:           in.Telefone,
		VendedorID:         in.VendedorID,
		PercentualComissao: in.PercentualComissao,
	}
	if err := h.Repository.Criar(h.DB, c); err != nil {
		http.Error(w, "Erro ao criar cliente", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(c)
}

// GET /clientes
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	clientes, err := h.Repository.ListarTodos(h.DB)
	if err != nil {
		http.Error(w, "Erro ao listar clientes", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(clientes)
}

// GET /clientes/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID do cliente inválido", http.StatusBadRequest)
		return
	}
	c, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "Cliente não encontrado", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(c)
}

// PATCH /clientes/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID do cliente inválido", http.StatusBadRequest)
		return
	}

	c, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "Cliente não encontrado", http.StatusNotFound)
		return
	}

	var in ClienteDTO
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(&in); err != nil {
		http.Error(w, "Dados do cliente inválidos: "+err.Error(), http.StatusBadRequest)
		return
	}
	in.AplicarVariante()

	c.Nome = in.Nome
	c.Origem = in.Origem
	c.Fechamento = in.Fechamento
	c.Email = in.Email
	c.Telefone = in.Telefone
	c.VendedorID = in.VendedorID
	c.PercentualComissao = in.PercentualComissao

	if err := h.Repository.Atualizar(h.DB, c); err != nil {
		http.Error(w, "Erro ao atualizar cliente", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(c)
}

// DELETE /clientes/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID do cliente inválido", http.StatusBadRequest)
		return
	}
	if err := h.Repository.Deletar(h.DB, uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "Cliente não encontrado", http.StatusNotFound)
			return
		}
		http.Error(w, "Erro ao excluir cliente", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
