package contrato

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
	DB      *gorm.DB
	Servico *Servico
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db, Servico: NewServico(db)}
}

// POST /contratos
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var in CriarDTO
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(&in); err != nil {
		http.Error(w, "Dados do contrato inválidos: "+err.Error(), http.StatusBadRequest)
		return
	}

	c, err := h.Servico.Criar(&in)
	if err != nil {
		if errors.Is(err, ErrClienteNaoEncontrado) {
			http.Error(w, "Cliente não encontrado", http.StatusBadRequest)
			return
		}
		http.Error(w, "Erro ao criar contrato", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(c)
}

// GET /contratos
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	itens, err := h.Servico.Repo.ListarTodos(h.DB)
	if err != nil {
		http.Error(w, "Erro ao listar contratos", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(itens)
}

// GET /contratos/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID do contrato inválido", http.StatusBadRequest)
		return
	}
	c, err := h.Servico.Repo.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "Contrato não encontrado", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(c)
}

// PUT /contratos/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID do contrato inválido", http.StatusBadRequest)
		return
	}

	var in AtualizarDTO
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(&in); err != nil {
		http.Error(w, "Dados do contrato inválidos: "+err.Error(), http.StatusBadRequest)
		return
	}

	c, err := h.Servico.Atualizar(uint(id), &in)
	if err != nil {
		if errors.Is(err, ErrContratoNaoEncontrado) {
			http.Error(w, "Contrato não encontrado", http.StatusNotFound)
			return
		}
		http.Error(w, "Erro ao atualizar contrato", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(c)
}

// DELETE /contratos/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID do contrato inválido", http.StatusBadRequest)
		return
	}
	if err := h.Servico.Deletar(uint(id)); err != nil {
		if errors.Is(err, ErrContratoNaoEncontrado) {
			http.Error(w, "Contrato não encontrado", http.StatusNotFound)
			return
		}
		http.Error(w, "Erro ao excluir contrato", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
