package mensalidade

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/AgenciaNexo/api-crm/internal/utils"
	"github.com/gorilla/mux"
)

type Handler struct {
	Repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{Repo: repo}
}

// DTO usado no POST /mensalidades (lançamento avulso).
type CriarDTO struct {
	ContratoID uint    `json:"contratoId"`
	ClienteID  uint    `json:"clienteId"`
	DataVenc   string  `json:"dataVencimento"`
	Valor      float64 `json:"valor"`
	Descricao  string  `json:"descricao"`
}

// GET /mensalidades
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	itens, err := h.Repo.ListarParaTela()
	if err != nil {
		http.Error(w, "Erro ao buscar mensalidades", http.StatusInternalServerError)
		return
	}

	hoje := time.Now()
	for i := range itens {
		itens[i].StatusExibicao = StatusExibicao(&itens[i].Mensalidade, hoje)
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(itens)
}

// POST /mensalidades
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var in CriarDTO
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if in.ContratoID == 0 || in.ClienteID == 0 {
		http.Error(w, "Contrato e cliente são obrigatórios", http.StatusBadRequest)
		return
	}
	venc, err := utils.ParseData(in.DataVenc)
	if err != nil {
		http.Error(w, "Data de vencimento inválida (use AAAA-MM-DD)", http.StatusBadRequest)
		return
	}

	m := &Mensalidade{
		ContratoID:     in.ContratoID,
		ClienteID:      in.ClienteID,
		DataVencimento: utils.NormalizarData(venc),
		Valor:          in.Valor,
		Status:         StatusPendente,
		Descricao:      in.Descricao,
	}
	if err := h.Repo.Criar(m); err != nil {
		http.Error(w, "Erro ao criar mensalidade", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(m)
}

// PATCH /mensalidades/{id}/status
// Dá baixa na mensalidade. Uma mensalidade paga não pode ser rebaixada.
func (h *Handler) AtualizarStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID da mensalidade inválido", http.StatusBadRequest)
		return
	}

	var payload struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if payload.Status != StatusPago {
		http.Error(w, "Status inválido. Apenas a baixa para 'Pago' é permitida.", http.StatusBadRequest)
		return
	}

	atual, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		http.Error(w, "Mensalidade não encontrada", http.StatusNotFound)
		return
	}
	if atual.Status == StatusPago {
		http.Error(w, "Mensalidade já está paga", http.StatusBadRequest)
		return
	}

	if err := h.Repo.MarcarComoPaga(uint(id), time.Now()); err != nil {
		http.Error(w, "Erro ao atualizar status da mensalidade", http.StatusInternalServerError)
		return
	}

	m, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		http.Error(w, "Erro ao buscar mensalidade atualizada", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(m)
}
