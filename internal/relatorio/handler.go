package relatorio

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/AgenciaNexo/api-crm/internal/cliente"
	"github.com/AgenciaNexo/api-crm/internal/contrato"
	"github.com/AgenciaNexo/api-crm/internal/mensalidade"
	"github.com/AgenciaNexo/api-crm/internal/utils"
	"github.com/AgenciaNexo/api-crm/internal/vendedor"
	"gorm.io/gorm"
)

// Handler carrega as coleções e delega o cálculo aos agregadores puros.
// Leituras não são transacionais: pequena defasagem entre as buscas é
// tolerada e se resolve no próximo refresh.
type Handler struct {
	DB           *gorm.DB
	Clientes     cliente.Repository
	Contratos    contrato.Repository
	Mensalidades *mensalidade.Repository
	Vendedores   *vendedor.Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		DB:           db,
		Clientes:     cliente.NewRepository(),
		Contratos:    contrato.NewRepository(),
		Mensalidades: mensalidade.NewRepository(db),
		Vendedores:   vendedor.NewRepository(db),
	}
}

// mesDaQuery interpreta ?mes=AAAA-MM; sem o parâmetro, usa o mês corrente.
func mesDaQuery(r *http.Request) (time.Time, bool) {
	s := r.URL.Query().Get("mes")
	if s == "" {
		return utils.NormalizarData(time.Now()), true
	}
	mes, err := utils.ParseMes(s)
	if err != nil {
		return time.Time{}, false
	}
	return mes, true
}

// GET /relatorios/dashboard?mes=AAAA-MM
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	mes, ok := mesDaQuery(r)
	if !ok {
		http.Error(w, "Mês inválido (use AAAA-MM)", http.StatusBadRequest)
		return
	}

	itens, err := h.Mensalidades.ListarParaTela()
	if err != nil {
		http.Error(w, "Erro ao buscar mensalidades", http.StatusInternalServerError)
		return
	}

	resposta := struct {
		Mes string `json:"mes"`
		EstatisticasMensais
	}{
		Mes:                 mes.Format("2006-01"),
		EstatisticasMensais: CalcularEstatisticasMensais(itens, mes, time.Now()),
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resposta)
}

// ClienteComStats devolve o cliente com os números do cartão.
type ClienteComStats struct {
	cliente.Cliente
	EstatisticasCliente
}

// GET /relatorios/clientes
func (h *Handler) ListarClientes(w http.ResponseWriter, r *http.Request) {
	clientes, err := h.Clientes.ListarTodos(h.DB)
	if err != nil {
		http.Error(w, "Erro ao listar clientes", http.StatusInternalServerError)
		return
	}
	itens, err := h.Contratos.ListarTodos(h.DB)
	if err != nil {
		http.Error(w, "Erro ao listar contratos", http.StatusInternalServerError)
		return
	}
	contratos := make([]contrato.Contrato, len(itens))
	for i := range itens {
		contratos[i] = itens[i].Contrato
	}
	mensalidades, err := h.Mensalidades.ListarTodas()
	if err != nil {
		http.Error(w, "Erro ao buscar mensalidades", http.StatusInternalServerError)
		return
	}

	resposta := make([]ClienteComStats, 0, len(clientes))
	for i := range clientes {
		resposta = append(resposta, ClienteComStats{
			Cliente:             clientes[i],
			EstatisticasCliente: CalcularEstatisticasCliente(&clientes[i], contratos, mensalidades),
		})
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resposta)
}

// GET /relatorios/vendedores?mes=AAAA-MM
func (h *Handler) Comissoes(w http.ResponseWriter, r *http.Request) {
	mes, ok := mesDaQuery(r)
	if !ok {
		http.Error(w, "Mês inválido (use AAAA-MM)", http.StatusBadRequest)
		return
	}

	vendedores, err := h.Vendedores.ListarTodos()
	if err != nil {
		http.Error(w, "Erro ao listar vendedores", http.StatusInternalServerError)
		return
	}
	clientes, err := h.Clientes.ListarTodos(h.DB)
	if err != nil {
		http.Error(w, "Erro ao listar clientes", http.StatusInternalServerError)
		return
	}
	mensalidades, err := h.Mensalidades.ListarTodas()
	if err != nil {
		http.Error(w, "Erro ao buscar mensalidades", http.StatusInternalServerError)
		return
	}

	resposta := make([]ResumoComissao, 0, len(vendedores))
	for i := range vendedores {
		resposta = append(resposta, CalcularComissoes(&vendedores[i], clientes, mensalidades, mes))
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resposta)
}
