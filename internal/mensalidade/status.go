package mensalidade

import (
	"time"

	"github.com/AgenciaNexo/api-crm/internal/utils"
)

// StatusExibicao deriva o status mostrado em telas e relatórios:
// Pago se quitada; Atrasado se pendente com vencimento antes do início do
// dia de referência; Pendente caso contrário. Listagem e relatórios passam
// todos por aqui.
func StatusExibicao(m *Mensalidade, hoje time.Time) string {
	if m.Status == StatusPago {
		return StatusPago
	}
	if utils.AntesDoDia(m.DataVencimento, hoje) {
		return StatusAtrasado
	}
	return StatusPendente
}
