package contrato

import (
	"fmt"

	"github.com/AgenciaNexo/api-crm/internal/mensalidade"
	"github.com/AgenciaNexo/api-crm/internal/utils"
)

// GerarMensalidades produz as cobranças de um contrato recém-criado: uma
// mensalidade pendente por mês, vencendo em DataInicio + i meses, todas com
// o valor mensal do contrato.
func GerarMensalidades(c *Contrato) []mensalidade.Mensalidade {
	ms := make([]mensalidade.Mensalidade, 0, c.DuracaoMeses)
	for i := 0; i < c.DuracaoMeses; i++ {
		ms = append(ms, mensalidade.Mensalidade{
			ContratoID:     c.ID,
			ClienteID:      c.ClienteID,
			DataVencimento: utils.AdicionarMeses(c.DataInicio, i),
			Valor:          c.ValorMensal,
			Status:         mensalidade.StatusPendente,
			Descricao:      fmt.Sprintf("Mensalidade %d/%d", i+1, c.DuracaoMeses),
		})
	}
	return ms
}

// GerarMensalidadesRestantes produz o cronograma futuro após uma edição,
// assumindo que as parcelas já pagas ocupam os primeiros meses do novo
// cronograma: as novas cobranças começam no offset `pagas`. Se a nova
// duração for menor ou igual ao número de parcelas pagas, nada é gerado.
func GerarMensalidadesRestantes(c *Contrato, pagas int) []mensalidade.Mensalidade {
	restantes := c.DuracaoMeses - pagas
	if restantes < 0 {
		restantes = 0
	}
	ms := make([]mensalidade.Mensalidade, 0, restantes)
	for i := 0; i < restantes; i++ {
		offset := pagas + i
		ms = append(ms, mensalidade.Mensalidade{
			ContratoID:     c.ID,
			ClienteID:      c.ClienteID,
			DataVencimento: utils.AdicionarMeses(c.DataInicio, offset),
			Valor:          c.ValorMensal,
			Status:         mensalidade.StatusPendente,
			Descricao:      fmt.Sprintf("Mensalidade %d/%d", offset+1, c.DuracaoMeses),
		})
	}
	return ms
}
