package relatorio

import (
	"testing"
	"time"

	"github.com/AgenciaNexo/api-crm/internal/cliente"
	"github.com/AgenciaNexo/api-crm/internal/contrato"
	"github.com/AgenciaNexo/api-crm/internal/mensalidade"
	"github.com/AgenciaNexo/api-crm/internal/vendedor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dia(ano int, mes time.Month, d int) time.Time {
	return time.Date(ano, mes, d, 0, 0, 0, 0, time.UTC)
}

func TestCalcularEstatisticasCliente(t *testing.T) {
	cli := &cliente.Cliente{ID: 1, Nome: "ACME"}

	contratos := []contrato.Contrato{
		{ID: 10, ClienteID: 1, Ativo: true, ValorTotal: 600, DataFim: dia(2024, time.June, 1)},
		{ID: 11, ClienteID: 1, Ativo: false, ValorTotal: 300, DataFim: dia(2024, time.December, 1)},
		{ID: 12, ClienteID: 2, Ativo: true, ValorTotal: 999, DataFim: dia(2025, time.January, 1)}, // outro cliente
	}
	mensalidades := []mensalidade.Mensalidade{
		{ClienteID: 1, Status: mensalidade.StatusPago, Valor: 100},
		{ClienteID: 1, Status: mensalidade.StatusPago, Valor: 100},
		{ClienteID: 1, Status: mensalidade.StatusPendente, Valor: 100},
		{ClienteID: 2, Status: mensalidade.StatusPago, Valor: 500},
	}

	e := CalcularEstatisticasCliente(cli, contratos, mensalidades)
	assert.Equal(t, 1, e.ContratosAtivos)
	assert.Equal(t, 2, e.TotalContratos)
	assert.Equal(t, 900.0, e.LTV) // valor comprometido, independe de pagamento
	assert.Equal(t, 200.0, e.ReceitaRecebida)
	require.NotNil(t, e.UltimoContrato)
	assert.Equal(t, uint(11), e.UltimoContrato.ID)
}

func TestCalcularEstatisticasClienteSemContratos(t *testing.T) {
	cli := &cliente.Cliente{ID: 7}
	e := CalcularEstatisticasCliente(cli, nil, nil)
	assert.Zero(t, e.TotalContratos)
	assert.Zero(t, e.LTV)
	assert.Nil(t, e.UltimoContrato)
}

func item(clienteID uint, venc time.Time, valor float64, status string, antecipado bool) mensalidade.ItemListagem {
	return mensalidade.ItemListagem{
		Mensalidade: mensalidade.Mensalidade{
			ClienteID:      clienteID,
			DataVencimento: venc,
			Valor:          valor,
			Status:         status,
		},
		Antecipado: antecipado,
	}
}

func TestCalcularEstatisticasMensais(t *testing.T) {
	mes := dia(2024, time.June, 1)
	hoje := dia(2024, time.June, 15)

	itens := []mensalidade.ItemListagem{
		item(1, dia(2024, time.June, 5), 100, mensalidade.StatusPago, false),
		item(1, dia(2024, time.June, 10), 200, mensalidade.StatusPendente, false), // atrasada, no mês
		item(1, dia(2024, time.June, 20), 300, mensalidade.StatusPendente, true),  // futura, antecipada
		item(2, dia(2024, time.May, 10), 400, mensalidade.StatusPendente, false),  // atrasada, fora do mês
		item(2, dia(2024, time.July, 1), 500, mensalidade.StatusPendente, false),  // fora do mês
	}

	e := CalcularEstatisticasMensais(itens, mes, hoje)
	assert.Equal(t, 600.0, e.Total)
	assert.Equal(t, 100.0, e.Recebido)
	assert.Equal(t, 500.0, e.Pendente)
	assert.Equal(t, 600.0, e.AtrasadoGeral) // 200 do mês + 400 de maio
	assert.Equal(t, 200.0, e.AtrasadoNoMes)
	assert.Equal(t, 300.0, e.Antecipado)
}

func TestCalcularComissoes(t *testing.T) {
	vend := &vendedor.Vendedor{ID: 1, Nome: "Joana"}
	dez := 10.0
	vinculo := uint(1)

	clientes := []cliente.Cliente{
		{ID: 1, Nome: "ACME", VendedorID: &vinculo, PercentualComissao: &dez},
		{ID: 2, Nome: "Beta", VendedorID: &vinculo}, // sem percentual definido
		{ID: 3, Nome: "Gama"},                       // sem vendedor
	}
	mes := dia(2024, time.June, 1)
	mensalidades := []mensalidade.Mensalidade{
		{ClienteID: 1, Status: mensalidade.StatusPago, Valor: 1000, DataVencimento: dia(2024, time.June, 10)},
		{ClienteID: 1, Status: mensalidade.StatusPendente, Valor: 1000, DataVencimento: dia(2024, time.June, 20)}, // não paga
		{ClienteID: 1, Status: mensalidade.StatusPago, Valor: 1000, DataVencimento: dia(2024, time.May, 10)},     // outro mês
		{ClienteID: 3, Status: mensalidade.StatusPago, Valor: 800, DataVencimento: dia(2024, time.June, 5)},      // cliente sem vendedor
	}

	resumo := CalcularComissoes(vend, clientes, mensalidades, mes)
	assert.Equal(t, 2, resumo.QtdClientes)
	require.Len(t, resumo.PorCliente, 2)

	assert.Equal(t, "ACME", resumo.PorCliente[0].NomeCliente)
	assert.Equal(t, 1000.0, resumo.PorCliente[0].Receita)
	assert.Equal(t, 100.0, resumo.PorCliente[0].Comissao)

	// cliente sem recebimento no mês aparece no detalhamento com receita zero
	assert.Equal(t, "Beta", resumo.PorCliente[1].NomeCliente)
	assert.Zero(t, resumo.PorCliente[1].Receita)
	assert.Zero(t, resumo.PorCliente[1].Comissao)

	assert.Equal(t, 100.0, resumo.TotalComissao)
	assert.Equal(t, "R$ 100,00", resumo.TotalFormatado)
}
