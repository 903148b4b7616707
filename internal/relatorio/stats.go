package relatorio

import (
	"time"

	"github.com/AgenciaNexo/api-crm/internal/cliente"
	"github.com/AgenciaNexo/api-crm/internal/contrato"
	"github.com/AgenciaNexo/api-crm/internal/mensalidade"
	"github.com/AgenciaNexo/api-crm/internal/utils"
	"github.com/AgenciaNexo/api-crm/internal/vendedor"
)

// Agregadores puros sobre coleções já carregadas. Nenhuma função aqui toca
// o banco.

// EstatisticasCliente são os números do cartão de cada cliente.
type EstatisticasCliente struct {
	ContratosAtivos int                `json:"contratosAtivos"`
	TotalContratos  int                `json:"totalContratos"`
	LTV             float64            `json:"ltv"`
	ReceitaRecebida float64            `json:"receitaRecebida"`
	UltimoContrato  *contrato.Contrato `json:"ultimoContrato"`
}

// CalcularEstatisticasCliente agrega os contratos e mensalidades do cliente.
// LTV soma o valor total de todos os contratos, pago ou não; a receita soma
// apenas mensalidades quitadas. O último contrato é o de maior DataFim
// (empate fica com o primeiro encontrado).
func CalcularEstatisticasCliente(cli *cliente.Cliente, contratos []contrato.Contrato, mensalidades []mensalidade.Mensalidade) EstatisticasCliente {
	var e EstatisticasCliente
	for i := range contratos {
		c := &contratos[i]
		if c.ClienteID != cli.ID {
			continue
		}
		e.TotalContratos++
		if c.Ativo {
			e.ContratosAtivos++
		}
		e.LTV += c.ValorTotal
		if e.UltimoContrato == nil || c.DataFim.After(e.UltimoContrato.DataFim) {
			e.UltimoContrato = c
		}
	}
	for i := range mensalidades {
		m := &mensalidades[i]
		if m.ClienteID == cli.ID && m.Status == mensalidade.StatusPago {
			e.ReceitaRecebida += m.Valor
		}
	}
	return e
}

// EstatisticasMensais são os cartões do dashboard de um mês.
type EstatisticasMensais struct {
	Total         float64 `json:"total"`
	Recebido      float64 `json:"recebido"`
	Pendente      float64 `json:"pendente"`
	AtrasadoGeral float64 `json:"atrasadoGeral"` // pendentes vencidas, qualquer mês
	AtrasadoNoMes float64 `json:"atrasadoNoMes"` // pendentes vencidas dentro do mês
	Antecipado    float64 `json:"antecipado"`    // mensalidades de contratos antecipados
}

// CalcularEstatisticasMensais filtra pelo mês de vencimento e soma por
// status. O cartão "Em Atraso (Geral)" ignora o recorte de mês; a variante
// AtrasadoNoMes alimenta o filtro da listagem.
func CalcularEstatisticasMensais(itens []mensalidade.ItemListagem, mes, hoje time.Time) EstatisticasMensais {
	var e EstatisticasMensais
	for i := range itens {
		m := &itens[i]
		vencida := m.Status == mensalidade.StatusPendente && utils.AntesDoDia(m.DataVencimento, hoje)
		if vencida {
			e.AtrasadoGeral += m.Valor
		}
		if !utils.MesmoMes(m.DataVencimento, mes) {
			continue
		}
		e.Total += m.Valor
		switch m.Status {
		case mensalidade.StatusPago:
			e.Recebido += m.Valor
		case mensalidade.StatusPendente:
			e.Pendente += m.Valor
		}
		if vencida {
			e.AtrasadoNoMes += m.Valor
		}
		if m.Antecipado {
			e.Antecipado += m.Valor
		}
	}
	return e
}

// ComissaoCliente é uma linha do detalhamento de comissão de um vendedor.
type ComissaoCliente struct {
	ClienteID   uint    `json:"clienteId"`
	NomeCliente string  `json:"nomeCliente"`
	Percentual  float64 `json:"percentual"`
	Receita     float64 `json:"receita"`
	Comissao    float64 `json:"comissao"`
}

// ResumoComissao agrega as comissões de um vendedor num mês.
type ResumoComissao struct {
	VendedorID     uint              `json:"vendedorId"`
	NomeVendedor   string            `json:"nomeVendedor"`
	QtdClientes    int               `json:"qtdClientes"`
	PorCliente     []ComissaoCliente `json:"porCliente"`
	TotalComissao  float64           `json:"totalComissao"`
	TotalFormatado string            `json:"totalFormatado"`
}

// CalcularComissoes soma, por cliente do vendedor, as mensalidades pagas com
// vencimento no mês e aplica o percentual de comissão do cliente. Clientes
// sem recebimento no mês entram no detalhamento com receita zero.
func CalcularComissoes(v *vendedor.Vendedor, clientes []cliente.Cliente, mensalidades []mensalidade.Mensalidade, mes time.Time) ResumoComissao {
	resumo := ResumoComissao{VendedorID: v.ID, NomeVendedor: v.Nome}

	for i := range clientes {
		cli := &clientes[i]
		if cli.VendedorID == nil || *cli.VendedorID != v.ID {
			continue
		}
		resumo.QtdClientes++

		var receita float64
		for j := range mensalidades {
			m := &mensalidades[j]
			if m.ClienteID == cli.ID && m.Status == mensalidade.StatusPago && utils.MesmoMes(m.DataVencimento, mes) {
				receita += m.Valor
			}
		}

		var percentual float64
		if cli.PercentualComissao != nil {
			percentual = *cli.PercentualComissao
		}
		comissao := receita * percentual / 100

		resumo.PorCliente = append(resumo.PorCliente, ComissaoCliente{
			ClienteID:   cli.ID,
			NomeCliente: cli.Nome,
			Percentual:  percentual,
			Receita:     receita,
			Comissao:    comissao,
		})
		resumo.TotalComissao += comissao
	}

	resumo.TotalFormatado = utils.FormatarMoeda(resumo.TotalComissao)
	return resumo
}
