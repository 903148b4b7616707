package contrato_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/AgenciaNexo/api-crm/internal/cliente"
	"github.com/AgenciaNexo/api-crm/internal/contrato"
	"github.com/AgenciaNexo/api-crm/internal/mensalidade"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func abrirBanco(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&cliente.Cliente{},
		&contrato.Contrato{},
		&mensalidade.Mensalidade{},
	))
	return db
}

func criarCliente(t *testing.T, db *gorm.DB) *cliente.Cliente {
	t.Helper()
	c := &cliente.Cliente{Nome: "ACME Ltda", Origem: cliente.OrigemIndicacao, Fechamento: cliente.FechamentoAgencia}
	require.NoError(t, db.Create(c).Error)
	return c
}

func dia(ano int, mes time.Month, d int) time.Time {
	return time.Date(ano, mes, d, 0, 0, 0, 0, time.UTC)
}

func TestCriarContratoGeraMensalidades(t *testing.T) {
	db := abrirBanco(t)
	cli := criarCliente(t, db)
	servico := contrato.NewServico(db)

	c, err := servico.Criar(&contrato.CriarDTO{
		ClienteID:    cli.ID,
		DataInicio:   "2024-01-15",
		DuracaoMeses: 3,
		ValorMensal:  100,
	})
	require.NoError(t, err)

	assert.Equal(t, 300.0, c.ValorTotal)
	assert.Equal(t, dia(2024, time.January, 15), c.DataInicio)
	assert.Equal(t, dia(2024, time.April, 15), c.DataFim)
	assert.True(t, c.Ativo)

	ms, err := mensalidade.NewRepository(db).ListarPorContrato(c.ID)
	require.NoError(t, err)
	require.Len(t, ms, 3)

	var soma float64
	for i, m := range ms {
		assert.Equal(t, mensalidade.StatusPendente, m.Status)
		assert.Equal(t, 100.0, m.Valor)
		assert.Equal(t, cli.ID, m.ClienteID)
		assert.Equal(t, fmt.Sprintf("Mensalidade %d/3", i+1), m.Descricao)
		assert.Equal(t, dia(2024, time.Month(1+i), 15), m.DataVencimento)
		if i > 0 {
			assert.True(t, m.DataVencimento.After(ms[i-1].DataVencimento))
		}
		soma += m.Valor
	}
	assert.Equal(t, c.ValorTotal, soma)
}

func TestCriarContratoFixaFimDeMes(t *testing.T) {
	db := abrirBanco(t)
	cli := criarCliente(t, db)
	servico := contrato.NewServico(db)

	c, err := servico.Criar(&contrato.CriarDTO{
		ClienteID:    cli.ID,
		DataInicio:   "2024-01-31",
		DuracaoMeses: 3,
		ValorMensal:  50,
	})
	require.NoError(t, err)

	ms, err := mensalidade.NewRepository(db).ListarPorContrato(c.ID)
	require.NoError(t, err)
	require.Len(t, ms, 3)
	assert.Equal(t, dia(2024, time.January, 31), ms[0].DataVencimento)
	assert.Equal(t, dia(2024, time.February, 29), ms[1].DataVencimento) // bissexto
	assert.Equal(t, dia(2024, time.March, 31), ms[2].DataVencimento)
}

func TestCriarContratoClienteInexistente(t *testing.T) {
	db := abrirBanco(t)
	servico := contrato.NewServico(db)

	_, err := servico.Criar(&contrato.CriarDTO{
		ClienteID:    999,
		DataInicio:   "2024-01-15",
		DuracaoMeses: 3,
		ValorMensal:  100,
	})
	require.ErrorIs(t, err, contrato.ErrClienteNaoEncontrado)

	// rollback completo: nada ficou para trás
	var contratos, mensalidades int64
	db.Model(&contrato.Contrato{}).Count(&contratos)
	db.Model(&mensalidade.Mensalidade{}).Count(&mensalidades)
	assert.Zero(t, contratos)
	assert.Zero(t, mensalidades)
}

func TestAtualizarSemPagamentosRegeraIgual(t *testing.T) {
	db := abrirBanco(t)
	cli := criarCliente(t, db)
	servico := contrato.NewServico(db)

	c, err := servico.Criar(&contrato.CriarDTO{
		ClienteID:    cli.ID,
		DataInicio:   "2024-01-15",
		DuracaoMeses: 3,
		ValorMensal:  100,
	})
	require.NoError(t, err)

	antes, err := mensalidade.NewRepository(db).ListarPorContrato(c.ID)
	require.NoError(t, err)

	_, err = servico.Atualizar(c.ID, &contrato.AtualizarDTO{
		DataInicio:   "2024-01-15",
		DuracaoMeses: 3,
		ValorMensal:  100,
	})
	require.NoError(t, err)

	depois, err := mensalidade.NewRepository(db).ListarPorContrato(c.ID)
	require.NoError(t, err)
	require.Len(t, depois, len(antes))
	for i := range antes {
		assert.Equal(t, antes[i].DataVencimento, depois[i].DataVencimento)
		assert.Equal(t, antes[i].Valor, depois[i].Valor)
		assert.Equal(t, antes[i].Descricao, depois[i].Descricao)
		assert.Equal(t, antes[i].Status, depois[i].Status)
	}
}

func TestAtualizarPreservaPagas(t *testing.T) {
	db := abrirBanco(t)
	cli := criarCliente(t, db)
	servico := contrato.NewServico(db)
	repo := mensalidade.NewRepository(db)

	c, err := servico.Criar(&contrato.CriarDTO{
		ClienteID:    cli.ID,
		DataInicio:   "2024-01-15",
		DuracaoMeses: 3,
		ValorMensal:  100,
	})
	require.NoError(t, err)

	ms, err := repo.ListarPorContrato(c.ID)
	require.NoError(t, err)
	primeira := ms[0]
	require.NoError(t, repo.MarcarComoPaga(primeira.ID, dia(2024, time.January, 20)))

	atualizado, err := servico.Atualizar(c.ID, &contrato.AtualizarDTO{
		DataInicio:   "2024-01-15",
		DuracaoMeses: 5,
		ValorMensal:  150,
	})
	require.NoError(t, err)
	assert.Equal(t, 750.0, atualizado.ValorTotal)

	depois, err := repo.ListarPorContrato(c.ID)
	require.NoError(t, err)
	require.Len(t, depois, 5)

	// a paga segue intacta: mesmo id, valor, vencimento e descrição antigos
	paga := depois[0]
	assert.Equal(t, primeira.ID, paga.ID)
	assert.Equal(t, mensalidade.StatusPago, paga.Status)
	assert.Equal(t, 100.0, paga.Valor)
	assert.Equal(t, dia(2024, time.January, 15), paga.DataVencimento)
	assert.Equal(t, "Mensalidade 1/3", paga.Descricao)

	// quatro novas pendentes nos offsets 1..4, com os novos termos
	for i, m := range depois[1:] {
		assert.Equal(t, mensalidade.StatusPendente, m.Status)
		assert.Equal(t, 150.0, m.Valor)
		assert.Equal(t, dia(2024, time.Month(2+i), 15), m.DataVencimento)
		assert.Equal(t, fmt.Sprintf("Mensalidade %d/5", i+2), m.Descricao)
	}
}

func TestAtualizarDuracaoMenorQueQuitadas(t *testing.T) {
	db := abrirBanco(t)
	cli := criarCliente(t, db)
	servico := contrato.NewServico(db)
	repo := mensalidade.NewRepository(db)

	c, err := servico.Criar(&contrato.CriarDTO{
		ClienteID:    cli.ID,
		DataInicio:   "2024-01-15",
		DuracaoMeses: 3,
		ValorMensal:  100,
	})
	require.NoError(t, err)

	ms, err := repo.ListarPorContrato(c.ID)
	require.NoError(t, err)
	require.NoError(t, repo.MarcarComoPaga(ms[0].ID, dia(2024, time.January, 15)))
	require.NoError(t, repo.MarcarComoPaga(ms[1].ID, dia(2024, time.February, 15)))

	// nova duração menor ou igual ao número de pagas: nada novo é gerado
	_, err = servico.Atualizar(c.ID, &contrato.AtualizarDTO{
		DataInicio:   "2024-01-15",
		DuracaoMeses: 2,
		ValorMensal:  100,
	})
	require.NoError(t, err)

	depois, err := repo.ListarPorContrato(c.ID)
	require.NoError(t, err)
	require.Len(t, depois, 2)
	for _, m := range depois {
		assert.Equal(t, mensalidade.StatusPago, m.Status)
	}
}

func TestAtualizarContratoInexistente(t *testing.T) {
	db := abrirBanco(t)
	servico := contrato.NewServico(db)

	_, err := servico.Atualizar(42, &contrato.AtualizarDTO{
		DataInicio:   "2024-01-15",
		DuracaoMeses: 3,
		ValorMensal:  100,
	})
	require.ErrorIs(t, err, contrato.ErrContratoNaoEncontrado)
}

func TestDeletarContratoRemoveMensalidades(t *testing.T) {
	db := abrirBanco(t)
	cli := criarCliente(t, db)
	servico := contrato.NewServico(db)

	c, err := servico.Criar(&contrato.CriarDTO{
		ClienteID:    cli.ID,
		DataInicio:   "2024-01-15",
		DuracaoMeses: 3,
		ValorMensal:  100,
	})
	require.NoError(t, err)

	require.NoError(t, servico.Deletar(c.ID))

	var restantes int64
	db.Model(&mensalidade.Mensalidade{}).Where("contrato_id = ?", c.ID).Count(&restantes)
	assert.Zero(t, restantes)

	require.ErrorIs(t, servico.Deletar(c.ID), contrato.ErrContratoNaoEncontrado)
}
