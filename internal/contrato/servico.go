package contrato

import (
	"errors"

	"github.com/AgenciaNexo/api-crm/internal/mensalidade"
	"github.com/AgenciaNexo/api-crm/internal/utils"
	"gorm.io/gorm"
)

var (
	ErrContratoNaoEncontrado = errors.New("contrato não encontrado")
	ErrClienteNaoEncontrado  = errors.New("cliente não encontrado")
)

// Servico concentra a criação e a reconciliação de contratos. As duas
// operações gravam contrato e mensalidades como uma unidade atômica: ou
// tudo entra, ou nada entra.
type Servico struct {
	DB           *gorm.DB
	Repo         Repository
	Mensalidades *mensalidade.Repository
}

func NewServico(db *gorm.DB) *Servico {
	return &Servico{
		DB:           db,
		Repo:         NewRepository(),
		Mensalidades: mensalidade.NewRepository(db),
	}
}

// Criar grava o contrato e gera uma mensalidade pendente por mês de duração.
func (s *Servico) Criar(in *CriarDTO) (*Contrato, error) {
	inicio, err := utils.ParseData(in.DataInicio)
	if err != nil {
		return nil, err
	}

	c := &Contrato{
		ClienteID:    in.ClienteID,
		DataInicio:   utils.NormalizarData(inicio),
		DataFim:      utils.AdicionarMeses(inicio, in.DuracaoMeses),
		DuracaoMeses: in.DuracaoMeses,
		ValorMensal:  in.ValorMensal,
		ValorTotal:   in.ValorMensal * float64(in.DuracaoMeses),
		Antecipado:   in.Antecipado,
		Ativo:        true,
		URLContrato:  in.URLContrato,
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		var existe int64
		if err := tx.Table("clientes").Where("id = ?", in.ClienteID).Count(&existe).Error; err != nil {
			return err
		}
		if existe == 0 {
			return ErrClienteNaoEncontrado
		}

		if err := s.Repo.Criar(tx, c); err != nil {
			return err
		}
		return s.Mensalidades.WithDB(tx).CriarEmLote(GerarMensalidades(c))
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Atualizar aplica novos termos a um contrato existente e reconcilia o
// cronograma: mensalidades pendentes são apagadas e regeradas a partir dos
// novos termos; as pagas ficam intactas, sem renumerar datas, valores ou
// descrições. Assume-se que as pagas ocupam os primeiros offsets do
// novo cronograma.
func (s *Servico) Atualizar(id uint, in *AtualizarDTO) (*Contrato, error) {
	inicio, err := utils.ParseData(in.DataInicio)
	if err != nil {
		return nil, err
	}

	var final *Contrato
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		var c Contrato
		if err := tx.First(&c, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrContratoNaoEncontrado
			}
			return err
		}

		c.DataInicio = utils.NormalizarData(inicio)
		c.DuracaoMeses = in.DuracaoMeses
		c.ValorMensal = in.ValorMensal
		c.DataFim = utils.AdicionarMeses(c.DataInicio, in.DuracaoMeses)
		c.ValorTotal = in.ValorMensal * float64(in.DuracaoMeses)
		c.URLContrato = in.URLContrato
		if err := s.Repo.Atualizar(tx, &c); err != nil {
			return err
		}

		repo := s.Mensalidades.WithDB(tx)
		if err := repo.DeletarPendentesDoContrato(c.ID); err != nil {
			return err
		}
		pagas, err := repo.ContarPagasDoContrato(c.ID)
		if err != nil {
			return err
		}
		if err := repo.CriarEmLote(GerarMensalidadesRestantes(&c, int(pagas))); err != nil {
			return err
		}

		final = &c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return final, nil
}

// Deletar remove o contrato e todas as suas mensalidades.
func (s *Servico) Deletar(id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Mensalidades.WithDB(tx).DeletarDoContrato(id); err != nil {
			return err
		}
		err := s.Repo.Deletar(tx, id)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrContratoNaoEncontrado
		}
		return err
	})
}
