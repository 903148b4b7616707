package mensalidade

import (
	"time"

	"gorm.io/gorm"
)

// Repository encapsula o acesso a dados de Mensalidades.
type Repository struct {
	DB *gorm.DB
}

// NewRepository instancia um novo repositório.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// WithDB retorna uma cópia do repo usando um *gorm.DB específico (ex.: tx).
func (r *Repository) WithDB(db *gorm.DB) *Repository {
	if db == nil {
		db = r.DB
	}
	return &Repository{DB: db}
}

// ItemListagem junta a mensalidade ao nome do cliente e à flag de
// antecipação do contrato, como a tela de lançamentos consome.
type ItemListagem struct {
	Mensalidade
	NomeCliente    string `json:"nomeCliente"`
	Antecipado     bool   `json:"antecipado"`
	StatusExibicao string `gorm:"-" json:"statusExibicao"`
}

/* ============================== CRUD básico ============================== */

// CriarEmLote cria múltiplas mensalidades de uma vez (ignora se vazio).
func (r *Repository) CriarEmLote(ms []Mensalidade) error {
	if len(ms) == 0 {
		return nil
	}
	return r.DB.Create(&ms).Error
}

// Criar grava uma mensalidade avulsa.
func (r *Repository) Criar(m *Mensalidade) error {
	return r.DB.Create(m).Error
}

// BuscarPorID busca uma única mensalidade pelo seu ID.
func (r *Repository) BuscarPorID(id uint) (*Mensalidade, error) {
	var m Mensalidade
	if err := r.DB.First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// ListarParaTela devolve todas as mensalidades com nome do cliente e flag
// de antecipação, ordenadas por vencimento (empates mantêm ordem de criação).
func (r *Repository) ListarParaTela() ([]ItemListagem, error) {
	var itens []ItemListagem
	err := r.DB.
		Table("mensalidades").
		Select("mensalidades.*, clientes.nome AS nome_cliente, contratos.antecipado AS antecipado").
		Joins("JOIN clientes ON clientes.id = mensalidades.cliente_id").
		Joins("JOIN contratos ON contratos.id = mensalidades.contrato_id").
		Order("mensalidades.data_vencimento ASC, mensalidades.id ASC").
		Find(&itens).Error
	return itens, err
}

// ListarPorContrato busca as mensalidades de um contrato, por vencimento.
func (r *Repository) ListarPorContrato(contratoID uint) ([]Mensalidade, error) {
	var ms []Mensalidade
	err := r.DB.
		Where("contrato_id = ?", contratoID).
		Order("data_vencimento ASC, id ASC").
		Find(&ms).Error
	return ms, err
}

// ListarTodas devolve todas as mensalidades, por vencimento.
func (r *Repository) ListarTodas() ([]Mensalidade, error) {
	var ms []Mensalidade
	err := r.DB.Order("data_vencimento ASC, id ASC").Find(&ms).Error
	return ms, err
}

/* =================== Operações usadas na reconciliação =================== */

// DeletarPendentesDoContrato apaga as mensalidades ainda não quitadas de um
// contrato. As pagas nunca são tocadas.
func (r *Repository) DeletarPendentesDoContrato(contratoID uint) error {
	return r.DB.
		Where("contrato_id = ? AND status = ?", contratoID, StatusPendente).
		Delete(&Mensalidade{}).Error
}

// ContarPagasDoContrato conta quantas mensalidades do contrato já foram pagas.
func (r *Repository) ContarPagasDoContrato(contratoID uint) (int64, error) {
	var pagas int64
	err := r.DB.Model(&Mensalidade{}).
		Where("contrato_id = ? AND status = ?", contratoID, StatusPago).
		Count(&pagas).Error
	return pagas, err
}

// DeletarDoContrato apaga todas as mensalidades de um contrato (exclusão do
// contrato em si, não reconciliação).
func (r *Repository) DeletarDoContrato(contratoID uint) error {
	return r.DB.Where("contrato_id = ?", contratoID).Delete(&Mensalidade{}).Error
}

/* ============================ Baixa de pagamento ============================ */

// MarcarComoPaga registra a quitação da mensalidade na data informada.
func (r *Repository) MarcarComoPaga(id uint, quando time.Time) error {
	return r.DB.Model(&Mensalidade{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":         StatusPago,
			"data_pagamento": &quando,
		}).Error
}
